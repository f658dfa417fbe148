package commands

import (
	"errors"
	"fmt"
	"strings"

	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/model/order"
	"fastbite/internal/pkg/errs"
	"fastbite/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CartItem is one requested line: which product and how many.
type CartItem struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand asks to place an order for the customer with the given cart.
// Prices and names are resolved from the catalog by the handler.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	deliveryAddress string
	notes           string
	items           []CartItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request shape before any lookup runs.
//
// Returns a joined error when:
//   - customerID is not a valid UUID
//   - deliveryAddress is blank
//   - items is empty, or an item has an invalid product id or a quantity
//     outside 1..order.MaxItemQuantity
//
// Whether the products exist and are available is checked by the handler.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	deliveryAddress string,
	notes string,
	items []CartItem,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c CreateOrderCommand) Items() []CartItem {
	return append([]CartItem(nil), c.items...)
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setItems(items []CartItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	var lineErrs []error
	for i, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("items[%d].productId: %w", i, err))
		}
		if item.Quantity < 1 || item.Quantity > order.MaxItemQuantity {
			lineErrs = append(lineErrs, fmt.Errorf("items[%d]: %w", i,
				errs.NewValueIsOutOfRangeError("quantity", item.Quantity, 1, order.MaxItemQuantity)))
		}
	}
	if err := errors.Join(lineErrs...); err != nil {
		return err
	}

	c.items = append([]CartItem(nil), items...)
	return nil
}
