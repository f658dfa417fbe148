package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned by Validate when an Order did not come
	// from NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Customer is the snapshot of the customer's contact data taken when the order is placed.
type Customer struct {
	ID    kernel.UUID
	Name  string
	Phone string
}

// Order is the aggregate root of the lifecycle engine. It owns a placed
// order from checkout until it is delivered.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer
//   - Must have a non-blank delivery address and at least one item
//   - Total is the sum of item subtotals and never changes after creation
//   - Status only moves forward one stage at a time, through ChangeStatus
//   - Every mutation increments version by exactly one
//
// The version rule lets a repository detect a concurrent writer: when an
// updated order is saved, the stored row must still carry Version()-1.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customer is the contact data copied at checkout
	customer Customer

	deliveryAddress string
	notes           string

	// items and total are fixed at creation
	items []Item
	total decimal.Decimal

	status Status

	// courierID is the courier who took the order out (nil before that)
	courierID *kernel.UUID

	createdAt time.Time
	updatedAt time.Time
	version   int

	// isConstructed ensures the order came from NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder places a new order in the Received stage and computes its total.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - customer: Who placed the order; Name must not be blank
//   - deliveryAddress: Where to deliver (must not be blank)
//   - notes: Free text for the kitchen, may be empty
//   - items: Order lines priced at checkout (at least one)
//   - now: Used for both createdAt and updatedAt
//
// Returns:
//   - *Order: The placed order with version 1
//   - error: Every failed rule, joined with errors.Join
//
// Example:
//
//	item, _ := order.NewItem(product.ID(), product.Name(), product.Price(), 2)
//	o, err := order.NewOrder(kernel.NewUUID(), customer, "Calle Mayor 1", "", []order.Item{item}, clock.Now())
//	if err != nil {
//	    return nil, err
//	}
func NewOrder(
	id kernel.UUID,
	customer Customer,
	deliveryAddress string,
	notes string,
	items []Item,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:        Received,
		notes:         strings.TrimSpace(notes),
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setDeliveryAddress(deliveryAddress),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order from storage without re-running creation rules.
// Only persistence adapters should call it; the values are trusted as stored.
func RestoreOrder(
	id kernel.UUID,
	customer Customer,
	deliveryAddress string,
	notes string,
	items []Item,
	total decimal.Decimal,
	status Status,
	courierID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) *Order {
	return &Order{
		id:              id,
		customer:        customer,
		deliveryAddress: deliveryAddress,
		notes:           notes,
		items:           append([]Item(nil), items...),
		total:           total,
		status:          status,
		courierID:       courierID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		version:         version,
		isConstructed:   true,
	}
}

// Validate ensures the Order was built by NewOrder or RestoreOrder.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed for a nil or zero-value Order
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity. Versions are not compared.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Customer() Customer {
	return o.customer
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customer.ID
}

func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

func (o *Order) Notes() string {
	return o.notes
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

func (o *Order) Total() decimal.Decimal {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

// Courier is the courier who took the order out for delivery, nil before that.
func (o *Order) Courier() *kernel.UUID {
	if o.courierID == nil {
		return nil
	}
	id := *o.courierID
	return &id
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Order) Version() int {
	return o.version
}

// ChangeStatus advances the order to the next stage. Skipping stages, moving
// backwards and repeating the current stage are rejected. When the order goes
// out for delivery and courierID is set, the courier is recorded on the order.
//
// Returns:
//   - nil on success; status, updatedAt and version are updated together
//   - ValueIsInvalidError if to is not the stage after the current one
//
// A failed call leaves the order untouched.
//
// Example:
//
//	if err := o.ChangeStatus(order.OutForDelivery, &caller.ID, clock.Now()); err != nil {
//	    return nil, err
//	}
func (o *Order) ChangeStatus(to Status, courierID *kernel.UUID, now time.Time) error {
	if err := to.Validate(); err != nil {
		return err
	}
	next, ok := o.status.Next()
	if !ok || next != to {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot move order from %s to %s", o.status, to),
		)
	}

	if to == OutForDelivery && courierID != nil {
		if err := courierID.Validate(); err != nil {
			return err
		}
		id := *courierID
		o.courierID = &id
	}

	o.status = to
	o.updatedAt = now
	o.version++
	return nil
}

// Snapshot returns a detached copy of the order state.
func (o *Order) Snapshot() Snapshot {
	items := make([]ItemSnapshot, 0, len(o.items))
	for _, item := range o.items {
		items = append(items, ItemSnapshot{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
			Subtotal:    item.Subtotal(),
		})
	}
	return Snapshot{
		ID:              o.id,
		CustomerID:      o.customer.ID,
		CustomerName:    o.customer.Name,
		CustomerPhone:   o.customer.Phone,
		DeliveryAddress: o.deliveryAddress,
		Notes:           o.notes,
		Items:           items,
		Total:           o.total,
		Status:          o.status,
		CourierID:       o.Courier(),
		CreatedAt:       o.createdAt,
		UpdatedAt:       o.updatedAt,
		Version:         o.version,
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.ID.Validate(); err != nil {
		return err
	}
	customer.Name = strings.TrimSpace(customer.Name)
	if customer.Name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	customer.Phone = strings.TrimSpace(customer.Phone)
	o.customer = customer
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	total := decimal.Zero
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", idx, err)
		}
		total = total.Add(item.Subtotal())
	}
	o.items = append([]Item(nil), items...)
	o.total = total
	return nil
}
