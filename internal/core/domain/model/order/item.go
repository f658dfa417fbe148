package order

import (
	"errors"
	"strings"

	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// MaxItemQuantity bounds the quantity of a single line.
const MaxItemQuantity = 100

// Item is a line of an order. Product name and unit price are copied from the
// catalog when the order is placed, so later catalog changes do not affect it.
type Item struct {
	productID   kernel.UUID
	productName string
	unitPrice   decimal.Decimal
	quantity    int

	isConstructed bool
}

func NewItem(productID kernel.UUID, productName string, unitPrice decimal.Decimal, quantity int) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i Item) ProductID() kernel.UUID {
	return i.productID
}

func (i Item) ProductName() string {
	return i.productName
}

func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal is unitPrice × quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.productID = id
	return nil
}

func (i *Item) setProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = name
	return nil
}

func (i *Item) setUnitPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsOutOfRangeError("unitPrice", price.String(), "0.01", "unbounded")
	}
	i.unitPrice = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxItemQuantity)
	}
	i.quantity = quantity
	return nil
}
