package order

import (
	"time"

	"fastbite/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Snapshot is a plain copy of an order at one point in time. Events carry
// snapshots so that observers never share state with the live aggregate.
type Snapshot struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	Notes           string
	Items           []ItemSnapshot
	Total           decimal.Decimal
	Status          Status
	CourierID       *kernel.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Version         int
}

type ItemSnapshot struct {
	ProductID   kernel.UUID
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
	Subtotal    decimal.Decimal
}
