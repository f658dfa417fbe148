package ports

import (
	"context"

	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/model/order"
)

// OrderRepository stores Order aggregates.
type OrderRepository interface {
	// Add persists a newly placed order together with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores a status change. The stored row must still be at
	// aggregate.Version()-1, otherwise *errs.ConflictError is returned.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns *errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListByStatuses returns orders in any of the given stages, oldest first.
	ListByStatuses(ctx context.Context, statuses ...order.Status) ([]*order.Order, error)

	// ListByCustomer returns the customer's orders, newest first.
	ListByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// ListAll returns every order, newest first.
	ListAll(ctx context.Context) ([]*order.Order, error)
}
