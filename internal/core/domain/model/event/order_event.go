// Package event defines the notifications published after an order or its
// comments change.
package event

import (
	"time"

	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/model/order"
)

type Type int

const (
	UnknownType Type = iota
	Created
	StatusChanged
	CommentAdded
)

func (t Type) String() string {
	switch t {
	case Created:
		return "CREATED"
	case StatusChanged:
		return "STATUS_CHANGED"
	case CommentAdded:
		return "COMMENT_ADDED"
	default:
		return "UNKNOWN"
	}
}

// OrderEvent is an immutable notification about one order. Status and Order
// are empty for CommentAdded.
type OrderEvent struct {
	Type      Type
	OrderID   kernel.UUID
	Status    order.Status
	Order     *order.Snapshot
	Timestamp time.Time
}

func OrderCreated(o *order.Order, now time.Time) OrderEvent {
	return fromOrder(Created, o, now)
}

func OrderStatusChanged(o *order.Order, now time.Time) OrderEvent {
	return fromOrder(StatusChanged, o, now)
}

func CommentAddedTo(orderID kernel.UUID, now time.Time) OrderEvent {
	return OrderEvent{Type: CommentAdded, OrderID: orderID, Timestamp: now}
}

func fromOrder(t Type, o *order.Order, now time.Time) OrderEvent {
	snap := o.Snapshot()
	return OrderEvent{
		Type:      t,
		OrderID:   o.ID(),
		Status:    o.Status(),
		Order:     &snap,
		Timestamp: now,
	}
}

// ForOrder returns a filter matching events about orderID.
func ForOrder(orderID kernel.UUID) func(OrderEvent) bool {
	return func(e OrderEvent) bool {
		return e.OrderID.IsEqual(orderID)
	}
}
