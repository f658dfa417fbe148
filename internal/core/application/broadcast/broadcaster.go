package broadcast

import (
	"log/slog"

	"fastbite/internal/core/domain/model/comment"
	"fastbite/internal/core/domain/model/event"
	"fastbite/internal/core/domain/model/kernel"
)

// Broadcaster owns one hub per event category and is the process-wide
// implementation of ports.EventPublisher. It is built by the composition
// root and closed on shutdown.
type Broadcaster struct {
	orders   *Hub[event.OrderEvent]
	comments *Hub[comment.Comment]
}

func NewBroadcaster(logger *slog.Logger, bufferLimit int) *Broadcaster {
	return &Broadcaster{
		orders: NewHub[event.OrderEvent](
			WithName("orders"), WithLogger(logger), WithBufferLimit(bufferLimit),
		),
		comments: NewHub[comment.Comment](
			WithName("comments"), WithLogger(logger), WithBufferLimit(bufferLimit),
		),
	}
}

func (b *Broadcaster) PublishOrderEvent(ev event.OrderEvent) {
	b.orders.Publish(ev)
}

func (b *Broadcaster) PublishComment(c comment.Comment) {
	b.comments.Publish(c)
}

// AllOrderEvents streams every order event, for kitchen and courier dashboards.
func (b *Broadcaster) AllOrderEvents() (*Subscription[event.OrderEvent], error) {
	return b.orders.Subscribe(nil)
}

// OrderEvents streams the events of a single order.
func (b *Broadcaster) OrderEvents(orderID kernel.UUID) (*Subscription[event.OrderEvent], error) {
	return b.orders.Subscribe(event.ForOrder(orderID))
}

// OrderComments streams comments added to a single order.
func (b *Broadcaster) OrderComments(orderID kernel.UUID) (*Subscription[comment.Comment], error) {
	return b.comments.Subscribe(func(c comment.Comment) bool {
		return c.OrderID().IsEqual(orderID)
	})
}

func (b *Broadcaster) Stats() map[string]Stats {
	return map[string]Stats{
		b.orders.Name():   b.orders.Stats(),
		b.comments.Name(): b.comments.Stats(),
	}
}

func (b *Broadcaster) Close() {
	b.orders.Close()
	b.comments.Close()
}
