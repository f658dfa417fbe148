package broadcast

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
)

var (
	ErrHubClosed          = errors.New("hub is closed")
	ErrSubscriptionClosed = errors.New("subscription is closed")
)

// DefaultBufferLimit is the per-subscription backlog used when no option is given.
const DefaultBufferLimit = 1024

type Option func(*options)

type options struct {
	name        string
	bufferLimit int
	logger      *slog.Logger
}

// WithBufferLimit caps each subscription's backlog. When a subscriber falls
// further behind, its oldest undelivered event is discarded and counted as a
// gap. A limit of 0 lets backlogs grow without bound.
func WithBufferLimit(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.bufferLimit = n
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// Stats is a point-in-time view of a hub.
type Stats struct {
	Subscribers int
	Buffered    int
	Published   uint64
	Dropped     uint64
}

// Hub fans every published event out to all current subscriptions whose
// filter accepts it.
//
// Publish never waits for subscribers: each subscription owns its own queue
// and is woken through a one-slot notify channel. Publications are
// serialized, so all subscriptions observe events in the same order. A
// subscription only receives events published after it was created.
type Hub[T any] struct {
	name   string
	limit  int
	logger *slog.Logger

	mu     sync.Mutex
	subs   map[uint64]*Subscription[T]
	nextID uint64
	closed bool

	published atomic.Uint64
	dropped   atomic.Uint64
}

func NewHub[T any](opts ...Option) *Hub[T] {
	o := options{
		name:        "events",
		bufferLimit: DefaultBufferLimit,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Hub[T]{
		name:   o.name,
		limit:  o.bufferLimit,
		logger: o.logger.With("component", "broadcast_hub", "hub", o.name),
		subs:   make(map[uint64]*Subscription[T]),
	}
}

// Subscribe registers a new subscription. A nil filter accepts every event.
func (h *Hub[T]) Subscribe(filter func(T) bool) (*Subscription[T], error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHubClosed
	}

	h.nextID++
	sub := newSubscription(h, h.nextID, filter, h.limit)
	h.subs[sub.id] = sub

	h.logger.Debug("subscription opened", "subscription_id", sub.id, "subscribers", len(h.subs))
	return sub, nil
}

// Publish enqueues ev on every matching subscription and returns. It never
// fails; after Close it is a no-op.
func (h *Hub[T]) Publish(ev T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.published.Add(1)

	for _, sub := range h.subs {
		if sub.filter != nil && !sub.filter(ev) {
			continue
		}
		if sub.push(ev) {
			h.dropped.Add(1)
		}
	}
}

// Close ends every subscription and rejects new ones.
func (h *Hub[T]) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	subs := h.subs
	h.subs = make(map[uint64]*Subscription[T])
	h.mu.Unlock()

	for _, sub := range subs {
		sub.terminate()
	}
	h.logger.Info("hub closed", "subscriptions_closed", len(subs))
}

func (h *Hub[T]) Stats() Stats {
	h.mu.Lock()
	subs := make([]*Subscription[T], 0, len(h.subs))
	for _, sub := range h.subs {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	buffered := 0
	for _, sub := range subs {
		buffered += sub.Len()
	}

	return Stats{
		Subscribers: len(subs),
		Buffered:    buffered,
		Published:   h.published.Load(),
		Dropped:     h.dropped.Load(),
	}
}

func (h *Hub[T]) Name() string {
	return h.name
}

func (h *Hub[T]) unsubscribe(id uint64) {
	h.mu.Lock()
	_, ok := h.subs[id]
	delete(h.subs, id)
	remaining := len(h.subs)
	h.mu.Unlock()

	if ok {
		h.logger.Debug("subscription closed", "subscription_id", id, "subscribers", remaining)
	}
}
