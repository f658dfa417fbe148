package broadcast

import (
	"context"
	"sync"
)

// Delivery is one event taken from a subscription. Missed counts the events
// that were discarded right before it because the subscriber fell behind.
type Delivery[T any] struct {
	Event  T
	Missed uint64
}

// Subscription is a consumer's handle on a Hub. It must be closed when the
// consumer goes away; Close is safe to call more than once.
type Subscription[T any] struct {
	id     uint64
	hub    *Hub[T]
	filter func(T) bool
	limit  int

	mu      sync.Mutex
	queue   []T
	head    int
	gap     uint64
	dropped uint64
	closed  bool

	notify chan struct{}
	done   chan struct{}
	once   sync.Once
}

func newSubscription[T any](hub *Hub[T], id uint64, filter func(T) bool, limit int) *Subscription[T] {
	return &Subscription[T]{
		id:     id,
		hub:    hub,
		filter: filter,
		limit:  limit,
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Next blocks until the next event arrives, the subscription is closed or
// ctx is done.
func (s *Subscription[T]) Next(ctx context.Context) (T, error) {
	d, err := s.Receive(ctx)
	return d.Event, err
}

// Receive is Next that also reports how many events were skipped.
func (s *Subscription[T]) Receive(ctx context.Context) (Delivery[T], error) {
	for {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return Delivery[T]{}, ErrSubscriptionClosed
		}
		if s.head < len(s.queue) {
			d := Delivery[T]{Event: s.pop(), Missed: s.gap}
			s.gap = 0
			s.mu.Unlock()
			return d, nil
		}
		s.mu.Unlock()

		select {
		case <-s.notify:
		case <-s.done:
		case <-ctx.Done():
			return Delivery[T]{}, ctx.Err()
		}
	}
}

// Close unregisters the subscription and releases its backlog.
func (s *Subscription[T]) Close() {
	s.hub.unsubscribe(s.id)
	s.terminate()
}

// Dropped is the total number of events discarded for this subscription.
func (s *Subscription[T]) Dropped() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

// Len is the number of events waiting to be received.
func (s *Subscription[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue) - s.head
}

// Done is closed once the subscription has ended.
func (s *Subscription[T]) Done() <-chan struct{} {
	return s.done
}

// push appends ev and reports whether an older event had to be dropped.
func (s *Subscription[T]) push(ev T) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}

	dropped := false
	if s.limit > 0 && len(s.queue)-s.head >= s.limit {
		var zero T
		s.queue[s.head] = zero
		s.head++
		s.gap++
		s.dropped++
		dropped = true
	}
	s.queue = append(s.queue, ev)
	s.compact()
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
	return dropped
}

func (s *Subscription[T]) pop() T {
	var zero T
	ev := s.queue[s.head]
	s.queue[s.head] = zero
	s.head++
	if s.head == len(s.queue) {
		s.queue = s.queue[:0]
		s.head = 0
	}
	return ev
}

// compact reclaims the consumed prefix once it dominates the slice.
func (s *Subscription[T]) compact() {
	if s.head > 0 && s.head >= len(s.queue)/2 {
		n := copy(s.queue, s.queue[s.head:])
		clear(s.queue[n:])
		s.queue = s.queue[:n]
		s.head = 0
	}
}

func (s *Subscription[T]) terminate() {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.queue = nil
		s.head = 0
		s.mu.Unlock()
		close(s.done)
	})
}
