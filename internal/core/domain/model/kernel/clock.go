package kernel

import (
	"sync"
	"time"
)

// Clock supplies the timestamps the domain records: order createdAt and
// updatedAt, comment createdAt and the time carried by every broadcast event.
//
// Handlers receive a Clock instead of calling time.Now so tests can pin time.
//
// Example:
//
//	now := h.clock.Now()
//	ev := event.OrderCreated(o, now)
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// SystemClock returns the production Clock.
// Its readings come from time.Now and are always in UTC.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock is a Clock that only moves when told to.
// It is safe for concurrent use.
//
// Example:
//
//	clock := kernel.NewFixedClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
//	placed := clock.Now()
//	clock.Advance(5 * time.Minute)
//	// clock.Now().Sub(placed) == 5 * time.Minute
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock returns a FixedClock reading now, converted to UTC.
func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now.UTC()}
}

func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d. A negative d moves it back.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
