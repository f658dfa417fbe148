// Package broadcast implements the in-process event fan-out used for live
// order tracking.
//
// A Hub is a multicast channel with an unbounded number of subscribers. Each
// Subscription has an independent FIFO backlog, so a slow consumer never
// delays the publisher or other consumers. With a buffer limit the oldest
// backlog entry is discarded when the limit is reached and the loss is
// reported through Delivery.Missed and Subscription.Dropped; with limit 0 the
// backlog grows as needed. Events are not replayed to late subscribers.
package broadcast
