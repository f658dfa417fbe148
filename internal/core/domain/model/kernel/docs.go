// Package kernel holds the primitives shared by every aggregate of the order
// tracking domain.
//
// The package includes:
//   - UUID: the value object that identifies orders, users, products and comments
//   - Clock: the source of createdAt, updatedAt and event timestamps, with a
//     SystemClock for production and a FixedClock for tests
//
// UUID values are immutable and comparable. Both clocks are safe for
// concurrent use.
package kernel
