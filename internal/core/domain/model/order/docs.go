// Package order contains the Order aggregate: its items, its total and the
// forward-only status lifecycle RECEIVED → PREPARING → READY →
// OUT_FOR_DELIVERY → DELIVERED.
//
// The aggregate enforces structural rules only (one step forward at a time,
// total fixed at creation). Who may request a step is decided by the access
// policy in the services package.
package order
