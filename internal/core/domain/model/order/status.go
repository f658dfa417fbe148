package order

import (
	"fmt"

	"fastbite/internal/pkg/errs"
)

// Status is a stage of the order lifecycle.
// The values are ordered and an order only ever moves one stage forward.
//
// Lifecycle:
//
//	Received ──> Preparing ──> Ready ──> OutForDelivery ──> Delivered
//	     (kitchen)     (kitchen)     (courier)          (courier)
//
// Delivered is terminal. Who may perform each move is decided by the
// access policy, not by Status itself.
//
// Status is a value object; its wire form is the upper-case name returned by
// String and accepted by ParseStatus.
type Status int

const (
	// Unknown is the zero value and never a valid stage.
	// It catches Status values that were never set.
	Unknown Status = iota

	// Received is the stage of a freshly placed order.
	// The kitchen has not started on it yet.
	Received

	// Preparing means the kitchen is cooking the order.
	Preparing

	// Ready means the order is packed and waiting for a courier.
	// Both the kitchen and the delivery board list it.
	Ready

	// OutForDelivery means a courier has picked the order up.
	// The courier who did so is recorded on the order.
	OutForDelivery

	// Delivered is the final stage. No further transitions are allowed.
	Delivered
)

var statusNames = map[Status]string{
	Received:       "RECEIVED",
	Preparing:      "PREPARING",
	Ready:          "READY",
	OutForDelivery: "OUT_FOR_DELIVERY",
	Delivered:      "DELIVERED",
}

// AllStatuses lists the valid stages in lifecycle order.
func AllStatuses() []Status {
	return []Status{Received, Preparing, Ready, OutForDelivery, Delivered}
}

// ParseStatus converts a wire name such as "OUT_FOR_DELIVERY" into a Status.
// Matching is exact and case-sensitive.
//
// Returns a ValueIsInvalidError for any other string, including "UNKNOWN",
// so request bodies can never name the zero value.
//
// Example:
//
//	target, err := order.ParseStatus(req.Status)
//	if err != nil {
//	    return badRequest(c, err.Error())
//	}
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the five lifecycle stages.
//
// Returns:
//   - nil if the status is valid
//   - a ValueIsInvalidError for Unknown and any out-of-range value
//
// Persistence adapters call it on values read back from the database.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of s, or "UNKNOWN" for an invalid value.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Less reports whether s comes before other in the lifecycle.
func (s Status) Less(other Status) bool {
	return s < other
}

// IsTerminal reports whether s is Delivered.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Next returns the stage that follows s.
// The boolean is false when s is terminal or invalid, in which case no
// transition exists.
//
// Example:
//
//	next, ok := order.Ready.Next() // OutForDelivery, true
//	_, ok = order.Delivered.Next() // false
func (s Status) Next() (Status, bool) {
	if s.Validate() != nil || s.IsTerminal() {
		return Unknown, false
	}
	return s + 1, true
}
