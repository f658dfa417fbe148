package services

import (
	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/model/order"
	"fastbite/internal/core/domain/model/user"
)

type transitionKey struct {
	role    user.Role
	current order.Status
}

// allowedTransitions is the complete whitelist. Anything not listed is denied.
var allowedTransitions = map[transitionKey]order.Status{
	{user.Kitchen, order.Received}:       order.Preparing,
	{user.Kitchen, order.Preparing}:      order.Ready,
	{user.Courier, order.Ready}:          order.OutForDelivery,
	{user.Courier, order.OutForDelivery}: order.Delivered,
}

// AccessPolicy decides which role may move an order between stages and who
// may observe an order. It holds no state.
type AccessPolicy struct{}

func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanTransition reports whether role may move an order from current to requested.
func (AccessPolicy) CanTransition(current, requested order.Status, role user.Role) bool {
	next, ok := allowedTransitions[transitionKey{role: role, current: current}]
	return ok && next == requested
}

// CanView reports whether the caller may read the order, its comments and its streams.
// Customers see only their own orders; kitchen and couriers see every order.
func (AccessPolicy) CanView(o *order.Order, callerID kernel.UUID, role user.Role) bool {
	if o.Validate() != nil {
		return false
	}
	switch role {
	case user.Customer:
		return o.CustomerID().IsEqual(callerID)
	case user.Kitchen, user.Courier:
		return true
	default:
		return false
	}
}
