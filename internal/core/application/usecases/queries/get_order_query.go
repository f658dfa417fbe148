package queries

import (
	"errors"

	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/model/user"
	"fastbite/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery reads one order on behalf of a caller. Customers may only
// read their own orders.
type GetOrderQuery struct {
	orderID  kernel.UUID
	callerID kernel.UUID
	role     user.Role

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID, callerID kernel.UUID, role user.Role) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), callerID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:  orderID,
		callerID: callerID,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderQuery) CallerID() kernel.UUID {
	return q.callerID
}

func (q GetOrderQuery) Role() user.Role {
	return q.role
}
