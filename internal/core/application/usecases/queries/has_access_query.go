package queries

import (
	"context"
	"errors"

	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/model/user"
	"fastbite/internal/core/domain/services"
	"fastbite/internal/core/ports"
	"fastbite/internal/pkg/errs"
	"fastbite/internal/pkg/guard"
)

var (
	ErrHasAccessQueryIsNotConstructed = errors.New(
		"HasAccessQuery must be created via NewHasAccessQuery constructor",
	)
)

// HasAccessQuery asks whether a caller may observe an order. Streams use it
// before subscribing.
type HasAccessQuery struct {
	orderID  kernel.UUID
	callerID kernel.UUID
	role     user.Role

	guard guard.ConstructorGuard
}

func NewHasAccessQuery(orderID, callerID kernel.UUID, role user.Role) (HasAccessQuery, error) {
	if err := errors.Join(orderID.Validate(), callerID.Validate()); err != nil {
		return HasAccessQuery{}, err
	}

	return HasAccessQuery{
		orderID:  orderID,
		callerID: callerID,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q HasAccessQuery) Validate() error {
	return q.guard.Validate(ErrHasAccessQueryIsNotConstructed)
}

type HasAccessQueryHandler struct {
	orders ports.OrderRepository
	policy services.AccessPolicy
}

func NewHasAccessQueryHandler(orders ports.OrderRepository, policy services.AccessPolicy) HasAccessQueryHandler {
	return HasAccessQueryHandler{orders: orders, policy: policy}
}

// Handle answers false, without an error, when the order does not exist.
func (h HasAccessQueryHandler) Handle(ctx context.Context, query HasAccessQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	o, err := h.orders.Get(ctx, query.orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return h.policy.CanView(o, query.callerID, query.role), nil
}
