package queries

import (
	"context"

	"fastbite/internal/core/domain/model/order"
	"fastbite/internal/core/domain/services"
	"fastbite/internal/core/ports"
	"fastbite/internal/pkg/errs"
)

type GetOrderQueryHandler struct {
	orders ports.OrderRepository
	policy services.AccessPolicy
}

func NewGetOrderQueryHandler(orders ports.OrderRepository, policy services.AccessPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders, policy: policy}
}

// Handle returns *errs.ObjectNotFoundError for an unknown id and
// *errs.ForbiddenError when the caller may not see the order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if !h.policy.CanView(o, query.CallerID(), query.Role()) {
		return nil, errs.NewForbiddenError("view order " + query.OrderID().String())
	}

	return o, nil
}
