package queries

import (
	"context"
	"errors"

	"fastbite/internal/core/domain/model/comment"
	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/model/user"
	"fastbite/internal/core/domain/services"
	"fastbite/internal/core/ports"
	"fastbite/internal/pkg/errs"
	"fastbite/internal/pkg/guard"
)

var (
	ErrGetOrderCommentsQueryIsNotConstructed = errors.New(
		"GetOrderCommentsQuery must be created via NewGetOrderCommentsQuery constructor",
	)
)

type GetOrderCommentsQuery struct {
	orderID  kernel.UUID
	callerID kernel.UUID
	role     user.Role

	guard guard.ConstructorGuard
}

func NewGetOrderCommentsQuery(orderID, callerID kernel.UUID, role user.Role) (GetOrderCommentsQuery, error) {
	if err := errors.Join(orderID.Validate(), callerID.Validate()); err != nil {
		return GetOrderCommentsQuery{}, err
	}

	return GetOrderCommentsQuery{
		orderID:  orderID,
		callerID: callerID,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderCommentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderCommentsQueryIsNotConstructed)
}

// GetOrderCommentsQueryHandler returns an order's comments, oldest first, to
// callers allowed to view the order.
type GetOrderCommentsQueryHandler struct {
	orders   ports.OrderRepository
	comments ports.CommentRepository
	policy   services.AccessPolicy
}

func NewGetOrderCommentsQueryHandler(
	orders ports.OrderRepository,
	comments ports.CommentRepository,
	policy services.AccessPolicy,
) GetOrderCommentsQueryHandler {
	return GetOrderCommentsQueryHandler{orders: orders, comments: comments, policy: policy}
}

func (h GetOrderCommentsQueryHandler) Handle(ctx context.Context, query GetOrderCommentsQuery) ([]comment.Comment, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, query.orderID)
	if err != nil {
		return nil, err
	}

	if !h.policy.CanView(o, query.callerID, query.role) {
		return nil, errs.NewForbiddenError("read comments of order " + query.orderID.String())
	}

	return h.comments.ListByOrder(ctx, query.orderID)
}
