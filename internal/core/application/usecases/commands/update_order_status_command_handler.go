package commands

import (
	"context"
	"errors"
	"log/slog"

	"fastbite/internal/core/domain/model/event"
	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/model/order"
	"fastbite/internal/core/domain/model/user"
	"fastbite/internal/core/domain/services"
	"fastbite/internal/core/ports"
	"fastbite/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies a status change requested by a
// kitchen or courier user.
//
// Authorization happens before the aggregate is touched. The write is
// guarded by the order version; if a concurrent change wins the race the
// whole attempt (load, authorize, change) is repeated once, and a second
// conflict is returned to the caller.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	policy     services.AccessPolicy
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	policy services.AccessPolicy,
	clock kernel.Clock,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		policy:     policy,
		clock:      clock,
		logger:     logger.With("component", "update_order_status"),
	}
}

func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	updated, err := h.attempt(ctx, cmd)
	if errors.Is(err, errs.ErrConflict) {
		h.logger.InfoContext(ctx, "retrying status change after concurrent update",
			"order_id", cmd.OrderID().String(), "status", cmd.Status().String())
		updated, err = h.attempt(ctx, cmd)
	}
	if err != nil {
		return nil, err
	}

	h.publisher.PublishOrderEvent(event.OrderStatusChanged(updated, h.clock.Now()))
	return updated, nil
}

func (h *UpdateOrderStatusCommandHandler) attempt(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	current, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !h.policy.CanTransition(current.Status(), cmd.Status(), cmd.Role()) {
		return nil, errs.NewForbiddenTransitionError(
			"change status as "+cmd.Role().String(),
			current.Status().String(),
			cmd.Status().String(),
		)
	}

	var courierID *kernel.UUID
	if cmd.Role() == user.Courier {
		id := cmd.CallerID()
		courierID = &id
	}

	if err = current.ChangeStatus(cmd.Status(), courierID, h.clock.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, current); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return current, nil
}
