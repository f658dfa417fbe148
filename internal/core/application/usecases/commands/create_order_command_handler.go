package commands

import (
	"context"
	"fmt"

	"fastbite/internal/core/domain/model/event"
	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/model/order"
	"fastbite/internal/core/ports"
	"fastbite/internal/pkg/errs"
)

// CreateOrderCommandHandler places orders.
//
// Customer and every product are resolved inside one transaction: if any of
// them is missing nothing is stored. The Created event is published only
// after the transaction commits.
type CreateOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	publisher  ports.EventPublisher
	clock      kernel.Clock
}

func NewCreateOrderCommandHandler(
	uowFactory PlaceOrderUoWFactory,
	publisher ports.EventPublisher,
	clock kernel.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := uow.UserRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	products := uow.ProductRepository()
	items := make([]order.Item, 0, len(cmd.Items()))
	for _, line := range cmd.Items() {
		p, getErr := products.Get(ctx, line.ProductID)
		if getErr != nil {
			return nil, getErr
		}
		if !p.IsAvailable() {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"productId",
				fmt.Errorf("product %s is not available", p.ID()),
			)
		}

		item, itemErr := order.NewItem(p.ID(), p.Name(), p.Price(), line.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	placed, err := order.NewOrder(
		kernel.NewUUID(),
		order.Customer{ID: customer.ID(), Name: customer.Name(), Phone: customer.Phone()},
		cmd.DeliveryAddress(),
		cmd.Notes(),
		items,
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.PublishOrderEvent(event.OrderCreated(placed, h.clock.Now()))
	return placed, nil
}
