package commands_test

import (
	"log/slog"
	"testing"

	"fastbite/internal/core/application/usecases/commands"
	"fastbite/internal/core/domain/model/event"
	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/model/order"
	"fastbite/internal/core/domain/model/user"
	"fastbite/internal/core/domain/services"
	"fastbite/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Pizza Hawaiana", decimal.RequireFromString("13.99"), 1)
	require.NoError(t, err)
	return order.RestoreOrder(
		kernel.NewUUID(),
		order.Customer{ID: kernel.NewUUID(), Name: "Ana"},
		"Calle 1",
		"",
		[]order.Item{item},
		item.Subtotal(),
		status,
		nil,
		now,
		now,
		3,
	)
}

// reloaded simulates reading the same row again from storage.
func reloaded(o *order.Order) *order.Order {
	return order.RestoreOrder(o.ID(), o.Customer(), o.DeliveryAddress(), o.Notes(), o.Items(),
		o.Total(), o.Status(), o.Courier(), o.CreatedAt(), o.UpdatedAt(), o.Version())
}

func newStatusHandler(factory *MockOrderUoWFactory, publisher *recordingPublisher) commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(
		factory, publisher, services.NewAccessPolicy(), kernel.NewFixedClock(now), slog.Default(),
	)
}

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.UUID{}, order.Unknown, kernel.UUID{}, user.Kitchen)
	require.Error(t, err)
	assert.True(t, errs.IsInvalidInput(err))

	cmd, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Ready, kernel.NewUUID(), user.UnknownRole)
	require.NoError(t, err)
	assert.Equal(t, user.UnknownRole, cmd.Role())
}

func TestUpdateOrderStatusCommandHandler_Handle_KitchenStartsPreparing(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.Received)
	kitchenID := kernel.NewUUID()

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	publisher := &recordingPublisher{}

	factory.On("Create").Return(uow).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), order.Preparing, kitchenID, user.Kitchen)
	require.NoError(t, err)

	h := newStatusHandler(factory, publisher)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, updated.Status())
	assert.Equal(t, 4, updated.Version())
	assert.Nil(t, updated.Courier())

	events := publisher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, event.StatusChanged, events[0].Type)
	assert.Equal(t, order.Preparing, events[0].Status)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_CourierClaimsOrder(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.Ready)
	courierID := kernel.NewUUID()

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	repo.On("Update", ctx, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), order.OutForDelivery, courierID, user.Courier)
	require.NoError(t, err)

	h := newStatusHandler(factory, &recordingPublisher{})
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, updated.Courier())
	assert.True(t, courierID.IsEqual(*updated.Courier()))
}

func TestUpdateOrderStatusCommandHandler_Handle_ForbiddenLeavesOrderUntouched(t *testing.T) {
	tests := []struct {
		name string
		from order.Status
		to   order.Status
		role user.Role
	}{
		{"customer cannot advance", order.Received, order.Preparing, user.Customer},
		{"kitchen cannot skip", order.Received, order.Ready, user.Kitchen},
		{"kitchen cannot dispatch", order.Ready, order.OutForDelivery, user.Kitchen},
		{"courier cannot cook", order.Received, order.Preparing, user.Courier},
		{"no backward moves", order.Ready, order.Preparing, user.Kitchen},
		{"no repeats", order.Preparing, order.Preparing, user.Kitchen},
		{"unknown role", order.Received, order.Preparing, user.UnknownRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			o := storedOrder(t, tt.from)

			repo := new(MockOrderRepository)
			uow := new(MockUoW)
			factory := new(MockOrderUoWFactory)
			publisher := &recordingPublisher{}
			factory.On("Create").Return(uow).Once()
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(repo).Once()
			repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
			uow.On("Rollback", ctx).Return(nil).Once()

			cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), tt.to, kernel.NewUUID(), tt.role)
			require.NoError(t, err)

			h := newStatusHandler(factory, publisher)
			_, err = h.Handle(ctx, cmd)

			var forbidden *errs.ForbiddenError
			require.ErrorAs(t, err, &forbidden)
			assert.Equal(t, tt.from.String(), forbidden.From)
			assert.Equal(t, tt.to.String(), forbidden.To)

			assert.Equal(t, tt.from, o.Status())
			assert.Equal(t, 3, o.Version())
			assert.Empty(t, publisher.Events())
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestUpdateOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewUpdateOrderStatusCommand(id, order.Preparing, kernel.NewUUID(), user.Kitchen)
	require.NoError(t, err)

	h := newStatusHandler(factory, &recordingPublisher{})
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateOrderStatusCommandHandler_Handle_RetriesOnceOnConflict(t *testing.T) {
	ctx := t.Context()
	stale := storedOrder(t, order.Received)
	fresh := order.RestoreOrder(stale.ID(), stale.Customer(), stale.DeliveryAddress(), "", stale.Items(),
		stale.Total(), order.Received, nil, now, now, 5)

	repo := new(MockOrderRepository)
	first := new(MockUoW)
	second := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	publisher := &recordingPublisher{}

	factory.On("Create").Return(first).Once()
	factory.On("Create").Return(second).Once()

	first.On("Begin", ctx).Return(nil).Once()
	first.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, stale.ID()).Return(stale, nil).Once()
	repo.On("Update", ctx, stale).Return(errs.NewConflictError("order", stale.ID().String())).Once()
	first.On("Rollback", ctx).Return(nil).Once()

	second.On("Begin", ctx).Return(nil).Once()
	second.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, stale.ID()).Return(fresh, nil).Once()
	repo.On("Update", ctx, fresh).Return(nil).Once()
	second.On("Commit", ctx).Return(nil).Once()
	second.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewUpdateOrderStatusCommand(stale.ID(), order.Preparing, kernel.NewUUID(), user.Kitchen)
	require.NoError(t, err)

	h := newStatusHandler(factory, publisher)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, fresh, updated)
	assert.Equal(t, 6, updated.Version())
	assert.Len(t, publisher.Events(), 1)
	first.AssertNotCalled(t, "Commit", mock.Anything)
	repo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_SecondConflictIsReported(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, order.Preparing)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	publisher := &recordingPublisher{}

	factory.On("Create").Return(uow).Twice()
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("OrderRepository").Return(repo).Twice()
	repo.On("Get", ctx, o.ID()).Return(reloaded(o), nil).Once()
	repo.On("Get", ctx, o.ID()).Return(reloaded(o), nil).Once()
	repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).
		Return(errs.NewConflictError("order", o.ID().String())).Twice()
	uow.On("Rollback", ctx).Return(nil).Twice()

	cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), order.Ready, kernel.NewUUID(), user.Kitchen)
	require.NoError(t, err)

	h := newStatusHandler(factory, publisher)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Empty(t, publisher.Events())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
