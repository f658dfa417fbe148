package commands_test

import (
	"context"
	"sync"

	"fastbite/internal/core/application/usecases/commands"
	"fastbite/internal/core/domain/model/comment"
	"fastbite/internal/core/domain/model/event"
	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/model/order"
	"fastbite/internal/core/domain/model/product"
	"fastbite/internal/core/domain/model/user"
	"fastbite/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListByStatuses(ctx context.Context, statuses ...order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, statuses)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) ListByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) ListAvailable(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]*product.Product)
	return products, args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockCommentRepository struct{ mock.Mock }

func (m *MockCommentRepository) Add(ctx context.Context, c comment.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCommentRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]comment.Comment, error) {
	args := m.Called(ctx, orderID)
	comments, _ := args.Get(0).([]comment.Comment)
	return comments, args.Error(1)
}

// MockUoW satisfies every unit-of-work shape the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

func (m *MockUoW) CommentRepository() ports.CommentRepository {
	return m.Called().Get(0).(ports.CommentRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockPlaceOrderUoWFactory struct{ mock.Mock }

func (m *MockPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return m.Called().Get(0).(commands.PlaceOrderUoW)
}

type MockCommentUoWFactory struct{ mock.Mock }

func (m *MockCommentUoWFactory) Create() commands.CommentUoW {
	return m.Called().Get(0).(commands.CommentUoW)
}

// recordingPublisher keeps everything handed to it, in order.
type recordingPublisher struct {
	mu       sync.Mutex
	events   []event.OrderEvent
	comments []comment.Comment
}

func (p *recordingPublisher) PublishOrderEvent(ev event.OrderEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func (p *recordingPublisher) PublishComment(c comment.Comment) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.comments = append(p.comments, c)
}

func (p *recordingPublisher) Events() []event.OrderEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]event.OrderEvent(nil), p.events...)
}

func (p *recordingPublisher) Comments() []comment.Comment {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]comment.Comment(nil), p.comments...)
}
