package http_test

import (
	"context"
	"slices"
	"sync"

	"fastbite/internal/core/application/usecases/commands"
	"fastbite/internal/core/domain/model/comment"
	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/model/order"
	"fastbite/internal/core/domain/model/product"
	"fastbite/internal/core/domain/model/user"
	"fastbite/internal/core/ports"
	"fastbite/internal/pkg/errs"
)

// memStore is an in-memory stand-in for the database. Transactions are not
// isolated; Begin/Commit/Rollback only have to be callable.
type memStore struct {
	mu       sync.Mutex
	orders   map[kernel.UUID]*order.Order
	users    map[kernel.UUID]*user.User
	products map[kernel.UUID]*product.Product
	comments []comment.Comment
}

func newMemStore() *memStore {
	return &memStore{
		orders:   map[kernel.UUID]*order.Order{},
		users:    map[kernel.UUID]*user.User{},
		products: map[kernel.UUID]*product.Product{},
	}
}

func copyOrder(o *order.Order) *order.Order {
	return order.RestoreOrder(o.ID(), o.Customer(), o.DeliveryAddress(), o.Notes(), o.Items(),
		o.Total(), o.Status(), o.Courier(), o.CreatedAt(), o.UpdatedAt(), o.Version())
}

func (s *memStore) Begin(context.Context) error { return nil }
func (s *memStore) Commit(context.Context) error { return nil }
func (s *memStore) Rollback(context.Context) error { return nil }

func (s *memStore) OrderRepository() ports.OrderRepository { return memOrders{s} }
func (s *memStore) UserRepository() ports.UserRepository { return memUsers{s} }
func (s *memStore) ProductRepository() ports.ProductRepository { return memProducts{s} }
func (s *memStore) CommentRepository() ports.CommentRepository { return memComments{s} }

type orderUoWs struct{ s *memStore }

func (f orderUoWs) Create() commands.OrderUoW { return f.s }

type placeOrderUoWs struct{ s *memStore }

func (f placeOrderUoWs) Create() commands.PlaceOrderUoW { return f.s }

type commentUoWs struct{ s *memStore }

func (f commentUoWs) Create() commands.CommentUoW { return f.s }

type memOrders struct{ s *memStore }

func (r memOrders) Add(_ context.Context, o *order.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.orders[o.ID()] = copyOrder(o)
	return nil
}

func (r memOrders) Update(_ context.Context, o *order.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.orders[o.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("order", o.ID().String())
	}
	if stored.Version() != o.Version()-1 {
		return errs.NewConflictError("order", o.ID().String())
	}
	r.s.orders[o.ID()] = copyOrder(o)
	return nil
}

func (r memOrders) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return copyOrder(o), nil
}

func (r memOrders) ListByStatuses(_ context.Context, statuses ...order.Status) ([]*order.Order, error) {
	return r.list(func(o *order.Order) bool { return slices.Contains(statuses, o.Status()) }), nil
}

func (r memOrders) ListByCustomer(_ context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	return r.list(func(o *order.Order) bool { return o.CustomerID().IsEqual(customerID) }), nil
}

func (r memOrders) ListAll(context.Context) ([]*order.Order, error) {
	return r.list(func(*order.Order) bool { return true }), nil
}

func (r memOrders) list(keep func(*order.Order) bool) []*order.Order {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*order.Order
	for _, o := range r.s.orders {
		if keep(o) {
			out = append(out, copyOrder(o))
		}
	}
	slices.SortStableFunc(out, func(a, b *order.Order) int {
		return a.CreatedAt().Compare(b.CreatedAt())
	})
	return out
}

type memUsers struct{ s *memStore }

func (r memUsers) Add(_ context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[u.ID()] = u
	return nil
}

func (r memUsers) Get(_ context.Context, id kernel.UUID) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("user", id.String())
	}
	return u, nil
}

type memProducts struct{ s *memStore }

func (r memProducts) Add(_ context.Context, p *product.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID()] = p
	return nil
}

func (r memProducts) Get(_ context.Context, id kernel.UUID) (*product.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("product", id.String())
	}
	return p, nil
}

func (r memProducts) ListAvailable(context.Context) ([]*product.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*product.Product
	for _, p := range r.s.products {
		if p.IsAvailable() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r memProducts) Count(context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.products)), nil
}

type memComments struct{ s *memStore }

func (r memComments) Add(_ context.Context, c comment.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.comments = append(r.s.comments, c)
	return nil
}

func (r memComments) ListByOrder(_ context.Context, orderID kernel.UUID) ([]comment.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []comment.Comment
	for _, c := range r.s.comments {
		if c.OrderID().IsEqual(orderID) {
			out = append(out, c)
		}
	}
	return out, nil
}
