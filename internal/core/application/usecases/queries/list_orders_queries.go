package queries

import (
	"errors"

	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/model/order"
	"fastbite/internal/pkg/guard"
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
	ErrGetKitchenOrdersQueryIsNotConstructed = errors.New(
		"GetKitchenOrdersQuery must be created via NewGetKitchenOrdersQuery constructor",
	)
	ErrGetDeliveryOrdersQueryIsNotConstructed = errors.New(
		"GetDeliveryOrdersQuery must be created via NewGetDeliveryOrdersQuery constructor",
	)
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// KitchenStages and DeliveryStages are the order stages each staff board shows.
var (
	KitchenStages  = []order.Status{order.Received, order.Preparing, order.Ready}
	DeliveryStages = []order.Status{order.Ready, order.OutForDelivery}
)

// GetCustomerOrdersQuery lists a customer's orders, newest first.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}
	return GetCustomerOrdersQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetKitchenOrdersQuery lists orders the kitchen still has to act on, oldest first.
type GetKitchenOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetKitchenOrdersQuery() GetKitchenOrdersQuery {
	return GetKitchenOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetKitchenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenOrdersQueryIsNotConstructed)
}

// GetDeliveryOrdersQuery lists orders waiting for or on their way with a courier, oldest first.
type GetDeliveryOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDeliveryOrdersQuery() GetDeliveryOrdersQuery {
	return GetDeliveryOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDeliveryOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryOrdersQueryIsNotConstructed)
}

// GetAllOrdersQuery lists every order, newest first.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}
