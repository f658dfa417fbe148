package queries

import (
	"context"

	"fastbite/internal/core/domain/model/order"
	"fastbite/internal/core/ports"
)

type GetCustomerOrdersQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetCustomerOrdersQueryHandler(orders ports.OrderRepository) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{orders: orders}
}

func (h GetCustomerOrdersQueryHandler) Handle(ctx context.Context, query GetCustomerOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.orders.ListByCustomer(ctx, query.CustomerID())
}

type GetKitchenOrdersQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetKitchenOrdersQueryHandler(orders ports.OrderRepository) GetKitchenOrdersQueryHandler {
	return GetKitchenOrdersQueryHandler{orders: orders}
}

func (h GetKitchenOrdersQueryHandler) Handle(ctx context.Context, query GetKitchenOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.orders.ListByStatuses(ctx, KitchenStages...)
}

type GetDeliveryOrdersQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetDeliveryOrdersQueryHandler(orders ports.OrderRepository) GetDeliveryOrdersQueryHandler {
	return GetDeliveryOrdersQueryHandler{orders: orders}
}

func (h GetDeliveryOrdersQueryHandler) Handle(ctx context.Context, query GetDeliveryOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.orders.ListByStatuses(ctx, DeliveryStages...)
}

type GetAllOrdersQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetAllOrdersQueryHandler(orders ports.OrderRepository) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orders: orders}
}

func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.orders.ListAll(ctx)
}
