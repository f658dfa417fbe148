package queries

import (
	"context"
	"errors"

	"fastbite/internal/core/domain/model/product"
	"fastbite/internal/core/ports"
	"fastbite/internal/pkg/guard"
)

var (
	ErrListAvailableProductsQueryIsNotConstructed = errors.New(
		"ListAvailableProductsQuery must be created via NewListAvailableProductsQuery constructor",
	)
)

// ListAvailableProductsQuery returns the menu a customer can order from.
type ListAvailableProductsQuery struct {
	guard guard.ConstructorGuard
}

func NewListAvailableProductsQuery() ListAvailableProductsQuery {
	return ListAvailableProductsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListAvailableProductsQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableProductsQueryIsNotConstructed)
}

type ListAvailableProductsQueryHandler struct {
	products ports.ProductRepository
}

func NewListAvailableProductsQueryHandler(products ports.ProductRepository) ListAvailableProductsQueryHandler {
	return ListAvailableProductsQueryHandler{products: products}
}

func (h ListAvailableProductsQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableProductsQuery,
) ([]*product.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.products.ListAvailable(ctx)
}
