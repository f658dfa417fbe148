package ports

import (
	"context"

	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/model/product"
)

type ProductRepository interface {
	Add(ctx context.Context, p *product.Product) error
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
	ListAvailable(ctx context.Context) ([]*product.Product, error)
	Count(ctx context.Context) (int64, error)
}
