package product_test

import (
	"testing"

	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/model/product"
	"fastbite/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	p, err := product.NewProduct(kernel.NewUUID(), "Pizza Pepperoni", "Mozzarella y pepperoni", "PIZZA",
		decimal.RequireFromString("14.99"), true)

	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.Equal(t, "Pizza Pepperoni", p.Name())
	assert.Equal(t, "14.99", p.Price().StringFixed(2))
	assert.True(t, p.IsAvailable())
}

func TestNewProduct_Invalid(t *testing.T) {
	p, err := product.NewProduct(kernel.NewUUID(), "", "", "", decimal.Zero, false)

	require.Error(t, err)
	assert.Nil(t, p)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestProduct_ZeroValue(t *testing.T) {
	require.ErrorIs(t, (&product.Product{}).Validate(), product.ErrProductIsNotConstructed)
}
