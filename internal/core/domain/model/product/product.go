// Package product models catalog entries. The catalog itself is managed
// elsewhere; orders read name, price and availability when they are placed.
package product

import (
	"errors"
	"strings"

	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

type Product struct {
	id          kernel.UUID
	name        string
	description string
	category    string
	price       decimal.Decimal
	available   bool

	isConstructed bool
}

func NewProduct(id kernel.UUID, name, description, category string, price decimal.Decimal, available bool) (*Product, error) {
	p := &Product{
		description:   strings.TrimSpace(description),
		category:      strings.TrimSpace(category),
		available:     available,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func RestoreProduct(id kernel.UUID, name, description, category string, price decimal.Decimal, available bool) *Product {
	return &Product{
		id:            id,
		name:          name,
		description:   description,
		category:      category,
		price:         price,
		available:     available,
		isConstructed: true,
	}
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID { return p.id }
func (p *Product) Name() string { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) Category() string { return p.category }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) IsAvailable() bool { return p.available }

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsOutOfRangeError("price", price.String(), "0.01", "unbounded")
	}
	p.price = price
	return nil
}
