package cmd

import (
	"context"
	"errors"
	"log/slog"

	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/model/product"
	"fastbite/internal/core/domain/model/user"
	"fastbite/internal/core/ports"
	"fastbite/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type catalogEntry struct {
	name, description, category, price string
}

var defaultCatalog = []catalogEntry{
	{"Hamburguesa Clásica", "Carne de res, lechuga, tomate, cebolla y salsa especial", "Hamburguesas", "8.99"},
	{"Hamburguesa Doble", "Doble carne, doble queso, tocino y salsa BBQ", "Hamburguesas", "12.99"},
	{"Pizza Pepperoni", "Pizza mediana con pepperoni y queso mozzarella", "Pizzas", "14.99"},
	{"Pizza Hawaiana", "Pizza mediana con jamón y piña", "Pizzas", "13.99"},
	{"Papas Fritas", "Porción grande de papas fritas crujientes", "Acompañamientos", "4.99"},
	{"Aros de Cebolla", "Aros de cebolla empanizados", "Acompañamientos", "5.99"},
	{"Refresco", "Refresco de cola 500ml", "Bebidas", "2.49"},
	{"Agua Mineral", "Agua mineral 500ml", "Bebidas", "1.99"},
	{"Hot Dog", "Hot dog con salchicha premium y toppings", "Hot Dogs", "6.99"},
	{"Tacos (3 pzas)", "3 tacos de carne asada con cilantro y cebolla", "Tacos", "9.99"},
}

type demoIdentity struct {
	id, name, email string
	role            user.Role
}

// Fixed ids keep issued demo tokens valid across restarts.
var demoIdentities = []demoIdentity{
	{"7d1f4a52-6c1e-4f0b-9a57-1b1c0e5d9a01", "Ana Cliente", "customer@fastbite.local", user.Customer},
	{"7d1f4a52-6c1e-4f0b-9a57-1b1c0e5d9a02", "Cocina Central", "kitchen@fastbite.local", user.Kitchen},
	{"7d1f4a52-6c1e-4f0b-9a57-1b1c0e5d9a03", "Pedro Repartidor", "courier@fastbite.local", user.Courier},
}

type TokenIssuer interface {
	Issue(u *user.User) (string, error)
}

// SeedCatalog fills the product catalog when it is empty. It returns the
// number of products created.
func SeedCatalog(ctx context.Context, uow ports.UnitOfWork, logger *slog.Logger) (int, error) {
	count, err := uow.ProductRepository().Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	for _, entry := range defaultCatalog {
		p, err := product.NewProduct(kernel.NewUUID(), entry.name, entry.description, entry.category,
			decimal.RequireFromString(entry.price), true)
		if err != nil {
			return 0, err
		}
		if err = uow.ProductRepository().Add(ctx, p); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	logger.InfoContext(ctx, "Product catalog seeded", "products", len(defaultCatalog))
	return len(defaultCatalog), nil
}

// SeedDemoUsers makes sure one identity per role exists and logs a bearer
// token for each of them.
func SeedDemoUsers(ctx context.Context, users ports.UserRepository, issuer TokenIssuer, logger *slog.Logger) error {
	for _, identity := range demoIdentities {
		id, err := kernel.UUIDFromString(identity.id)
		if err != nil {
			return err
		}

		u, err := users.Get(ctx, id)
		if errors.Is(err, errs.ErrObjectNotFound) {
			if u, err = user.NewUser(id, identity.name, identity.email, "", identity.role); err != nil {
				return err
			}
			err = users.Add(ctx, u)
		}
		if err != nil {
			return err
		}

		token, err := issuer.Issue(u)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "Demo identity ready",
			"role", u.Role().String(), "user_id", u.ID().String(), "token", token)
	}
	return nil
}
