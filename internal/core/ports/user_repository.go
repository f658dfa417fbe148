package ports

import (
	"context"

	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/model/user"
)

// UserRepository is the read side of the identity store. Add exists for seeding.
type UserRepository interface {
	Add(ctx context.Context, u *user.User) error
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
