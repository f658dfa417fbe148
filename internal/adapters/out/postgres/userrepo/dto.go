// Package userrepo persists the identity records used to resolve callers.
package userrepo

import (
	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/model/user"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Email string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone string    `gorm:"type:varchar(64)"`
	Role  string    `gorm:"type:varchar(32);not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:    u.ID().Bytes(),
		Name:  u.Name(),
		Email: u.Email(),
		Phone: u.Phone(),
		Role:  u.Role().String(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, dto.Email, dto.Phone, role), nil
}
