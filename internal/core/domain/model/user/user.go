package user

import (
	"errors"
	"strings"

	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/pkg/errs"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a record of the identity store. Orders and comments copy the
// fields they need at creation time.
type User struct {
	id    kernel.UUID
	name  string
	email string
	phone string
	role  Role

	isConstructed bool
}

func NewUser(id kernel.UUID, name, email, phone string, role Role) (*User, error) {
	u := &User{
		phone:         strings.TrimSpace(phone),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		role.Validate(),
	); err != nil {
		return nil, err
	}
	u.role = role

	return u, nil
}

// RestoreUser rebuilds a user from storage.
func RestoreUser(id kernel.UUID, name, email, phone string, role Role) *User {
	return &User{id: id, name: name, email: email, phone: phone, role: role, isConstructed: true}
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID { return u.id }
func (u *User) Name() string { return u.name }
func (u *User) Email() string { return u.email }
func (u *User) Phone() string { return u.phone }
func (u *User) Role() Role { return u.role }

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = strings.ToLower(email)
	return nil
}
