package user

import (
	"fmt"

	"fastbite/internal/pkg/errs"
)

// Role is the capacity in which an authenticated caller acts.
type Role int

const (
	UnknownRole Role = iota
	Customer
	Kitchen
	Courier
)

var roleNames = map[Role]string{
	Customer: "CUSTOMER",
	Kitchen:  "KITCHEN",
	Courier:  "COURIER",
}

func ParseRole(s string) (Role, error) {
	for role, name := range roleNames {
		if name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsStaff reports whether the role works on orders of every customer.
func (r Role) IsStaff() bool {
	return r == Kitchen || r == Courier
}
