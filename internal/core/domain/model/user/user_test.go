package user_test

import (
	"testing"

	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/model/user"
	"fastbite/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for name, want := range map[string]user.Role{
		"CUSTOMER": user.Customer,
		"KITCHEN":  user.Kitchen,
		"COURIER":  user.Courier,
	} {
		got, err := user.ParseRole(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}

	_, err := user.ParseRole("ADMIN")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Error(t, user.UnknownRole.Validate())
}

func TestRole_IsStaff(t *testing.T) {
	assert.False(t, user.Customer.IsStaff())
	assert.True(t, user.Kitchen.IsStaff())
	assert.True(t, user.Courier.IsStaff())
	assert.False(t, user.UnknownRole.IsStaff())
}

func TestNewUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		u, err := user.NewUser(id, " Ana ", "Ana@Example.com", "555", user.Customer)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, id.IsEqual(u.ID()))
		assert.Equal(t, "Ana", u.Name())
		assert.Equal(t, "ana@example.com", u.Email())
		assert.Equal(t, user.Customer, u.Role())
	})

	t.Run("invalid", func(t *testing.T) {
		u, err := user.NewUser(kernel.UUID{}, "", "nope", "", user.UnknownRole)

		require.Error(t, err)
		assert.Nil(t, u)
		assert.True(t, errs.IsInvalidInput(err))
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "role")
	})
}
