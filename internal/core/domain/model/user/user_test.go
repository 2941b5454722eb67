package user_test

import (
	"testing"

	"traveldesk/internal/core/domain/model/kernel"
	"traveldesk/internal/core/domain/model/user"
	"traveldesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("should create user with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		u, err := user.NewUser(id, "Alice Martins", "alice@example.com", false)

		require.NoError(t, err)
		assert.True(t, u.ID().IsEqual(id))
		assert.Equal(t, "Alice Martins", u.Name())
		assert.Equal(t, "alice@example.com", u.Email())
		assert.False(t, u.IsAdmin())
		require.NoError(t, u.Validate())
	})

	t.Run("should create admin user", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "Root Admin", "admin@example.com", true)

		require.NoError(t, err)
		assert.True(t, u.IsAdmin())
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		u, err := user.NewUser(kernel.UUID{}, "Alice Martins", "alice@example.com", false)

		require.Error(t, err)
		require.Error(t, u.Validate())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "", "alice@example.com", false)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "user name")
	})

	t.Run("should fail with empty email", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "Alice Martins", "", false)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "user email")
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		_, err := user.NewUser(kernel.UUID{}, "", "", false)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "user name")
		assert.Contains(t, err.Error(), "user email")
	})
}

func TestUser_Validate(t *testing.T) {
	t.Run("should reject zero value user", func(t *testing.T) {
		var u user.User

		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})
}
