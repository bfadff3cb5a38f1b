package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/shared/authorization"
)

func TestNewUser(t *testing.T) {
	t.Run("normalizes email and name", func(t *testing.T) {
		u, err := NewUser("  Marco.Rossi@Example.COM ", "marco rossi", "$2a$10$hash")
		require.NoError(t, err)
		assert.Equal(t, "marco.rossi@example.com", u.Email())
		assert.Equal(t, "Marco Rossi", u.Name())
		assert.Equal(t, authorization.RoleUser, u.Role())
		assert.True(t, u.IsActive())
		assert.False(t, u.IsAdmin())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := NewUser("not-an-email", "Marco", "$2a$10$hash")
		assert.Error(t, err)
		_, err = NewUser("a@b.it", "   ", "$2a$10$hash")
		assert.Error(t, err)
		_, err = NewUser("a@b.it", "Marco", "")
		assert.Error(t, err)
	})
}

func TestUserRole(t *testing.T) {
	u, err := NewUser("a@b.it", "Marco", "$2a$10$hash")
	require.NoError(t, err)

	require.NoError(t, u.ChangeRole(authorization.RoleAdmin))
	assert.True(t, u.IsAdmin())

	assert.Error(t, u.ChangeRole(authorization.UserRole("owner")))
	assert.Equal(t, authorization.RoleAdmin, u.Role())
}

func TestUserLifecycle(t *testing.T) {
	u, err := NewUser("a@b.it", "Marco", "$2a$10$hash")
	require.NoError(t, err)

	assert.Nil(t, u.LastLoginAt())
	u.RecordLogin()
	assert.NotNil(t, u.LastLoginAt())

	u.Deactivate()
	assert.False(t, u.IsActive())
	u.Activate()
	assert.True(t, u.IsActive())
}
