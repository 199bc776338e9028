package auth_test

import (
	"testing"

	"fireforce/internal/auth"
	"fireforce/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAdmin(t *testing.T) {
	user, err := auth.New().Login("admin@fireforce.com", "admin123", types.RoleAdmin)
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "admin@fireforce.com", user.Email)
	assert.Equal(t, "Fire Chief Admin", user.Name)
	assert.Equal(t, types.RoleAdmin, user.Role)
	assert.True(t, user.IsAdmin())
	assert.False(t, user.LoginTime.IsZero())
}

func TestLoginUser(t *testing.T) {
	user, err := auth.New().Login("user@fireforce.com", "user123", types.RoleUser)
	require.NoError(t, err)

	assert.Equal(t, "Station User", user.Name)
	assert.Equal(t, types.RoleUser, user.Role)
	assert.False(t, user.IsAdmin())
}

func TestLoginNormalizesEmail(t *testing.T) {
	user, err := auth.New().Login("  Admin@FireForce.COM ", "admin123", types.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "admin@fireforce.com", user.Email)
}

func TestLoginRejects(t *testing.T) {
	a := auth.New()

	tests := []struct {
		name     string
		email    string
		password string
		role     types.UserRole
	}{
		{"wrong password", "admin@fireforce.com", "letmein", types.RoleAdmin},
		{"wrong role for email", "admin@fireforce.com", "admin123", types.RoleUser},
		{"unknown email", "nobody@fireforce.com", "admin123", types.RoleAdmin},
		{"invalid role", "admin@fireforce.com", "admin123", types.UserRole("superadmin")},
		{"empty password", "user@fireforce.com", "", types.RoleUser},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			user, err := a.Login(tc.email, tc.password, tc.role)
			require.ErrorIs(t, err, types.ErrInvalidCredentials)
			assert.Nil(t, user)
		})
	}
}

func TestLoginIssuesDistinctSessionIDs(t *testing.T) {
	a := auth.New()

	first, err := a.Login("user@fireforce.com", "user123", types.RoleUser)
	require.NoError(t, err)
	second, err := a.Login("user@fireforce.com", "user123", types.RoleUser)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}
