//go:build unit

package user_test

import (
	"testing"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	for _, raw := range []string{"customer", "staff", "admin"} {
		role, err := user.NewRole(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, role.String())
	}

	_, err := user.NewRole("viewer")
	require.Error(t, err)
	assert.True(t, errs.Is(err, user.ErrInvalidRole))
}

func TestRole_AtLeast(t *testing.T) {
	testCases := []struct {
		role, min user.Role
		want      bool
	}{
		{user.RoleCustomer, user.RoleCustomer, true},
		{user.RoleCustomer, user.RoleStaff, false},
		{user.RoleStaff, user.RoleStaff, true},
		{user.RoleAdmin, user.RoleStaff, true},
		{user.RoleStaff, user.RoleAdmin, false},
		{user.Role("root"), user.RoleCustomer, false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.role.AtLeast(tc.min), "%s >= %s", tc.role, tc.min)
	}
}

func TestPrincipal_IsAdmin(t *testing.T) {
	assert.True(t, user.Principal{Role: user.RoleAdmin}.IsAdmin())
	assert.False(t, user.Principal{Role: user.RoleStaff}.IsAdmin())
}
