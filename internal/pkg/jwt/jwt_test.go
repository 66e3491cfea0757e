//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour, "salon")
	p := user.Principal{ID: uuid.New(), Role: user.RoleAdmin}

	token, err := svc.GenerateToken(p)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, p.ID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestService_Rejects(t *testing.T) {
	p := user.Principal{ID: uuid.New(), Role: user.RoleCustomer}

	t.Run("expired", func(t *testing.T) {
		svc := jwt.NewService("test-secret", -time.Minute, "salon")
		token, err := svc.GenerateToken(p)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.True(t, errs.Is(err, jwt.ErrExpiredToken))
	})

	t.Run("other secret", func(t *testing.T) {
		token, err := jwt.NewService("a", time.Hour, "salon").GenerateToken(p)
		require.NoError(t, err)
		_, err = jwt.NewService("b", time.Hour, "salon").ValidateToken(token)
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})

	t.Run("other issuer", func(t *testing.T) {
		token, err := jwt.NewService("a", time.Hour, "elsewhere").GenerateToken(p)
		require.NoError(t, err)
		_, err = jwt.NewService("a", time.Hour, "salon").ValidateToken(token)
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwt.NewService("a", time.Hour, "").ValidateToken("not-a-token")
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})
}
