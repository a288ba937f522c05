package gate_test

import (
	"context"
	"testing"

	gate "github.com/shelfside/go-auth-gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserContext(t *testing.T) {
	ctx := context.Background()

	_, ok := gate.FromContext(ctx)
	assert.False(t, ok)

	user := &gate.User{Email: "reader@example.com"}
	ctx = gate.WithContext(ctx, user)

	got, ok := gate.FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, user, got)
}

func TestClaimsContext(t *testing.T) {
	ctx := context.Background()

	_, ok := gate.GetClaims(ctx)
	assert.False(t, ok)

	claims := &gate.JWTClaims{UID: "user-id", UserRole: "user"}
	ctx = gate.WithClaimsContext(ctx, claims)

	got, ok := gate.GetClaims(ctx)
	require.True(t, ok)
	assert.Equal(t, "user-id", got.UserID())
}

func TestGetRouterClaims(t *testing.T) {
	t.Run("missing key returns false", func(t *testing.T) {
		mockCtx := new(MockContext)
		mockCtx.On("Locals", "jwt").Return(nil)

		_, ok := gate.GetRouterClaims(mockCtx, "jwt")
		assert.False(t, ok)
	})

	t.Run("claims under configured key", func(t *testing.T) {
		claims := &gate.JWTClaims{UID: "user-id", UserRole: "admin"}
		mockCtx := new(MockContext)
		mockCtx.On("Locals", "jwt").Return(claims)

		got, ok := gate.GetRouterClaims(mockCtx, "jwt")
		require.True(t, ok)
		assert.Equal(t, "admin", got.Role())
	})

	t.Run("empty key falls back to user", func(t *testing.T) {
		claims := &gate.JWTClaims{UID: "user-id"}
		mockCtx := new(MockContext)
		mockCtx.On("Locals", "user").Return(claims)

		_, ok := gate.GetRouterClaims(mockCtx, "")
		assert.True(t, ok)
	})
}

func TestRouterSession(t *testing.T) {
	t.Run("structured claims decode", func(t *testing.T) {
		claims := &gate.JWTClaims{UID: "user-id", UserRole: "user"}
		mockCtx := new(MockContext)
		mockCtx.On("Locals", "jwt").Return(claims)

		session, err := gate.RouterSession(mockCtx, "jwt")
		require.NoError(t, err)
		assert.Equal(t, "user-id", session.GetUserID())
		assert.Equal(t, "user", session.GetRole())
	})

	t.Run("no session in context", func(t *testing.T) {
		mockCtx := new(MockContext)
		mockCtx.On("Locals", "jwt").Return(nil)

		_, err := gate.RouterSession(mockCtx, "jwt")
		assert.ErrorIs(t, err, gate.ErrUnableToFindSession)
	})
}
