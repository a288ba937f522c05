package gate

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-router"
)

var userCtxKey = &contextKey{"user"}
var claimsCtxKey = &contextKey{"claims"}

type contextKey struct {
	name string
}

// WithContext sets the User in the given context
func WithContext(r context.Context, user *User) context.Context {
	return context.WithValue(r, userCtxKey, user)
}

// FromContext finds the user from the context.
func FromContext(ctx context.Context) (*User, bool) {
	raw, ok := ctx.Value(userCtxKey).(*User)
	return raw, ok
}

// WithClaimsContext sets the AuthClaims in the given context
func WithClaimsContext(r context.Context, claims AuthClaims) context.Context {
	return context.WithValue(r, claimsCtxKey, claims)
}

// GetClaims extracts the AuthClaims from the standard context
func GetClaims(ctx context.Context) (AuthClaims, bool) {
	raw, ok := ctx.Value(claimsCtxKey).(AuthClaims)
	return raw, ok
}

// GetRouterClaims extracts the AuthClaims from the router context
func GetRouterClaims(ctx router.Context, key string) (AuthClaims, bool) {
	if key == "" {
		key = "user" // Default key used by the token middleware
	}
	raw := ctx.Locals(key)
	if raw == nil {
		return nil, false
	}
	claims, ok := raw.(AuthClaims)
	return claims, ok
}

// RouterSession decodes the SessionObject stored by the token middleware.
// Middleware from other stacks may store a raw claim map or parsed token
// instead of structured claims; both decode too.
func RouterSession(ctx router.Context, key string) (*SessionObject, error) {
	if claims, ok := GetRouterClaims(ctx, key); ok {
		return SessionFromClaims(claims)
	}

	if key == "" {
		key = "user"
	}

	switch raw := ctx.Locals(key).(type) {
	case jwt.MapClaims:
		return sessionFromMapClaims(raw)
	case *jwt.Token:
		if mapClaims, ok := raw.Claims.(jwt.MapClaims); ok {
			return sessionFromMapClaims(mapClaims)
		}
	}

	return nil, ErrUnableToFindSession
}
