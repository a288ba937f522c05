package gate

import (
	"context"

	"github.com/goliatone/go-router"
)

// WSTokenValidator implements go-router's WSTokenValidator interface on
// top of the TokenService so the realtime notification channel shares
// the same token checks as HTTP routes.
type WSTokenValidator struct {
	tokens TokenService
}

func NewWSTokenValidator(tokens TokenService) *WSTokenValidator {
	return &WSTokenValidator{tokens: tokens}
}

// Validate validates a token string and returns WebSocket-compatible auth claims
func (w *WSTokenValidator) Validate(tokenString string) (router.WSAuthClaims, error) {
	claims, err := w.tokens.Validate(tokenString)
	if err != nil {
		return nil, err
	}
	return &WSAuthClaimsAdapter{claims: claims}, nil
}

// WSAuthClaimsAdapter adapts AuthClaims to go-router's WSAuthClaims
// interface. The resource permission checks are derived from the role
// hierarchy: reading needs a browsing role, writing needs a posting
// role, deleting needs moderation rights.
type WSAuthClaimsAdapter struct {
	claims AuthClaims
}

func (w *WSAuthClaimsAdapter) Subject() string { return w.claims.Subject() }
func (w *WSAuthClaimsAdapter) UserID() string  { return w.claims.UserID() }
func (w *WSAuthClaimsAdapter) Role() string    { return w.claims.Role() }

func (w *WSAuthClaimsAdapter) CanRead(resource string) bool {
	return UserRole(w.claims.Role()).CanBrowse()
}

func (w *WSAuthClaimsAdapter) CanEdit(resource string) bool {
	return UserRole(w.claims.Role()).CanPost()
}

func (w *WSAuthClaimsAdapter) CanCreate(resource string) bool {
	return UserRole(w.claims.Role()).CanPost()
}

func (w *WSAuthClaimsAdapter) CanDelete(resource string) bool {
	return UserRole(w.claims.Role()).CanModerate()
}

func (w *WSAuthClaimsAdapter) HasRole(role string) bool {
	return w.claims.HasRole(role)
}

func (w *WSAuthClaimsAdapter) IsAtLeast(minRole string) bool {
	return w.claims.IsAtLeast(minRole)
}

// NewWSAuthMiddleware builds WebSocket authentication middleware around
// the given TokenService. The toast channel subscribes through this.
func NewWSAuthMiddleware(tokens TokenService, config ...router.WSAuthConfig) router.WebSocketMiddleware {
	var cfg router.WSAuthConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	cfg.TokenValidator = NewWSTokenValidator(tokens)

	return router.NewWSAuth(cfg)
}

// WSAuthClaimsFromContext retrieves the auth claims a WebSocket
// middleware stored on the connection context.
func WSAuthClaimsFromContext(ctx context.Context) (AuthClaims, bool) {
	wsAuthClaims, ok := router.WSAuthClaimsFromContext(ctx)
	if !ok {
		return nil, false
	}

	if adapter, ok := wsAuthClaims.(*WSAuthClaimsAdapter); ok {
		return adapter.claims, true
	}

	return nil, false
}
