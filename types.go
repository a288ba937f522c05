package gate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// StoredSession is the pair of values kept in persistent client storage.
// An empty Token means unauthenticated no matter what Role holds.
type StoredSession struct {
	Token string `json:"authToken"`
	Role  string `json:"role"`
}

// Authenticated reports whether the session carries a token.
func (s StoredSession) Authenticated() bool {
	return s.Token != ""
}

// SessionStore persists the bearer token and role across restarts.
// Writes are last-write-wins; there is no client-side expiry tracking,
// the server accepts or rejects the token on each request.
type SessionStore interface {
	Save(token, role string) error
	Read() StoredSession
	Clear() error
}

// Identity holds the attributes of an authenticated identity as returned
// by the identity provider, including the freshly minted bearer token.
type Identity interface {
	ID() string
	Email() string
	Role() string
	IDToken() string
}

// IdentityProvider is the external credential authority. Implementations
// wrap a hosted provider (OIDC) or the local user repository.
type IdentityProvider interface {
	Register(ctx context.Context, email, password string) (Identity, error)
	SignIn(ctx context.Context, email, password string) (Identity, error)
	SignOut(ctx context.Context, token string) error
}

// Authenticator holds methods to deal with authentication
type Authenticator interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context) error
	Token() string
}

type LoginPayload interface {
	GetIdentifier() string
	GetPassword() string
	GetExtendedSession() bool
}

// ProfileService resolves the acting user's profile. Guards treat any
// error as "no ban data" and allow navigation.
type ProfileService interface {
	Profile(ctx context.Context) (*User, error)
}

// ProfileInvalidator is implemented by caching profile services that
// support explicit invalidation on login/logout/unban.
type ProfileInvalidator interface {
	Invalidate()
}

// Config holds auth options
type Config interface {
	GetSigningKey() string
	GetSigningMethod() string
	GetContextKey() string
	GetTokenExpiration() int
	GetTokenLookup() string
	GetAuthScheme() string
	GetIssuer() string
	GetAudience() []string
	GetAPIBaseURL() string
	GetSessionPath() string
	GetLoginRoute() string
	GetHomeRoute() string
	GetForumFallbackRoute() string
}

// PasswordAuthenticator authenticates passwords
type PasswordAuthenticator interface {
	HashPassword(password string) (string, error)
	ComparePasswordAndHash(password, hash string) error
}

// Session holds attributes decoded from a validated token.
type Session interface {
	GetUserID() string
	GetUserUUID() (uuid.UUID, error)
	GetRole() string
	GetIssuedAt() *time.Time
	GetExpirationDate() *time.Time
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] GATE "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] GATE "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] GATE "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
