package gate

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

// Auther performs login, registration, and logout against an identity
// provider and keeps the session store in sync. Every failing operation
// notifies the user AND re-raises the error: the notification is for the
// person, the returned error is for the calling component's control flow.
type Auther struct {
	provider IdentityProvider
	store    SessionStore
	notifier Notifier
	profiles ProfileInvalidator
	logger   Logger
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(provider IdentityProvider, store SessionStore) *Auther {
	return &Auther{
		provider: provider,
		store:    store,
		logger:   defLogger{},
		notifier: logNotifier{logger: defLogger{}},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// WithNotifier configures the notification side channel.
func (s *Auther) WithNotifier(notifier Notifier) *Auther {
	s.notifier = normalizeNotifier(notifier, s.logger)
	return s
}

// WithProfileInvalidator wires a cached profile service so login and
// logout drop any stale cached profile.
func (s *Auther) WithProfileInvalidator(profiles ProfileInvalidator) *Auther {
	s.profiles = profiles
	return s
}

// Register creates an account with the identity provider. The session is
// not started; callers send the user to the login form on success.
func (s *Auther) Register(ctx context.Context, email, password string) error {
	if _, err := s.provider.Register(ctx, email, password); err != nil {
		s.logger.Error("Register identity error", "error", err)
		s.notifier.Error(userMessage(err, "Registration failed"))
		return goerrors.Wrap(err, goerrors.CategoryAuth, "err registering identity")
	}

	s.notifier.Success("Account created, you can sign in now")
	return nil
}

// Login verifies credentials, persists the freshly minted token and the
// identity's role, and returns the token.
func (s *Auther) Login(ctx context.Context, email, password string) (string, error) {
	identity, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		s.logger.Error("Login verify identity error", "error", err)
		s.notifier.Error(userMessage(err, "Sign in failed"))
		return "", goerrors.Wrap(err, goerrors.CategoryAuth, "err authenticating payload").
			WithCode(goerrors.CodeUnauthorized)
	}

	token := identity.IDToken()
	if err := s.store.Save(token, identity.Role()); err != nil {
		s.logger.Error("Login session persist error", "error", err)
		s.notifier.Error("Sign in failed")
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "err persisting session")
	}

	s.invalidateProfiles()
	s.notifier.Success("Signed in")
	return token, nil
}

// Logout revokes the session with the identity provider and clears the
// store. The store is cleared even when revocation fails so a dead remote
// session can never pin a local one.
func (s *Auther) Logout(ctx context.Context) error {
	token := s.store.Read().Token

	revokeErr := s.provider.SignOut(ctx, token)

	if err := s.store.Clear(); err != nil {
		s.logger.Error("Logout session clear error", "error", err)
		s.notifier.Error("Sign out failed")
		return goerrors.Wrap(err, goerrors.CategoryInternal, "err clearing session")
	}
	s.invalidateProfiles()

	if revokeErr != nil {
		s.logger.Error("Logout revoke error", "error", revokeErr)
		s.notifier.Error(userMessage(revokeErr, "Sign out failed"))
		return goerrors.Wrap(revokeErr, goerrors.CategoryAuth, "err revoking session")
	}

	s.notifier.Success("Signed out")
	return nil
}

// Token reads the current token from the session store without side effects.
func (s *Auther) Token() string {
	return s.store.Read().Token
}

func (s *Auther) invalidateProfiles() {
	if s.profiles != nil {
		s.profiles.Invalidate()
	}
}

// userMessage prefers the provider's human-readable message when the error
// is structured, falling back to a generic one.
func userMessage(err error, fallback string) string {
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) && richErr.Message != "" {
		return richErr.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
