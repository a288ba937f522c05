package gate

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/hashid/pkg/hashid"
)

// LocalIdentityProvider implements IdentityProvider against the local
// users repository: bcrypt credential verification plus token minting.
// It stands in for the hosted identity provider in self-contained
// deployments and in tests.
type LocalIdentityProvider struct {
	repo      RepositoryManager
	tokens    TokenService
	passwords PasswordAuthenticator
	logger    Logger
}

var _ IdentityProvider = (*LocalIdentityProvider)(nil)

// NewLocalIdentityProvider wires the repository manager and token service.
func NewLocalIdentityProvider(repo RepositoryManager, tokens TokenService) *LocalIdentityProvider {
	return &LocalIdentityProvider{
		repo:      repo,
		tokens:    tokens,
		passwords: BcryptAuthenticator{},
		logger:    defLogger{},
	}
}

func (p *LocalIdentityProvider) WithLogger(logger Logger) *LocalIdentityProvider {
	if logger != nil {
		p.logger = logger
	}
	return p
}

// WithPasswordAuthenticator swaps the credential check implementation.
func (p *LocalIdentityProvider) WithPasswordAuthenticator(passwords PasswordAuthenticator) *LocalIdentityProvider {
	if passwords != nil {
		p.passwords = passwords
	}
	return p
}

// Register creates the account. User IDs are derived deterministically
// from the email so re-registration attempts collide instead of forking.
func (p *LocalIdentityProvider) Register(ctx context.Context, email, password string) (Identity, error) {
	hash, err := p.passwords.HashPassword(password)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid password provided")
	}

	user := &User{
		Email:        email,
		PasswordHash: hash,
		Role:         string(RoleUser),
	}
	if id, err := hashid.NewUUID(email); err == nil {
		user.ID = id
	}

	created, err := p.repo.Users().Register(ctx, user)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryConflict, "could not create user")
	}

	return NewIdentityFromUser(created, ""), nil
}

// SignIn verifies credentials and mints a fresh identity token.
func (p *LocalIdentityProvider) SignIn(ctx context.Context, email, password string) (Identity, error) {
	user, err := p.repo.Users().GetByIdentifier(ctx, email)
	if err != nil {
		p.logger.Debug("SignIn lookup failed", "error", err)
		return nil, ErrIdentityNotFound
	}

	if err := p.passwords.ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		return nil, goerrors.New("invalid credentials", goerrors.CategoryAuth).
			WithCode(goerrors.CodeUnauthorized)
	}

	identity := NewIdentityFromUser(user, "")
	token, err := p.tokens.Generate(identity)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to mint token")
	}

	return NewIdentityFromUser(user, token), nil
}

// SignOut is a no-op for locally minted tokens: they are stateless and
// expire on their own; the caller clears the session store.
func (p *LocalIdentityProvider) SignOut(ctx context.Context, token string) error {
	return nil
}
