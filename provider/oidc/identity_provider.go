package oidc

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	goerrors "github.com/goliatone/go-errors"
	gate "github.com/shelfside/go-auth-gate"
	"golang.org/x/oauth2"
)

// IdentityProvider implements gate.IdentityProvider backed by an OIDC
// issuer. Direct credential sign in uses the password grant; the
// browser flow helpers expose the authorization-code endpoints.
type IdentityProvider struct {
	config   Config
	provider *oidc.Provider
	verifier *oidc.IDTokenVerifier
	oauth    oauth2.Config
}

// NewIdentityProvider discovers the issuer metadata and builds the
// provider. The context bounds the discovery request only.
func NewIdentityProvider(ctx context.Context, cfg Config) (*IdentityProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("oidc: issuer discovery failed: %w", err)
	}

	return &IdentityProvider{
		config:   cfg,
		provider: provider,
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       append([]string{oidc.ScopeOpenID}, cfg.scopes()...),
		},
	}, nil
}

// Register is not supported: account creation belongs to the issuer.
func (p *IdentityProvider) Register(ctx context.Context, email, password string) (gate.Identity, error) {
	return nil, goerrors.New(
		"oidc: registration is managed by the identity issuer",
		goerrors.CategoryOperation,
	)
}

// SignIn exchanges the credentials via the password grant and verifies
// the returned ID token.
func (p *IdentityProvider) SignIn(ctx context.Context, email, password string) (gate.Identity, error) {
	token, err := p.oauth.PasswordCredentialsToken(ctx, email, password)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryAuth, "oidc: credential exchange failed")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, goerrors.New("oidc: token response carried no id_token", goerrors.CategoryAuth)
	}

	return p.identityFromRawToken(ctx, rawIDToken)
}

// SignOut is a no-op: tokens expire on their own and the issuer owns
// session revocation.
func (p *IdentityProvider) SignOut(ctx context.Context, token string) error {
	return nil
}

// AuthCodeURL starts the browser authorization-code flow.
func (p *IdentityProvider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

// ExchangeCode completes the authorization-code flow, returning the
// verified identity.
func (p *IdentityProvider) ExchangeCode(ctx context.Context, code string) (gate.Identity, error) {
	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryAuth, "oidc: code exchange failed")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, goerrors.New("oidc: token response carried no id_token", goerrors.CategoryAuth)
	}

	return p.identityFromRawToken(ctx, rawIDToken)
}

func (p *IdentityProvider) identityFromRawToken(ctx context.Context, rawIDToken string) (gate.Identity, error) {
	idToken, err := p.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryAuth, "oidc: id_token verification failed")
	}

	var claims map[string]any
	if err := idToken.Claims(&claims); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryAuth, "oidc: failed to parse claims")
	}

	identity := &oidcIdentity{
		id:      idToken.Subject,
		email:   stringClaim(claims, "email"),
		role:    stringClaim(claims, p.config.roleClaim()),
		idToken: rawIDToken,
	}

	if identity.role == "" {
		identity.role = string(gate.RoleUser)
	}

	return identity, nil
}

func stringClaim(claims map[string]any, name string) string {
	if raw, ok := claims[name]; ok {
		if s, ok := raw.(string); ok {
			return s
		}
	}
	return ""
}

type oidcIdentity struct {
	id      string
	email   string
	role    string
	idToken string
}

func (u *oidcIdentity) ID() string      { return u.id }
func (u *oidcIdentity) Email() string   { return u.email }
func (u *oidcIdentity) Role() string    { return u.role }
func (u *oidcIdentity) IDToken() string { return u.idToken }
