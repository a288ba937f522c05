package oidc

import (
	"fmt"
	"strings"
)

// Config configures the OIDC identity provider.
type Config struct {
	// IssuerURL is the OIDC issuer, e.g. https://id.example.com/realms/app.
	IssuerURL string

	// ClientID is the relying-party client ID.
	ClientID string

	// ClientSecret is the relying-party client secret.
	ClientSecret string

	// RedirectURL receives the authorization-code callback.
	RedirectURL string

	// Scopes requested on top of openid. Defaults to profile and email.
	Scopes []string

	// RoleClaim names the claim carrying the application role.
	// Defaults to "role".
	RoleClaim string
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.IssuerURL) == "" {
		return fmt.Errorf("oidc: issuer URL is required")
	}
	if strings.TrimSpace(c.ClientID) == "" {
		return fmt.Errorf("oidc: client ID is required")
	}
	return nil
}

func (c Config) scopes() []string {
	if len(c.Scopes) > 0 {
		return c.Scopes
	}
	return []string{"profile", "email"}
}

func (c Config) roleClaim() string {
	if c.RoleClaim != "" {
		return c.RoleClaim
	}
	return "role"
}
