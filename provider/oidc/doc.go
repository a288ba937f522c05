// Package oidc implements gate.IdentityProvider against any OpenID
// Connect issuer, using the resource-owner password grant for direct
// sign in and the authorization-code flow for browser SSO.
package oidc
