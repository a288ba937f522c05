package gate

import (
	"errors"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// ErrIdentityNotFound is the error we return for non found identities
var ErrIdentityNotFound = errors.New("identity not found")

// ErrUnableToFindSession is the error when our request has no token
var ErrUnableToFindSession = errors.New("unable to find session")

// ErrUnableToDecodeSession unable to decode JWT from the session token
var ErrUnableToDecodeSession = errors.New("unable to decode session")

// ErrUnableToMapClaims unable to get claims from token
var ErrUnableToMapClaims = errors.New("unable to map claims")

// ErrNoEmptyString rejects empty password input
var ErrNoEmptyString = errors.New("password can not be an empty string")

// ErrMismatchedHashAndPassword bcrypt comparison failed
var ErrMismatchedHashAndPassword = errors.New("mismatched hash and password")

// ErrTokenExpired is the structured error for expired bearer tokens.
var ErrTokenExpired = goerrors.New("authentication token expired", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode("TOKEN_EXPIRED")

// ErrTokenMalformed is the structured error for malformed bearer tokens.
var ErrTokenMalformed = goerrors.New("malformed authentication token", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode("TOKEN_MALFORMED")

// ErrForbidden is the structured error for denied access. The API client
// propagates it without redirecting so callers decide how to recover.
var ErrForbidden = goerrors.New("access forbidden", goerrors.CategoryAuthz).
	WithCode(goerrors.CodeForbidden).
	WithTextCode("FORBIDDEN")

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) && richErr.TextCode == "TOKEN_EXPIRED" {
		return true
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) && richErr.TextCode == "TOKEN_MALFORMED" {
		return true
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}

// IsForbiddenError checks for a denied-access response from the API.
func IsForbiddenError(err error) bool {
	if err == nil {
		return false
	}
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return richErr.Category == goerrors.CategoryAuthz ||
			richErr.Code == goerrors.CodeForbidden
	}
	return false
}

// ValidationFields extracts the per-field validation errors carried by a
// structured API error, or nil when the error carries none. Field errors
// supersede the generic message so forms can map them onto inputs.
func ValidationFields(err error) map[string]string {
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		return nil
	}
	raw, ok := richErr.Metadata["fields"]
	if !ok {
		return nil
	}

	switch fields := raw.(type) {
	case map[string]string:
		return fields
	case map[string]any:
		out := make(map[string]string, len(fields))
		for k, v := range fields {
			if s, ok := v.(string); ok {
				out[k] = s
			}
		}
		return out
	}
	return nil
}
