package gate

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Work factor is fixed so every stored hash carries the same cost.
const bcryptCost = 14

// HashPassword hashes a cleartext password. Empty passwords are
// rejected here rather than at the call sites.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// ComparePasswordAndHash checks a cleartext password against a stored
// hash, mapping bcrypt's mismatch error to the package sentinel.
func ComparePasswordAndHash(password, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatchedHashAndPassword
	}
	return err
}

// RandomPasswordHash mints a hash for a password nobody knows.
// Provisional accounts get one and must go through the host app's
// password reset before their first sign in.
func RandomPasswordHash() (string, error) {
	return HashPassword(uuid.NewString())
}

// BcryptAuthenticator implements PasswordAuthenticator on top of the
// package bcrypt helpers. It is the default for the local identity
// provider; tests swap in a cheap fake to avoid the bcrypt cost.
type BcryptAuthenticator struct{}

var _ PasswordAuthenticator = BcryptAuthenticator{}

func (BcryptAuthenticator) HashPassword(password string) (string, error) {
	return HashPassword(password)
}

func (BcryptAuthenticator) ComparePasswordAndHash(password, hash string) error {
	return ComparePasswordAndHash(password, hash)
}
