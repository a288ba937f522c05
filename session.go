package gate

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var _ Session = &SessionObject{}

// SessionObject is the decoded view of a validated bearer token.
type SessionObject struct {
	UserID         string     `json:"user_id,omitempty"`
	Role           string     `json:"role,omitempty"`
	Issuer         string     `json:"issuer,omitempty"`
	IssuedAt       *time.Time `json:"issued_at,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
}

func (s *SessionObject) GetUserID() string {
	return s.UserID
}

func (s *SessionObject) GetUserUUID() (uuid.UUID, error) {
	return uuid.Parse(s.UserID)
}

func (s *SessionObject) GetRole() string {
	if _, ok := ParseRole(s.Role); !ok {
		return string(RoleGuest)
	}
	return s.Role
}

func (s *SessionObject) GetIssuedAt() *time.Time {
	return s.IssuedAt
}

func (s *SessionObject) GetExpirationDate() *time.Time {
	return s.ExpirationDate
}

func (s SessionObject) String() string {
	issuedAt := "<nil>"
	if s.IssuedAt != nil {
		issuedAt = s.IssuedAt.Format(time.RFC1123)
	}
	return fmt.Sprintf(
		"user=%s role=%s iss=%s iat=%s",
		s.UserID,
		s.Role,
		s.Issuer,
		issuedAt,
	)
}

// SessionFromClaims builds a SessionObject from validated auth claims.
func SessionFromClaims(claims AuthClaims) (*SessionObject, error) {
	if claims == nil {
		return nil, ErrUnableToMapClaims
	}

	session := &SessionObject{
		UserID: claims.UserID(),
		Role:   claims.Role(),
	}

	if jwtClaims, ok := claims.(*JWTClaims); ok {
		session.Issuer = jwtClaims.RegisteredClaims.Issuer
		if jwtClaims.RegisteredClaims.IssuedAt != nil {
			issuedAt := jwtClaims.RegisteredClaims.IssuedAt.Time
			session.IssuedAt = &issuedAt
		}
		if jwtClaims.RegisteredClaims.ExpiresAt != nil {
			expiresAt := jwtClaims.RegisteredClaims.ExpiresAt.Time
			session.ExpirationDate = &expiresAt
		}
		return session, nil
	}

	issuedAt := claims.IssuedAt()
	expiresAt := claims.Expires()
	session.IssuedAt = &issuedAt
	session.ExpirationDate = &expiresAt
	return session, nil
}

// sessionFromMapClaims decodes the claim set stored by the token
// middleware under the router context key.
func sessionFromMapClaims(claims jwt.MapClaims) (*SessionObject, error) {
	session := &SessionObject{}

	if sub, err := claims.GetSubject(); err == nil {
		session.UserID = sub
	}
	if uid, ok := claims["uid"].(string); ok && uid != "" {
		session.UserID = uid
	}
	if role, ok := claims["role"].(string); ok {
		session.Role = role
	}
	if iss, err := claims.GetIssuer(); err == nil {
		session.Issuer = iss
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		session.IssuedAt = &iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		session.ExpirationDate = &exp.Time
	}

	if session.UserID == "" {
		return nil, ErrUnableToMapClaims
	}
	return session, nil
}
