package gate

// UserIdentity adapts a User plus a minted token into the Identity
// interface consumed by the auth client.
type UserIdentity struct {
	user  *User
	token string
}

// NewIdentityFromUser returns an Identity adapter for the provided user.
func NewIdentityFromUser(user *User, token string) Identity {
	if user == nil {
		return nil
	}
	return UserIdentity{user: user, token: token}
}

// ID returns the user's ID as a string.
func (u UserIdentity) ID() string {
	if u.user == nil {
		return ""
	}
	return u.user.ID.String()
}

// Email returns the user's email address.
func (u UserIdentity) Email() string {
	if u.user == nil {
		return ""
	}
	return u.user.Email
}

// Role returns the user's role as a string.
func (u UserIdentity) Role() string {
	if u.user == nil {
		return ""
	}
	return u.user.Role
}

// IDToken returns the bearer token minted for this identity.
func (u UserIdentity) IDToken() string {
	return u.token
}
