package gate

// UserRole is the user's role
type UserRole string

const (
	// RoleGuest is an unauthenticated visitor (browse only)
	RoleGuest UserRole = "guest"
	// RoleUser is a registered reader (browse, review, post)
	RoleUser UserRole = "user"
	// RoleModerator can moderate forums and reviews
	RoleModerator UserRole = "moderator"
	// RoleAdmin has access to the admin console
	RoleAdmin UserRole = "admin"
)

// IsValid checks if the role is one of the predefined valid roles
func (r UserRole) IsValid() bool {
	switch r {
	case RoleGuest, RoleUser, RoleModerator, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanBrowse checks if this role can browse books and forums
func (r UserRole) CanBrowse() bool {
	return r.IsValid()
}

// CanPost checks if this role can post reviews and forum comments
func (r UserRole) CanPost() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanModerate checks if this role can act on other users' content
func (r UserRole) CanModerate() bool {
	switch r {
	case RoleModerator, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsAtLeast checks if this role meets the minimum required level
func (r UserRole) IsAtLeast(minRole UserRole) bool {
	roleHierarchy := map[UserRole]int{
		RoleGuest:     0,
		RoleUser:      1,
		RoleModerator: 2,
		RoleAdmin:     3,
	}

	currentLevel, exists := roleHierarchy[r]
	if !exists {
		return false
	}

	minLevel, exists := roleHierarchy[minRole]
	if !exists {
		return false
	}

	return currentLevel >= minLevel
}

// GetAllRoles returns all predefined roles in hierarchical order
func GetAllRoles() []UserRole {
	return []UserRole{
		RoleGuest,
		RoleUser,
		RoleModerator,
		RoleAdmin,
	}
}

// ParseRole safely parses a string into a UserRole type
func ParseRole(roleStr string) (UserRole, bool) {
	role := UserRole(roleStr)
	return role, role.IsValid()
}

// RoleAllowed reports membership of role in the allow-list. An empty
// allow-list means any authenticated role is accepted.
func RoleAllowed(role string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == role {
			return true
		}
	}
	return false
}
