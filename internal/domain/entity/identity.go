package entity

// Identity is the authenticated user's role-bearing profile. It is built
// exclusively from the claims of a verified access token; nothing else in
// the system is allowed to mutate the role.
type Identity struct {
	ID       string `json:"id"`       // Backend identifier of the account.
	Name     string `json:"name"`     // Display name.
	Username string `json:"username"` // Login identifier.
	Email    string `json:"email"`    // Contact email.
	Role     Role   `json:"role"`     // Access level, decoded from the token.
	Avatar   string `json:"avatar"`   // URL of the avatar image, may be empty.
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
