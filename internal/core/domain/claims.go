package domain

// Claims is the identity snapshot carried by a session token. It reflects the
// user record at issuance time, not the current one.
type Claims struct {
	Subject    string
	Role       Role
	Properties PropertyGrant
}

// IsAdmin reports whether the claims carry the admin role.
func (c *Claims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}
