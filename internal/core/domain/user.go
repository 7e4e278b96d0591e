package domain

import "time"

// Role is the coarse permission level of a user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User models an account in the credential store.
type User struct {
	Username     string        `json:"username"`
	PasswordHash string        `json:"-"`
	Role         Role          `json:"role"`
	Properties   PropertyGrant `json:"properties"`
	CreatedAt    time.Time     `json:"created_at,omitzero"`
	UpdatedAt    time.Time     `json:"updated_at,omitzero"`
}

// Summary is the outward view of a user; it never carries the hash.
type Summary struct {
	Username   string        `json:"username"`
	Role       Role          `json:"role"`
	Properties PropertyGrant `json:"properties"`
}

func (u *User) Summary() Summary {
	return Summary{Username: u.Username, Role: u.Role, Properties: u.Properties}
}
