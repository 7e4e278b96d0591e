package domain

// Access describes what an operation needs. Property is empty for
// property-agnostic operations such as listing properties.
type Access struct {
	Property  string
	AdminOnly bool
}

// Authorize is the single access-control decision applied to every resource
// operation. It returns nil to allow, ErrUnauthenticated when there are no
// claims, and ErrForbidden otherwise.
//
// Admins pass every check. Non-admins never pass an admin-only check, pass a
// property-agnostic check, and pass a property check only when the property is
// in their grant.
func Authorize(c *Claims, a Access) error {
	if c == nil {
		return ErrUnauthenticated
	}
	if c.Role == RoleAdmin {
		return nil
	}
	if a.AdminOnly || c.Role != RoleUser {
		return ErrForbidden
	}
	if a.Property == "" {
		return nil
	}
	if !c.Properties.Contains(a.Property) {
		return ErrForbidden
	}
	return nil
}
