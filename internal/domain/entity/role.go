// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular customer.
	RoleUser Role = "user"
	// RoleAdmin grants access to catalogue and order management.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role carries admin privileges.
// Only the exact literal "admin" counts.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
