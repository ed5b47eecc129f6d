// Package entity contains the core business objects of the project.
package entity

// Role represents the kind of account a profile belongs to.
type Role string

const (
	// RoleClient books and reviews providers.
	RoleClient Role = "client"
	// RoleProvider offers services and appears in the directory.
	RoleProvider Role = "provider"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleProvider:
		return true
	default:
		return false
	}
}
