// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular marketplace user.
	RoleUser Role = "user"
	// RoleAdmin indicates a moderator with item and user management rights.
	RoleAdmin Role = "admin"
	// RoleOwner indicates the platform owner, a superset of admin.
	RoleOwner Role = "owner"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleOwner:
		return true
	default:
		return false
	}
}

// CanModerate reports whether the role is allowed to use the admin surface.
func (r Role) CanModerate() bool {
	return r == RoleAdmin || r == RoleOwner
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
