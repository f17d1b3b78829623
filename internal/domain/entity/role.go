// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
// Roles are free-form; the constants below are the ones the routes use.
type Role string

const (
	// RoleUser is assigned when registration does not name a role.
	RoleUser Role = "user"
	// RoleMerchant may publish events.
	RoleMerchant Role = "merchant"
	// RoleAdmin may manage merchants.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// RoleOrDefault returns RoleUser for an empty role.
func RoleOrDefault(s string) Role {
	if s == "" {
		return RoleUser
	}

	return Role(s)
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role. Matching is
// exact and case-sensitive.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
