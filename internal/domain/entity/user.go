// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// User is an account that can log in. Email is unique and always stored lowercased.
type User struct {
	ID           int64     // Database-generated identifier.
	Email        string    // Lowercased login identifier, unique across all users.
	PasswordHash string    // Self-describing credential hash; never leaves the service.
	Role         Role      // Free-form role tag compared by exact match.
	CreatedAt    time.Time // Timestamp of registration.
}

// NormalizeEmail returns the canonical form used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	UserID    int64
	Email     string
	Role      Role
	CreatedAt time.Time
}

// NewIdentity builds the identity for a stored user.
func NewIdentity(user *User) *Identity {
	return &Identity{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
