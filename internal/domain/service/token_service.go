package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the JWT tokens.
// The subject is the user's email; role is copied from the user at issue time.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue signs a token for subject and role valid for ttl.
	Issue(subject, role string, ttl time.Duration) (string, error)

	// IssueDefault signs a token using the configured lifetime.
	IssueDefault(subject, role string) (string, error)

	// Verify checks signature, algorithm and expiry and returns the claims.
	// Expired tokens yield domainerrors.ErrTokenExpired; everything else ErrInvalidToken.
	Verify(tokenString string) (*Claims, error)

	// DefaultTTL returns the configured access token lifetime.
	DefaultTTL() time.Duration
}
