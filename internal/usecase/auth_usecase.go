// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"sitd/internal/domain/entity"
)

// TokenTypeBearer is the OAuth2 token type returned on login.
const TokenTypeBearer = "bearer"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string
	Password string
	Role     string // Empty means entity.RoleUser.
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput is the issued access token.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64 // Seconds until the token expires.
}

// AuthUsecase defines registration and password login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}

// AccessGuard resolves bearer tokens to identities and checks roles.
type AccessGuard interface {
	// Authenticate verifies the token and loads the user it names.
	Authenticate(ctx context.Context, token string) (*entity.Identity, error)

	// Authorize passes the identity through when its role is one of allowed.
	Authorize(identity *entity.Identity, allowed ...entity.Role) (*entity.Identity, error)
}
