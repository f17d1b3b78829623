package impl

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitd/internal/domain/entity"
	domainerrors "sitd/internal/domain/errors"
	"sitd/internal/domain/repository"
	"sitd/internal/domain/service"
	mockRepo "sitd/internal/mocks/repository"
	mockSvc "sitd/internal/mocks/service"
	"sitd/internal/usecase"
)

type accessGuardFixtures struct {
	guard        usecase.AccessGuard
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockSvc.MockTokenService
}

func createTestAccessGuard(t *testing.T) accessGuardFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)

	return accessGuardFixtures{
		guard: NewAccessGuard(AccessGuardParams{
			UserRepo:     userRepo,
			TokenService: tokenService,
			Logger:       newDiscardLogger(),
		}),
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

func claimsFor(subject, role string) *service.Claims {
	return &service.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestAccessGuard_Authenticate_Success(t *testing.T) {
	fx := createTestAccessGuard(t)
	ctx := context.Background()
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	fx.tokenService.EXPECT().Verify("good-token").Return(claimsFor("Admin@Example.com", "user"), nil)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "admin@example.com").
		Return(&entity.User{ID: 5, Email: "admin@example.com", Role: entity.RoleAdmin, CreatedAt: created}, nil)

	identity, err := fx.guard.Authenticate(ctx, "good-token")

	require.NoError(t, err)
	// The stored role wins over the role captured in the token.
	assert.Equal(t, &entity.Identity{UserID: 5, Email: "admin@example.com", Role: entity.RoleAdmin, CreatedAt: created}, identity)
}

func TestAccessGuard_Authenticate_MissingToken(t *testing.T) {
	fx := createTestAccessGuard(t)

	_, err := fx.guard.Authenticate(context.Background(), "  ")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAccessGuard_Authenticate_TokenErrorsPassThrough(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "expired", err: domainerrors.ErrTokenExpired.WrapMessage("token is expired")},
		{name: "invalid", err: domainerrors.ErrInvalidToken.WrapMessage("signature is invalid")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccessGuard(t)
			fx.tokenService.EXPECT().Verify("token").Return(nil, tt.err)

			_, err := fx.guard.Authenticate(context.Background(), "token")

			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestAccessGuard_Authenticate_StaleSubject(t *testing.T) {
	fx := createTestAccessGuard(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().Verify("token").Return(claimsFor("gone@example.com", "user"), nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "gone@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.guard.Authenticate(ctx, "token")

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAccessGuard_Authenticate_StorageFailure(t *testing.T) {
	fx := createTestAccessGuard(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().Verify("token").Return(claimsFor("a@b.com", "user"), nil)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "a@b.com").
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("pool closed"), "failed to find user by email"))

	_, err := fx.guard.Authenticate(ctx, "token")

	assert.ErrorIs(t, err, domainerrors.ErrStorageUnavailable)
}

func TestAccessGuard_Authorize(t *testing.T) {
	guard := createTestAccessGuard(t).guard
	user := &entity.Identity{UserID: 1, Role: entity.RoleUser}
	admin := &entity.Identity{UserID: 2, Role: entity.RoleAdmin}

	got, err := guard.Authorize(admin, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Same(t, admin, got)

	_, err = guard.Authorize(user, entity.RoleAdmin)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = guard.Authorize(user, entity.RoleAdmin, entity.RoleMerchant)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Contains(t, err.Error(), "role user is not one of [admin, merchant]")

	_, err = guard.Authorize(&entity.Identity{Role: "Admin"}, entity.RoleAdmin)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = guard.Authorize(admin)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = guard.Authorize(nil, entity.RoleAdmin)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
