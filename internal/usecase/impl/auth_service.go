// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"sitd/config"
	deliverycontext "sitd/internal/delivery/context"
	"sitd/internal/domain/entity"
	domainerrors "sitd/internal/domain/errors"
	"sitd/internal/domain/repository"
	"sitd/internal/domain/service"
	"sitd/internal/infra/metrics"
	"sitd/internal/usecase"
)

// dummyPassword is hashed once at construction. Its hash is checked when the login
// email is unknown, so a missing account costs the same as a wrong password under
// whatever scheme and work factor the hasher is configured with.
const dummyPassword = "sitd-unknown-account"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo         repository.UserRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	metrics          *metrics.Metrics
	maxPasswordBytes int
	dummyHash        string
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Metrics      *metrics.Metrics `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) (usecase.AuthUsecase, error) {
	dummyHash, err := params.Hasher.Hash(dummyPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare dummy password hash")
	}

	maxPasswordBytes := config.MaxPasswordBytes
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MaxPasswordBytes > 0 {
		maxPasswordBytes = params.Config.Auth.MaxPasswordBytes
	}

	return &authService{
		userRepo:         params.UserRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		metrics:          params.Metrics,
		maxPasswordBytes: maxPasswordBytes,
		dummyHash:        dummyHash,
		logger:           params.Logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a user with a freshly hashed password.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (user *entity.User, err error) {
	defer func() { srv.metrics.ObserveAuth("register", err) }()

	email := entity.NormalizeEmail(input.Email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email is required")
	}

	// Length is measured in UTF-8 bytes, and checked before any hashing work.
	if len(input.Password) > srv.maxPasswordBytes {
		srv.log(ctx).Warn("Rejected over-long password at registration", slog.String("email", email))

		return nil, errors.WithStack(domainerrors.ErrPasswordTooLong)
	}

	role := entity.RoleOrDefault(input.Role)
	srv.log(ctx).Info("Starting registration", slog.String("email", email), slog.String("role", role.String()))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	newUser := &entity.User{
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			srv.log(ctx).Info("Registration for existing email", slog.String("email", email))
		} else {
			srv.log(ctx).Error("Failed to create user", slog.String("email", email), slog.Any("error", err))
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", newUser.ID))

	return newUser, nil
}

// Login checks the password and issues an access token carrying the user's current role.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (output *usecase.LoginOutput, err error) {
	defer func() { srv.metrics.ObserveAuth("login", err) }()

	email := entity.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.hasher.Check(input.Password, srv.dummyHash)
			srv.log(ctx).Info("Login failed", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		srv.log(ctx).Error("Failed to look up user for login", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login failed", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokenService.IssueDefault(user.Email, user.Role.String())
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Debug("User logged in", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   usecase.TokenTypeBearer,
		ExpiresIn:   int64(srv.tokenService.DefaultTTL().Seconds()),
	}, nil
}
