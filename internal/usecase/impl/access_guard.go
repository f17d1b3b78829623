package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "sitd/internal/delivery/context"
	"sitd/internal/domain/entity"
	domainerrors "sitd/internal/domain/errors"
	"sitd/internal/domain/repository"
	"sitd/internal/domain/service"
	"sitd/internal/infra/metrics"
	"sitd/internal/usecase"
)

type accessGuard struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// AccessGuardParams holds dependencies for AccessGuard, injected by Fx.
type AccessGuardParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Metrics      *metrics.Metrics `optional:"true"`
	Logger       *slog.Logger
}

// NewAccessGuard is the constructor for accessGuard.
func NewAccessGuard(params AccessGuardParams) usecase.AccessGuard {
	return &accessGuard{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// Authenticate verifies the token and loads its subject. The identity carries the
// role stored on the user, not the role embedded in the token.
func (g *accessGuard) Authenticate(ctx context.Context, token string) (identity *entity.Identity, err error) {
	defer func() { g.metrics.ObserveAuth("authenticate", err) }()

	if strings.TrimSpace(token) == "" {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("missing bearer token")
	}

	claims, err := g.tokenService.Verify(token)
	if err != nil {
		return nil, err
	}

	email := entity.NormalizeEmail(claims.Subject)

	user, err := g.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			deliverycontext.GetLoggerOrDefault(ctx, g.logger).Info("Token subject no longer exists", slog.String("email", email))

			return nil, domainerrors.ErrUserNotFound.WrapMessage("token subject not found")
		}

		return nil, errors.Wrap(err, "failed to load token subject")
	}

	return entity.NewIdentity(user), nil
}

// Authorize uses exact, case-sensitive role matching with no hierarchy.
func (g *accessGuard) Authorize(identity *entity.Identity, allowed ...entity.Role) (*entity.Identity, error) {
	if identity == nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("no authenticated identity")
	}

	roles := entity.Roles(allowed)
	if !roles.Contains(identity.Role) {
		return nil, domainerrors.ErrForbidden.WrapMessage(
			"role " + identity.Role.String() + " is not one of [" + strings.Join(roles.ToStrings(), ", ") + "]")
	}

	return identity, nil
}
