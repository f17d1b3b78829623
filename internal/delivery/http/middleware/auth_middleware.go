package middleware

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "sitd/internal/delivery/context"
	"sitd/internal/domain/entity"
	domainerrors "sitd/internal/domain/errors"
	"sitd/internal/usecase"
)

const bearerScheme = "bearer"

// AuthMiddleware guards routes with bearer tokens and role checks.
type AuthMiddleware struct {
	guard usecase.AccessGuard
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(guard usecase.AccessGuard) *AuthMiddleware {
	return &AuthMiddleware{guard: guard}
}

// Authenticate resolves the Authorization header to an identity and stores it on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return domainerrors.ErrInvalidToken.WrapMessage("missing or malformed Authorization header")
		}

		ctx := c.Request().Context()
		identity, err := m.guard.Authenticate(ctx, token)
		if err != nil {
			return err
		}

		deliverycontext.SetIdentity(c, identity)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.Int64("user_id", identity.UserID)))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// RequireRole allows the request through only for the listed roles.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, _ := deliverycontext.GetIdentity(c)
			if _, err := m.guard.Authorize(identity, roles...); err != nil {
				return err
			}

			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
