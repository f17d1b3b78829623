// Package context carries per-request values between middleware, handlers and usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"sitd/internal/domain/entity"
)

// ContextKey namespaces the values this package stores.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyIdentity  ContextKey = "identity"

	HeaderXRequestID = "X-Request-Id"
)

// Attach records the request ID on the echo.Context and the response header, and puts
// the request-scoped logger on the request's context.Context for the usecase layer.
func Attach(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(string(KeyRequestID), requestID)
	c.Response().Header().Set(HeaderXRequestID, requestID)

	ctx := WithLogger(c.Request().Context(), logger)
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetRequestID returns the ID set by Attach. A request that never passed through the
// request ID middleware gets one assigned here, so later calls see the same value.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	id := uuid.New().String()
	c.Set(string(KeyRequestID), id)

	return id
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to the given one.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetIdentity stores the authenticated caller on the echo.Context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity returns the caller stored by the auth middleware.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(*entity.Identity)

	return identity, ok && identity != nil
}
