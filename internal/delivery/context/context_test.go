package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"sitd/internal/domain/entity"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestAttach(t *testing.T) {
	c := newEchoContext()
	logger := slog.New(slog.DiscardHandler)

	Attach(c, "req-1", logger)

	assert.Equal(t, "req-1", GetRequestID(c))
	assert.Equal(t, "req-1", c.Response().Header().Get(HeaderXRequestID))
	assert.Same(t, logger, GetLogger(c.Request().Context()))
}

func TestGetRequestID_AssignsOnce(t *testing.T) {
	c := newEchoContext()

	generated := GetRequestID(c)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, GetRequestID(c))
	assert.Nil(t, GetLogger(c.Request().Context()))
}

func TestLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	scoped := slog.New(slog.DiscardHandler)

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestIdentity(t *testing.T) {
	c := newEchoContext()

	_, ok := GetIdentity(c)
	assert.False(t, ok)

	identity := &entity.Identity{UserID: 3, Role: entity.RoleMerchant}
	SetIdentity(c, identity)

	got, ok := GetIdentity(c)
	assert.True(t, ok)
	assert.Same(t, identity, got)
}
