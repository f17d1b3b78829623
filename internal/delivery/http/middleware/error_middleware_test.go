package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	domainerrors "sitd/internal/domain/errors"
)

func newErrorContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	return c, rec
}

func TestHandleHTTPError_AppError(t *testing.T) {
	c, rec := newErrorContext()

	NewErrorMiddleware(slog.New(slog.DiscardHandler)).
		HandleHTTPError(errors.Wrap(domainerrors.ErrForbidden, "role user is not allowed"), c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"FORBIDDEN"`)
	assert.NotContains(t, rec.Body.String(), "role user")
}

func TestHandleHTTPError_LogsServerFaults(t *testing.T) {
	var buf bytes.Buffer
	c, rec := newErrorContext()

	NewErrorMiddleware(slog.New(slog.NewJSONHandler(&buf, nil))).
		HandleHTTPError(errors.New("nil pointer somewhere"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INTERNAL_ERROR"`)
	assert.NotContains(t, rec.Body.String(), "nil pointer")
	assert.Contains(t, buf.String(), "nil pointer somewhere")
}

func TestHandleHTTPError_EchoErrors(t *testing.T) {
	tests := []struct {
		err  *echo.HTTPError
		code string
	}{
		{err: echo.ErrNotFound, code: "NOT_FOUND"},
		{err: echo.ErrMethodNotAllowed, code: "METHOD_NOT_ALLOWED"},
		{err: echo.ErrStatusRequestEntityTooLarge, code: "REQUEST_TOO_LARGE"},
		{err: echo.ErrUnsupportedMediaType, code: "VALIDATION_FAILED"},
		{err: echo.ErrTooManyRequests, code: "HTTP_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c, rec := newErrorContext()

			NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.err.Code, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.code+`"`)
		})
	}
}

func TestHandleHTTPError_SkipsCommittedResponse(t *testing.T) {
	c, rec := newErrorContext()
	_ = c.String(http.StatusAccepted, "done")

	NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError(domainerrors.ErrInternalError, c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
