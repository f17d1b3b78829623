package handler

import (
	"github.com/labstack/echo/v4"

	domainerrors "sitd/internal/domain/errors"
	"sitd/internal/errors"
)

// bindAndValidate binds the request into req and runs its validate tags.
// Binding failures surface as ErrValidationFailed.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if msg, ok := httpErr.Message.(string); ok {
				return domainerrors.ErrValidationFailed.WrapMessage(msg)
			}
		}

		return domainerrors.ErrValidationFailed.WrapMessage("malformed request")
	}

	return errors.WithStack(c.Validate(req))
}
