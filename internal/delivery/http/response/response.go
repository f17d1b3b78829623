// Package response renders the JSON envelopes shared by every HTTP endpoint.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "sitd/internal/delivery/context"
	domainerrors "sitd/internal/domain/errors"
)

// PageMeta describes one page of a listing.
type PageMeta struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// PageData is the data member of a paginated response.
type PageData[T any] struct {
	Items      []T       `json:"items"`
	Pagination *PageMeta `json:"pagination"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, domainerrors.SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error returns an error response. Details are dropped for server and auth failures.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if domainerrors.HidesDetails(statusCode) {
		details = nil
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

func meta(c echo.Context) *domainerrors.MetaInfo {
	return &domainerrors.MetaInfo{
		RequestID: deliverycontext.GetRequestID(c),
	}
}
