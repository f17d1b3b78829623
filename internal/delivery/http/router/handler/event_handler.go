package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"sitd/internal/delivery/http/response"
	"sitd/internal/errors"
	"sitd/internal/usecase"
)

// CreateEventRequest is the body of POST /events. Times are RFC 3339.
type CreateEventRequest struct {
	Title      string     `json:"title" validate:"required,min=1,max=160"`
	MerchantID *int64     `json:"merchant_id" validate:"omitempty,min=1"`
	StartsAt   *time.Time `json:"starts_at"`
	EndsAt     *time.Time `json:"ends_at"`
}

// ListEventsQuery adds the merchant filter to the pagination parameters.
type ListEventsQuery struct {
	PageQuery
	MerchantID int64 `query:"merchant_id" validate:"omitempty,min=1"`
}

func (q ListEventsQuery) merchantFilter() *int64 {
	if q.MerchantID == 0 {
		return nil
	}

	return &q.MerchantID
}

// EventHandler serves the event catalog.
type EventHandler struct {
	uc usecase.EventUsecase
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.EventUsecase) *EventHandler {
	return &EventHandler{uc: uc}
}

// ListEvents returns one page of events, optionally for a single merchant.
func (h *EventHandler) ListEvents(c echo.Context) error {
	query := new(ListEventsQuery)
	if err := bindAndValidate(c, query); err != nil {
		return err
	}

	page, err := h.uc.ListEvents(c.Request().Context(), &usecase.ListEventsInput{
		Page:       query.toPageRequest(),
		MerchantID: query.merchantFilter(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPageData(page, newEventResponse))
}

// CreateEvent adds an event.
func (h *EventHandler) CreateEvent(c echo.Context) error {
	req := new(CreateEventRequest)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	event, err := h.uc.CreateEvent(c.Request().Context(), &usecase.CreateEventInput{
		Title:      req.Title,
		MerchantID: req.MerchantID,
		StartsAt:   req.StartsAt,
		EndsAt:     req.EndsAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newEventResponse(event))
}
