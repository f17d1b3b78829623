package handler

import (
	"time"

	"sitd/internal/delivery/http/response"
	"sitd/internal/domain/entity"
)

// UserResponse is the public view of an account. The hash never leaves the service.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
	}
}

func newIdentityResponse(identity *entity.Identity) *UserResponse {
	return &UserResponse{
		ID:        identity.UserID,
		Email:     identity.Email,
		Role:      identity.Role.String(),
		CreatedAt: identity.CreatedAt,
	}
}

// MerchantResponse is the public view of a merchant.
type MerchantResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func newMerchantResponse(m *entity.Merchant) *MerchantResponse {
	return &MerchantResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// EventResponse is the public view of an event.
type EventResponse struct {
	ID         int64      `json:"id"`
	MerchantID *int64     `json:"merchant_id"`
	Title      string     `json:"title"`
	StartsAt   *time.Time `json:"starts_at"`
	EndsAt     *time.Time `json:"ends_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

func newEventResponse(e *entity.Event) *EventResponse {
	return &EventResponse{
		ID:         e.ID,
		MerchantID: e.MerchantID,
		Title:      e.Title,
		StartsAt:   e.StartsAt,
		EndsAt:     e.EndsAt,
		CreatedAt:  e.CreatedAt,
	}
}

// PageQuery binds the shared pagination parameters. Zero means "use the default".
type PageQuery struct {
	Page     int `query:"page" validate:"omitempty,min=1"`
	PageSize int `query:"page_size" validate:"omitempty,min=1,max=100"`
}

func (q PageQuery) toPageRequest() entity.PageRequest {
	return entity.PageRequest{Page: q.Page, PageSize: q.PageSize}
}

func newPageData[E any, R any](page *entity.Page[E], convert func(E) R) *response.PageData[R] {
	items := make([]R, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, convert(item))
	}

	return &response.PageData[R]{
		Items: items,
		Pagination: &response.PageMeta{
			Page:     page.Page,
			PageSize: page.PageSize,
			Total:    page.Total,
		},
	}
}
