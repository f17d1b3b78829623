package usecase

import (
	"context"
	"time"

	"sitd/internal/domain/entity"
)

// CreateMerchantInput defines the data required to create a merchant.
type CreateMerchantInput struct {
	Name        string
	Description *string
}

// CreateEventInput defines the data required to create an event.
type CreateEventInput struct {
	Title      string
	MerchantID *int64
	StartsAt   *time.Time
	EndsAt     *time.Time
}

// ListEventsInput selects a page of events, optionally for one merchant.
type ListEventsInput struct {
	Page       entity.PageRequest
	MerchantID *int64
}

// MerchantUsecase defines merchant management.
type MerchantUsecase interface {
	CreateMerchant(ctx context.Context, input *CreateMerchantInput) (*entity.Merchant, error)
	GetMerchant(ctx context.Context, id int64) (*entity.Merchant, error)
	ListMerchants(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.Merchant], error)

	// MerchantQRCode returns a PNG linking to the merchant's public page.
	MerchantQRCode(ctx context.Context, id int64) ([]byte, error)
	// ResolveMerchantQR returns the merchant a scanned QR link points at.
	ResolveMerchantQR(ctx context.Context, qrData string) (*entity.Merchant, error)
}

// EventUsecase defines event management.
type EventUsecase interface {
	CreateEvent(ctx context.Context, input *CreateEventInput) (*entity.Event, error)
	ListEvents(ctx context.Context, input *ListEventsInput) (*entity.Page[*entity.Event], error)
}
