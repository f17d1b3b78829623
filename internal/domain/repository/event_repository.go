package repository

import (
	"context"

	"sitd/internal/domain/entity"
)

// EventFilter narrows an event listing. A nil MerchantID lists every event.
type EventFilter struct {
	MerchantID *int64
}

// EventRepository defines persistence for events.
type EventRepository interface {
	// Create persists a new event and fills in its ID and CreatedAt.
	// A dangling MerchantID yields domainerrors.ErrValidationFailed.
	Create(ctx context.Context, event *entity.Event) error

	// List returns one page ordered by id descending plus the total row count.
	List(ctx context.Context, filter EventFilter, page entity.PageRequest) ([]*entity.Event, int64, error)
}
