package repository

import (
	"context"
	"errors"

	"sitd/internal/domain/entity"
)

// ErrMerchantNotFound is returned when a merchant id does not exist.
var ErrMerchantNotFound = errors.New("merchant not found")

// MerchantRepository defines persistence for merchants.
type MerchantRepository interface {
	// Create persists a new merchant and fills in its ID and CreatedAt.
	Create(ctx context.Context, merchant *entity.Merchant) error

	// FindByID retrieves a merchant or returns ErrMerchantNotFound.
	FindByID(ctx context.Context, id int64) (*entity.Merchant, error)

	// List returns one page ordered by id descending plus the total row count.
	List(ctx context.Context, page entity.PageRequest) ([]*entity.Merchant, int64, error)
}
