package postgres

import (
	"context"

	"gorm.io/gorm"

	"sitd/internal/domain/entity"
	domainerrors "sitd/internal/domain/errors"
	"sitd/internal/domain/repository"
	"sitd/internal/infra/persistence/model"
)

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	// Omit the association so gorm never upserts the referenced merchant.
	if err := repo.db.WithContext(ctx).Omit("Merchant").Create(eventM).Error; err != nil {
		switch {
		case isForeignKeyConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WrapMessage("merchant does not exist")
		case isCheckConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WrapMessage("starts_at must not be after ends_at")
		case isNotNullConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WrapMessage("missing required event information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// List returns one page of events, newest first. The total honours the filter.
func (repo *eventRepository) List(ctx context.Context, filter repository.EventFilter, page entity.PageRequest) ([]*entity.Event, int64, error) {
	page = page.Normalize()
	db := repo.db.WithContext(ctx).Model(&model.EventModel{})
	if filter.MerchantID != nil {
		db = db.Where("merchant_id = ?", *filter.MerchantID)
	}
	// Count and Find share the filter but not each other's clauses.
	db = db.Session(&gorm.Session{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count events")
	}

	var rows []*model.EventModel
	if err := db.Order("id DESC").Offset(page.Offset()).Limit(page.PageSize).Find(&rows).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list events")
	}

	events := make([]*entity.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, toEventDomain(row))
	}

	return events, total, nil
}

func toEventDomain(data *model.EventModel) *entity.Event {
	if data == nil {
		return nil
	}

	return &entity.Event{
		ID:         data.ID,
		MerchantID: data.MerchantID,
		Title:      data.Title,
		StartsAt:   data.StartsAt,
		EndsAt:     data.EndsAt,
		CreatedAt:  data.CreatedAt,
	}
}

func fromEventDomain(data *entity.Event) *model.EventModel {
	if data == nil {
		return nil
	}

	return &model.EventModel{
		ID:         data.ID,
		MerchantID: data.MerchantID,
		Title:      data.Title,
		StartsAt:   data.StartsAt,
		EndsAt:     data.EndsAt,
		CreatedAt:  data.CreatedAt,
	}
}
