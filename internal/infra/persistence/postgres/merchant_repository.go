package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"sitd/internal/domain/entity"
	domainerrors "sitd/internal/domain/errors"
	"sitd/internal/domain/repository"
	"sitd/internal/infra/persistence/model"
)

type merchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository is the constructor for merchantRepository.
func NewMerchantRepository(db *gorm.DB) repository.MerchantRepository {
	return &merchantRepository{db: db}
}

func (repo *merchantRepository) Create(ctx context.Context, merchant *entity.Merchant) error {
	merchantM := fromMerchantDomain(merchant)

	if err := repo.db.WithContext(ctx).Create(merchantM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required merchant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create merchant")
	}

	merchant.ID = merchantM.ID
	merchant.CreatedAt = merchantM.CreatedAt

	return nil
}

func (repo *merchantRepository) FindByID(ctx context.Context, id int64) (*entity.Merchant, error) {
	var merchantM model.MerchantModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&merchantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMerchantNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find merchant by id")
	}

	return toMerchantDomain(&merchantM), nil
}

// List returns one page of merchants, newest first, and the unfiltered row count.
func (repo *merchantRepository) List(ctx context.Context, page entity.PageRequest) ([]*entity.Merchant, int64, error) {
	page = page.Normalize()
	db := repo.db.WithContext(ctx).Model(&model.MerchantModel{}).Session(&gorm.Session{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count merchants")
	}

	var rows []*model.MerchantModel
	if err := db.Order("id DESC").Offset(page.Offset()).Limit(page.PageSize).Find(&rows).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list merchants")
	}

	merchants := make([]*entity.Merchant, 0, len(rows))
	for _, row := range rows {
		merchants = append(merchants, toMerchantDomain(row))
	}

	return merchants, total, nil
}

func toMerchantDomain(data *model.MerchantModel) *entity.Merchant {
	if data == nil {
		return nil
	}

	return &entity.Merchant{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}

func fromMerchantDomain(data *entity.Merchant) *model.MerchantModel {
	if data == nil {
		return nil
	}

	return &model.MerchantModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}
