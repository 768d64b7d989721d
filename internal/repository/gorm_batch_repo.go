package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/weiawesome/wes-io-live/devid-service/internal/domain"
	"github.com/weiawesome/wes-io-live/devid-service/pkg/log"
)

// GormBatchRepository implements BatchRepository using GORM.
type GormBatchRepository struct {
	db *gorm.DB
}

// NewGormBatchRepository creates a new GORM-based batch repository.
func NewGormBatchRepository(db *gorm.DB) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

// Create inserts a batch record. The caller assigns the ID.
func (r *GormBatchRepository) Create(ctx context.Context, batch *domain.Batch) error {
	l := log.Ctx(ctx)

	model := domain.BatchToModel(batch)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		l.Error().Err(err).Str(log.FieldBatchID, batch.ID).Msg("failed to create batch in db")
		return err
	}

	batch.CreatedAt = model.CreatedAt
	l.Debug().Str(log.FieldBatchID, batch.ID).Msg("batch created in db")
	return nil
}

// GetByID retrieves a batch by ID.
func (r *GormBatchRepository) GetByID(ctx context.Context, id string) (*domain.Batch, error) {
	l := log.Ctx(ctx)

	var model domain.BatchModel
	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBatchNotFound
		}
		l.Error().Err(result.Error).Str(log.FieldBatchID, id).Msg("failed to get batch by id")
		return nil, result.Error
	}
	return model.ToDomain(), nil
}

// List retrieves batches newest first.
func (r *GormBatchRepository) List(ctx context.Context, page, pageSize int) ([]domain.Batch, int, error) {
	l := log.Ctx(ctx)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.BatchModel{}).Count(&total).Error; err != nil {
		l.Error().Err(err).Msg("failed to count batches")
		return nil, 0, err
	}

	// ULIDs sort by creation time, and unlike created_at they never tie.
	var models []domain.BatchModel
	if err := r.db.WithContext(ctx).Order("id DESC").Offset(offset).Limit(pageSize).Find(&models).Error; err != nil {
		l.Error().Err(err).Msg("failed to list batches from db")
		return nil, 0, err
	}

	batches := make([]domain.Batch, len(models))
	for i, model := range models {
		batches[i] = *model.ToDomain()
	}
	return batches, int(total), nil
}
