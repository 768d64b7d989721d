package repository

import (
	"context"
	"errors"

	"github.com/weiawesome/wes-io-live/devid-service/internal/domain"
)

var (
	ErrBatchNotFound = errors.New("batch not found")
)

// BatchRepository persists exported batch records. Records are never
// updated.
type BatchRepository interface {
	Create(ctx context.Context, batch *domain.Batch) error
	GetByID(ctx context.Context, id string) (*domain.Batch, error)
	List(ctx context.Context, page, pageSize int) ([]domain.Batch, int, error)
}
