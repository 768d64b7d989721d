package domain

import (
	"time"

	"github.com/weiawesome/wes-io-live/devid-service/internal/identifier"
)

// BatchModel is the GORM model for the batches table.
type BatchModel struct {
	ID        string    `gorm:"type:varchar(26);primaryKey"`
	Kind      string    `gorm:"type:varchar(10);index;not null"`
	Count     int       `gorm:"not null"`
	ObjectKey string    `gorm:"type:varchar(255);not null"`
	Size      int64     `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for BatchModel.
func (BatchModel) TableName() string {
	return "batches"
}

// ToDomain converts BatchModel to domain Batch.
func (m *BatchModel) ToDomain() *Batch {
	return &Batch{
		ID:        m.ID,
		Kind:      identifier.Kind(m.Kind),
		Count:     m.Count,
		ObjectKey: m.ObjectKey,
		Size:      m.Size,
		CreatedAt: m.CreatedAt,
	}
}

// BatchToModel converts domain Batch to BatchModel.
func BatchToModel(b *Batch) *BatchModel {
	return &BatchModel{
		ID:        b.ID,
		Kind:      string(b.Kind),
		Count:     b.Count,
		ObjectKey: b.ObjectKey,
		Size:      b.Size,
		CreatedAt: b.CreatedAt,
	}
}
