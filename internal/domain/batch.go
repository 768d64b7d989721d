package domain

import (
	"time"

	"github.com/weiawesome/wes-io-live/devid-service/internal/identifier"
)

// Batch is an exported run of generated identifiers. The identifiers live
// in the blob store under ObjectKey, one per line.
type Batch struct {
	ID        string          `json:"id"`
	Kind      identifier.Kind `json:"kind"`
	Count     int             `json:"count"`
	ObjectKey string          `json:"object_key"`
	Size      int64           `json:"size"`
	CreatedAt time.Time       `json:"created_at"`
}

// BatchWithIDs is a batch together with its read-back contents.
type BatchWithIDs struct {
	Batch
	IDs []string `json:"ids"`
}

// ListBatchesResponse represents a paginated list response.
type ListBatchesResponse struct {
	Batches    []Batch `json:"batches"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	TotalPages int     `json:"total_pages"`
}
