package service

import (
	"context"
	"errors"
	"io"

	"github.com/weiawesome/wes-io-live/devid-service/internal/domain"
	"github.com/weiawesome/wes-io-live/devid-service/internal/identifier"
)

var (
	ErrInvalidCount  = errors.New("invalid batch count")
	ErrBatchNotFound = errors.New("batch not found")
)

// CodecService defines the identifier codec operations exposed over HTTP.
type CodecService interface {
	AnalyzeIMEI(raw string) (*identifier.IMEIView, error)
	ValidateIMEI(raw string) *domain.ValidateResponse
	GenerateIMEI(manufacturer, model string) string
	GenerateBatch(count int) ([]string, error)

	DecodeIMSI(raw string) (*identifier.IMSIView, error)

	GenerateICCID(provider string) string
	DecodeICCID(raw string) (*identifier.ICCIDView, error)
	ValidateICCID(raw string) *domain.ValidateResponse

	ExportBatch(ctx context.Context, count int) (*domain.Batch, error)
	GetBatch(ctx context.Context, id string) (*domain.BatchWithIDs, error)
	OpenBatch(ctx context.Context, id string) (*domain.Batch, io.ReadCloser, error)
	ListBatches(ctx context.Context, page, pageSize int) (*domain.ListBatchesResponse, error)
}
