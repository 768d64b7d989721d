package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/singleflight"

	"github.com/weiawesome/wes-io-live/devid-service/internal/domain"
	"github.com/weiawesome/wes-io-live/devid-service/internal/generator"
	"github.com/weiawesome/wes-io-live/devid-service/internal/identifier"
	"github.com/weiawesome/wes-io-live/devid-service/internal/repository"
	"github.com/weiawesome/wes-io-live/devid-service/pkg/log"
	"github.com/weiawesome/wes-io-live/devid-service/pkg/storage"
)

const batchKeyPrefix = "batches/"

// Pagination bounds. maxPage keeps (page-1)*pageSize far from overflow.
const (
	defaultPageSize = 20
	maxPageSize     = 100
	maxPage         = 1_000_000
)

type codecService struct {
	imei     generator.Generator
	iccid    generator.Generator
	repo     repository.BatchRepository
	store    storage.Storage
	maxBatch int
	sf       singleflight.Group
}

// NewCodecService creates a new codec service. maxBatch caps the count of
// a single batch.
func NewCodecService(
	imei, iccid generator.Generator,
	repo repository.BatchRepository,
	store storage.Storage,
	maxBatch int,
) CodecService {
	return &codecService{
		imei:     imei,
		iccid:    iccid,
		repo:     repo,
		store:    store,
		maxBatch: maxBatch,
	}
}

// AnalyzeIMEI decodes the fields of raw. A wrong length is an error; a bad
// checksum is reported in the view.
func (s *codecService) AnalyzeIMEI(raw string) (*identifier.IMEIView, error) {
	v, err := identifier.DecodeIMEI(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *codecService) ValidateIMEI(raw string) *domain.ValidateResponse {
	valid, reason := s.imei.Validate(raw)
	return &domain.ValidateResponse{ID: raw, Valid: valid, Reason: reason}
}

// GenerateIMEI ignores model; only the manufacturer selects a TAC.
func (s *codecService) GenerateIMEI(manufacturer, model string) string {
	return s.imei.Generate(manufacturer)
}

func (s *codecService) GenerateBatch(count int) ([]string, error) {
	if err := s.checkCount(count); err != nil {
		return nil, err
	}
	return s.imei.GenerateBatch(count), nil
}

func (s *codecService) DecodeIMSI(raw string) (*identifier.IMSIView, error) {
	v, err := identifier.DecodeIMSI(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *codecService) GenerateICCID(provider string) string {
	return s.iccid.Generate(provider)
}

func (s *codecService) DecodeICCID(raw string) (*identifier.ICCIDView, error) {
	v, err := identifier.DecodeICCID(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *codecService) ValidateICCID(raw string) *domain.ValidateResponse {
	valid, reason := s.iccid.Validate(raw)
	return &domain.ValidateResponse{ID: raw, Valid: valid, Reason: reason}
}

// ExportBatch generates count IMEIs, writes them to the blob store and
// records the export. The blob is removed again if the record cannot be
// written.
func (s *codecService) ExportBatch(ctx context.Context, count int) (*domain.Batch, error) {
	ids, err := s.GenerateBatch(count)
	if err != nil {
		return nil, err
	}

	id := ulid.Make().String()
	ctx, l := log.WithBatch(ctx, id)
	key := batchKeyPrefix + id + ".txt"
	data := generator.EncodeBatch(ids)

	if err := s.store.Write(ctx, key, bytes.NewReader(data), int64(len(data)), generator.BatchContentType); err != nil {
		return nil, fmt.Errorf("failed to write batch: %w", err)
	}

	batch := &domain.Batch{
		ID:        id,
		Kind:      identifier.KindIMEI,
		Count:     len(ids),
		ObjectKey: key,
		Size:      int64(len(data)),
	}
	if err := s.repo.Create(ctx, batch); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			l.Warn().Err(delErr).Str(log.FieldObjectKey, key).Msg("failed to remove orphaned batch object")
		}
		return nil, fmt.Errorf("failed to record batch: %w", err)
	}

	l.Info().
		Int(log.FieldCount, batch.Count).
		Int64(log.FieldBytes, batch.Size).
		Msg("batch exported")
	return batch, nil
}

// GetBatch returns a batch record with its identifiers read back from the
// blob store. Concurrent reads of the same batch share one fetch.
func (s *codecService) GetBatch(ctx context.Context, id string) (*domain.BatchWithIDs, error) {
	result, err, _ := s.sf.Do(id, func() (interface{}, error) {
		return s.loadBatch(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	shared, ok := result.(*domain.BatchWithIDs)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from singleflight")
	}
	out := *shared
	out.IDs = slices.Clone(shared.IDs)
	return &out, nil
}

func (s *codecService) loadBatch(ctx context.Context, id string) (*domain.BatchWithIDs, error) {
	batch, rc, err := s.OpenBatch(ctx, id)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	ids, err := generator.DecodeBatch(rc)
	if err != nil {
		return nil, err
	}
	return &domain.BatchWithIDs{Batch: *batch, IDs: ids}, nil
}

// OpenBatch returns a batch record and a reader over its raw contents. The
// caller closes the reader.
func (s *codecService) OpenBatch(ctx context.Context, id string) (*domain.Batch, io.ReadCloser, error) {
	batch, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBatchNotFound) {
			return nil, nil, ErrBatchNotFound
		}
		return nil, nil, fmt.Errorf("failed to get batch: %w", err)
	}

	rc, err := s.store.Read(ctx, batch.ObjectKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: object %s is missing", ErrBatchNotFound, batch.ObjectKey)
		}
		return nil, nil, fmt.Errorf("failed to read batch: %w", err)
	}
	return batch, rc, nil
}

func (s *codecService) ListBatches(ctx context.Context, page, pageSize int) (*domain.ListBatchesResponse, error) {
	page = min(max(page, 1), maxPage)
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	batches, total, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}

	return &domain.ListBatchesResponse{
		Batches:    batches,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: (total + pageSize - 1) / pageSize,
	}, nil
}

func (s *codecService) checkCount(count int) error {
	if count < 0 || count > s.maxBatch {
		return fmt.Errorf("%w: must be between 0 and %d, got %d", ErrInvalidCount, s.maxBatch, count)
	}
	return nil
}
