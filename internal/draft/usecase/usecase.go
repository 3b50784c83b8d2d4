package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/batch"
	"github.com/fekuna/omnipos-catalog-service/internal/draft"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/spreadsheet"
	"github.com/fekuna/omnipos-catalog-service/pkg/cache"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	lockAttempts = 3
	lockBackoff  = 50 * time.Millisecond
)

type draftUseCase struct {
	repo     draft.Repository
	products product.UseCase
	locker   cache.Locker
	lockTTL  time.Duration
	logger   logger.ZapLogger
	now      func() time.Time
}

func NewDraftUseCase(repo draft.Repository, products product.UseCase, locker cache.Locker, lockTTL time.Duration, log logger.ZapLogger) draft.UseCase {
	if lockTTL <= 0 {
		lockTTL = 10 * time.Second
	}
	return &draftUseCase{
		repo:     repo,
		products: products,
		locker:   locker,
		lockTTL:  lockTTL,
		logger:   log,
		now:      time.Now,
	}
}

func (uc *draftUseCase) CreateDraft(ctx context.Context, productID string) (*model.Draft, error) {
	rows := batch.NewSheet().Rows()
	if productID != "" {
		detail, err := uc.products.GetProduct(ctx, productID)
		if err != nil {
			return nil, err
		}
		if len(detail.Rows) > 0 {
			rows = detail.Rows
		}
	}

	now := uc.now().UTC()
	d := &model.Draft{
		ID:        uuid.New().String(),
		ProductID: productID,
		Rows:      rows,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	uc.logger.Debug("draft created", zap.String("draft_id", d.ID), zap.String("product_id", productID), zap.Int("rows", len(rows)))
	return d, nil
}

func (uc *draftUseCase) GetDraft(ctx context.Context, id string) (*model.Draft, error) {
	d, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, draft.ErrDraftNotFound
	}
	return d, nil
}

func (uc *draftUseCase) DeleteDraft(ctx context.Context, id string) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return draft.ErrDraftNotFound
	}
	return nil
}

func (uc *draftUseCase) AddRow(ctx context.Context, id string) (*model.Draft, error) {
	return uc.mutate(ctx, id, func(s *batch.Sheet) error {
		s.AddRow()
		return nil
	})
}

func (uc *draftUseCase) UpdateField(ctx context.Context, id string, rowIndex int, field, value string) (*model.Draft, error) {
	f, ok := batch.ParseField(field)
	if !ok {
		return nil, fmt.Errorf("%w: %q", batch.ErrUnknownField, field)
	}
	return uc.mutate(ctx, id, func(s *batch.Sheet) error {
		_, err := s.UpdateField(rowIndex, f, value)
		return err
	})
}

func (uc *draftUseCase) SetActive(ctx context.Context, id, variant, identifier string) (*model.Draft, error) {
	return uc.mutate(ctx, id, func(s *batch.Sheet) error {
		s.SetActive(variant, identifier)
		return nil
	})
}

func (uc *draftUseCase) DeleteRow(ctx context.Context, id string, rowIndex int) (*model.Draft, error) {
	return uc.mutate(ctx, id, func(s *batch.Sheet) error {
		return s.DeleteRow(rowIndex)
	})
}

func (uc *draftUseCase) ImportRows(ctx context.Context, id string, workbook []byte, replace bool) (*model.Draft, error) {
	return uc.mutate(ctx, id, func(s *batch.Sheet) error {
		added, err := spreadsheet.Import(s, bytes.NewReader(workbook), replace)
		if err != nil {
			return err
		}
		uc.logger.Info("rows imported", zap.String("draft_id", id), zap.Int("rows", added), zap.Bool("replace", replace))
		return nil
	})
}

// ExportBatches finalizes a copy of the rows; the stored draft keeps its
// current codes.
func (uc *draftUseCase) ExportBatches(ctx context.Context, id string) ([]byte, error) {
	d, err := uc.GetDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	return spreadsheet.Export(batch.Finalize(d.Rows))
}

func (uc *draftUseCase) Submit(ctx context.Context, id string, header *dto.ProductInput) (*dto.SaveResult, error) {
	if header == nil {
		return nil, fmt.Errorf("%w: missing product header", product.ErrInvalidInput)
	}

	var result *dto.SaveResult
	err := uc.withLock(ctx, id, func() error {
		d, err := uc.GetDraft(ctx, id)
		if err != nil {
			return err
		}

		input := *header
		input.Rows = d.Rows
		if d.ProductID != "" {
			input.ID = d.ProductID
		}

		if input.ID != "" {
			result, err = uc.products.UpdateProduct(ctx, &input)
		} else {
			result, err = uc.products.CreateProduct(ctx, &input)
		}
		if err != nil {
			return err
		}

		if _, err := uc.repo.Delete(ctx, id); err != nil {
			// The product is saved; a leftover draft is purged later.
			uc.logger.Warn("failed to delete submitted draft", zap.String("draft_id", id), zap.Error(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.logger.Info("draft submitted", zap.String("draft_id", id), zap.String("product_id", result.ID))
	return result, nil
}

func (uc *draftUseCase) PurgeStale(ctx context.Context, maxAge time.Duration) (int64, error) {
	n, err := uc.repo.DeleteUpdatedBefore(ctx, uc.now().Add(-maxAge))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		uc.logger.Info("stale drafts purged", zap.Int64("count", n))
	}
	return n, nil
}

// mutate loads the draft under its lock, applies fn to its rows and stores
// the result.
func (uc *draftUseCase) mutate(ctx context.Context, id string, fn func(*batch.Sheet) error) (*model.Draft, error) {
	var out *model.Draft
	err := uc.withLock(ctx, id, func() error {
		d, err := uc.GetDraft(ctx, id)
		if err != nil {
			return err
		}
		sheet := batch.SheetFromRows(d.Rows)
		if err := fn(sheet); err != nil {
			return err
		}
		d.Rows = sheet.Rows()
		d.UpdatedAt = uc.now().UTC()
		if err := uc.repo.Update(ctx, d); err != nil {
			return err
		}
		out = d
		return nil
	})
	return out, err
}

func (uc *draftUseCase) withLock(ctx context.Context, id string, fn func() error) error {
	lockKey := "lock:draft:" + id
	lockValue := uuid.New().String()

	acquired := false
	for i := 0; i < lockAttempts; i++ {
		ok, err := uc.locker.AcquireLock(ctx, lockKey, lockValue, uc.lockTTL)
		if err != nil {
			uc.logger.Error("failed to acquire draft lock", zap.String("draft_id", id), zap.Error(err))
		}
		if ok {
			acquired = true
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockBackoff):
		}
	}
	if !acquired {
		return draft.ErrDraftLocked
	}

	defer func() {
		if err := uc.locker.ReleaseLock(context.Background(), lockKey, lockValue); err != nil {
			uc.logger.Error("failed to release draft lock", zap.String("draft_id", id), zap.Error(err))
		}
	}()

	return fn()
}
