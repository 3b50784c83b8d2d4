package draft

import (
	"context"
	"errors"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
)

var (
	ErrDraftNotFound   = errors.New("draft not found")
	ErrDraftLocked     = errors.New("draft is locked by another request")
	ErrVersionConflict = errors.New("draft was modified concurrently")
)

// UseCase edits batch tables held on the server between requests. Every
// mutation runs under a per-draft lock, so edits to one draft are applied
// one at a time.
type UseCase interface {
	CreateDraft(ctx context.Context, productID string) (*model.Draft, error)
	GetDraft(ctx context.Context, id string) (*model.Draft, error)
	DeleteDraft(ctx context.Context, id string) error

	AddRow(ctx context.Context, id string) (*model.Draft, error)
	UpdateField(ctx context.Context, id string, rowIndex int, field, value string) (*model.Draft, error)
	SetActive(ctx context.Context, id, variant, identifier string) (*model.Draft, error)
	DeleteRow(ctx context.Context, id string, rowIndex int) (*model.Draft, error)

	ImportRows(ctx context.Context, id string, workbook []byte, replace bool) (*model.Draft, error)
	ExportBatches(ctx context.Context, id string) ([]byte, error)

	// Submit saves the draft's rows with header as a product and removes the
	// draft. A draft created from a product updates that product.
	Submit(ctx context.Context, id string, header *dto.ProductInput) (*dto.SaveResult, error)

	PurgeStale(ctx context.Context, maxAge time.Duration) (int64, error)
}
