package product

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-catalog-service/internal/batch"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidInput    = errors.New("invalid product input")
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.ProductInput) (*dto.SaveResult, error)
	UpdateProduct(ctx context.Context, input *dto.ProductInput) (*dto.SaveResult, error)
	GetProduct(ctx context.Context, id string) (*dto.ProductDetail, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.ProductSummary, int, error)
	DeleteProduct(ctx context.Context, id string) error

	// Batch table helpers for the editor
	PreviewVariants(rows []batch.BatchRow) ([]batch.BatchRow, []batch.VariantGroup)
	ValidateRows(rows []batch.BatchRow) error

	InvalidateProducts(ctx context.Context, ids []string) error
}
