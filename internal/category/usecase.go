package category

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-catalog-service/internal/category/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

var ErrCategoryNotFound = errors.New("category not found")

type UseCase interface {
	ListCategories(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
}
