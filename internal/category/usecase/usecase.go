package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/category"
	"github.com/fekuna/omnipos-catalog-service/internal/category/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/cache"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"go.uber.org/zap"
)

const (
	cacheKey = "categories:all"
	cacheTTL = 10 * time.Minute
)

type categoryUseCase struct {
	repo   category.Repository
	cache  cache.Cache
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, cache cache.Cache, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, error) {
	all, err := uc.all(ctx)
	if err != nil {
		return nil, err
	}
	if filters == nil {
		return all, nil
	}

	search := strings.ToLower(strings.TrimSpace(filters.Search))
	out := make([]model.Category, 0, len(all))
	for _, c := range all {
		if filters.ActiveOnly && !c.IsActive() {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(c.Name), search) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	all, err := uc.all(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, category.ErrCategoryNotFound
}

// all returns every category, from cache when possible.
func (uc *categoryUseCase) all(ctx context.Context) ([]model.Category, error) {
	var cached []model.Category
	found, err := uc.cache.GetJSON(ctx, cacheKey, &cached)
	if err != nil {
		uc.logger.Warn("category cache read failed", zap.Error(err))
	}
	if found {
		return cached, nil
	}

	categories, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.cache.SetJSON(ctx, cacheKey, categories, cacheTTL); err != nil {
		uc.logger.Warn("category cache write failed", zap.Error(err))
	}
	return categories, nil
}
