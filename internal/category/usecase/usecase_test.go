package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/category"
	"github.com/fekuna/omnipos-catalog-service/internal/category/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	categories []model.Category
	err        error
	calls      int
}

func (r *fakeRepo) FindAll(context.Context) ([]model.Category, error) {
	r.calls++
	return r.categories, r.err
}

type mapCache map[string][]byte

func (c mapCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	data, ok := c[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dst)
}

func (c mapCache) SetJSON(_ context.Context, key string, v any, _ time.Duration) error {
	data, err := json.Marshal(v)
	c[key] = data
	return err
}

func (c mapCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c, k)
	}
	return nil
}

func (c mapCache) DeletePattern(context.Context, string) error { return nil }

func categories() []model.Category {
	return []model.Category{
		{ID: "c1", Name: "Grains", Status: "active", ProductCount: 4},
		{ID: "c2", Name: "Beverages", Status: "inactive"},
		{ID: "c3", Name: "Spices"},
	}
}

func TestListCategories(t *testing.T) {
	repo := &fakeRepo{categories: categories()}
	uc := NewCategoryUseCase(repo, mapCache{}, logger.NewNop())

	tests := []struct {
		name    string
		filters *dto.CategoryFilters
		want    []string
	}{
		{"all", nil, []string{"c1", "c2", "c3"}},
		{"active only", &dto.CategoryFilters{ActiveOnly: true}, []string{"c1", "c3"}},
		{"search", &dto.CategoryFilters{Search: " BEV "}, []string{"c2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.ListCategories(context.Background(), tt.filters)
			require.NoError(t, err)
			ids := []string{}
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
	assert.Equal(t, 1, repo.calls, "later calls served from cache")
}

func TestGetCategory(t *testing.T) {
	uc := NewCategoryUseCase(&fakeRepo{categories: categories()}, mapCache{}, logger.NewNop())

	c, err := uc.GetCategory(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Grains", c.Name)

	_, err = uc.GetCategory(context.Background(), "zz")
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestListCategories_RepositoryError(t *testing.T) {
	cache := mapCache{}
	uc := NewCategoryUseCase(&fakeRepo{err: errors.New("down")}, cache, logger.NewNop())

	_, err := uc.ListCategories(context.Background(), nil)
	assert.EqualError(t, err, "down")
	assert.Empty(t, cache, "errors are not cached")
}
