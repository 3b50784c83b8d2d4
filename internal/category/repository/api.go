package repository

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/catalogapi"
	"github.com/fekuna/omnipos-catalog-service/internal/category"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type APIRepository struct {
	Client *catalogapi.Client
}

func NewAPIRepository(client *catalogapi.Client) *APIRepository {
	return &APIRepository{Client: client}
}

func (r *APIRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	return r.Client.ListCategories(ctx)
}

var _ category.Repository = (*APIRepository)(nil)
