package repository

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-catalog-service/internal/catalogapi"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
)

// APIRepository stores products through the external catalog API.
type APIRepository struct {
	Client *catalogapi.Client
}

func NewAPIRepository(client *catalogapi.Client) *APIRepository {
	return &APIRepository{Client: client}
}

func (r *APIRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	p, err := r.Client.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, catalogapi.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *APIRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	return r.Client.ListProducts(ctx)
}

func (r *APIRepository) Create(ctx context.Context, token string, p *model.ProductPayload) (*model.Product, error) {
	return r.Client.CreateProduct(ctx, token, p)
}

func (r *APIRepository) Update(ctx context.Context, token, id string, p *model.ProductPayload) (*model.Product, error) {
	saved, err := r.Client.UpdateProduct(ctx, token, id, p)
	if errors.Is(err, catalogapi.ErrNotFound) {
		return nil, product.ErrProductNotFound
	}
	return saved, err
}

func (r *APIRepository) Delete(ctx context.Context, token, id string) error {
	err := r.Client.DeleteProduct(ctx, token, id)
	if errors.Is(err, catalogapi.ErrNotFound) {
		return product.ErrProductNotFound
	}
	return err
}

func (r *APIRepository) UploadImages(ctx context.Context, files []catalogapi.ImageFile) ([]string, error) {
	return r.Client.UploadImages(ctx, files)
}

var _ product.Repository = (*APIRepository)(nil)
