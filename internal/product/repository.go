package product

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/catalogapi"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

// Repository is the product store. FindByID returns nil, nil for a product
// that does not exist.
type Repository interface {
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, token string, p *model.ProductPayload) (*model.Product, error)
	Update(ctx context.Context, token, id string, p *model.ProductPayload) (*model.Product, error)
	Delete(ctx context.Context, token, id string) error

	UploadImages(ctx context.Context, files []catalogapi.ImageFile) ([]string, error)
}
