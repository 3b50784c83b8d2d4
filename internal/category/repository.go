package category

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Category, error)
}
