package draft

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, d *model.Draft) error
	// FindByID returns nil, nil when the draft does not exist.
	FindByID(ctx context.Context, id string) (*model.Draft, error)
	// Update writes d if its Version is still current and bumps Version.
	// A stale version yields ErrVersionConflict.
	Update(ctx context.Context, d *model.Draft) error
	Delete(ctx context.Context, id string) (bool, error)
	DeleteUpdatedBefore(ctx context.Context, before time.Time) (int64, error)
}
