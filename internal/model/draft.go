package model

import (
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/batch"
)

// Draft is a batch table being edited on the server. ProductID is empty for
// a product that does not exist yet.
type Draft struct {
	ID        string           `db:"id" json:"id"`
	ProductID string           `db:"product_id" json:"product_id,omitempty"`
	Rows      []batch.BatchRow `db:"-" json:"rows"`
	Version   int              `db:"version" json:"version"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt time.Time        `db:"updated_at" json:"updated_at"`
}
