package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/batch"
	"github.com/fekuna/omnipos-catalog-service/internal/draft"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS product_drafts (
    id          TEXT PRIMARY KEY,
    product_id  TEXT NOT NULL DEFAULT '',
    batch_rows  JSONB NOT NULL DEFAULT '[]'::jsonb,
    version     INTEGER NOT NULL DEFAULT 1,
    created_at  TIMESTAMPTZ NOT NULL,
    updated_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_product_drafts_updated_at ON product_drafts (updated_at);
`

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// Migrate creates the drafts table if it is missing.
func (r *PGRepository) Migrate(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, schema)
	return err
}

type draftRecord struct {
	ID        string    `db:"id"`
	ProductID string    `db:"product_id"`
	BatchRows string    `db:"batch_rows"`
	Version   int       `db:"version"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func toRecord(d *model.Draft) (*draftRecord, error) {
	rows := d.Rows
	if rows == nil {
		rows = []batch.BatchRow{}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("encode draft rows: %w", err)
	}
	return &draftRecord{
		ID:        d.ID,
		ProductID: d.ProductID,
		BatchRows: string(data),
		Version:   d.Version,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

func (rec *draftRecord) toModel() (*model.Draft, error) {
	d := &model.Draft{
		ID:        rec.ID,
		ProductID: rec.ProductID,
		Version:   rec.Version,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if err := json.Unmarshal([]byte(rec.BatchRows), &d.Rows); err != nil {
		return nil, fmt.Errorf("decode draft %s rows: %w", rec.ID, err)
	}
	return d, nil
}

func (r *PGRepository) Create(ctx context.Context, d *model.Draft) error {
	rec, err := toRecord(d)
	if err != nil {
		return err
	}
	query := `
        INSERT INTO product_drafts (id, product_id, batch_rows, version, created_at, updated_at)
        VALUES (:id, :product_id, :batch_rows, :version, :created_at, :updated_at)
    `
	_, err = r.DB.NamedExecContext(ctx, query, rec)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Draft, error) {
	var rec draftRecord
	query := `SELECT id, product_id, batch_rows, version, created_at, updated_at FROM product_drafts WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &rec, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rec.toModel()
}

func (r *PGRepository) Update(ctx context.Context, d *model.Draft) error {
	rec, err := toRecord(d)
	if err != nil {
		return err
	}
	query := `
        UPDATE product_drafts
        SET product_id = $1, batch_rows = $2, version = version + 1, updated_at = $3
        WHERE id = $4 AND version = $5
    `
	res, err := r.DB.ExecContext(ctx, query, rec.ProductID, rec.BatchRows, rec.UpdatedAt, rec.ID, rec.Version)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return draft.ErrVersionConflict
	}
	d.Version++
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM product_drafts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *PGRepository) DeleteUpdatedBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM product_drafts WHERE updated_at < $1`, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

var _ draft.Repository = (*PGRepository)(nil)
