package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fekuna/omnipos-catalog-service/internal/batch"
	"github.com/fekuna/omnipos-catalog-service/internal/draft"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "product_id", "batch_rows", "version", "created_at", "updated_at"}

func newMock(t *testing.T) (*PGRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPGRepository(sqlx.NewDb(db, "pgx")), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO product_drafts")).
		WithArgs("d1", "", `[{"id":1,"variant":"1kg","stock":"","cost_price":"","selling_price":"","mrp_price":"","gst_percent":"","units_sold":"","gst_amount":"0","profit":"0","amt":"0","net_cost":"0","net_amt":"0","active":false}]`, 1, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &model.Draft{
		ID:        "d1",
		Rows:      []batch.BatchRow{{ID: 1, Variant: "1kg"}},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM product_drafts WHERE id = $1")).
		WithArgs("d1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("d1", "p1", []byte(`[{"id":3,"variant":"5kg","stock":"2","batch_id":"A1","active":true,"amt":"800"}]`), 4, now, now))

	d, err := repo.FindByID(context.Background(), "d1")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "p1", d.ProductID)
	assert.Equal(t, 4, d.Version)
	require.Len(t, d.Rows, 1)
	assert.Equal(t, 3, d.Rows[0].ID)
	assert.Equal(t, "A1", d.Rows[0].BatchID)
	assert.True(t, d.Rows[0].Active)
	assert.Equal(t, "800", d.Rows[0].Amt.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_Missing(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM product_drafts WHERE id = $1")).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(columns))

	d, err := repo.FindByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestUpdate(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now().UTC()
	d := &model.Draft{ID: "d1", ProductID: "p1", Rows: nil, Version: 2, UpdatedAt: now}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE product_drafts")).
		WithArgs("p1", "[]", now, "d1", 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), d))
	assert.Equal(t, 3, d.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_StaleVersion(t *testing.T) {
	repo, mock := newMock(t)
	d := &model.Draft{ID: "d1", Version: 2}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE product_drafts")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), d)
	assert.ErrorIs(t, err, draft.ErrVersionConflict)
	assert.Equal(t, 2, d.Version)
}

func TestDelete(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM product_drafts WHERE id = $1")).
		WithArgs("d1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM product_drafts WHERE id = $1")).
		WithArgs("d1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Delete(context.Background(), "d1")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.Delete(context.Background(), "d1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteUpdatedBefore(t *testing.T) {
	repo, mock := newMock(t)
	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM product_drafts WHERE updated_at < $1")).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 5))

	n, err := repo.DeleteUpdatedBefore(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}

func TestMigrate(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS product_drafts")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, repo.Migrate(context.Background()))
}
