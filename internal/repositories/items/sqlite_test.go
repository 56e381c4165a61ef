package items

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/pricekeeper/internal/common"
	"github.com/dmitrijs2005/pricekeeper/internal/models"
	"github.com/dmitrijs2005/pricekeeper/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "items.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func day(s string) time.Time {
	t, err := time.ParseInLocation(models.DateLayout, s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func TestUpsert_InsertThenOverwrite(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	it := models.Item{Description: "Cabo 2,5mm", Brand: "Sil", Vendor: "Eletro Sul", Price: 3.5, UpdatedAt: day("2026-01-10")}
	require.NoError(t, r.Upsert(ctx, it))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	id := all[0].ID

	it.Price = 4.25
	it.UpdatedAt = day("2026-10-17")
	require.NoError(t, r.Upsert(ctx, it))

	all, err = r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, id, all[0].ID)
	assert.InDelta(t, 4.25, all[0].Price, 1e-9)
	assert.Equal(t, "2026-10-17", all[0].UpdatedAt.Format(models.DateLayout))
}

func TestGetAll_NewestIDFirst(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	for _, d := range []string{"a", "b", "c"} {
		require.NoError(t, r.Upsert(ctx, models.Item{Description: d, Vendor: "v", Price: 1, UpdatedAt: day("2026-10-01")}))
	}

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{all[0].Description, all[1].Description, all[2].Description})
	assert.Greater(t, all[0].ID, all[1].ID)
}

func TestGetAll_EmptyIsNotNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	all, err := r.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestGetUpdatedBefore(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, models.Item{Description: "old", Vendor: "v", UpdatedAt: day("2026-08-01")}))
	require.NoError(t, r.Upsert(ctx, models.Item{Description: "edge", Vendor: "v", UpdatedAt: day("2026-09-17")}))
	require.NoError(t, r.Upsert(ctx, models.Item{Description: "new", Vendor: "v", UpdatedAt: day("2026-10-17")}))

	got, err := r.GetUpdatedBefore(ctx, day("2026-09-17"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "old", got[0].Description)
}

func TestGetByID_SuccessAndNotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, models.Item{Description: "d", Brand: "b", Vendor: "v", Price: 2, UpdatedAt: day("2026-10-01")}))
	all, err := r.GetAll(ctx)
	require.NoError(t, err)

	got, err := r.GetByID(ctx, all[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.Key{Description: "d", Brand: "b", Vendor: "v"}, got.Key())

	_, err = r.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdate_SuccessAndNotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, models.Item{Description: "d", Vendor: "v", Price: 2, UpdatedAt: day("2026-10-01")}))
	all, err := r.GetAll(ctx)
	require.NoError(t, err)

	upd := models.Item{ID: all[0].ID, Description: "d2", Brand: "b2", Vendor: "v2", Price: 3, UpdatedAt: day("2026-10-17")}
	require.NoError(t, r.Update(ctx, upd))

	got, err := r.GetByID(ctx, upd.ID)
	require.NoError(t, err)
	assert.True(t, got.SameContent(upd))

	upd.ID = 9999
	assert.ErrorIs(t, r.Update(ctx, upd), common.ErrNotFound)
}

func TestUpdate_TripleCollision(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, models.Item{Description: "a", Vendor: "v", UpdatedAt: day("2026-10-01")}))
	require.NoError(t, r.Upsert(ctx, models.Item{Description: "b", Vendor: "v", UpdatedAt: day("2026-10-01")}))
	all, err := r.GetAll(ctx)
	require.NoError(t, err)

	err = r.Update(ctx, models.Item{ID: all[0].ID, Description: "a", Vendor: "v", UpdatedAt: day("2026-10-17")})
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteByID_SuccessAndNotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, models.Item{Description: "x", Vendor: "v", UpdatedAt: day("2026-10-01")}))
	all, err := r.GetAll(ctx)
	require.NoError(t, err)

	require.NoError(t, r.DeleteByID(ctx, all[0].ID))
	assert.ErrorIs(t, r.DeleteByID(ctx, all[0].ID), common.ErrNotFound)
}

func TestGetAll_DBError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,.*FROM\s+infra_item\s+ORDER\s+BY\s+id\s+DESC$`).
		WillReturnError(errors.New("db down"))

	_, err = NewSQLiteRepository(db).GetAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScan_BadDate(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "description", "brand", "vendor", "price", "updated_at"}).
		AddRow(1, "d", "", "v", 1.0, "17/10/2026")
	mock.ExpectQuery(`FROM\s+infra_item`).WillReturnRows(rows)

	_, err = NewSQLiteRepository(db).GetAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad updated_at")
}

func TestDeleteByID_RowsAffectedError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`^DELETE\s+FROM\s+infra_item\s+WHERE\s+id\s*=\s*\?$`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewErrorResult(errors.New("no count")))

	err = NewSQLiteRepository(db).DeleteByID(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rows affected")
}
