package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/pricekeeper/internal/common"
	"github.com/dmitrijs2005/pricekeeper/internal/dbx"
	"github.com/dmitrijs2005/pricekeeper/internal/models"
)

const selectColumns = `SELECT id, description, brand, vendor, price, updated_at FROM infra_item`

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Upsert inserts an item keyed by its natural key. On conflict only price and
// updated_at change; the existing id is kept.
func (r *SQLiteRepository) Upsert(ctx context.Context, it models.Item) error {
	query := `INSERT INTO infra_item (description, brand, vendor, price, updated_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(description, brand, vendor) DO UPDATE SET
				price = excluded.price,
				updated_at = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		it.Description, it.Brand, it.Vendor, it.Price, it.UpdatedAt.Format(models.DateLayout))
	if err != nil {
		return fmt.Errorf("failed to upsert item: %w", err)
	}
	return nil
}

// GetAll returns every record, newest id first.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Item, error) {
	return r.query(ctx, selectColumns+` ORDER BY id DESC`)
}

// GetUpdatedBefore returns the records dated strictly before cutoff, newest id first.
func (r *SQLiteRepository) GetUpdatedBefore(ctx context.Context, cutoff time.Time) ([]models.Item, error) {
	return r.query(ctx, selectColumns+` WHERE updated_at < ? ORDER BY id DESC`, cutoff.Format(models.DateLayout))
}

// GetByID returns a single record.
func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)

	it, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return &it, nil
}

// Update overwrites description, brand, vendor, price and updated_at. It
// expects exactly one row to be affected.
func (r *SQLiteRepository) Update(ctx context.Context, it models.Item) error {
	query := `UPDATE infra_item SET description = ?, brand = ?, vendor = ?, price = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		it.Description, it.Brand, it.Vendor, it.Price, it.UpdatedAt.Format(models.DateLayout), it.ID)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return expectOneRow(res)
}

// DeleteByID removes a record. It expects exactly one row to be affected.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM infra_item WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return expectOneRow(res)
}

func (r *SQLiteRepository) query(ctx context.Context, query string, args ...any) ([]models.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	defer rows.Close()

	result := make([]models.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		result = append(result, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (models.Item, error) {
	var (
		it      models.Item
		updated string
	)
	if err := s.Scan(&it.ID, &it.Description, &it.Brand, &it.Vendor, &it.Price, &updated); err != nil {
		return models.Item{}, err
	}

	t, err := time.ParseInLocation(models.DateLayout, updated, time.Local)
	if err != nil {
		return models.Item{}, fmt.Errorf("bad updated_at %q for item %d: %w", updated, it.ID, err)
	}
	it.UpdatedAt = t
	return it, nil
}

func expectOneRow(res sql.Result) error {
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	if ra != 1 {
		return fmt.Errorf("wrong rows affected count: %d", ra)
	}
	return nil
}
