package items

import (
	"context"
	"time"

	"github.com/dmitrijs2005/pricekeeper/internal/models"
)

// Repository describes the operations on catalog records.
type Repository interface {
	// Upsert inserts the item or, when its natural key already exists,
	// overwrites price and updated_at of that row.
	Upsert(ctx context.Context, item models.Item) error

	// GetAll returns every record, newest id first.
	GetAll(ctx context.Context) ([]models.Item, error)

	// GetUpdatedBefore returns records whose updated_at is strictly before
	// cutoff, newest id first.
	GetUpdatedBefore(ctx context.Context, cutoff time.Time) ([]models.Item, error)

	// GetByID returns one record or common.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Item, error)

	// Update overwrites all mutable fields of the record with item.ID.
	Update(ctx context.Context, item models.Item) error

	// DeleteByID physically removes a record.
	DeleteByID(ctx context.Context, id int64) error
}
