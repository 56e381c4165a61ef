package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/pricekeeper/internal/common"
	"github.com/dmitrijs2005/pricekeeper/internal/dbx"
	"github.com/dmitrijs2005/pricekeeper/internal/logging"
	"github.com/dmitrijs2005/pricekeeper/internal/models"
	"github.com/dmitrijs2005/pricekeeper/internal/repositories/items"
)

// CatalogService is the single source of truth for catalog records. All
// mutations go through it, and it caches the most recently loaded set.
//
// It is not safe for concurrent use; callers serialize access.
type CatalogService struct {
	db     *sql.DB
	repo   items.Repository
	logger logging.Logger
	now    func() time.Time
	loaded []models.Item
}

// Option customizes a CatalogService.
type Option func(*CatalogService)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *CatalogService) { s.now = now }
}

// NewCatalogService binds the store to an open database handle. The handle
// stays owned by the caller.
func NewCatalogService(db *sql.DB, logger logging.Logger, opts ...Option) *CatalogService {
	s := &CatalogService{
		db:     db,
		repo:   items.NewSQLiteRepository(db),
		logger: logger,
		now:    time.Now,
		loaded: make([]models.Item, 0),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Loaded returns a copy of the current loaded set.
func (s *CatalogService) Loaded() []models.Item {
	out := make([]models.Item, len(s.loaded))
	copy(out, s.loaded)
	return out
}

// LoadAll reads every record, newest id first, and makes it the loaded set.
func (s *CatalogService) LoadAll(ctx context.Context) ([]models.Item, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error(ctx, "load all failed", "error", err)
		return nil, storageError(err)
	}
	s.loaded = list
	return s.Loaded(), nil
}

// LoadOutdated reads the records last updated more than one calendar month
// ago and makes them the loaded set. Switching back to the full list is up
// to the caller.
func (s *CatalogService) LoadOutdated(ctx context.Context) ([]models.Item, error) {
	cutoff := models.OutdatedCutoff(s.now())
	list, err := s.repo.GetUpdatedBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error(ctx, "load outdated failed", "error", err)
		return nil, storageError(err)
	}
	s.loaded = list
	return s.Loaded(), nil
}

// Get returns one record by id.
func (s *CatalogService) Get(ctx context.Context, id int64) (*models.Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("item %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, storageError(err)
	}
	return it, nil
}

// Upsert stores a record keyed by (description, brand, vendor). An existing
// record with the same key gets the new price and today's date and keeps its
// id. The loaded set is refreshed with LoadAll on success only.
func (s *CatalogService) Upsert(ctx context.Context, description, brand, vendor string, price float64) error {
	it, err := models.NewItem(description, brand, vendor, price)
	if err != nil {
		return err
	}
	it.UpdatedAt = models.Today(s.now())

	if err := s.repo.Upsert(ctx, it); err != nil {
		s.logger.Error(ctx, "upsert failed", "description", it.Description, "vendor", it.Vendor, "error", err)
		return storageError(err)
	}
	s.logger.Info(ctx, "item upserted", "description", it.Description, "brand", it.Brand, "vendor", it.Vendor, "price", it.Price)

	return s.refresh(ctx)
}

// Update overwrites every field of record id. It returns common.ErrNoChange
// without writing when nothing differs from the stored record.
func (s *CatalogService) Update(ctx context.Context, id int64, description, brand, vendor string, price float64) error {
	it, err := models.NewItem(description, brand, vendor, price)
	if err != nil {
		return err
	}
	it.ID = id

	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if current.SameContent(it) {
		return fmt.Errorf("item %d: %w", id, common.ErrNoChange)
	}

	it.UpdatedAt = models.Today(s.now())
	err = s.repo.Update(ctx, it)
	if errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("item %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		s.logger.Error(ctx, "update failed", "id", id, "error", err)
		return storageError(err)
	}
	s.logger.Info(ctx, "item updated", "id", id)

	return s.refresh(ctx)
}

// Delete physically removes record id.
func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	err := s.repo.DeleteByID(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("item %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		s.logger.Error(ctx, "delete failed", "id", id, "error", err)
		return storageError(err)
	}
	s.logger.Info(ctx, "item deleted", "id", id)

	return s.refresh(ctx)
}

// UpsertMany upserts a batch in one transaction: either every item is
// stored or none is. Items keep their UpdatedAt; a zero date means today.
// It returns the number of items written. When the commit succeeds but the
// refresh that follows fails, the count is returned with an error wrapping
// common.ErrReload.
func (s *CatalogService) UpsertMany(ctx context.Context, batch []models.Item) (int, error) {
	today := models.Today(s.now())

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := items.NewSQLiteRepository(tx)
		for _, it := range batch {
			if err := it.Validate(); err != nil {
				return err
			}
			if it.UpdatedAt.IsZero() {
				it.UpdatedAt = today
			}
			if err := repo.Upsert(ctx, it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error(ctx, "batch upsert rolled back", "size", len(batch), "error", err)
		if errors.Is(err, common.ErrValidation) {
			return 0, err
		}
		return 0, storageError(err)
	}
	s.logger.Info(ctx, "batch upserted", "size", len(batch))

	return len(batch), s.refresh(ctx)
}

// refresh reloads the full list after a committed write.
func (s *CatalogService) refresh(ctx context.Context) error {
	if _, err := s.LoadAll(ctx); err != nil {
		return fmt.Errorf("%w: %w", common.ErrReload, err)
	}
	return nil
}

func storageError(err error) error {
	return fmt.Errorf("%w: %w", common.ErrStorage, err)
}
