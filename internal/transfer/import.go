package transfer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/pricekeeper/internal/common"
	"github.com/dmitrijs2005/pricekeeper/internal/models"
	"github.com/dmitrijs2005/pricekeeper/internal/money"
	"github.com/google/uuid"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// column positions of an import row
const (
	colDescription = iota
	colBrand
	colVendor
	colPrice
	colUpdatedAt
)

// Import loads the CSV file at path into the store.
//
// The header row is skipped without inspection. Rows whose price does not
// parse, or whose description or vendor is blank, are reported in the
// Summary and skipped. All other rows are upserted in a single transaction.
// Failing to open or parse the file, or to commit, returns an error wrapping
// common.ErrTransferFatal and persists nothing. A failed reload after a
// successful commit is not fatal; it is kept in Summary.ReloadErr.
func (t *Transfer) Import(ctx context.Context, path string) (*Summary, error) {
	sum := &Summary{ID: uuid.NewString(), Skipped: make([]RowError, 0)}
	log := t.logger.With("import_id", sum.ID, "path", path)

	f, err := os.Open(path)
	if err != nil {
		log.Error(ctx, "open failed", "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrTransferFatal, err)
	}
	defer f.Close()

	batch, skipped, err := readRows(f)
	if err != nil {
		log.Error(ctx, "read failed", "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrTransferFatal, err)
	}
	for _, re := range skipped {
		log.Warn(ctx, "row skipped", "row", re.Row, "field", re.Field, "value", re.Value, "reason", re.Reason)
	}

	n, err := t.store.UpsertMany(ctx, batch)
	if err != nil && !errors.Is(err, common.ErrReload) {
		log.Error(ctx, "import rolled back", "rows", len(batch), "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrTransferFatal, err)
	}

	sum.Imported = n
	sum.Skipped = skipped
	if err != nil {
		sum.ReloadErr = err
		log.Warn(ctx, "import committed, reload failed", "imported", n, "error", err)
	}
	log.Info(ctx, "import committed", "imported", n, "skipped", len(skipped))
	return sum, nil
}

func readRows(r io.Reader) ([]models.Item, []RowError, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
	cr.Comma = Comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	batch := make([]models.Item, 0)
	skipped := make([]RowError, 0)

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return batch, skipped, nil
		}
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read row %d: %w", row, err)
		}

		it, rowErr := parseRow(rec, row)
		if rowErr != nil {
			skipped = append(skipped, *rowErr)
			continue
		}
		batch = append(batch, it)
	}

	return batch, skipped, nil
}

func parseRow(rec []string, row int) (models.Item, *RowError) {
	rawPrice := field(rec, colPrice)
	price, err := money.Parse(rawPrice)
	if err != nil {
		return models.Item{}, &RowError{Row: row, Field: "price", Value: rawPrice, Reason: "invalid price"}
	}

	it := models.Item{
		Description: field(rec, colDescription),
		Brand:       field(rec, colBrand),
		Vendor:      field(rec, colVendor),
		Price:       price,
	}
	if d, err := time.ParseInLocation(models.DateLayout, field(rec, colUpdatedAt), time.Local); err == nil {
		it.UpdatedAt = d
	}

	if err := it.Validate(); err != nil {
		switch {
		case it.Description == "":
			return models.Item{}, &RowError{Row: row, Field: "description", Reason: "empty"}
		case it.Vendor == "":
			return models.Item{}, &RowError{Row: row, Field: "vendor", Reason: "empty"}
		default:
			return models.Item{}, &RowError{Row: row, Field: "price", Value: rawPrice, Reason: "negative price"}
		}
	}
	return it, nil
}

func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
