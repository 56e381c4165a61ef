package transfer

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/dmitrijs2005/pricekeeper/internal/common"
	"github.com/dmitrijs2005/pricekeeper/internal/models"
	"github.com/dmitrijs2005/pricekeeper/internal/money"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Export writes the store's loaded set, in its current order, to path.
// Any file-system or write error wraps common.ErrTransferFatal.
func (t *Transfer) Export(ctx context.Context, path string) error {
	loaded := t.store.Loaded()

	if err := writeFile(path, loaded); err != nil {
		t.logger.Error(ctx, "export failed", "path", path, "error", err)
		return fmt.Errorf("%w: %w", common.ErrTransferFatal, err)
	}
	t.logger.Info(ctx, "export written", "path", path, "rows", len(loaded))
	return nil
}

func writeFile(path string, list []models.Item) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	bw := transform.NewWriter(f, unicode.UTF8BOM.NewEncoder())
	w := csv.NewWriter(bw)
	w.Comma = Comma

	if err := w.Write(ExportHeader); err != nil {
		return err
	}
	for _, it := range list {
		rec := []string{
			it.Description,
			it.Brand,
			it.Vendor,
			money.FormatWire(it.Price),
			it.UpdatedAt.Format(models.DateLayout),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return bw.Close()
}
