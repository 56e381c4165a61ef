package transfer

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/pricekeeper/internal/logging"
	"github.com/dmitrijs2005/pricekeeper/internal/models"
)

// Comma is the CSV field delimiter in both directions.
const Comma = ';'

// ExportHeader is the fixed first row of exported files.
var ExportHeader = []string{"descrição", "marca", "fornecedor", "preço", "última atualização"}

// Store is what the transfer needs from the catalog store.
type Store interface {
	Loaded() []models.Item
	UpsertMany(ctx context.Context, batch []models.Item) (int, error)
}

// Transfer runs imports and exports against one store.
type Transfer struct {
	store  Store
	logger logging.Logger
}

// New returns a Transfer working against store.
func New(store Store, logger logging.Logger) *Transfer {
	return &Transfer{store: store, logger: logger}
}

// RowError describes one skipped CSV row. Row is 1-based and counts data
// rows only (the header is not row 1).
type RowError struct {
	Row    int
	Field  string
	Value  string
	Reason string
}

func (e RowError) String() string {
	return fmt.Sprintf("row %d: %s %q: %s", e.Row, e.Field, e.Value, e.Reason)
}

// Summary is the outcome of a committed import.
type Summary struct {
	ID       string
	Imported int
	Skipped  []RowError

	// ReloadErr is set when the rows were committed but the store could
	// not reload its loaded set afterwards.
	ReloadErr error
}

// Message renders the summary for display.
func (s *Summary) Message() string {
	var b strings.Builder
	if len(s.Skipped) == 0 {
		fmt.Fprintf(&b, "CSV imported: %d rows.", s.Imported)
	} else {
		fmt.Fprintf(&b, "CSV imported: %d rows, %d skipped.", s.Imported, len(s.Skipped))
		for _, re := range s.Skipped {
			b.WriteString("\n  ")
			b.WriteString(re.String())
		}
	}
	if s.ReloadErr != nil {
		fmt.Fprintf(&b, "\nThe rows are saved, but the list could not be reloaded: %v", s.ReloadErr)
	}
	return b.String()
}
