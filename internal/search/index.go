// Package search narrows the store's loaded set down to what matches a
// free-text query. It never touches the store itself.
package search

import (
	"strings"

	"github.com/dmitrijs2005/pricekeeper/internal/models"
)

// Index keeps the loaded set, the last query and the visible result.
type Index struct {
	source  []models.Item
	query   string
	visible []models.Item
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{source: make([]models.Item, 0), visible: make([]models.Item, 0)}
}

// Reset installs a freshly loaded set and re-applies the current query to it.
func (ix *Index) Reset(loaded []models.Item) []models.Item {
	ix.source = loaded
	ix.recompute()
	return ix.Visible()
}

// Search filters the loaded set by query. Matching is a case-insensitive
// substring test on description, brand and vendor; order is preserved. The
// filter is recomputed only when query differs from the previous one.
func (ix *Index) Search(query string) []models.Item {
	if query != ix.query {
		ix.query = query
		ix.recompute()
	}
	return ix.Visible()
}

// Query returns the query the visible set was computed with.
func (ix *Index) Query() string { return ix.query }

// Visible returns a copy of the current visible set.
func (ix *Index) Visible() []models.Item {
	out := make([]models.Item, len(ix.visible))
	copy(out, ix.visible)
	return out
}

func (ix *Index) recompute() {
	needle := strings.ToLower(strings.TrimSpace(ix.query))
	if needle == "" {
		ix.visible = ix.source
		return
	}

	visible := make([]models.Item, 0, len(ix.source))
	for _, it := range ix.source {
		if matches(it, needle) {
			visible = append(visible, it)
		}
	}
	ix.visible = visible
}

func matches(it models.Item, needle string) bool {
	return strings.Contains(strings.ToLower(it.Description), needle) ||
		strings.Contains(strings.ToLower(it.Brand), needle) ||
		strings.Contains(strings.ToLower(it.Vendor), needle)
}
