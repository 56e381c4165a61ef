// Package models defines the catalog record and its natural key.
package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dmitrijs2005/pricekeeper/internal/common"
)

// DateLayout is how updated_at is stored and exchanged (calendar day only).
const DateLayout = "2006-01-02"

// PriceEpsilon is the tolerance under which two prices are considered equal.
// Prices are shown with two decimals, so anything below half a cent is
// formatting noise.
const PriceEpsilon = 0.005

// Item is one price record of the catalog.
type Item struct {
	ID          int64
	Description string
	Brand       string // empty means "no brand"
	Vendor      string
	Price       float64
	UpdatedAt   time.Time
}

// Key is the natural key of an Item. It is unique across the catalog.
type Key struct {
	Description string
	Brand       string
	Vendor      string
}

func (i Item) Key() Key {
	return Key{Description: i.Description, Brand: i.Brand, Vendor: i.Vendor}
}

// NewItem builds an unsaved Item from user input, trimming the text fields,
// and validates it.
func NewItem(description, brand, vendor string, price float64) (Item, error) {
	it := Item{
		Description: strings.TrimSpace(description),
		Brand:       strings.TrimSpace(brand),
		Vendor:      strings.TrimSpace(vendor),
		Price:       price,
	}
	return it, it.Validate()
}

// Validate checks the required fields and the price range.
func (i Item) Validate() error {
	if i.Description == "" {
		return fmt.Errorf("%w: description is empty", common.ErrValidation)
	}
	if i.Vendor == "" {
		return fmt.Errorf("%w: vendor is empty", common.ErrValidation)
	}
	if math.IsNaN(i.Price) || math.IsInf(i.Price, 0) || i.Price < 0 {
		return fmt.Errorf("%w: price must be a non-negative number", common.ErrValidation)
	}
	return nil
}

// SameContent reports whether o carries the same description, brand, vendor
// and price (within PriceEpsilon) as i. Id and date are ignored.
func (i Item) SameContent(o Item) bool {
	return i.Key() == o.Key() && math.Abs(i.Price-o.Price) < PriceEpsilon
}

// Today truncates t to its calendar day in t's location.
func Today(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// OutdatedCutoff returns the first day that is not considered outdated:
// records updated strictly before it are stale. It is one calendar month
// before the day of now.
func OutdatedCutoff(now time.Time) time.Time {
	return Today(now).AddDate(0, -1, 0)
}
