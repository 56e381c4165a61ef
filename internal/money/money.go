// Package money converts between catalog prices and their text forms.
//
// Two renderings exist: the display form groups thousands the way the
// pt-BR locale does ("1.234,50"), and the wire form used in CSV files keeps
// the decimal comma but drops grouping ("1234,50").
package money

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/pricekeeper/internal/common"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// numericRegex accepts plain decimals after separator normalization.
var numericRegex = regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`)

// groupedRegex is the integer part of a comma-decimal price when it uses
// dot grouping: groups after the first are exactly three digits wide.
var groupedRegex = regexp.MustCompile(`^[+-]?\d{1,3}(\.\d{3})+$`)

var displayPrinter = message.NewPrinter(language.BrazilianPortuguese)

// Parse reads a price typed by a user or found in a CSV cell.
//
// A comma, when present, is the decimal separator and dots may only group
// thousands before it ("1.234,50"). Without a comma the dot is the decimal
// separator ("1234.50"). An optional "R$" prefix is ignored.
func Parse(text string) (float64, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	if s == "" {
		return 0, fmt.Errorf("%w: empty price", common.ErrInvalidFormat)
	}

	if whole, frac, ok := strings.Cut(s, ","); ok {
		if strings.ContainsAny(frac, ".,") {
			return 0, fmt.Errorf("%w: %q is not a price", common.ErrInvalidFormat, text)
		}
		if strings.Contains(whole, ".") {
			if !groupedRegex.MatchString(whole) {
				return 0, fmt.Errorf("%w: %q has misplaced thousands separators", common.ErrInvalidFormat, text)
			}
			whole = strings.ReplaceAll(whole, ".", "")
		}
		switch {
		case frac == "":
			s = whole
		case whole == "" || whole == "+" || whole == "-":
			s = whole + "0." + frac
		default:
			s = whole + "." + frac
		}
	}

	if !numericRegex.MatchString(s) {
		return 0, fmt.Errorf("%w: %q is not a price", common.ErrInvalidFormat, text)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", common.ErrInvalidFormat, text, err)
	}
	v, _ := d.Float64()
	return v, nil
}

// Format renders a price for display: two fractional digits, decimal comma
// and dot-grouped thousands.
func Format(price float64) string {
	return displayPrinter.Sprintf("%.2f", price)
}

// FormatWire renders a price for CSV export: two fractional digits, decimal
// comma, no grouping.
func FormatWire(price float64) string {
	return strings.Replace(decimal.NewFromFloat(price).StringFixed(2), ".", ",", 1)
}
