package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/pricekeeper/internal/common"
	"github.com/dmitrijs2005/pricekeeper/internal/models"
	"github.com/dmitrijs2005/pricekeeper/internal/money"
)

// show prints the visible records.
func (a *App) show() {
	printItems(a.out, a.index.Visible())
}

func printItems(w io.Writer, list []models.Item) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No records.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDESCRIPTION\tBRAND\tVENDOR\tPRICE\tUPDATED")
	for _, it := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\tR$ %s\t%s\n",
			it.ID, it.Description, it.Brand, it.Vendor, money.Format(it.Price), it.UpdatedAt.Format("02/01/2006"))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "%d record(s)\n", len(list))
}

// describe turns an error from the catalog into a line for the user.
func describe(err error) string {
	switch {
	case errors.Is(err, common.ErrNoChange):
		return "Nothing to update: the record already has these values."
	case errors.Is(err, common.ErrNotFound):
		return "Record not found."
	case errors.Is(err, common.ErrValidation):
		return "Invalid record: " + err.Error()
	case errors.Is(err, common.ErrInvalidFormat):
		return "Invalid input: " + err.Error()
	case errors.Is(err, common.ErrTransferFatal):
		return "Transfer failed: " + err.Error()
	case errors.Is(err, common.ErrReload):
		return "Saved, but the list could not be reloaded: " + err.Error()
	case errors.Is(err, common.ErrStorage):
		return "Storage error: " + err.Error()
	case errors.Is(err, io.EOF):
		return "Input closed."
	default:
		return "Error: " + err.Error()
	}
}

func (a *App) report(err error) {
	a.logger.Debug(context.Background(), "command failed", "error", err)
	fmt.Fprintln(a.out, describe(err))
}
