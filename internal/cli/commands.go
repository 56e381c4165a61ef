package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/pricekeeper/internal/money"
)

func (a *App) List(ctx context.Context) error {
	a.Mode = ViewAll
	if err := a.reload(ctx); err != nil {
		return err
	}
	a.show()
	return nil
}

func (a *App) Outdated(ctx context.Context) error {
	a.Mode = ViewOutdated
	if err := a.reload(ctx); err != nil {
		return err
	}
	a.show()
	return nil
}

func (a *App) Add(ctx context.Context) error {
	desc, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	brand, err := GetSimpleText(a.reader, "Brand (optional)", a.out)
	if err != nil {
		return err
	}
	vendor, err := GetSimpleText(a.reader, "Vendor", a.out)
	if err != nil {
		return err
	}
	price, err := GetPrice(a.reader, "Price", a.out)
	if err != nil {
		return err
	}

	if err := a.store.Upsert(ctx, desc, brand, vendor, price); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Item saved.")
	return a.afterMutation(ctx)
}

func (a *App) Update(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter record id to update", a.out)
	if err != nil {
		return err
	}
	cur, err := a.store.Get(ctx, id)
	if err != nil {
		return err
	}

	desc, err := GetTextOr(a.reader, "Description", cur.Description, a.out)
	if err != nil {
		return err
	}
	brand, err := GetTextOr(a.reader, "Brand (\"-\" clears)", cur.Brand, a.out)
	if err != nil {
		return err
	}
	if brand == "-" {
		brand = ""
	}
	vendor, err := GetTextOr(a.reader, "Vendor", cur.Vendor, a.out)
	if err != nil {
		return err
	}
	priceText, err := GetTextOr(a.reader, "Price", money.Format(cur.Price), a.out)
	if err != nil {
		return err
	}
	price, err := money.Parse(priceText)
	if err != nil {
		return err
	}

	if err := a.store.Update(ctx, id, desc, brand, vendor, price); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Item updated.")
	return a.afterMutation(ctx)
}

func (a *App) Delete(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter record id to delete", a.out)
	if err != nil {
		return err
	}
	cur, err := a.store.Get(ctx, id)
	if err != nil {
		return err
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete %q from %s?", cur.Description, cur.Vendor), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.store.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Item deleted.")
	return a.afterMutation(ctx)
}

func (a *App) Search(ctx context.Context, query string) error {
	a.index.Search(strings.TrimSpace(query))
	a.show()
	return nil
}

func (a *App) Import(ctx context.Context, path string) error {
	sum, err := a.transfer.Import(ctx, path)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, sum.Message())
	return a.afterMutation(ctx)
}

func (a *App) Export(ctx context.Context, path string) error {
	if path == "" {
		path = a.config.ExportPath
	}
	if err := a.transfer.Export(ctx, path); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "CSV exported to %s.\n", path)
	return nil
}

// afterMutation reloads the current view, since the store itself always
// refreshes with the full list, and shows it.
func (a *App) afterMutation(ctx context.Context) error {
	if err := a.reload(ctx); err != nil {
		return err
	}
	a.show()
	return nil
}
