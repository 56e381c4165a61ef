package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/dmitrijs2005/pricekeeper/internal/config"
	"github.com/dmitrijs2005/pricekeeper/internal/logging"
	"github.com/dmitrijs2005/pricekeeper/internal/models"
	"github.com/dmitrijs2005/pricekeeper/internal/search"
	"github.com/dmitrijs2005/pricekeeper/internal/services"
	"github.com/dmitrijs2005/pricekeeper/internal/transfer"
	"golang.org/x/term"
)

// ViewMode selects which load the app re-runs after a mutation.
type ViewMode string

const (
	ViewAll      ViewMode = "all"
	ViewOutdated ViewMode = "outdated"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	store       *services.CatalogService
	index       *search.Index
	transfer    *transfer.Transfer
	Mode        ViewMode
	reader      *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewApp wires the catalog components over an open database. The database
// handle stays owned by the caller.
func NewApp(c *config.Config, logger logging.Logger, db *sql.DB) *App {
	a := newApp(c, logger, db, os.Stdin, os.Stdout)
	a.interactive = term.IsTerminal(int(os.Stdin.Fd()))
	return a
}

func newApp(c *config.Config, logger logging.Logger, db *sql.DB, in io.Reader, out io.Writer, opts ...services.Option) *App {
	store := services.NewCatalogService(db, logger, opts...)
	return &App{
		config:   c,
		logger:   logger,
		store:    store,
		index:    search.NewIndex(),
		transfer: transfer.New(store, logger),
		Mode:     ViewAll,
		reader:   bufio.NewReader(in),
		out:      out,
	}
}

// Run loads the full catalog and serves commands until EOF or exit.
func (a *App) Run(ctx context.Context) {
	printlnFn("Price catalog (type 'help' for commands)")
	if err := a.reload(ctx); err != nil {
		a.report(err)
	}
	runREPL(ctx, a, a.prompt, a.reader, a.out)
}

func (a *App) prompt() string {
	if !a.interactive {
		return ""
	}
	if q := a.index.Query(); q != "" {
		return "catalog (" + string(a.Mode) + ", search: " + q + ")> "
	}
	return "catalog (" + string(a.Mode) + ")> "
}

// reload re-runs the load for the current view mode and feeds the result
// to the search index.
func (a *App) reload(ctx context.Context) error {
	var (
		list []models.Item
		err  error
	)
	switch a.Mode {
	case ViewOutdated:
		list, err = a.store.LoadOutdated(ctx)
	default:
		list, err = a.store.LoadAll(ctx)
	}
	if err != nil {
		return err
	}
	a.index.Reset(list)
	return nil
}
