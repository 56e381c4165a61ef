// Package dbx holds the small database/sql abstractions the repositories
// share: the DBTX handle satisfied by *sql.DB and *sql.Tx, and WithTx, which
// scopes a function to one transaction.
package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrCommit marks a failure of the final COMMIT, after fn succeeded.
var ErrCommit = errors.New("commit failed")

// DBTX is the subset of database/sql used by the repositories.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back when fn fails or panics (the panic is
// re-raised). A failing commit is reported wrapped in ErrCommit.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    return items.NewSQLiteRepository(tx).Upsert(ctx, it)
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("%w: %w", ErrCommit, cerr)
		}
	}()

	err = fn(ctx, tx)
	return err
}
