// Package items is the persistence layer for catalog records.
//
// # Overview
//
// Repository describes the SQL operations the catalog store needs on the
// infra_item table. SQLiteRepository implements it over a dbx.DBTX, so the
// same code runs against the process-wide *sql.DB or inside a *sql.Tx (as the
// CSV import does).
//
// # Data Model
//
// The natural key (description, brand, vendor) is enforced by a UNIQUE
// constraint; Upsert relies on it with ON CONFLICT to overwrite price and
// updated_at while keeping the surrogate id. Dates are stored as ISO text
// (YYYY-MM-DD), so string comparison orders them chronologically.
//
// # Errors
//
// Id-keyed reads and writes that match no row return common.ErrNotFound.
// Every other failure is the driver error wrapped with context.
package items
