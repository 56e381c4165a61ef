// Package transfer moves catalog records between the store and
// semicolon-delimited CSV files.
//
// Import is best-effort per row but atomic per file: unparsable rows are
// collected into the Summary and skipped, everything else is written in one
// transaction that either commits entirely or leaves the database as it was.
// Export dumps the store's loaded set with a UTF-8 byte-order mark, the fixed
// Portuguese header and comma-decimal prices.
package transfer
