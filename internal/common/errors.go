// Package common defines the sentinel errors shared by the catalog layers.
// Callers should match them with errors.Is; every failure returned by the
// store or the CSV transfer wraps at least one of these kinds.
package common

import "errors"

var (
	// Input errors, detected before storage is touched.
	ErrValidation    = errors.New("validation error")
	ErrInvalidFormat = errors.New("invalid format")

	// Id-keyed operations on absent records.
	ErrNotFound = errors.New("not found")

	// Update requested with every field equal to the stored record.
	ErrNoChange = errors.New("no change")

	// Database failures not classified otherwise (I/O, constraints).
	ErrStorage = errors.New("storage error")

	// A write was committed but reloading the loaded set afterwards failed.
	// The stored data is intact; only the cached view is stale.
	ErrReload = errors.New("reload after write failed")

	// File open / read / write or transaction commit failure that aborts a
	// whole CSV operation.
	ErrTransferFatal = errors.New("transfer failed")
)
