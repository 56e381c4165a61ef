// Package services holds the catalog store: the component that owns record
// persistence and the cached loaded set the front-end displays.
//
// Every operation returns an error wrapping one of the sentinels in
// internal/common (ErrValidation, ErrNotFound, ErrNoChange, ErrStorage), so
// callers can turn any outcome into a message with errors.Is. Successful
// mutations refresh the loaded set with the full record list; failed ones
// leave it untouched.
package services
