// Package cli is the interactive terminal front-end of the price catalog.
//
// It reads commands line by line, drives the catalog store, the search index
// and CSV transfer, and prints the visible records as a table.
package cli
