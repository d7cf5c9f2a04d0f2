// Package cli implements the command-line interface for lostfound.
//
// The cli package provides the Cobra-based CLI: `list` prints the items
// matching a set of filters (text, JSON or HTML cards), `facets` prints the
// available filter options, `browse` reads filter edits from stdin and
// re-renders after each burst of input, and `serve` exposes the same data
// over HTTP. It wires config, the sheet client, the record store, snapshot
// storage and metrics together.
package cli
