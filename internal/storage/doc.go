// Package storage provides JSON-based persistence for record snapshots.
//
// The storage package keeps the last successfully fetched collection of each
// sheet on disk so the CLI can work offline and report items that appeared
// since the previous run. Snapshots are stored as snapshot_<hash>.json, where
// the hash is derived from the sheet ID and tab name. The default storage
// location is ~/.local/share/lostfound/.
package storage
