// Package sqlite provides the SQLite-backed run history store.
//
// The database lives at ~/.wikiplain/data/history.db by default and is
// opened in WAL mode. Schema changes are applied from the embedded
// migrations package on open.
package sqlite
