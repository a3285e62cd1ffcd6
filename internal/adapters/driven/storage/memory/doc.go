// Package memory provides in-memory implementations of driven ports.
// They back the converter when run history is disabled and stand in
// for the file and SQLite adapters in tests.
package memory
