package driven

import "github.com/custodia-labs/wikiplain/internal/core/domain"

// PageSource streams main-namespace pages out of a dump in document order.
// A PageSource is owned by a single goroutine.
type PageSource interface {
	// Next returns the next main-namespace page.
	// Returns io.EOF once the dump is exhausted and an error wrapping
	// ErrMalformedSource if the dump cannot be parsed.
	Next() (*domain.PageRecord, error)

	// Skipped returns how many pages were dropped for their namespace so far.
	Skipped() int

	// BytesRead returns how many bytes of the dump file have been consumed.
	BytesRead() int64

	// TotalBytes returns the size of the dump file.
	TotalBytes() int64

	// Close releases the underlying file.
	Close() error
}

// DumpOpener opens dump files.
type DumpOpener interface {
	// Open returns a PageSource over the dump at path.
	// Returns an error wrapping ErrMissingInput if path does not exist.
	Open(path string) (PageSource, error)
}
