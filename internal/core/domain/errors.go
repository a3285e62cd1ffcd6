package domain

import "errors"

// Domain errors represent conversion failures.
// Adapters wrap them with context; callers match with errors.Is.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Conversion Errors.

	// ErrMissingInput indicates the dump file does not exist.
	// The run stops before any output is produced.
	ErrMissingInput = errors.New("missing input dump")

	// ErrMalformedSource indicates the dump could not be parsed,
	// either because the XML is broken or a numeric field is not an integer.
	ErrMalformedSource = errors.New("malformed source")

	// ErrTransformFailure indicates the text extractor failed for a page.
	// The whole run is aborted; there is no per-page fallback.
	ErrTransformFailure = errors.New("transform failure")

	// ErrOutputWrite indicates the corpus could not be written.
	ErrOutputWrite = errors.New("output write failure")

	// ErrPipelineClosed indicates work was submitted after the pipeline shut down.
	ErrPipelineClosed = errors.New("pipeline closed")
)
