package driven

import "github.com/custodia-labs/wikiplain/internal/core/domain"

// RecordWriter appends converted pages to a corpus.
// Records are never rewritten once written.
type RecordWriter interface {
	// Write appends a record. Errors wrap ErrOutputWrite.
	Write(rec domain.ConvertedRecord) error

	// Flush pushes buffered records to the underlying stream.
	Flush() error

	// Records returns the number of records written so far.
	Records() int

	// Close flushes and releases the underlying stream.
	Close() error
}

// CorpusCreator creates corpus files.
type CorpusCreator interface {
	// Create truncates or creates the corpus at path.
	Create(path string) (RecordWriter, error)
}
