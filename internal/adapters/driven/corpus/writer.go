// Package corpus reads and writes the flat plain-text corpus.
//
// Each record is four lines: title, decimal id, plain text, separator.
// The plain text may itself span several lines and is not escaped, so a
// line equal to Separator inside a page is indistinguishable from a
// record boundary when the corpus is read back.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/custodia-labs/wikiplain/internal/core/domain"
	"github.com/custodia-labs/wikiplain/internal/core/ports/driven"
)

// Separator terminates every record.
const Separator = "+ * + * + * + * + * + * + * + * + * + *"

const bufferSize = 1 << 20

// Ensure Writer implements the interface.
var _ driven.RecordWriter = (*Writer)(nil)

// Writer appends records to a corpus stream.
type Writer struct {
	w       *bufio.Writer
	closer  io.Closer
	records int
}

// NewWriter creates a writer over w. Close does not close w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, bufferSize)}
}

// Create truncates or creates the corpus file at path.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrOutputWrite, err)
	}
	w := NewWriter(f)
	w.closer = f
	return w, nil
}

// Write appends a record.
func (w *Writer) Write(rec domain.ConvertedRecord) error {
	for _, s := range []string{rec.Title, "\n", strconv.FormatInt(rec.ID, 10), "\n", rec.PlainText, "\n", Separator, "\n"} {
		if _, err := w.w.WriteString(s); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrOutputWrite, err)
		}
	}
	w.records++
	return nil
}

// Flush pushes buffered records to the underlying stream.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrOutputWrite, err)
	}
	return nil
}

// Records returns the number of records written.
func (w *Writer) Records() int {
	return w.records
}

// Close flushes and, for files opened with Create, closes the file.
func (w *Writer) Close() error {
	err := w.Flush()
	if w.closer != nil {
		if cerr := w.closer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", domain.ErrOutputWrite, cerr)
		}
		w.closer = nil
	}
	return err
}

// Ensure Creator implements the interface.
var _ driven.CorpusCreator = Creator{}

// Creator creates corpus files on the local filesystem.
type Creator struct{}

// Create truncates or creates the corpus at path.
func (Creator) Create(path string) (driven.RecordWriter, error) {
	w, err := Create(path)
	if err != nil {
		return nil, err
	}
	return w, nil
}
