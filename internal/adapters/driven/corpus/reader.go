package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/custodia-labs/wikiplain/internal/core/domain"
)

// Reader reads records back from a corpus stream.
// It splits on Separator lines and so shares the writer's ambiguity.
type Reader struct {
	r *bufio.Reader
}

// NewReader creates a reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReaderSize(r, bufferSize)}
}

// Next returns the next record, or io.EOF at a clean end of stream.
func (r *Reader) Next() (*domain.ConvertedRecord, error) {
	title, err := r.line()
	if errors.Is(err, io.EOF) && title == "" {
		return nil, io.EOF
	}
	if err != nil {
		return nil, r.truncated(err)
	}

	idLine, err := r.line()
	if err != nil {
		return nil, r.truncated(err)
	}
	id, err := strconv.ParseInt(idLine, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: record %q has id %q", domain.ErrMalformedSource, title, idLine)
	}

	var lines []string
	for {
		l, err := r.line()
		if err != nil {
			return nil, r.truncated(err)
		}
		if l == Separator {
			break
		}
		lines = append(lines, l)
	}

	return &domain.ConvertedRecord{
		ID:        id,
		Title:     title,
		PlainText: strings.Join(lines, "\n"),
	}, nil
}

// ReadAll returns every remaining record.
func (r *Reader) ReadAll() ([]domain.ConvertedRecord, error) {
	var out []domain.ConvertedRecord
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, *rec)
	}
}

// line reads one line without its trailing newline.
// A final line without a newline is returned with io.EOF.
func (r *Reader) line() (string, error) {
	s, err := r.r.ReadString('\n')
	if err != nil {
		return s, err
	}
	return strings.TrimSuffix(s, "\n"), nil
}

func (r *Reader) truncated(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: corpus ends inside a record", domain.ErrMalformedSource)
	}
	return err
}
