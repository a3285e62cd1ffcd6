package dump

import (
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/custodia-labs/wikiplain/internal/core/domain"
	"github.com/custodia-labs/wikiplain/internal/core/ports/driven"
)

// countingReader counts the bytes pulled from the underlying file.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// Ensure Source implements the interface.
var _ driven.PageSource = (*Source)(nil)

// Source is a PageSource over a dump file on disk.
// Progress is measured in bytes of the file itself, so it stays
// meaningful for compressed dumps.
type Source struct {
	*Parser

	file    *os.File
	counter *countingReader
	closers []io.Closer
	total   int64
}

// Open opens the dump at path. The ".bz2" and ".gz" suffixes select
// decompression. A missing file yields an error wrapping ErrMissingInput.
func Open(path string) (*Source, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingInput, path)
	}
	if err != nil {
		return nil, fmt.Errorf("stat dump: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dump: %w", err)
	}

	s := &Source{
		file:    f,
		counter: &countingReader{r: f},
		total:   info.Size(),
	}

	var r io.Reader = s.counter
	switch {
	case strings.HasSuffix(path, ".bz2"):
		r = bzip2.NewReader(r)
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(r)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: %w", domain.ErrMalformedSource, err)
		}
		s.closers = append(s.closers, gz)
		r = gz
	}

	s.Parser = NewParser(r)
	return s, nil
}

// BytesRead returns how many bytes of the dump file have been consumed.
func (s *Source) BytesRead() int64 {
	return s.counter.n
}

// TotalBytes returns the size of the dump file.
func (s *Source) TotalBytes() int64 {
	return s.total
}

// Close releases the dump file.
func (s *Source) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	errs = append(errs, s.file.Close())
	return errors.Join(errs...)
}

// Ensure Opener implements the interface.
var _ driven.DumpOpener = Opener{}

// Opener opens dump files from the local filesystem.
type Opener struct{}

// Open returns a PageSource over the dump at path.
func (Opener) Open(path string) (driven.PageSource, error) {
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	return src, nil
}
