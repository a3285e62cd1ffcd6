package corpus

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wikiplain/internal/core/domain"
	"github.com/custodia-labs/wikiplain/internal/core/ports/driven"
)

func TestWriter_Format(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.Write(domain.ConvertedRecord{ID: 7, Title: "A B", PlainText: "first line\nsecond line"}))
	require.NoError(t, w.Write(domain.ConvertedRecord{ID: 8, Title: "Empty", PlainText: ""}))
	require.NoError(t, w.Close())

	want := "A B\n7\nfirst line\nsecond line\n" + Separator + "\n" +
		"Empty\n8\n\n" + Separator + "\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 2, w.Records())
}

func TestWriter_BuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.Write(domain.ConvertedRecord{ID: 1, Title: "T", PlainText: "x"}))
	assert.Zero(t, buf.Len())

	require.NoError(t, w.Flush())
	assert.NotZero(t, buf.Len())
}

func TestWriter_Separator(t *testing.T) {
	assert.Equal(t, "+ * + * + * + * + * + * + * + * + * + *", Separator)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriter_WriteFailure(t *testing.T) {
	w := NewWriter(failingWriter{})

	// Small records sit in the buffer; the failure surfaces on flush.
	require.NoError(t, w.Write(domain.ConvertedRecord{ID: 1, Title: "T", PlainText: "x"}))
	err := w.Flush()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOutputWrite)
	assert.Contains(t, err.Error(), "disk full")
}

func TestWriter_LargeRecordFailsOnWrite(t *testing.T) {
	w := NewWriter(failingWriter{})

	err := w.Write(domain.ConvertedRecord{ID: 1, Title: "T", PlainText: string(make([]byte, 2*bufferSize))})
	assert.ErrorIs(t, err, domain.ErrOutputWrite)
	assert.Zero(t, w.Records())
}

func TestCreate_TruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content that must disappear"), 0600))

	w, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(domain.ConvertedRecord{ID: 1, Title: "Fresh", PlainText: "new"}))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Fresh\n1\nnew\n"+Separator+"\n", string(data))
}

func TestCreate_BadPath(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "missing-dir", "out.txt"))
	assert.ErrorIs(t, err, domain.ErrOutputWrite)
}

func TestCreator_Create(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	w, err := Creator{}.Create(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestCreator_NilOnError(t *testing.T) {
	w, err := Creator{}.Create(filepath.Join(t.TempDir(), "missing-dir", "out.txt"))
	assert.Error(t, err)
	assert.Nil(t, w)
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.RecordWriter = (*Writer)(nil)
	var _ driven.CorpusCreator = Creator{}
}
