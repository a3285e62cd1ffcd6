package corpus

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wikiplain/internal/core/domain"
)

func TestReader_RoundTrip(t *testing.T) {
	records := []domain.ConvertedRecord{
		{ID: 7, Title: "A B", PlainText: "extracted"},
		{ID: 8, Title: "Multi", PlainText: "line one\n\nline three"},
		{ID: 9, Title: "Empty", PlainText: ""},
		{ID: 10, Title: "Trailing", PlainText: "ends with newline\n"},
		{ID: 11, Title: "Windows", PlainText: "crlf\r\nkept"},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, rec := range records {
		require.NoError(t, w.Write(rec))
	}
	require.NoError(t, w.Close())

	got, err := NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestReader_EmbeddedSeparatorIsAmbiguous(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(domain.ConvertedRecord{ID: 1, Title: "Tricky", PlainText: "before\n" + Separator + "\nafter"}))
	require.NoError(t, w.Close())

	r := NewReader(&buf)
	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "before", rec.PlainText)

	// What remains no longer parses as a record.
	_, err = r.Next()
	assert.ErrorIs(t, err, domain.ErrMalformedSource)
}

func TestReader_Empty(t *testing.T) {
	_, err := NewReader(strings.NewReader("")).Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_Truncated(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"title only", "Title\n"},
		{"title without newline", "Title"},
		{"no separator", "Title\n1\nbody\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader(strings.NewReader(tt.input)).Next()
			assert.ErrorIs(t, err, domain.ErrMalformedSource)
		})
	}
}

func TestReader_BadID(t *testing.T) {
	_, err := NewReader(strings.NewReader("Title\nseven\nbody\n" + Separator + "\n")).Next()
	assert.ErrorIs(t, err, domain.ErrMalformedSource)
}
