package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wikiplain/internal/core/domain"
)

func sampleRuns() []domain.Run {
	started := time.Now().Add(-time.Hour)
	return []domain.Run{
		{
			ID:           "2f0c7a52-1111-4d5e-9a4b-000000000001",
			InputPath:    "simplewiki.xml",
			OutputPath:   "wiki-cleaned.txt",
			Extractor:    domain.ExtractorWikitext,
			Threshold:    300,
			Workers:      8,
			Status:       domain.RunSucceeded,
			PagesEmitted: 1200,
			PagesSkipped: 30,
			BytesRead:    2 << 20,
			StartedAt:    started,
			FinishedAt:   started.Add(90 * time.Second),
		},
		{
			ID:        "2f0c7a52-2222-4d5e-9a4b-000000000002",
			Status:    domain.RunFailed,
			Error:     "transform failure: page 7 (Foo): boom",
			StartedAt: started.Add(-time.Hour),
		},
	}
}

func TestHistoryCmd_Use(t *testing.T) {
	assert.Equal(t, "history", historyCmd.Use)
	assert.Equal(t, "show [run-id]", historyShowCmd.Use)
}

func TestHistoryCmd_Lists(t *testing.T) {
	_, cleanup := setupServices(nil, &mockRunHistory{runs: sampleRuns()})
	defer cleanup()

	out, err := execute(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "2f0c7a52-1111-4d5e-9a4b-000000000001")
	assert.Contains(t, out, "succeeded")
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "1m30s")
}

func TestHistoryCmd_Limit(t *testing.T) {
	_, cleanup := setupServices(nil, &mockRunHistory{runs: sampleRuns()})
	defer cleanup()

	out, err := execute(t, "history", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "000000000001")
	assert.NotContains(t, out, "000000000002")
}

func TestHistoryCmd_Empty(t *testing.T) {
	_, cleanup := setupServices(nil, &mockRunHistory{})
	defer cleanup()

	out, err := execute(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No conversion runs recorded.")
}

func TestHistoryCmd_ListError(t *testing.T) {
	_, cleanup := setupServices(nil, &mockRunHistory{err: errors.New("db gone")})
	defer cleanup()

	_, err := execute(t, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list runs")
}

func TestHistoryCmd_ServiceNotConfigured(t *testing.T) {
	_, cleanup := setupServices(nil, nil)
	defer cleanup()

	_, err := execute(t, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history service not configured")
}

func TestHistoryShowCmd(t *testing.T) {
	_, cleanup := setupServices(nil, &mockRunHistory{runs: sampleRuns()})
	defer cleanup()

	out, err := execute(t, "history", "show", "2f0c7a52-1111-4d5e-9a4b-000000000001")
	require.NoError(t, err)
	assert.Contains(t, out, "Status:    succeeded")
	assert.Contains(t, out, "Input:     simplewiki.xml")
	assert.Contains(t, out, "1,200 written, 30 skipped")
	assert.Contains(t, out, "2.1 MB")
}

func TestHistoryShowCmd_FailedRunShowsError(t *testing.T) {
	_, cleanup := setupServices(nil, &mockRunHistory{runs: sampleRuns()})
	defer cleanup()

	out, err := execute(t, "history", "show", "2f0c7a52-2222-4d5e-9a4b-000000000002")
	require.NoError(t, err)
	assert.Contains(t, out, "Error:     transform failure")
	assert.Contains(t, out, "Duration:  -")
}

func TestHistoryShowCmd_NotFound(t *testing.T) {
	_, cleanup := setupServices(nil, &mockRunHistory{})
	defer cleanup()

	_, err := execute(t, "history", "show", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run not found: missing")
}

func TestHistoryShowCmd_RequiresID(t *testing.T) {
	_, cleanup := setupServices(nil, &mockRunHistory{})
	defer cleanup()

	_, err := execute(t, "history", "show")
	assert.Error(t, err)
}
