package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRun_FinishSucceeded(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	run := &Run{ID: "r1", Status: RunRunning, StartedAt: start}

	assert.Zero(t, run.Duration())

	run.Finish(ConversionStats{PagesEmitted: 10, PagesSkipped: 3, BytesRead: 2048}, nil, start.Add(90*time.Second))

	assert.Equal(t, RunSucceeded, run.Status)
	assert.Empty(t, run.Error)
	assert.Equal(t, 10, run.PagesEmitted)
	assert.Equal(t, 3, run.PagesSkipped)
	assert.Equal(t, int64(2048), run.BytesRead)
	assert.Equal(t, 90*time.Second, run.Duration())
}

func TestRun_FinishFailed(t *testing.T) {
	start := time.Now()
	run := &Run{ID: "r2", Status: RunRunning, StartedAt: start}

	run.Finish(ConversionStats{PagesEmitted: 1}, errors.New("boom"), start.Add(time.Second))

	assert.Equal(t, RunFailed, run.Status)
	assert.Equal(t, "boom", run.Error)
	assert.Equal(t, 1, run.PagesEmitted)
}
