package domain

import "time"

// RunStatus is the outcome of a conversion run.
type RunStatus string

// Run statuses.
const (
	RunRunning   RunStatus = "running"
	RunSucceeded RunStatus = "succeeded"
	RunFailed    RunStatus = "failed"
)

// Run is a recorded invocation of the converter.
type Run struct {
	// ID is the unique identifier for the run.
	ID string

	// InputPath is the dump that was read.
	InputPath string

	// OutputPath is the corpus that was written.
	OutputPath string

	// Extractor is the extractor the run used.
	Extractor ExtractorKind

	// Threshold is the backpressure threshold the run used.
	Threshold int

	// Workers is the worker pool size the run used.
	Workers int

	// Status is the outcome of the run.
	Status RunStatus

	// Error holds the failure message of a failed run.
	Error string

	// PagesEmitted is the number of pages written.
	PagesEmitted int

	// PagesSkipped is the number of pages dropped for their namespace.
	PagesSkipped int

	// BytesRead is the number of dump bytes consumed.
	BytesRead int64

	// StartedAt is when the run began.
	StartedAt time.Time

	// FinishedAt is when the run ended. Zero while running.
	FinishedAt time.Time
}

// Duration returns how long the run took, or zero while it is running.
func (r *Run) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Finish records the outcome and stats of the run.
func (r *Run) Finish(stats ConversionStats, err error, at time.Time) {
	r.FinishedAt = at
	r.PagesEmitted = stats.PagesEmitted
	r.PagesSkipped = stats.PagesSkipped
	r.BytesRead = stats.BytesRead
	if err != nil {
		r.Status = RunFailed
		r.Error = err.Error()
		return
	}
	r.Status = RunSucceeded
	r.Error = ""
}
