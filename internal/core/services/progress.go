package services

import "github.com/custodia-labs/wikiplain/internal/core/ports/driven"

// ProgressReporter turns byte offsets into whole-number completion
// percentages and forwards each new value to a sink.
type ProgressReporter struct {
	sink driven.ProgressSink
	last int
}

// NewProgressReporter creates a reporter. sink may be nil.
func NewProgressReporter(sink driven.ProgressSink) *ProgressReporter {
	return &ProgressReporter{sink: sink}
}

// Report computes floor(bytesRead/total*100) and emits it when it differs
// from the last reported value. It returns the percentage and whether it
// was emitted. Nothing is reported for an unknown (non-positive) total.
func (r *ProgressReporter) Report(bytesRead, total int64) (int, bool) {
	if total <= 0 {
		return r.last, false
	}

	pct := int(bytesRead * 100 / total)
	switch {
	case pct < 0:
		pct = 0
	case pct > 100:
		pct = 100
	}

	if pct == r.last {
		return pct, false
	}
	r.last = pct
	if r.sink != nil {
		r.sink.Progress(pct)
	}
	return pct, true
}

// Last returns the most recently reported percentage.
func (r *ProgressReporter) Last() int {
	return r.last
}
