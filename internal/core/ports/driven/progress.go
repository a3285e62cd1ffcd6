package driven

// ProgressSink receives completion percentages.
// It is purely observational and never affects the conversion.
type ProgressSink interface {
	// Progress is called with a value in 0..100 each time it changes.
	Progress(percent int)
}
