package domain

import (
	"fmt"
	"runtime"
)

// Default conversion parameters.
const (
	// DefaultInputPath is the dump read when no input is configured.
	DefaultInputPath = "./simplewiki-latest-pages-articles.xml"

	// DefaultOutputPath is the corpus written when no output is configured.
	DefaultOutputPath = "./wiki-cleaned.txt"

	// DefaultThreshold is the number of in-flight pages that forces a flush.
	DefaultThreshold = 300
)

// ExtractorKind selects the text extractor used by a run.
type ExtractorKind string

// Available extractors.
const (
	// ExtractorWikitext strips wikitext markup in-process.
	ExtractorWikitext ExtractorKind = "wikitext"

	// ExtractorCommand pipes each page through an external program.
	ExtractorCommand ExtractorKind = "command"
)

// IsValid returns true if the extractor kind is recognised.
func (k ExtractorKind) IsValid() bool {
	switch k {
	case ExtractorWikitext, ExtractorCommand:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k ExtractorKind) String() string {
	return string(k)
}

// ConversionSettings holds the parameters of a single conversion run.
type ConversionSettings struct {
	// InputPath is the dump file. A ".bz2" suffix selects bzip2 decoding.
	InputPath string

	// OutputPath is the corpus file, truncated on open.
	OutputPath string

	// Threshold is the backpressure threshold of the transform pipeline.
	Threshold int

	// Workers is the size of the extraction worker pool.
	Workers int

	// Extractor selects the text extractor.
	Extractor ExtractorKind

	// ExtractorCommand is the program run by the command extractor.
	ExtractorCommand []string

	// HistoryEnabled records the run in the history store.
	HistoryEnabled bool
}

// DefaultConversionSettings returns settings with sensible defaults.
func DefaultConversionSettings() ConversionSettings {
	return ConversionSettings{
		InputPath:      DefaultInputPath,
		OutputPath:     DefaultOutputPath,
		Threshold:      DefaultThreshold,
		Workers:        runtime.NumCPU(),
		Extractor:      ExtractorWikitext,
		HistoryEnabled: true,
	}
}

// Validate checks the settings for internal consistency.
func (s ConversionSettings) Validate() error {
	if s.InputPath == "" {
		return fmt.Errorf("%w: input path is required", ErrInvalidInput)
	}
	if s.OutputPath == "" {
		return fmt.Errorf("%w: output path is required", ErrInvalidInput)
	}
	if s.Threshold < 1 {
		return fmt.Errorf("%w: threshold must be at least 1, got %d", ErrInvalidInput, s.Threshold)
	}
	if s.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidInput, s.Workers)
	}
	if !s.Extractor.IsValid() {
		return fmt.Errorf("%w: unknown extractor %q", ErrInvalidInput, s.Extractor)
	}
	if s.Extractor == ExtractorCommand && len(s.ExtractorCommand) == 0 {
		return fmt.Errorf("%w: command extractor requires a command", ErrInvalidInput)
	}
	return nil
}
