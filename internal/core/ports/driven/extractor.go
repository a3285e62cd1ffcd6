package driven

import (
	"context"

	"github.com/custodia-labs/wikiplain/internal/core/domain"
)

// TextExtractor turns a page's raw wikitext into plain text.
// Implementations must be safe for concurrent use: the transform
// pipeline calls PlainText from every worker at once.
type TextExtractor interface {
	// PlainText returns the plain text of raw. Empty input yields empty output.
	PlainText(ctx context.Context, raw string) (string, error)
}

// ExtractorFactory builds the TextExtractor selected by a run's settings.
type ExtractorFactory interface {
	// Create returns the extractor for settings.Extractor.
	// Returns ErrInvalidInput if the kind is unknown or misconfigured.
	Create(settings domain.ConversionSettings) (TextExtractor, error)

	// SupportedTypes returns all extractor kinds the factory can build.
	SupportedTypes() []domain.ExtractorKind
}
