package driving

import (
	"context"

	"github.com/custodia-labs/wikiplain/internal/core/domain"
)

// Converter turns a dump into a plain-text corpus.
type Converter interface {
	// Convert runs a full conversion with the given settings.
	// Stats are returned even when the run fails part way through.
	Convert(ctx context.Context, settings domain.ConversionSettings) (*domain.ConversionStats, error)
}
