package extractors

import (
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/wikiplain/internal/core/domain"
	"github.com/custodia-labs/wikiplain/internal/core/ports/driven"
	"github.com/custodia-labs/wikiplain/internal/extractors/command"
	"github.com/custodia-labs/wikiplain/internal/extractors/wikitext"
)

// Builder creates a TextExtractor from conversion settings.
type Builder func(settings domain.ConversionSettings) (driven.TextExtractor, error)

// Ensure Factory implements the interface.
var _ driven.ExtractorFactory = (*Factory)(nil)

// Factory creates extractors by kind.
type Factory struct {
	mu       sync.RWMutex
	builders map[domain.ExtractorKind]Builder
}

// NewFactory creates a factory with the built-in extractors registered.
func NewFactory() *Factory {
	f := &Factory{builders: make(map[domain.ExtractorKind]Builder)}
	f.Register(domain.ExtractorWikitext, func(domain.ConversionSettings) (driven.TextExtractor, error) {
		return wikitext.New(), nil
	})
	f.Register(domain.ExtractorCommand, func(s domain.ConversionSettings) (driven.TextExtractor, error) {
		return command.New(s.ExtractorCommand)
	})
	return f
}

// Register adds or replaces the builder for kind.
func (f *Factory) Register(kind domain.ExtractorKind, builder Builder) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.builders[kind] = builder
}

// Create returns the extractor selected by settings.Extractor.
func (f *Factory) Create(settings domain.ConversionSettings) (driven.TextExtractor, error) {
	f.mu.RLock()
	builder, ok := f.builders[settings.Extractor]
	f.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: unknown extractor %q", domain.ErrInvalidInput, settings.Extractor)
	}
	return builder(settings)
}

// SupportedTypes returns the registered kinds in sorted order.
func (f *Factory) SupportedTypes() []domain.ExtractorKind {
	f.mu.RLock()
	defer f.mu.RUnlock()

	kinds := make([]domain.ExtractorKind, 0, len(f.builders))
	for kind := range f.builders {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
