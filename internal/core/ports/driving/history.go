package driving

import (
	"context"

	"github.com/custodia-labs/wikiplain/internal/core/domain"
)

// RunHistory exposes previously recorded conversion runs.
type RunHistory interface {
	// List returns the most recent runs, newest first.
	List(ctx context.Context, limit int) ([]domain.Run, error)

	// Get returns a single run. Returns ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Run, error)
}
