package driving

import "github.com/custodia-labs/wikiplain/internal/core/domain"

// SettingsService manages persisted conversion defaults.
type SettingsService interface {
	// Get returns the configured conversion settings, falling back to
	// built-in defaults for anything unset or invalid.
	Get() domain.ConversionSettings

	// Set validates and persists a single setting given as text.
	// Returns ErrInvalidInput for unknown keys or unparsable values.
	Set(key, value string) error

	// Keys returns the recognised setting keys.
	Keys() []string
}
