package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/wikiplain/internal/core/domain"
	"github.com/custodia-labs/wikiplain/internal/core/ports/driven"
	"github.com/custodia-labs/wikiplain/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyInput     = "convert.input"
	keyOutput    = "convert.output"
	keyThreshold = "convert.threshold"
	keyWorkers   = "convert.workers"
	keyExtractor = "convert.extractor"
	keyCommand   = "convert.command"
	keyHistory   = "history.enabled"
)

// settingKeys lists the keys accepted by Set, in display order.
var settingKeys = []string{
	keyInput,
	keyOutput,
	keyThreshold,
	keyWorkers,
	keyExtractor,
	keyCommand,
	keyHistory,
}

// SettingsService manages conversion defaults stored in the config file.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves the configured conversion settings.
func (s *SettingsService) Get() domain.ConversionSettings {
	defaults := domain.DefaultConversionSettings()

	return domain.ConversionSettings{
		InputPath:        s.getString(keyInput, defaults.InputPath),
		OutputPath:       s.getString(keyOutput, defaults.OutputPath),
		Threshold:        s.getPositiveInt(keyThreshold, defaults.Threshold),
		Workers:          s.getPositiveInt(keyWorkers, defaults.Workers),
		Extractor:        s.getExtractor(defaults.Extractor),
		ExtractorCommand: s.configStore.GetStringSlice(keyCommand),
		HistoryEnabled:   s.getBool(keyHistory, defaults.HistoryEnabled),
	}
}

// Set validates and persists a single setting.
func (s *SettingsService) Set(key, value string) error {
	var stored any
	switch key {
	case keyInput, keyOutput:
		if value == "" {
			return fmt.Errorf("%w: %s cannot be empty", domain.ErrInvalidInput, key)
		}
		stored = value
	case keyThreshold, keyWorkers:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%w: %s must be a positive integer, got %q", domain.ErrInvalidInput, key, value)
		}
		stored = n
	case keyExtractor:
		kind := domain.ExtractorKind(value)
		if !kind.IsValid() {
			return fmt.Errorf("%w: unknown extractor %q", domain.ErrInvalidInput, value)
		}
		stored = value
	case keyCommand:
		fields := strings.Fields(value)
		if len(fields) == 0 {
			return fmt.Errorf("%w: %s cannot be empty", domain.ErrInvalidInput, key)
		}
		stored = fields
	case keyHistory:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false, got %q", domain.ErrInvalidInput, key, value)
		}
		stored = b
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val < 1 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getExtractor(defaultVal domain.ExtractorKind) domain.ExtractorKind {
	val := s.configStore.GetString(keyExtractor)
	if val == "" {
		return defaultVal
	}
	kind := domain.ExtractorKind(val)
	if !kind.IsValid() {
		return defaultVal
	}
	return kind
}
