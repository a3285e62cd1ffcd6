// Command wikiplain converts MediaWiki XML dumps into a plain-text corpus.
package main

import (
	"os"
	"path/filepath"

	"github.com/custodia-labs/wikiplain/internal/adapters/driven/config/file"
	"github.com/custodia-labs/wikiplain/internal/adapters/driven/corpus"
	"github.com/custodia-labs/wikiplain/internal/adapters/driven/dump"
	"github.com/custodia-labs/wikiplain/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wikiplain/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/wikiplain/internal/adapters/driving/cli"
	"github.com/custodia-labs/wikiplain/internal/core/ports/driven"
	"github.com/custodia-labs/wikiplain/internal/core/services"
	"github.com/custodia-labs/wikiplain/internal/extractors"
	"github.com/custodia-labs/wikiplain/internal/logger"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires the adapters into the core services.
func bootstrap(configDir string) (*cli.Services, error) {
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, err
	}
	settingsService := services.NewSettingsService(configStore)

	var (
		runStore driven.RunStore
		closer   func() error
	)
	store, err := sqlite.NewStore(filepath.Join(configDir, "data"))
	if err != nil {
		// History is optional; keep it for this process only.
		logger.Warn("Run history unavailable, using in-memory store: %v", err)
		runStore = memory.NewRunStore()
	} else {
		runStore = store.RunStore()
		closer = store.Close
	}

	progress := cli.NewProgressPrinter(os.Stdout)
	converter := services.NewConversionService(
		dump.Opener{},
		corpus.Creator{},
		extractors.NewFactory(),
		runStore,
		progress,
	)

	return &cli.Services{
		Converter:  converter,
		History:    services.NewHistoryService(runStore),
		Settings:   settingsService,
		ConfigPath: configStore.Path(),
		Progress:   progress,
		Close:      closer,
	}, nil
}
