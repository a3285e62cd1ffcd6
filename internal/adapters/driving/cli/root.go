package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wikiplain/internal/core/ports/driving"
	"github.com/custodia-labs/wikiplain/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
)

// Services used by the commands.
var (
	converter       driving.Converter
	runHistory      driving.RunHistory
	settingsService driving.SettingsService
	configPath      string
	progress        *ProgressPrinter
)

var (
	bootstrap     Bootstrap
	closeServices func() error
)

// skipBootstrap marks commands that need no services.
const skipBootstrap = "skip-bootstrap"

// Services holds the driving ports wired by main.
type Services struct {
	Converter  driving.Converter
	History    driving.RunHistory
	Settings   driving.SettingsService
	ConfigPath string

	// Progress is the sink the converter reports to. May be nil.
	Progress *ProgressPrinter

	// Close releases resources held by the services. May be nil.
	Close func() error
}

// Bootstrap builds the services for a config directory.
// An empty directory selects ~/.wikiplain.
type Bootstrap func(configDir string) (*Services, error)

var rootCmd = &cobra.Command{
	Use:   "wikiplain",
	Short: "Convert MediaWiki XML dumps into a plain-text corpus",
	Long: `wikiplain streams a MediaWiki pages-articles dump, keeps the
main-namespace articles, strips their markup in parallel and writes
title, id and plain text for each page to a single corpus file.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.wikiplain)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap installs the function that wires the services.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// Execute runs the root command and releases the services afterwards.
func Execute() error {
	err := rootCmd.Execute()
	if closeServices != nil {
		if cerr := closeServices(); cerr != nil {
			logger.Warn("Failed to close services: %v", cerr)
		}
		closeServices = nil
	}
	return err
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil || cmd.Annotations[skipBootstrap] == "true" {
		return nil
	}

	svc, err := bootstrap(configDir)
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	if svc == nil {
		return errors.New("failed to initialise: no services")
	}

	converter = svc.Converter
	runHistory = svc.History
	settingsService = svc.Settings
	configPath = svc.ConfigPath
	progress = svc.Progress
	closeServices = svc.Close
	return nil
}
