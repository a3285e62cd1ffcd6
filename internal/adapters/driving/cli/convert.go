package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/wikiplain/internal/core/domain"
)

// dumpsURL is where pages-articles dumps are published.
const dumpsURL = "https://dumps.wikimedia.org/"

var convertFlags struct {
	in        string
	out       string
	threshold int
	workers   int
	extractor string
	command   string
	noHistory bool
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a dump into a plain-text corpus",
	Long: `Reads a MediaWiki pages-articles XML dump (optionally .bz2 or .gz),
strips the markup of every main-namespace page and writes the corpus.

Unset flags fall back to the config file and then to built-in defaults.
The output file is truncated at the start of every run.`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	flags := convertCmd.Flags()
	flags.StringVar(&convertFlags.in, "in", domain.DefaultInputPath, "dump file to read")
	flags.StringVar(&convertFlags.out, "out", domain.DefaultOutputPath, "corpus file to write")
	flags.IntVar(&convertFlags.threshold, "threshold", domain.DefaultThreshold, "pages in flight before a flush")
	flags.IntVar(&convertFlags.workers, "workers", 0, "extraction workers (default number of CPUs)")
	flags.StringVar(&convertFlags.extractor, "extractor", string(domain.ExtractorWikitext), "text extractor: wikitext or command")
	flags.StringVar(&convertFlags.command, "command", "", "program run by the command extractor, with arguments")
	flags.BoolVar(&convertFlags.noHistory, "no-history", false, "do not record the run in history")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, _ []string) error {
	if converter == nil {
		return errors.New("converter not configured")
	}

	settings := resolveSettings(cmd)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	stats, err := converter.Convert(ctx, settings)
	if progress != nil {
		progress.Finish()
	}
	if errors.Is(err, domain.ErrMissingInput) {
		cmd.Printf("Input dump %s not found.\n", settings.InputPath)
		cmd.Printf("Download a pages-articles dump from %s and pass it with --in.\n", dumpsURL)
		return nil
	}
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	cmd.Printf("Wrote %d pages to %s (%d skipped, %s read) in %s\n",
		stats.PagesEmitted,
		settings.OutputPath,
		stats.PagesSkipped,
		humanize.Bytes(uint64(stats.BytesRead)),
		time.Since(start).Round(time.Millisecond))
	return nil
}

// resolveSettings layers explicitly set flags over the configured defaults.
func resolveSettings(cmd *cobra.Command) domain.ConversionSettings {
	settings := domain.DefaultConversionSettings()
	if settingsService != nil {
		settings = settingsService.Get()
	}

	flags := cmd.Flags()
	if flags.Changed("in") {
		settings.InputPath = convertFlags.in
	}
	if flags.Changed("out") {
		settings.OutputPath = convertFlags.out
	}
	if flags.Changed("threshold") {
		settings.Threshold = convertFlags.threshold
	}
	if flags.Changed("workers") {
		settings.Workers = convertFlags.workers
	}
	if flags.Changed("extractor") {
		settings.Extractor = domain.ExtractorKind(convertFlags.extractor)
	}
	if flags.Changed("command") {
		settings.ExtractorCommand = strings.Fields(convertFlags.command)
		if !flags.Changed("extractor") {
			settings.Extractor = domain.ExtractorCommand
		}
	}
	if convertFlags.noHistory {
		settings.HistoryEnabled = false
	}
	return settings
}
