package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/wikiplain/internal/core/domain"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent conversion runs",
	Long: `Lists recorded conversion runs, newest first.
Use 'history show RUN_ID' for the details of a single run.`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show a conversion run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of runs to list (0 for all)")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if runHistory == nil {
		return errors.New("history service not configured")
	}

	runs, err := runHistory.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No conversion runs recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTARTED\tSTATUS\tPAGES\tREAD\tDURATION")
	for i := range runs {
		run := &runs[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			run.ID,
			humanize.Time(run.StartedAt),
			run.Status,
			run.PagesEmitted,
			humanize.Bytes(uint64(run.BytesRead)),
			formatDuration(run))
	}
	return tw.Flush()
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if runHistory == nil {
		return errors.New("history service not configured")
	}

	run, err := runHistory.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("run not found: %s", args[0])
		}
		return fmt.Errorf("failed to get run: %w", err)
	}

	cmd.Printf("Run %s\n", run.ID)
	cmd.Printf("  Status:    %s\n", run.Status)
	if run.Error != "" {
		cmd.Printf("  Error:     %s\n", run.Error)
	}
	cmd.Printf("  Input:     %s\n", run.InputPath)
	cmd.Printf("  Output:    %s\n", run.OutputPath)
	cmd.Printf("  Extractor: %s\n", run.Extractor)
	cmd.Printf("  Threshold: %d\n", run.Threshold)
	cmd.Printf("  Workers:   %d\n", run.Workers)
	cmd.Printf("  Pages:     %s written, %s skipped\n",
		humanize.Comma(int64(run.PagesEmitted)), humanize.Comma(int64(run.PagesSkipped)))
	cmd.Printf("  Read:      %s\n", humanize.Bytes(uint64(run.BytesRead)))
	cmd.Printf("  Started:   %s\n", run.StartedAt.Format(time.RFC3339))
	cmd.Printf("  Duration:  %s\n", formatDuration(run))
	return nil
}

func formatDuration(run *domain.Run) string {
	if run.FinishedAt.IsZero() {
		return "-"
	}
	return run.Duration().Round(time.Millisecond).String()
}
