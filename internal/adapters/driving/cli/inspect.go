package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/wikiplain/internal/adapters/driven/corpus"
)

var inspectHead int

var inspectCmd = &cobra.Command{
	Use:         "inspect [corpus]",
	Short:       "Summarise a corpus file",
	Long:        `Reads a corpus back and prints its record count and the first records.`,
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{skipBootstrap: "true"},
	RunE:        runInspect,
}

func init() {
	inspectCmd.Flags().IntVar(&inspectHead, "head", 10, "number of records to list")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open corpus: %w", err)
	}
	defer f.Close()

	reader := corpus.NewReader(f)
	count := 0
	for {
		rec, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read corpus: %w", err)
		}
		if count < inspectHead {
			cmd.Printf("%d\t%s\n", rec.ID, rec.Title)
		}
		count++
	}

	cmd.Printf("%s records\n", humanize.Comma(int64(count)))
	return nil
}
