package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage conversion defaults",
	Long: `View and change the defaults used by convert.

Available keys:
  convert.input      dump file to read
  convert.output     corpus file to write
  convert.threshold  pages in flight before a flush
  convert.workers    extraction workers
  convert.extractor  wikitext or command
  convert.command    program run by the command extractor
  history.enabled    record runs in history (true or false)`,
	RunE: runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	values, err := settingValues()
	if err != nil {
		return err
	}
	for _, key := range settingsService.Keys() {
		cmd.Printf("%s = %s\n", key, values[key])
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	values, err := settingValues()
	if err != nil {
		return err
	}
	val, ok := values[args[0]]
	if !ok {
		return fmt.Errorf("unknown setting: %s", args[0])
	}
	cmd.Println(val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configPath == "" {
		return errors.New("no config file in use")
	}
	cmd.Println(configPath)
	return nil
}

// settingValues renders the effective settings keyed like the config file.
func settingValues() (map[string]string, error) {
	if settingsService == nil {
		return nil, errors.New("settings service not configured")
	}
	s := settingsService.Get()
	return map[string]string{
		"convert.input":     s.InputPath,
		"convert.output":    s.OutputPath,
		"convert.threshold": fmt.Sprint(s.Threshold),
		"convert.workers":   fmt.Sprint(s.Workers),
		"convert.extractor": string(s.Extractor),
		"convert.command":   strings.Join(s.ExtractorCommand, " "),
		"history.enabled":   fmt.Sprint(s.HistoryEnabled),
	}, nil
}
