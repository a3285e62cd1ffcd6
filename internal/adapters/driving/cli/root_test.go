package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wikiplain/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wikiplain/internal/core/domain"
	"github.com/custodia-labs/wikiplain/internal/core/services"
)

// mockConverter records the settings it was called with.
type mockConverter struct {
	settings domain.ConversionSettings
	stats    *domain.ConversionStats
	err      error

	// during runs inside Convert, e.g. to report progress.
	during func()
}

func (m *mockConverter) Convert(_ context.Context, settings domain.ConversionSettings) (*domain.ConversionStats, error) {
	m.settings = settings
	if m.during != nil {
		m.during()
	}
	return m.stats, m.err
}

// mockRunHistory serves a fixed list of runs.
type mockRunHistory struct {
	runs []domain.Run
	err  error
}

func (m *mockRunHistory) List(_ context.Context, limit int) ([]domain.Run, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > 0 && len(m.runs) > limit {
		return m.runs[:limit], nil
	}
	return m.runs, nil
}

func (m *mockRunHistory) Get(_ context.Context, id string) (*domain.Run, error) {
	for i := range m.runs {
		if m.runs[i].ID == id {
			return &m.runs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// resetFlags restores every flag of cmd to its default.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// setupServices installs test services and returns a cleanup func.
func setupServices(conv *mockConverter, hist *mockRunHistory) (*memory.ConfigStore, func()) {
	oldConverter, oldHistory, oldSettings, oldPath, oldProgress := converter, runHistory, settingsService, configPath, progress

	store := memory.NewConfigStore()
	converter, runHistory, progress = nil, nil, nil
	if conv != nil {
		converter = conv
	}
	if hist != nil {
		runHistory = hist
	}
	settingsService = services.NewSettingsService(store)
	configPath = "/tmp/wikiplain/config.toml"

	return store, func() {
		converter, runHistory, settingsService, configPath, progress = oldConverter, oldHistory, oldSettings, oldPath, oldProgress
	}
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
		resetFlags(convertCmd)
		resetFlags(historyCmd)
		resetFlags(inspectCmd)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "wikiplain", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "convert")
	assert.Contains(t, names, "history")
	assert.Contains(t, names, "inspect")
	assert.Contains(t, names, "config")
	assert.Contains(t, names, "version")
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config-dir"))
}

func TestSetup_UsesBootstrap(t *testing.T) {
	_, cleanup := setupServices(nil, nil)
	defer cleanup()

	conv := &mockConverter{stats: &domain.ConversionStats{}}
	var gotDir string
	closed := false

	oldBootstrap := bootstrap
	bootstrap = func(dir string) (*Services, error) {
		gotDir = dir
		return &Services{
			Converter:  conv,
			Settings:   services.NewSettingsService(memory.NewConfigStore()),
			ConfigPath: dir + "/config.toml",
			Close: func() error {
				closed = true
				return nil
			},
		}, nil
	}
	defer func() { bootstrap = oldBootstrap }()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"--config-dir", "/tmp/wp", "config", "path"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	}()

	require.NoError(t, Execute())
	assert.Equal(t, "/tmp/wp", gotDir)
	assert.Equal(t, "/tmp/wp/config.toml", configPath)
	assert.True(t, closed)
}

func TestSetup_BootstrapError(t *testing.T) {
	oldBootstrap := bootstrap
	bootstrap = func(string) (*Services, error) {
		return nil, errors.New("database locked")
	}
	defer func() { bootstrap = oldBootstrap }()

	_, err := execute(t, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialise")
	assert.Contains(t, err.Error(), "database locked")
}

func TestSetup_VersionSkipsBootstrap(t *testing.T) {
	oldBootstrap := bootstrap
	bootstrap = func(string) (*Services, error) {
		return nil, errors.New("should not be called")
	}
	defer func() { bootstrap = oldBootstrap }()

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "wikiplain version")
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)
}
