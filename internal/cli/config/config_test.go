package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkbrains-DE/dbt-vc/internal/testutil"
)

func newFlags(t *testing.T) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("project-dir", "", "")
	flags.String("models-dir", "", "")
	flags.String("base-ref", "", "")
	flags.String("output", "", "")
	flags.Bool("verbose", false, "")
	return flags
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	dir := t.TempDir()
	flags := newFlags(t)
	require.NoError(t, flags.Parse([]string{"--project-dir", dir}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.ProjectDir)
	assert.Equal(t, filepath.Join(dir, DefaultModelsDir), cfg.ModelsDir)
	assert.Equal(t, filepath.Join(dir, DefaultReportDir), cfg.ReportDir)
	assert.Equal(t, DefaultBaseRef, cfg.BaseRef)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	assert.Nil(t, cfg.Lint)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfig_FromFile(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	dir := t.TempDir()
	cfgContent := `
models_dir: transforms
base_ref: origin/develop
lint:
  disabled: [MD08]
  severity:
    MD03: error
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dbtvc.yaml"), []byte(cfgContent), 0o644))

	flags := newFlags(t)
	require.NoError(t, flags.Parse([]string{"--project-dir", dir}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "transforms"), cfg.ModelsDir)
	assert.Equal(t, "origin/develop", cfg.BaseRef)
	require.NotNil(t, cfg.Lint)
	assert.Equal(t, []string{"MD08"}, cfg.Lint.Disabled)
	assert.Equal(t, "error", cfg.Lint.Severity["MD03"])
	assert.Equal(t, filepath.Join(dir, "dbtvc.yaml"), GetConfigFileUsed())
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dbtvc.yaml"), []byte("base_ref: origin/develop\n"), 0o644))

	flags := newFlags(t)
	require.NoError(t, flags.Parse([]string{"--project-dir", dir, "--base-ref", "origin/release", "--verbose"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, "origin/release", cfg.BaseRef)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dbtvc.yaml"), []byte("base_ref: origin/develop\n"), 0o644))
	t.Setenv("DBTVC_BASE_REF", "origin/hotfix")

	flags := newFlags(t)
	require.NoError(t, flags.Parse([]string{"--project-dir", dir}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "origin/hotfix", cfg.BaseRef)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dbtvc.yaml"), []byte(":\nnot yaml ["), 0o644))

	flags := newFlags(t)
	require.NoError(t, flags.Parse([]string{"--project-dir", dir}))

	_, err := LoadConfig("", flags)
	assert.Error(t, err)
}

func TestGetLogger(t *testing.T) {
	logger, buf := testutil.NewCaptureLogger()
	ctx := context.WithValue(context.Background(), LoggerKey(), logger)

	GetLogger(ctx).Debug("loaded", "source", "file")
	assert.Contains(t, buf.String(), "source=file")

	// Missing logger degrades to a discard logger
	fallback := GetLogger(context.Background())
	require.NotNil(t, fallback)
	fallback.Info("ignored")
}
