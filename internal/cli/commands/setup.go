package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sparkbrains-DE/dbt-vc/internal/cli/config"
	"github.com/sparkbrains-DE/dbt-vc/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext assembles the configuration, logger, and renderer
// shared by every subcommand.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	projectDir := getEnvOrDefault("DBTVC_PROJECT_DIR", ".")
	modelsDir := getEnvOrDefault("DBTVC_MODELS_DIR", config.DefaultModelsDir)
	baseRef := getEnvOrDefault("DBTVC_BASE_REF", config.DefaultBaseRef)
	reportDir := getEnvOrDefault("DBTVC_REPORT_DIR", config.DefaultReportDir)
	verbose := os.Getenv("DBTVC_VERBOSE") == "true"
	outputFormat := os.Getenv("DBTVC_OUTPUT")

	return &config.Config{
		ProjectDir:   projectDir,
		ModelsDir:    modelsDir,
		BaseRef:      baseRef,
		ReportDir:    reportDir,
		Verbose:      verbose,
		OutputFormat: outputFormat,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
