// Package config loads dbt-vc configuration from files, environment
// variables, and CLI flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	ProjectDir   string      `koanf:"project_dir"`
	ModelsDir    string      `koanf:"models_dir"`
	BaseRef      string      `koanf:"base_ref"`
	ReportDir    string      `koanf:"report_dir"`
	Verbose      bool        `koanf:"verbose"`
	OutputFormat string      `koanf:"output"`
	Lint         *LintConfig `koanf:"lint"`
}

// LintConfig holds validation rule configuration.
type LintConfig struct {
	// Disabled contains rule IDs to skip entirely.
	Disabled []string `koanf:"disabled"`

	// Severity maps rule IDs to severity overrides
	// (error, warning, info, hint).
	Severity map[string]string `koanf:"severity"`
}

// Default configuration values.
const (
	DefaultModelsDir = "models"
	DefaultBaseRef   = "origin/main"
	DefaultReportDir = ".dbtvc"
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
