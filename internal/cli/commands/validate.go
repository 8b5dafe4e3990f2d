package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sparkbrains-DE/dbt-vc/internal/cli/config"
	"github.com/sparkbrains-DE/dbt-vc/internal/cli/output"
	"github.com/sparkbrains-DE/dbt-vc/internal/discovery"
	"github.com/sparkbrains-DE/dbt-vc/internal/report"
	"github.com/sparkbrains-DE/dbt-vc/pkg/lint"
	_ "github.com/sparkbrains-DE/dbt-vc/pkg/lint/rules" // register metadata rules
	"github.com/sparkbrains-DE/dbt-vc/pkg/schema"
)

// ValidateOptions holds options for the validate command.
type ValidateOptions struct {
	Format   string   // Output format override: text, markdown, json
	Disable  []string // Rule IDs to disable
	NoReport bool     // Skip writing the report document
}

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	opts := &ValidateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate model metadata in schema documents",
		Long: `Check every schema document under the models directory for
metadata deficiencies.

Models must carry documentation, column descriptions, tags, and
quality-assurance tests for ID columns. Findings are split into errors
and warnings; only errors fail the run. Rules can be configured in
dbtvc.yaml.`,
		Example: `  # Validate all schema documents
  dbt-vc validate

  # Output as JSON
  dbt-vc validate --format json

  # Disable specific rules
  dbt-vc validate --disable MD04,MD08`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().BoolVar(&opts.NoReport, "no-report", false, "Skip writing the report document")

	return cmd
}

func runValidate(cmd *cobra.Command, opts *ValidateOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	logger := cmdCtx.Logger
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	if _, err := os.Stat(cfg.ModelsDir); err != nil {
		return fmt.Errorf("models directory not found: %s", cfg.ModelsDir)
	}

	paths := discovery.SchemaPaths(cfg.ModelsDir)
	logger.Debug("discovered schema documents", "count", len(paths))

	// Parse every schema document. Unreadable files degrade to empty
	// documents rather than aborting the run.
	docs := make(map[string]*schema.Document, len(paths))
	for _, p := range paths {
		raw, err := os.ReadFile(p)
		if err != nil {
			logger.Warn("skipping unreadable schema document", "path", p, "error", err)
			raw = nil
		}
		docs[displayPath(p, cfg.ProjectDir)] = schema.Parse(raw)
	}

	implemented := discovery.ModelNames(cfg.ModelsDir)
	ctx := lint.NewContext(docs, implemented)

	analyzer := lint.NewAnalyzer(buildAnalyzerConfig(cfg, opts.Disable))
	diags := analyzer.Analyze(ctx)
	rep := lint.BuildReport(diags)

	renderValidation(r, paths, ctx, rep)

	if !opts.NoReport {
		reportPath := filepath.Join(cfg.ReportDir, "validation_results.md")
		if err := report.WriteValidation(reportPath, rep); err != nil {
			logger.Warn("failed to write validation report", "path", reportPath, "error", err)
		} else {
			logger.Debug("wrote validation report", "path", reportPath)
		}
	}

	if rep.HasErrors() {
		return fmt.Errorf("validation failed with %d errors", len(rep.Errors))
	}
	return nil
}

// buildAnalyzerConfig merges rule configuration from dbtvc.yaml with CLI
// overrides. CLI flags take precedence.
func buildAnalyzerConfig(cfg *config.Config, disable []string) *lint.AnalyzerConfig {
	analyzerCfg := lint.NewAnalyzerConfig()

	if cfg != nil && cfg.Lint != nil {
		for _, id := range cfg.Lint.Disabled {
			analyzerCfg.DisabledRules[strings.TrimSpace(id)] = true
		}
		for id, sev := range cfg.Lint.Severity {
			if s, ok := lint.ParseSeverity(sev); ok {
				analyzerCfg.SeverityOverrides[id] = s
			}
		}
	}

	for _, id := range disable {
		analyzerCfg.DisabledRules[strings.TrimSpace(id)] = true
	}

	return analyzerCfg
}

// displayPath rewrites an absolute schema path relative to the project
// directory for stable, readable diagnostics.
func displayPath(path, projectDir string) string {
	if rel, err := filepath.Rel(projectDir, path); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(path)
}

func renderValidation(r *output.Renderer, paths []string, ctx *lint.Context, rep lint.Report) {
	summary := output.ValidationSummary{
		SchemaFiles: len(paths),
		Errors:      len(rep.Errors),
		Warnings:    len(rep.Warnings),
	}
	for _, p := range ctx.Paths() {
		summary.Models += len(ctx.Document(p).Models)
	}

	if r.EffectiveMode() == output.ModeJSON {
		jsonOutput := output.ValidationOutput{Summary: summary}
		for _, d := range rep.Errors {
			jsonOutput.Errors = append(jsonOutput.Errors, output.NewValidationDiagnostic(d))
		}
		for _, d := range rep.Warnings {
			jsonOutput.Warnings = append(jsonOutput.Warnings, output.NewValidationDiagnostic(d))
		}
		_ = r.JSON(jsonOutput)
		return
	}

	r.Printf("Validating metadata in %d schema files (%d models)\n\n", summary.SchemaFiles, summary.Models)

	if len(rep.Errors) > 0 {
		r.Println(r.Styles().Error.Render(fmt.Sprintf("Errors (%d):", len(rep.Errors))))
		for _, d := range rep.Errors {
			r.Printf("  %s  %s\n", r.Styles().Bold.Render(d.RuleID), d.Message)
		}
		r.Println("")
	}

	if len(rep.Warnings) > 0 {
		r.Println(r.Styles().Warning.Render(fmt.Sprintf("Warnings (%d):", len(rep.Warnings))))
		for _, d := range rep.Warnings {
			r.Printf("  %s  %s\n", r.Styles().Bold.Render(d.RuleID), d.Message)
		}
		r.Println("")
	}

	if len(rep.Errors) == 0 && len(rep.Warnings) == 0 {
		r.Success("All validation checks passed")
		return
	}

	r.Printf("Summary: %d errors, %d warnings\n", len(rep.Errors), len(rep.Warnings))
}
