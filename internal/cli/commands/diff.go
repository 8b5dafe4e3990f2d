package commands

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sparkbrains-DE/dbt-vc/internal/cli/output"
	"github.com/sparkbrains-DE/dbt-vc/internal/report"
	"github.com/sparkbrains-DE/dbt-vc/internal/vcs"
	"github.com/sparkbrains-DE/dbt-vc/pkg/diff"
	"github.com/sparkbrains-DE/dbt-vc/pkg/schema"
)

// DiffOptions holds options for the diff command.
type DiffOptions struct {
	BaseRef  string // Git revision to compare against
	Format   string // Output format override: text, markdown, json
	NoReport bool   // Skip writing the report document
}

// NewDiffCommand creates the diff command.
func NewDiffCommand() *cobra.Command {
	opts := &DiffOptions{}
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Detect schema changes against a base git revision",
		Long: `Compare schema documents in the working tree against a base git
revision and classify the differences.

Removed models and removed columns are breaking changes; added models
and added columns are non-breaking. The command reports findings but
always exits successfully, so it is safe to wire into informational CI
steps.`,
		Example: `  # Compare against origin/main
  dbt-vc diff

  # Compare against a different base
  dbt-vc diff --base-ref origin/develop

  # Output as JSON
  dbt-vc diff --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDiff(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.BaseRef, "base-ref", "", "Git revision to compare against (default: origin/main)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().BoolVar(&opts.NoReport, "no-report", false, "Skip writing the report document")

	return cmd
}

func runDiff(cmd *cobra.Command, opts *DiffOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	logger := cmdCtx.Logger
	r := cmdCtx.Renderer

	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	baseRef := cfg.BaseRef
	if opts.BaseRef != "" {
		baseRef = opts.BaseRef
	}

	repo := vcs.Open(cfg.ProjectDir)
	changed := schemaPathsUnder(repo.ChangedPaths(baseRef), cfg.ModelsDir, cfg.ProjectDir)
	logger.Debug("changed schema documents", "base_ref", baseRef, "count", len(changed))

	var files []report.FileChanges
	for _, p := range changed {
		oldRaw := repo.ShowFile(p, baseRef)
		if oldRaw == "" {
			// New file in this branch, nothing to compare against.
			logger.Debug("no base revision content", "path", p)
			continue
		}
		newRaw := repo.ReadWorkingFile(p)

		changes := diff.Diff(schema.Parse([]byte(oldRaw)), schema.Parse([]byte(newRaw)))
		if changes.Empty() {
			continue
		}
		files = append(files, report.FileChanges{Path: p, Changes: changes})
	}

	renderChanges(r, len(changed), files)

	if !opts.NoReport {
		reportPath := filepath.Join(cfg.ReportDir, "schema_changes.md")
		if err := report.WriteChanges(reportPath, files); err != nil {
			logger.Warn("failed to write changes report", "path", reportPath, "error", err)
		} else {
			logger.Debug("wrote changes report", "path", reportPath)
		}
	}

	// Findings are informational; the command never fails the run.
	return nil
}

// schemaPathsUnder filters git paths down to schema documents inside the
// models directory, sorted for stable output.
func schemaPathsUnder(paths []string, modelsDir, projectDir string) []string {
	prefix, err := filepath.Rel(projectDir, modelsDir)
	if err != nil {
		prefix = modelsDir
	}
	prefix = filepath.ToSlash(prefix) + "/"

	var out []string
	for _, p := range paths {
		p = filepath.ToSlash(p)
		ext := filepath.Ext(p)
		if ext != ".yml" && ext != ".yaml" {
			continue
		}
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func renderChanges(r *output.Renderer, compared int, files []report.FileChanges) {
	summary := output.ChangeSummary{FilesCompared: compared}
	for _, f := range files {
		summary.Breaking += len(f.Changes.Breaking)
		summary.NonBreaking += len(f.Changes.NonBreaking)
	}

	if r.EffectiveMode() == output.ModeJSON {
		jsonOutput := output.ChangeOutput{Summary: summary}
		for _, f := range files {
			jsonOutput.Files = append(jsonOutput.Files, output.ChangeFileOutput{
				Path:    f.Path,
				Changes: f.Changes,
			})
		}
		_ = r.JSON(jsonOutput)
		return
	}

	if compared == 0 {
		r.Success("No schema documents changed")
		return
	}
	if len(files) == 0 {
		r.Success(fmt.Sprintf("No model changes in %d changed schema files", compared))
		return
	}

	for _, f := range files {
		r.Println(r.Styles().Path.Render(f.Path))
		for _, finding := range f.Changes.Breaking {
			r.Printf("  %s  %s\n", r.Styles().Error.Render("breaking   "), finding.Describe())
		}
		for _, finding := range f.Changes.NonBreaking {
			r.Printf("  %s  %s\n", r.Styles().Info.Render("non-breaking"), finding.Describe())
		}
		r.Println("")
	}

	if summary.Breaking > 0 {
		r.Warning(fmt.Sprintf("%d breaking changes detected. Coordinate with downstream consumers before merging.", summary.Breaking))
	}
	r.Printf("Summary: %d breaking, %d non-breaking in %d files\n", summary.Breaking, summary.NonBreaking, len(files))
}
