// Package report persists validation and schema-change summaries as
// markdown documents for downstream display (CI job summaries, review
// comments).
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sparkbrains-DE/dbt-vc/pkg/diff"
	"github.com/sparkbrains-DE/dbt-vc/pkg/lint"
)

// FileChanges pairs a schema document path with the change set computed
// for it.
type FileChanges struct {
	Path    string         `json:"path"`
	Changes diff.ChangeSet `json:"changes"`
}

// WriteValidation writes the validation summary to path, creating parent
// directories as needed.
func WriteValidation(path string, rep lint.Report) error {
	var b strings.Builder

	if len(rep.Errors) > 0 {
		fmt.Fprintf(&b, "### Errors (%d)\n\n", len(rep.Errors))
		for _, d := range rep.Errors {
			fmt.Fprintf(&b, "- %s\n", d.Message)
		}
		b.WriteString("\n")
	}
	if len(rep.Warnings) > 0 {
		fmt.Fprintf(&b, "### Warnings (%d)\n\n", len(rep.Warnings))
		for _, d := range rep.Warnings {
			fmt.Fprintf(&b, "- %s\n", d.Message)
		}
		b.WriteString("\n")
	}
	if len(rep.Errors) == 0 && len(rep.Warnings) == 0 {
		b.WriteString("### All validation checks passed\n")
	}

	return writeFile(path, b.String())
}

// WriteChanges writes the schema-change summary to path, creating parent
// directories as needed.
func WriteChanges(path string, files []FileChanges) error {
	var breaking, nonBreaking []string
	for _, f := range files {
		for _, c := range f.Changes.Breaking {
			breaking = append(breaking, fmt.Sprintf("%s: %s", f.Path, c.Describe()))
		}
		for _, c := range f.Changes.NonBreaking {
			nonBreaking = append(nonBreaking, fmt.Sprintf("%s: %s", f.Path, c.Describe()))
		}
	}

	var b strings.Builder
	if len(breaking) > 0 {
		fmt.Fprintf(&b, "### Breaking changes (%d)\n\n", len(breaking))
		for _, line := range breaking {
			fmt.Fprintf(&b, "- %s\n", line)
		}
		b.WriteString("\nBreaking changes detected. Ensure downstream dependencies are updated,\na migration plan is documented, and stakeholders are notified.\n\n")
	}
	if len(nonBreaking) > 0 {
		fmt.Fprintf(&b, "### Non-breaking changes (%d)\n\n", len(nonBreaking))
		for _, line := range nonBreaking {
			fmt.Fprintf(&b, "- %s\n", line)
		}
		b.WriteString("\n")
	}
	if len(breaking) == 0 && len(nonBreaking) == 0 {
		b.WriteString("### No schema changes detected\n")
	}

	return writeFile(path, b.String())
}

func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
