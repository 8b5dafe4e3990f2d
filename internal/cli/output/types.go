package output

import (
	"github.com/sparkbrains-DE/dbt-vc/pkg/diff"
	"github.com/sparkbrains-DE/dbt-vc/pkg/lint"
)

// ValidationSummary holds aggregate counts for a validation run.
type ValidationSummary struct {
	SchemaFiles int `json:"schema_files"`
	Models      int `json:"models"`
	Errors      int `json:"errors"`
	Warnings    int `json:"warnings"`
}

// ValidationOutput is the JSON shape of a validation run.
type ValidationOutput struct {
	Summary  ValidationSummary      `json:"summary"`
	Errors   []ValidationDiagnostic `json:"errors,omitempty"`
	Warnings []ValidationDiagnostic `json:"warnings,omitempty"`
}

// ValidationDiagnostic is the JSON shape of a single finding.
type ValidationDiagnostic struct {
	RuleID   string `json:"rule_id"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Model    string `json:"model,omitempty"`
	Column   string `json:"column,omitempty"`
	Path     string `json:"path,omitempty"`
}

// NewValidationDiagnostic converts a lint diagnostic for JSON output.
func NewValidationDiagnostic(d lint.Diagnostic) ValidationDiagnostic {
	return ValidationDiagnostic{
		RuleID:   d.RuleID,
		Severity: d.Severity.String(),
		Message:  d.Message,
		Model:    d.Model,
		Column:   d.Column,
		Path:     d.Path,
	}
}

// ChangeSummary holds aggregate counts for a schema-change run.
type ChangeSummary struct {
	FilesCompared int `json:"files_compared"`
	Breaking      int `json:"breaking"`
	NonBreaking   int `json:"non_breaking"`
}

// ChangeFileOutput is the JSON shape of one compared file.
type ChangeFileOutput struct {
	Path    string         `json:"path"`
	Changes diff.ChangeSet `json:"changes"`
}

// ChangeOutput is the JSON shape of a schema-change run.
type ChangeOutput struct {
	Summary ChangeSummary      `json:"summary"`
	Files   []ChangeFileOutput `json:"files,omitempty"`
}
