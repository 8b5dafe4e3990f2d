package rules

import (
	"fmt"

	"github.com/sparkbrains-DE/dbt-vc/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "MD04",
		Name:        "no-columns-documented",
		Group:       "documentation",
		Description: "Model has no columns documented",
		Severity:    lint.SeverityWarning,
		Check:       checkNoColumns,
	})
}

// checkNoColumns warns on models with zero documented columns. A warning
// rather than an error: a model may legitimately defer column
// documentation.
func checkNoColumns(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, path := range ctx.Paths() {
		for _, m := range ctx.Document(path).Models {
			if len(m.Columns) > 0 {
				continue
			}
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "MD04",
				Severity: lint.SeverityWarning,
				Message:  fmt.Sprintf("Model '%s' has no columns documented in %s", m.Name, path),
				Model:    m.Name,
				Path:     path,
			})
		}
	}
	return diagnostics
}
