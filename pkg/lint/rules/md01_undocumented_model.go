package rules

import (
	"fmt"

	"github.com/sparkbrains-DE/dbt-vc/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "MD01",
		Name:        "undocumented-model",
		Group:       "documentation",
		Description: "Model exists as a SQL file but has no schema documentation",
		Severity:    lint.SeverityError,
		Check:       checkUndocumentedModel,
	})
}

// checkUndocumentedModel flags every implemented model that appears in no
// schema document. This is always an error, never a warning: downstream
// tooling depends on the metadata entry existing.
func checkUndocumentedModel(ctx *lint.Context) []lint.Diagnostic {
	documented := ctx.DocumentedModels()

	var diagnostics []lint.Diagnostic
	for _, name := range ctx.ImplementedModels() {
		if documented[name] {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "MD01",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("Model '%s' has no schema documentation", name),
			Model:    name,
		})
	}
	return diagnostics
}
