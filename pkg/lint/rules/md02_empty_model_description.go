package rules

import (
	"fmt"

	"github.com/sparkbrains-DE/dbt-vc/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "MD02",
		Name:        "empty-model-description",
		Group:       "documentation",
		Description: "Documented model has an empty description",
		Severity:    lint.SeverityError,
		Check:       checkEmptyModelDescription,
	})
}

func checkEmptyModelDescription(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, path := range ctx.Paths() {
		for _, m := range ctx.Document(path).Models {
			if m.DescriptionText() != "" {
				continue
			}
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "MD02",
				Severity: lint.SeverityError,
				Message:  fmt.Sprintf("Model '%s' has empty description in %s", m.Name, path),
				Model:    m.Name,
				Path:     path,
			})
		}
	}
	return diagnostics
}
