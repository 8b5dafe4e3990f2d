package rules

import (
	"fmt"

	"github.com/sparkbrains-DE/dbt-vc/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "MD05",
		Name:        "empty-column-description",
		Group:       "documentation",
		Description: "Documented column has an empty description",
		Severity:    lint.SeverityError,
		Check:       checkEmptyColumnDescription,
	})
}

func checkEmptyColumnDescription(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, path := range ctx.Paths() {
		for _, m := range ctx.Document(path).Models {
			for _, c := range m.Columns {
				if c.DescriptionText() != "" {
					continue
				}
				diagnostics = append(diagnostics, lint.Diagnostic{
					RuleID:   "MD05",
					Severity: lint.SeverityError,
					Message:  fmt.Sprintf("Column '%s.%s' has no description in %s", m.Name, c.Name, path),
					Model:    m.Name,
					Column:   c.Name,
					Path:     path,
				})
			}
		}
	}
	return diagnostics
}
