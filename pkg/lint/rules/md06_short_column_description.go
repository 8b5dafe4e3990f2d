package rules

import (
	"fmt"
	"unicode/utf8"

	"github.com/sparkbrains-DE/dbt-vc/pkg/lint"
)

// minColumnDescriptionLen is the shortest column description that is not
// flagged as too terse.
const minColumnDescriptionLen = 5

func init() {
	lint.Register(lint.RuleDef{
		ID:          "MD06",
		Name:        "short-column-description",
		Group:       "documentation",
		Description: "Column description is shorter than 5 characters",
		Severity:    lint.SeverityWarning,
		Check:       checkShortColumnDescription,
	})
}

func checkShortColumnDescription(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, path := range ctx.Paths() {
		for _, m := range ctx.Document(path).Models {
			for _, c := range m.Columns {
				desc := c.DescriptionText()
				// Length is measured in characters, not bytes.
				if desc == "" || utf8.RuneCountInString(desc) >= minColumnDescriptionLen {
					continue
				}
				diagnostics = append(diagnostics, lint.Diagnostic{
					RuleID:   "MD06",
					Severity: lint.SeverityWarning,
					Message:  fmt.Sprintf("Column '%s.%s' has very short description (< %d chars)", m.Name, c.Name, minColumnDescriptionLen),
					Model:    m.Name,
					Column:   c.Name,
					Path:     path,
				})
			}
		}
	}
	return diagnostics
}
