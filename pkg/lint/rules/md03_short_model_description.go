package rules

import (
	"fmt"
	"unicode/utf8"

	"github.com/sparkbrains-DE/dbt-vc/pkg/lint"
)

// minModelDescriptionLen is the shortest model description that is not
// flagged as too terse.
const minModelDescriptionLen = 10

func init() {
	lint.Register(lint.RuleDef{
		ID:          "MD03",
		Name:        "short-model-description",
		Group:       "documentation",
		Description: "Model description is shorter than 10 characters",
		Severity:    lint.SeverityWarning,
		Check:       checkShortModelDescription,
	})
}

// checkShortModelDescription flags non-empty descriptions under the
// minimum length. Empty descriptions are MD02's concern; the two rules do
// not interact.
func checkShortModelDescription(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, path := range ctx.Paths() {
		for _, m := range ctx.Document(path).Models {
			desc := m.DescriptionText()
			// Length is measured in characters, not bytes.
			if desc == "" || utf8.RuneCountInString(desc) >= minModelDescriptionLen {
				continue
			}
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "MD03",
				Severity: lint.SeverityWarning,
				Message:  fmt.Sprintf("Model '%s' has very short description (< %d chars)", m.Name, minModelDescriptionLen),
				Model:    m.Name,
				Path:     path,
			})
		}
	}
	return diagnostics
}
