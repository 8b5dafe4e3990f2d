package rules

import (
	"fmt"
	"strings"

	"github.com/sparkbrains-DE/dbt-vc/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "MD07",
		Name:        "id-column-tests",
		Group:       "testing",
		Description: "Identifier column is missing 'unique' or 'not_null' tests",
		Severity:    lint.SeverityWarning,
		Check:       checkIDColumnTests,
	})
}

// checkIDColumnTests warns when a column whose name contains "id"
// (case-insensitive) lacks a 'unique' or 'not_null' test. Each missing
// test kind is a separate finding, 'unique' first.
func checkIDColumnTests(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, path := range ctx.Paths() {
		for _, m := range ctx.Document(path).Models {
			for _, c := range m.Columns {
				if !strings.Contains(strings.ToLower(c.Name), "id") {
					continue
				}
				kinds := c.TestKinds()
				for _, want := range []string{"unique", "not_null"} {
					if kinds[want] {
						continue
					}
					diagnostics = append(diagnostics, lint.Diagnostic{
						RuleID:   "MD07",
						Severity: lint.SeverityWarning,
						Message:  fmt.Sprintf("ID column '%s.%s' should have '%s' test", m.Name, c.Name, want),
						Model:    m.Name,
						Column:   c.Name,
						Path:     path,
					})
				}
			}
		}
	}
	return diagnostics
}
