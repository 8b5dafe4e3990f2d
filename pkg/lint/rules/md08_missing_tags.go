package rules

import (
	"fmt"

	"github.com/sparkbrains-DE/dbt-vc/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "MD08",
		Name:        "missing-tags",
		Group:       "tagging",
		Description: "Model has no tags defined",
		Severity:    lint.SeverityWarning,
		Check:       checkMissingTags,
	})
}

func checkMissingTags(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, path := range ctx.Paths() {
		for _, m := range ctx.Document(path).Models {
			if len(m.Tags) > 0 {
				continue
			}
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "MD08",
				Severity: lint.SeverityWarning,
				Message:  fmt.Sprintf("Model '%s' has no tags defined", m.Name),
				Model:    m.Name,
				Path:     path,
			})
		}
	}
	return diagnostics
}
