// Package lint applies metadata completeness rules to parsed schema
// documents. Rules are declarative predicate/finding-producer pairs held
// in a registry; the analyzer iterates them over a uniform context so
// adding a rule is a pure addition.
package lint

import "strings"

// Severity indicates the importance of a diagnostic.
type Severity int

// Severity levels for diagnostics.
const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityHint
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// ParseSeverity parses a severity name, case-insensitively.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, true
	case "warning":
		return SeverityWarning, true
	case "info":
		return SeverityInfo, true
	case "hint":
		return SeverityHint, true
	default:
		return SeverityWarning, false
	}
}

// Diagnostic is a single metadata deficiency finding.
type Diagnostic struct {
	RuleID   string   `json:"rule_id"`
	Severity Severity `json:"-"`
	Message  string   `json:"message"`
	Model    string   `json:"model,omitempty"`
	Column   string   `json:"column,omitempty"` // empty for model-level findings
	Path     string   `json:"path,omitempty"`   // schema document that triggered the finding
}

// Report splits diagnostics into errors and warnings. Only a non-empty
// Errors slice fails a validation run; warnings are always advisory.
type Report struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// HasErrors reports whether the validation run must fail.
func (r Report) HasErrors() bool {
	return len(r.Errors) > 0
}

// BuildReport splits diagnostics by severity, preserving their order.
// Anything below error severity is advisory.
func BuildReport(diags []Diagnostic) Report {
	var rep Report
	for _, d := range diags {
		if d.Severity == SeverityError {
			rep.Errors = append(rep.Errors, d)
		} else {
			rep.Warnings = append(rep.Warnings, d)
		}
	}
	return rep
}
