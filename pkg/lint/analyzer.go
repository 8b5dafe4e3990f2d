package lint

// Analyzer runs registered metadata rules against a validation context.
type Analyzer struct {
	config *AnalyzerConfig
}

// AnalyzerConfig holds configuration for the analyzer.
type AnalyzerConfig struct {
	// DisabledRules contains rule IDs to skip.
	DisabledRules map[string]bool

	// SeverityOverrides changes the default severity of rules.
	SeverityOverrides map[string]Severity
}

// NewAnalyzerConfig creates a default configuration.
func NewAnalyzerConfig() *AnalyzerConfig {
	return &AnalyzerConfig{
		DisabledRules:     make(map[string]bool),
		SeverityOverrides: make(map[string]Severity),
	}
}

// NewAnalyzer creates an analyzer with optional configuration.
func NewAnalyzer(config *AnalyzerConfig) *Analyzer {
	if config == nil {
		config = NewAnalyzerConfig()
	}
	return &Analyzer{config: config}
}

// Analyze runs all registered rules against the context in ascending rule
// ID order. Rules never short-circuit each other; every applicable
// document contributes findings. Analyze itself never fails — a non-empty
// error slice in the resulting report is the only failure signal.
func (a *Analyzer) Analyze(ctx *Context) []Diagnostic {
	if ctx == nil {
		return nil
	}

	var diagnostics []Diagnostic
	for _, rule := range GetAll() {
		if a.config.DisabledRules[rule.ID] {
			continue
		}

		diags := rule.Check(ctx)
		for i := range diags {
			if sev, ok := a.config.SeverityOverrides[rule.ID]; ok {
				diags[i].Severity = sev
			}
		}
		diagnostics = append(diagnostics, diags...)
	}

	return diagnostics
}
