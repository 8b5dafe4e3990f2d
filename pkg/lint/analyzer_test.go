package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkbrains-DE/dbt-vc/pkg/schema"
)

func TestAnalyzer_Analyze_NilContext(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	assert.Nil(t, analyzer.Analyze(nil))
}

func TestAnalyzer_Analyze_NoRules(t *testing.T) {
	Clear()

	ctx := NewContext(map[string]*schema.Document{
		"models/schema.yml": {Models: []schema.Model{{Name: "stg_customers"}}},
	}, nil)

	analyzer := NewAnalyzer(nil)
	assert.Empty(t, analyzer.Analyze(ctx))
}

func TestAnalyzer_DisableRule(t *testing.T) {
	Clear()

	Register(RuleDef{
		ID:       "TEST01",
		Name:     "test-rule",
		Group:    "test",
		Severity: SeverityWarning,
		Check: func(_ *Context) []Diagnostic {
			return []Diagnostic{{
				RuleID:   "TEST01",
				Severity: SeverityWarning,
				Message:  "test message",
			}}
		},
	})

	ctx := NewContext(nil, nil)

	analyzer := NewAnalyzer(nil)
	require.Len(t, analyzer.Analyze(ctx), 1)

	cfg := NewAnalyzerConfig()
	cfg.DisabledRules["TEST01"] = true
	analyzer = NewAnalyzer(cfg)
	assert.Empty(t, analyzer.Analyze(ctx))
}

func TestAnalyzer_SeverityOverride(t *testing.T) {
	Clear()

	Register(RuleDef{
		ID:       "TEST02",
		Name:     "test-rule-2",
		Group:    "test",
		Severity: SeverityWarning,
		Check: func(_ *Context) []Diagnostic {
			return []Diagnostic{{
				RuleID:   "TEST02",
				Severity: SeverityWarning,
				Message:  "test message",
			}}
		},
	})

	cfg := NewAnalyzerConfig()
	cfg.SeverityOverrides["TEST02"] = SeverityError
	analyzer := NewAnalyzer(cfg)

	diags := analyzer.Analyze(NewContext(nil, nil))
	require.Len(t, diags, 1)
	assert.Equal(t, SeverityError, diags[0].Severity)
}

func TestAnalyzer_RuleOrder(t *testing.T) {
	Clear()

	// Register out of order; diagnostics must come back in ID order.
	for _, id := range []string{"TESTC", "TESTA", "TESTB"} {
		id := id
		Register(RuleDef{
			ID:       id,
			Name:     id,
			Group:    "test",
			Severity: SeverityWarning,
			Check: func(_ *Context) []Diagnostic {
				return []Diagnostic{{RuleID: id, Severity: SeverityWarning}}
			},
		})
	}

	diags := NewAnalyzer(nil).Analyze(NewContext(nil, nil))
	require.Len(t, diags, 3)
	assert.Equal(t, "TESTA", diags[0].RuleID)
	assert.Equal(t, "TESTB", diags[1].RuleID)
	assert.Equal(t, "TESTC", diags[2].RuleID)
}

func TestBuildReport(t *testing.T) {
	diags := []Diagnostic{
		{RuleID: "A", Severity: SeverityError, Message: "first error"},
		{RuleID: "B", Severity: SeverityWarning, Message: "a warning"},
		{RuleID: "C", Severity: SeverityError, Message: "second error"},
		{RuleID: "D", Severity: SeverityInfo, Message: "info"},
	}

	rep := BuildReport(diags)
	require.Len(t, rep.Errors, 2)
	assert.Equal(t, "first error", rep.Errors[0].Message)
	assert.Equal(t, "second error", rep.Errors[1].Message)
	assert.Len(t, rep.Warnings, 2)
	assert.True(t, rep.HasErrors())

	assert.False(t, BuildReport(nil).HasErrors())
}

func TestContext_DocumentedModels(t *testing.T) {
	ctx := NewContext(map[string]*schema.Document{
		"a.yml": {Models: []schema.Model{{Name: "users"}}},
		"b.yml": {Models: []schema.Model{{Name: "orders"}, {Name: "users"}}},
	}, map[string]bool{"users": true, "payments": true})

	documented := ctx.DocumentedModels()
	assert.True(t, documented["users"])
	assert.True(t, documented["orders"])
	assert.False(t, documented["payments"])

	assert.Equal(t, []string{"payments", "users"}, ctx.ImplementedModels())
	assert.Equal(t, []string{"a.yml", "b.yml"}, ctx.Paths())
}

func TestParseSeverity(t *testing.T) {
	for name, want := range map[string]Severity{
		"error":   SeverityError,
		"WARNING": SeverityWarning,
		"info":    SeverityInfo,
		"hint":    SeverityHint,
	} {
		got, ok := ParseSeverity(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := ParseSeverity("bogus")
	assert.False(t, ok)
}
