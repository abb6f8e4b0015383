package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archivelab/metacheck/pkg/metadata"
)

func testRule(id, group string, sev metadata.Severity, msg string) RuleDef {
	return RuleDef{
		ID:          id,
		Name:        "test " + id,
		Group:       group,
		Description: "test rule " + id,
		Severity:    sev,
		Check: func(rec metadata.Record, opts map[string]any) []Diagnostic {
			return []Diagnostic{{RuleID: id, Severity: sev, Message: msg}}
		},
	}
}

func TestRegistry(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(testRule("T02", "format", metadata.SeverityWarning, "two"))
	Register(testRule("T01", "completeness", metadata.SeverityError, "one"))
	Register(testRule("T03", "format", metadata.SeverityInfo, "three"))

	assert.Equal(t, 3, Count())

	// GetAll sorts by ID regardless of registration order
	all := GetAll()
	require.Len(t, all, 3)
	assert.Equal(t, "T01", all[0].ID)
	assert.Equal(t, "T02", all[1].ID)
	assert.Equal(t, "T03", all[2].ID)

	rule, ok := GetByID("T02")
	require.True(t, ok)
	assert.Equal(t, "T02", rule.ID)

	_, ok = GetByID("T99")
	assert.False(t, ok)

	formatRules := GetByGroup("format")
	require.Len(t, formatRules, 2)
	assert.Equal(t, "T02", formatRules[0].ID)
	assert.Equal(t, "T03", formatRules[1].ID)
}

func TestRegisterOverwritesSameID(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(testRule("T01", "format", metadata.SeverityError, "first"))
	Register(testRule("T01", "naming", metadata.SeverityWarning, "second"))

	assert.Equal(t, 1, Count())
	rule, ok := GetByID("T01")
	require.True(t, ok)
	assert.Equal(t, "naming", rule.Group)
}

func TestConfig(t *testing.T) {
	cfg := NewConfig().
		Disable("T01").
		SetSeverity("T02", metadata.SeverityInfo).
		SetRuleOptions("T03", map[string]any{"limit": 5})

	assert.True(t, cfg.IsDisabled("T01"))
	assert.False(t, cfg.IsDisabled("T02"))

	assert.Equal(t, metadata.SeverityInfo, cfg.GetSeverity("T02", metadata.SeverityError))
	assert.Equal(t, metadata.SeverityError, cfg.GetSeverity("T01", metadata.SeverityError))

	assert.Equal(t, map[string]any{"limit": 5}, cfg.GetRuleOptions("T03"))
	assert.Nil(t, cfg.GetRuleOptions("T01"))
}

func TestAnalyzerRunsRulesInOrder(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(testRule("T02", "format", metadata.SeverityError, "second finding"))
	Register(testRule("T01", "completeness", metadata.SeverityError, "first finding"))

	a := NewAnalyzer(NewConfig())
	rec := metadata.NewRecord([]string{"filename"}, []string{"scan.tif"})

	diags := a.Analyze(rec)
	require.Len(t, diags, 2)
	assert.Equal(t, "first finding", diags[0].Message)
	assert.Equal(t, "second finding", diags[1].Message)
}

func TestAnalyzerSkipsDisabledRules(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(testRule("T01", "format", metadata.SeverityError, "finding"))
	Register(testRule("T02", "format", metadata.SeverityError, "other finding"))

	a := NewAnalyzer(NewConfig().Disable("T01"))
	diags := a.Analyze(metadata.NewRecord([]string{"filename"}, []string{"x"}))

	require.Len(t, diags, 1)
	assert.Equal(t, "T02", diags[0].RuleID)
}

func TestAnalyzerAppliesSeverityOverride(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(testRule("T01", "format", metadata.SeverityError, "finding"))

	a := NewAnalyzer(NewConfig().SetSeverity("T01", metadata.SeverityInfo))
	diags := a.Analyze(metadata.NewRecord([]string{"filename"}, []string{"x"}))

	require.Len(t, diags, 1)
	assert.Equal(t, metadata.SeverityInfo, diags[0].Severity)
}

func TestAnalyzerNilConfig(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(testRule("T01", "format", metadata.SeverityError, "finding"))

	a := NewAnalyzer(nil)
	diags := a.Analyze(metadata.NewRecord([]string{"filename"}, []string{"x"}))
	assert.Len(t, diags, 1)
}

func TestNewAnalyzerWithRules(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	custom := []RuleDef{testRule("X01", "format", metadata.SeverityError, "custom")}
	a := NewAnalyzerWithRules(NewConfig(), custom)

	assert.Len(t, a.Rules(), 1)
	diags := a.Analyze(metadata.NewRecord([]string{"filename"}, []string{"x"}))
	require.Len(t, diags, 1)
	assert.Equal(t, "X01", diags[0].RuleID)
}

func TestRuleInfo(t *testing.T) {
	def := RuleDef{
		ID:          "T01",
		Name:        "Test rule",
		Group:       "format",
		Description: "checks things",
		Severity:    metadata.SeverityWarning,
		ConfigKeys:  []string{"limit"},
		Rationale:   "because",
	}

	info := def.Info()
	assert.Equal(t, "T01", info.ID)
	assert.Equal(t, "Test rule", info.Name)
	assert.Equal(t, metadata.SeverityWarning, info.DefaultSeverity)
	assert.Equal(t, []string{"limit"}, info.ConfigKeys)
	assert.Equal(t, "because", info.Rationale)
}

func TestOptionHelpers(t *testing.T) {
	opts := map[string]any{
		"int":       3,
		"float":     4.0,
		"string":    "hello",
		"bool":      true,
		"strings":   []string{"a", "b"},
		"anys":      []any{"c", "d", 5},
		"wrongType": struct{}{},
	}

	assert.Equal(t, 3, GetIntOption(opts, "int", 0))
	assert.Equal(t, 4, GetIntOption(opts, "float", 0))
	assert.Equal(t, 9, GetIntOption(opts, "missing", 9))
	assert.Equal(t, 9, GetIntOption(nil, "int", 9))

	assert.Equal(t, "hello", GetStringOption(opts, "string", ""))
	assert.Equal(t, "fallback", GetStringOption(opts, "wrongType", "fallback"))

	assert.True(t, GetBoolOption(opts, "bool", false))
	assert.False(t, GetBoolOption(opts, "missing", false))

	assert.Equal(t, []string{"a", "b"}, GetStringSliceOption(opts, "strings", nil))
	// Non-string elements are skipped when converting []any
	assert.Equal(t, []string{"c", "d"}, GetStringSliceOption(opts, "anys", nil))
	assert.Equal(t, []string{"x"}, GetStringSliceOption(opts, "missing", []string{"x"}))
}
