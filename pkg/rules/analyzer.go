package rules

import "github.com/archivelab/metacheck/pkg/metadata"

// Analyzer runs validation rules against metadata records.
type Analyzer struct {
	config *Config
	rules  []RuleDef
}

// NewAnalyzer creates an analyzer over all registered rules with optional
// configuration. Rules run in ascending ID order, so the diagnostics for a
// record always concatenate in the same order regardless of registration
// sequence.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{config: config, rules: GetAll()}
}

// NewAnalyzerWithRules creates an analyzer over an explicit rule list.
// Used by tests that exercise a single rule in isolation.
func NewAnalyzerWithRules(config *Config, rules []RuleDef) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{config: config, rules: rules}
}

// Analyze runs all enabled rules against one record. Every rule runs
// regardless of earlier findings; the per-rule diagnostic slices are
// concatenated in rule order.
func (a *Analyzer) Analyze(rec metadata.Record) []Diagnostic {
	var diagnostics []Diagnostic

	for _, rule := range a.rules {
		if a.config.IsDisabled(rule.ID) {
			continue
		}

		opts := a.config.GetRuleOptions(rule.ID)
		diags := rule.Check(rec, opts)

		// Apply severity overrides
		for i := range diags {
			diags[i].Severity = a.config.GetSeverity(rule.ID, diags[i].Severity)
		}

		diagnostics = append(diagnostics, diags...)
	}

	return diagnostics
}

// Rules returns the rules this analyzer evaluates, in execution order.
func (a *Analyzer) Rules() []RuleDef {
	return a.rules
}
