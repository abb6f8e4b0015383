// Package rules provides the data-driven validation framework for metadata
// records. Rule definitions are stateless data; all context comes in through
// the Check function parameters.
//
// Rules are automatically registered via init() functions when their package
// is imported:
//
//	import _ "github.com/archivelab/metacheck/pkg/rules/checks"
//
// Use Config to control which rules are enabled and their severity:
//
//	cfg := rules.NewConfig()
//	cfg.Disable("MD02")
//	cfg.SetSeverity("MD03", metadata.SeverityWarning)
//	cfg.SetRuleOptions("MD03", map[string]any{"allowed_licenses": []string{"MIT"}})
package rules

import (
	"github.com/archivelab/metacheck/pkg/metadata"
)

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Check function parameters.
type RuleDef struct {
	ID          string            // Unique identifier, e.g., "MD01"
	Name        string            // Human-readable name, e.g., "metadata.required-fields"
	Group       string            // Category, e.g., "completeness", "format", "naming"
	Description string            // Human-readable description
	Severity    metadata.Severity // Default severity
	Check       CheckFunc         // The check function
	ConfigKeys  []string          // Configuration keys this rule accepts

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // A value showing the anti-pattern
	GoodExample string // A value showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc analyzes a record and returns diagnostics.
// The opts parameter contains rule-specific options from configuration.
type CheckFunc func(rec metadata.Record, opts map[string]any) []Diagnostic

// Diagnostic represents a single validation finding for one record.
type Diagnostic struct {
	RuleID   string
	Severity metadata.Severity
	Message  string // Exact issue text as written to the report
	Field    string // Column that triggered the finding, when attributable
}

// Info extracts metadata from a RuleDef for documentation/tooling.
func (d RuleDef) Info() metadata.RuleInfo {
	return metadata.RuleInfo{
		ID:              d.ID,
		Name:            d.Name,
		Group:           d.Group,
		Description:     d.Description,
		DefaultSeverity: d.Severity,
		ConfigKeys:      d.ConfigKeys,
		Rationale:       d.Rationale,
		BadExample:      d.BadExample,
		GoodExample:     d.GoodExample,
		Fix:             d.Fix,
	}
}
