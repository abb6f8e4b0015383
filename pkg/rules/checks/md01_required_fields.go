package checks

import (
	"github.com/archivelab/metacheck/pkg/metadata"
	"github.com/archivelab/metacheck/pkg/rules"
)

func init() {
	rules.Register(RequiredFields)
}

// RequiredFields flags records with blank required fields.
var RequiredFields = rules.RuleDef{
	ID:          "MD01",
	Name:        "metadata.required-fields",
	Group:       "completeness",
	Description: "Every required metadata field must contain a non-blank value.",
	Severity:    metadata.SeverityError,
	ConfigKeys:  []string{"required_fields"},
	Check:       checkRequiredFields,
	Rationale:   "Records missing core descriptive fields cannot be catalogued or discovered.",
	Fix:         "Fill in the missing field in the source spreadsheet before re-running validation.",
}

// DefaultRequiredFields is the field list checked when no override is configured.
// List order is the order in which missing-field issues are reported.
var DefaultRequiredFields = []string{"filename", "title", "creator", "date", "license", "format"}

func checkRequiredFields(rec metadata.Record, opts map[string]any) []rules.Diagnostic {
	fields := rules.GetStringSliceOption(opts, "required_fields", DefaultRequiredFields)

	var diagnostics []rules.Diagnostic
	for _, field := range fields {
		if rec.GetTrimmed(field) != "" {
			continue
		}
		diagnostics = append(diagnostics, rules.Diagnostic{
			RuleID:   "MD01",
			Severity: metadata.SeverityError,
			Message:  "Missing " + field,
			Field:    field,
		})
	}
	return diagnostics
}
