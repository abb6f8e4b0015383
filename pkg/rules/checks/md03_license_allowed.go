package checks

import (
	"github.com/archivelab/metacheck/pkg/metadata"
	"github.com/archivelab/metacheck/pkg/rules"
)

func init() {
	rules.Register(LicenseAllowed)
}

// LicenseAllowed flags license identifiers outside the accepted set.
var LicenseAllowed = rules.RuleDef{
	ID:          "MD03",
	Name:        "metadata.license-allowed",
	Group:       "format",
	Description: "The license field must exactly match an allow-listed identifier.",
	Severity:    metadata.SeverityError,
	ConfigKeys:  []string{"allowed_licenses"},
	Check:       checkLicenseAllowed,
	Rationale:   "Only material under a cleared license may be published; matching is case-sensitive on the SPDX identifier.",
	BadExample:  "cc-by-4.0",
	GoodExample: "CC-BY-4.0",
	Fix:         "Use the exact SPDX identifier from the allow-list, or clear the new license with the rights team first.",
}

// DefaultAllowedLicenses is the allow-list used when no override is configured.
var DefaultAllowedLicenses = []string{"CC0-1.0", "CC-BY-4.0", "MIT", "GPL-3.0"}

func checkLicenseAllowed(rec metadata.Record, opts map[string]any) []rules.Diagnostic {
	value := rec.GetTrimmed("license")
	if value == "" {
		return nil // missing license is MD01's concern
	}

	allowed := rules.GetStringSliceOption(opts, "allowed_licenses", DefaultAllowedLicenses)
	for _, lic := range allowed {
		if value == lic {
			return nil
		}
	}

	return []rules.Diagnostic{{
		RuleID:   "MD03",
		Severity: metadata.SeverityError,
		Message:  "License not allowed: " + value,
		Field:    "license",
	}}
}
