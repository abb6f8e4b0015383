package checks

import (
	"strings"

	"github.com/archivelab/metacheck/pkg/metadata"
	"github.com/archivelab/metacheck/pkg/rules"
)

func init() {
	rules.Register(FilenameConvention)
}

// FilenameConvention flags filenames that do not follow the
// YYYYMMDD_project_description_vNN.ext naming scheme.
var FilenameConvention = rules.RuleDef{
	ID:          "MD04",
	Name:        "metadata.filename-convention",
	Group:       "naming",
	Description: "Filenames must follow date_project_description_version with an extension.",
	Severity:    metadata.SeverityError,
	ConfigKeys:  []string{"min_segments"},
	Check:       checkFilenameConvention,
	Rationale:   "Consistent filenames let batches be sorted and traced back to scanning sessions without opening the files.",
	BadExample:  "scan_final2.tif",
	GoodExample: "20230101_herbarium_sheet012_v01.tif",
}

// defaultMinSegments is the minimum underscore-separated segment count:
// date, project, description, version.
const defaultMinSegments = 4

func checkFilenameConvention(rec metadata.Record, opts map[string]any) []rules.Diagnostic {
	filename := rec.GetTrimmed("filename")
	if filename == "" {
		return nil // missing filename is MD01's concern
	}

	diag := func(msg string) rules.Diagnostic {
		return rules.Diagnostic{
			RuleID:   "MD04",
			Severity: metadata.SeverityError,
			Message:  msg,
			Field:    "filename",
		}
	}

	// Structural step: the filename needs an extension before anything else
	// can be checked.
	dot := strings.LastIndex(filename, ".")
	if dot < 0 {
		return []rules.Diagnostic{diag("Filename has no file extension")}
	}
	namePart := filename[:dot]

	// Structural step: enough underscore-separated segments.
	segments := strings.Split(namePart, "_")
	minSegments := rules.GetIntOption(opts, "min_segments", defaultMinSegments)
	if len(segments) < minSegments {
		return []rules.Diagnostic{diag("Filename does not follow expected structure")}
	}

	// Content steps: date and version are independent, both may fire.
	var diagnostics []rules.Diagnostic

	if !isEightDigits(segments[0]) {
		diagnostics = append(diagnostics, diag("Filename date must be YYYYMMDD"))
	}

	version := segments[len(segments)-1]
	if !strings.HasPrefix(version, "v") || !isDigits(version[1:]) {
		diagnostics = append(diagnostics, diag("Filename version must look like v01"))
	}

	return diagnostics
}

func isEightDigits(s string) bool {
	return len(s) == 8 && isDigits(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
