package checks

import (
	"time"

	"github.com/archivelab/metacheck/pkg/metadata"
	"github.com/archivelab/metacheck/pkg/rules"
)

func init() {
	rules.Register(DateFormat)
}

// DateFormat flags dates that do not parse as zero-padded YYYY-MM-DD.
var DateFormat = rules.RuleDef{
	ID:          "MD02",
	Name:        "metadata.date-format",
	Group:       "format",
	Description: "The date field must be a calendar date in YYYY-MM-DD form.",
	Severity:    metadata.SeverityError,
	Check:       checkDateFormat,
	Rationale:   "A single unambiguous date format keeps records sortable and machine-readable.",
	BadExample:  "15.01.2023",
	GoodExample: "2023-01-15",
}

const dateLayout = "2006-01-02"

func checkDateFormat(rec metadata.Record, _ map[string]any) []rules.Diagnostic {
	value := rec.GetTrimmed("date")
	if value == "" {
		return nil // missing dates are MD01's concern
	}

	if _, err := time.Parse(dateLayout, value); err != nil {
		return []rules.Diagnostic{{
			RuleID:   "MD02",
			Severity: metadata.SeverityError,
			Message:  "Invalid date format (expected YYYY-MM-DD)",
			Field:    "date",
		}}
	}
	return nil
}
