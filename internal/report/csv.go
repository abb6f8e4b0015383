// Package report writes annotated validation reports. Every writer appends a
// single "issues" column to the input header and copies rows through
// verbatim, preserving row and column order.
package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/archivelab/metacheck/pkg/metadata"
)

// IssuesColumn is the name of the appended diagnostics column.
const IssuesColumn = "issues"

// WriteCSV writes the report as CSV: input header plus the issues column,
// then one row per record with its joined issue string. With zero records it
// still writes the header line, so an empty input yields an empty but valid
// report.
func WriteCSV(path string, header []string, records []metadata.Record, issues []string) error {
	if len(issues) != len(records) {
		return fmt.Errorf("issue list length %d does not match record count %d", len(issues), len(records))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(append(append([]string{}, header...), IssuesColumn)); err != nil {
		return err
	}
	for i, rec := range records {
		row := append(rec.Values(), issues[i])
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return f.Close()
}
