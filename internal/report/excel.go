package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/archivelab/metacheck/pkg/metadata"
)

// WriteXLSX writes the report as an Excel workbook with the same columns and
// row order as the CSV report.
func WriteXLSX(path string, header []string, records []metadata.Record, issues []string) error {
	if len(issues) != len(records) {
		return fmt.Errorf("issue list length %d does not match record count %d", len(issues), len(records))
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Sheet1"

	// Header row
	for i, h := range append(append([]string{}, header...), IssuesColumn) {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	// Data rows
	for r, rec := range records {
		row := append(rec.Values(), issues[r])
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
