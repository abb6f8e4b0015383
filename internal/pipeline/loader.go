package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/archivelab/metacheck/pkg/metadata"
)

// Table holds a loaded metadata table: the header in input order and one
// record per data row, also in input order.
type Table struct {
	Header  []string
	Records []metadata.Record
}

// Load reads a metadata CSV into a Table. The first row is the header; every
// following row becomes a record keyed by header names. Rows shorter than the
// header read as blank in the missing columns, values beyond the header are
// dropped.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // header defines the columns, tolerate ragged rows

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("input file %s has no header row", path)
	}

	header := rows[0]
	records := make([]metadata.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, metadata.NewRecord(header, row))
	}

	return &Table{Header: header, Records: records}, nil
}
