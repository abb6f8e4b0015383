package metadata

import "strings"

// Record is one row of digitization metadata, keyed by column name.
// Records are immutable once loaded: rules read values, the report writer
// copies them through verbatim.
type Record struct {
	columns []string
	values  map[string]string
}

// NewRecord builds a record from an ordered header and the matching row values.
// Extra header columns with no value map to the empty string.
func NewRecord(columns []string, row []string) Record {
	values := make(map[string]string, len(columns))
	for i, col := range columns {
		if i < len(row) {
			values[col] = row[i]
		} else {
			values[col] = ""
		}
	}
	return Record{columns: columns, values: values}
}

// Columns returns the column names in input order.
func (r Record) Columns() []string {
	return r.columns
}

// Get returns the raw value for a column, or "" if the column is absent.
func (r Record) Get(column string) string {
	return r.values[column]
}

// GetTrimmed returns the value for a column with surrounding whitespace removed.
func (r Record) GetTrimmed(column string) string {
	return strings.TrimSpace(r.values[column])
}

// Values returns the row values in column order.
func (r Record) Values() []string {
	out := make([]string, len(r.columns))
	for i, col := range r.columns {
		out[i] = r.values[col]
	}
	return out
}
