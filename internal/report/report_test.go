package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/archivelab/metacheck/pkg/metadata"
)

var testHeader = []string{"filename", "title", "license"}

func testRecords() []metadata.Record {
	return []metadata.Record{
		metadata.NewRecord(testHeader, []string{"scan1.tif", "First scan", "MIT"}),
		metadata.NewRecord(testHeader, []string{"scan2.tif", "Second, with comma", "Apache-2.0"}),
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	issues := []string{"", "License not allowed: Apache-2.0"}

	require.NoError(t, WriteCSV(path, testHeader, testRecords(), issues))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"filename", "title", "license", "issues"}, rows[0])
	assert.Equal(t, []string{"scan1.tif", "First scan", "MIT", ""}, rows[1])
	// Values with embedded commas survive the round trip
	assert.Equal(t, []string{"scan2.tif", "Second, with comma", "Apache-2.0", "License not allowed: Apache-2.0"}, rows[2])
}

func TestWriteCSVHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")

	require.NoError(t, WriteCSV(path, testHeader, nil, nil))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, []string{"filename", "title", "license", "issues"}, rows[0])
}

func TestWriteCSVLengthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	err := WriteCSV(path, testHeader, testRecords(), []string{"only one"})
	assert.ErrorContains(t, err, "does not match")
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	issues := []string{"", "License not allowed: Apache-2.0"}

	require.NoError(t, WriteXLSX(path, testHeader, testRecords(), issues))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"filename", "title", "license", "issues"}, rows[0])
	assert.Equal(t, "License not allowed: Apache-2.0", rows[2][3])
}

func TestWriteXLSXLengthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	err := WriteXLSX(path, testHeader, testRecords(), nil)
	assert.ErrorContains(t, err, "does not match")
}
