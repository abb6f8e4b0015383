package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRecord(t *testing.T) {
	cols := []string{"filename", "title", "creator"}

	t.Run("full row", func(t *testing.T) {
		rec := NewRecord(cols, []string{"scan.tif", "A scan", "Jane"})
		assert.Equal(t, cols, rec.Columns())
		assert.Equal(t, "A scan", rec.Get("title"))
		assert.Equal(t, []string{"scan.tif", "A scan", "Jane"}, rec.Values())
	})

	t.Run("short row pads with blanks", func(t *testing.T) {
		rec := NewRecord(cols, []string{"scan.tif"})
		assert.Equal(t, "", rec.Get("title"))
		assert.Equal(t, []string{"scan.tif", "", ""}, rec.Values())
	})

	t.Run("long row drops extras", func(t *testing.T) {
		rec := NewRecord(cols, []string{"scan.tif", "A scan", "Jane", "extra"})
		assert.Equal(t, []string{"scan.tif", "A scan", "Jane"}, rec.Values())
	})

	t.Run("absent column reads as empty", func(t *testing.T) {
		rec := NewRecord(cols, []string{"scan.tif", "A scan", "Jane"})
		assert.Equal(t, "", rec.Get("license"))
	})
}

func TestGetTrimmed(t *testing.T) {
	rec := NewRecord([]string{"title"}, []string{"  padded  "})
	assert.Equal(t, "  padded  ", rec.Get("title"))
	assert.Equal(t, "padded", rec.GetTrimmed("title"))
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "unknown", Severity(99).String())
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input string
		want  Severity
		ok    bool
	}{
		{"error", SeverityError, true},
		{"WARNING", SeverityWarning, true},
		{"Info", SeverityInfo, true},
		{"hint", SeverityWarning, false},
		{"", SeverityWarning, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseSeverity(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
