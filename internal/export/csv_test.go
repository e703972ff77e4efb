package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSVFlat(t *testing.T) {
	doc := Flat("Differences", []string{"code", "difference"}, [][]string{
		{"0123", "-26"},
		{"45", "0"},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, doc))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "code,difference", lines[0])
	assert.Equal(t, "0123,-26", lines[1])
}

func TestWriteCSVSections(t *testing.T) {
	doc := Document{
		Title:   "Counts",
		Headers: []string{"code", "total"},
		Sections: []Section{
			{Title: "Main Warehouse - A1", Rows: [][]string{{"0123", "24"}}},
			{Title: "Store - Front", Rows: [][]string{{"45", "7"}}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, doc))

	out := buf.String()
	assert.Contains(t, out, "Main Warehouse - A1")
	assert.Contains(t, out, "Store - Front")
	// Headers appear once at the top, section titles inline.
	assert.Equal(t, 1, strings.Count(out, "code,total"))
	assert.True(t, strings.HasPrefix(out, "code,total"))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		value  string
		want   Format
		wantOK bool
	}{
		{"", FormatCSV, true},
		{"csv", FormatCSV, true},
		{"xlsx", FormatXLSX, true},
		{"pdf", FormatPDF, true},
		{"docx", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseFormat(tt.value)
		assert.Equal(t, tt.wantOK, ok, "value %q", tt.value)
		assert.Equal(t, tt.want, got, "value %q", tt.value)
	}
}
