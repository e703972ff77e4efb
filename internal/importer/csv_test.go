package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalog(t *testing.T) {
	csv := strings.Join([]string{
		"Number,Description,Current",
		"0123,Widget,50",
		"45,Gadget,",
		",Orphan row,10",
		"7,Bolt,not-a-number",
	}, "\n")

	items, err := ParseCatalog(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "0123", items[0].Code)
	assert.Equal(t, "Widget", items[0].Description)
	assert.Equal(t, 50, items[0].CurrentInventory)

	// Empty and non-numeric quantities coerce to zero.
	assert.Equal(t, 0, items[1].CurrentInventory)
	assert.Equal(t, 0, items[2].CurrentInventory)
	assert.Equal(t, "7", items[2].Code)
}

func TestParseCatalogHeaderAliases(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"canonical", "code_item,description_item,current_inventory"},
		{"short", "code,desc,inventory"},
		{"spanish", "codigo,description,current"},
		{"mixed case", "Number,DESCRIPTION,Current"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := ParseCatalog(strings.NewReader(tt.header + "\n99,Thing,5\n"))
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, "99", items[0].Code)
			assert.Equal(t, "Thing", items[0].Description)
			assert.Equal(t, 5, items[0].CurrentInventory)
		})
	}
}

func TestParseCatalogMissingCodeColumn(t *testing.T) {
	_, err := ParseCatalog(strings.NewReader("description,current\nWidget,5\n"))
	assert.Error(t, err)
}

func TestParseCorrections(t *testing.T) {
	csv := strings.Join([]string{
		"code,current_inventory",
		"0123,40",
		"45,oops",
		",12",
		"7,-3",
	}, "\n")

	corrections, failures, err := ParseCorrections(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, corrections, 2)
	assert.Equal(t, Correction{Code: "0123", CurrentInventory: 40}, corrections[0])
	assert.Equal(t, Correction{Code: "7", CurrentInventory: -3}, corrections[1])

	// Non-numeric quantities fail the row here, they are not coerced.
	require.Len(t, failures, 2)
	assert.Equal(t, 3, failures[0].Line)
	assert.Contains(t, failures[0].Reason, "invalid quantity")
	assert.Equal(t, 4, failures[1].Line)
	assert.Equal(t, "missing code", failures[1].Reason)
}

func TestParseCountDate(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"14-03-2025", "2025-03-14"},
		{"14/03/2025", "2025-03-14"},
		{"2025-03-14", "2025-03-14"},
	}

	for _, tt := range tests {
		got := ParseCountDate(tt.value)
		assert.Equal(t, tt.want, got.Format("2006-01-02"), "value %q", tt.value)
	}

	// Unparseable dates default to today.
	today := time.Now().Format("2006-01-02")
	assert.Equal(t, today, ParseCountDate("").Format("2006-01-02"))
	assert.Equal(t, today, ParseCountDate("last tuesday").Format("2006-01-02"))
}

func TestCoerceInt(t *testing.T) {
	assert.Equal(t, 12, coerceInt(" 12 "))
	assert.Equal(t, 0, coerceInt(""))
	assert.Equal(t, 0, coerceInt("abc"))
	assert.Equal(t, -4, coerceInt("-4"))
}

func TestWriteFailureLog(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteFailureLog(dir, "counts", []RowFailure{
		{Line: 2, Record: []string{"a", "b"}, Reason: "missing code"},
	})
	require.NoError(t, err)
	assert.Contains(t, path, "counts_failures_")
	assert.FileExists(t, path)

	// No failures, no file.
	path, err = WriteFailureLog(dir, "counts", nil)
	require.NoError(t, err)
	assert.Empty(t, path)
}
