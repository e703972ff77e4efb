package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCountsDocumentGroupsByLocation(t *testing.T) {
	rows := []CountsRow{
		{ID: 1, CodeItem: "0123", DepositName: "Main Warehouse", RackName: "A1", Total: 24},
		{ID: 2, CodeItem: "45", DepositName: "Main Warehouse", RackName: "A1", Total: 7},
		{ID: 3, CodeItem: "7", DepositName: "Main Warehouse", RackName: "B2", Total: 1},
		{ID: 4, CodeItem: "88", DepositName: "Store", RackName: "Front", Total: 2},
	}

	doc := BuildCountsDocument(rows)

	require.Len(t, doc.Sections, 3)
	assert.Equal(t, "Main Warehouse - A1", doc.Sections[0].Title)
	assert.Len(t, doc.Sections[0].Rows, 2)
	assert.Equal(t, "Main Warehouse - B2", doc.Sections[1].Title)
	assert.Equal(t, "Store - Front", doc.Sections[2].Title)
	assert.Len(t, doc.Sections[2].Rows, 1)

	// Row width matches the header width.
	for _, section := range doc.Sections {
		for _, row := range section.Rows {
			assert.Len(t, row, len(doc.Headers))
		}
	}
}

func TestBuildDifferencesDocument(t *testing.T) {
	doc := BuildDifferencesDocument([]DifferenceRow{
		{CodeItem: "0123", DescriptionItem: "Widget", Total: 24, PurchasingQty: 10, SalesQty: 4, TotalCalc: 30, CurrentInventory: 50, Difference: 20},
	})

	require.Len(t, doc.Sections, 1)
	require.Len(t, doc.Sections[0].Rows, 1)
	assert.Equal(t,
		[]string{"0123", "Widget", "24", "10", "4", "30", "50", "20"},
		doc.Sections[0].Rows[0])
}

func TestBuildEmptyDocuments(t *testing.T) {
	assert.Empty(t, BuildCountsDocument(nil).Sections)
	assert.Len(t, BuildUncountedDocument(nil).Sections, 1)
	assert.Empty(t, BuildUncountedDocument(nil).Sections[0].Rows)
	assert.Len(t, BuildRemarksDocument(nil).Sections, 1)
}
