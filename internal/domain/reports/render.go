package reports

import (
	"fmt"
	"strconv"

	"stocktally/internal/export"
)

// BuildCountsDocument groups ledger rows by deposit and rack, one section
// per location, mirroring the printed count sheets.
func BuildCountsDocument(rows []CountsRow) export.Document {
	doc := export.Document{
		Title: "Inventory Counts by Location",
		Headers: []string{
			"ID", "Counter", "Code", "Description",
			"Boxes", "Units/Box", "Box Units", "Warehouse", "Store",
			"Total", "Current", "Difference", "Date",
		},
	}

	var current *export.Section
	var currentKey string
	for _, r := range rows {
		key := fmt.Sprintf("%s - %s", r.DepositName, r.RackName)
		if current == nil || key != currentKey {
			doc.Sections = append(doc.Sections, export.Section{Title: key})
			current = &doc.Sections[len(doc.Sections)-1]
			currentKey = key
		}
		current.Rows = append(current.Rows, []string{
			strconv.FormatInt(r.ID, 10),
			r.CounterName,
			r.CodeItem,
			r.DescriptionItem,
			strconv.Itoa(r.BoxQty),
			strconv.Itoa(r.BoxUnitQty),
			strconv.Itoa(r.BoxUnitTotal),
			strconv.Itoa(r.Magazijn),
			strconv.Itoa(r.Winkel),
			strconv.Itoa(r.Total),
			strconv.Itoa(r.CurrentInventory),
			strconv.Itoa(r.Difference),
			r.CountDate,
		})
	}
	return doc
}

// BuildDifferencesDocument renders the differences summary.
func BuildDifferencesDocument(rows []DifferenceRow) export.Document {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.CodeItem,
			r.DescriptionItem,
			strconv.Itoa(r.Total),
			strconv.Itoa(r.PurchasingQty),
			strconv.Itoa(r.SalesQty),
			strconv.Itoa(r.TotalCalc),
			strconv.Itoa(r.CurrentInventory),
			strconv.Itoa(r.Difference),
		})
	}
	return export.Flat(
		"Differences Summary",
		[]string{"Code", "Description", "Counted", "Purchasing", "Sales", "Calculated", "Current", "Difference"},
		out,
	)
}

// BuildUncountedDocument renders the never-counted item listing.
func BuildUncountedDocument(rows []UncountedRow) export.Document {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.CodeItem,
			r.DescriptionItem,
			strconv.Itoa(r.CurrentInventory),
		})
	}
	return export.Flat(
		"Items Without Counts",
		[]string{"Code", "Description", "Current"},
		out,
	)
}

// BuildRemarksDocument renders the remarks verification listing.
func BuildRemarksDocument(rows []RemarkRow) export.Document {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.CounterName,
			r.DepositName,
			r.RackName,
			r.CodeItem,
			r.DescriptionItem,
			strconv.Itoa(r.BoxQty),
			strconv.Itoa(r.BoxUnitQty),
			strconv.Itoa(r.BoxUnitTotal),
			strconv.Itoa(r.Magazijn),
			strconv.Itoa(r.Total),
			strconv.FormatInt(r.ID, 10),
			r.Remarks,
		})
	}
	return export.Flat(
		"Remarks Verification",
		[]string{"Counter", "Deposit", "Rack", "Code", "Description", "Boxes", "Units/Box", "Box Units", "Loose", "Total", "ID", "Remarks"},
		out,
	)
}
