// Package summary provides the per-code rollup of the count ledger,
// blended with sales and purchasing adjustments.
package summary

// Row is one aggregated summary row, one per counted code.
type Row struct {
	ID              int64  `db:"id" json:"id"`
	CodeItem        string `db:"code_item" json:"codeItem"`
	DescriptionItem string `db:"description_item" json:"descriptionItem"`

	BoxQty       int `db:"boxqty" json:"boxQty"`
	BoxUnitQty   int `db:"boxunitqty" json:"boxUnitQty"`
	BoxUnitTotal int `db:"boxunittotal" json:"boxUnitTotal"`
	Magazijn     int `db:"magazijn" json:"magazijn"`
	Winkel       int `db:"winkel" json:"winkel"`
	Total        int `db:"total" json:"total"`

	CurrentInventory int `db:"current_inventory" json:"currentInventory"`

	SalesQty      int `db:"sales_qty" json:"salesQty"`
	PurchasingQty int `db:"purchasing_qty" json:"purchasingQty"`

	// TotalCalc = total + purchasing_qty - sales_qty.
	TotalCalc int `db:"total_calc" json:"totalCalc"`

	// Difference = current_inventory - total_calc. Sign is inverted relative
	// to the ledger's per-row difference; both conventions are recorded
	// behavior.
	Difference int `db:"difference" json:"difference"`

	UpdatedDate string `db:"updated_date" json:"updatedDate"`
}
