// Package reports provides read-only projections over the count ledger and
// the summary table, ready for rendering to CSV, XLSX or PDF.
package reports

// CountsRow is one ledger row joined with its item, deposit and rack
// descriptions, ordered for grouping by deposit then rack.
type CountsRow struct {
	ID               int64  `db:"id" json:"id"`
	CounterName      string `db:"counter_name" json:"counterName"`
	CodeItem         string `db:"code_item" json:"codeItem"`
	DescriptionItem  string `db:"description_item" json:"descriptionItem"`
	BoxQty           int    `db:"boxqty" json:"boxQty"`
	BoxUnitQty       int    `db:"boxunitqty" json:"boxUnitQty"`
	BoxUnitTotal     int    `db:"boxunittotal" json:"boxUnitTotal"`
	Magazijn         int    `db:"magazijn" json:"magazijn"`
	Winkel           int    `db:"winkel" json:"winkel"`
	Total            int    `db:"total" json:"total"`
	CurrentInventory int    `db:"current_inventory" json:"currentInventory"`
	Difference       int    `db:"difference" json:"difference"`
	DepositName      string `db:"deposit_name" json:"depositName"`
	RackName         string `db:"rack_name" json:"rackName"`
	Location         string `db:"location" json:"location"`
	CountDate        string `db:"count_date" json:"countDate"`
}

// DifferenceRow is one summary row ordered by absolute difference, the
// reconciliation signal the whole tool exists to surface.
type DifferenceRow struct {
	CodeItem         string `db:"code_item" json:"codeItem"`
	DescriptionItem  string `db:"description_item" json:"descriptionItem"`
	Total            int    `db:"total" json:"total"`
	SalesQty         int    `db:"sales_qty" json:"salesQty"`
	PurchasingQty    int    `db:"purchasing_qty" json:"purchasingQty"`
	TotalCalc        int    `db:"total_calc" json:"totalCalc"`
	CurrentInventory int    `db:"current_inventory" json:"currentInventory"`
	Difference       int    `db:"difference" json:"difference"`
}

// UncountedRow is a catalog item with no ledger entry.
type UncountedRow struct {
	CodeItem         string `db:"code_item" json:"codeItem"`
	DescriptionItem  string `db:"description_item" json:"descriptionItem"`
	CurrentInventory int    `db:"current_inventory" json:"currentInventory"`
}

// RemarkRow is a ledger row carrying a non-empty remark, for verification.
type RemarkRow struct {
	CounterName     string `db:"counter_name" json:"counterName"`
	DepositName     string `db:"deposit_name" json:"depositName"`
	RackName        string `db:"rack_name" json:"rackName"`
	Location        string `db:"location" json:"location"`
	CodeItem        string `db:"code_item" json:"codeItem"`
	DescriptionItem string `db:"description_item" json:"descriptionItem"`
	BoxQty          int    `db:"boxqty" json:"boxQty"`
	BoxUnitQty      int    `db:"boxunitqty" json:"boxUnitQty"`
	BoxUnitTotal    int    `db:"boxunittotal" json:"boxUnitTotal"`
	Magazijn        int    `db:"magazijn" json:"magazijn"`
	Total           int    `db:"total" json:"total"`
	ID              int64  `db:"id" json:"id"`
	Remarks         string `db:"remarks" json:"remarks"`
}
