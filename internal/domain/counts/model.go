// Package counts provides the count ledger and the reconciliation engine:
// turning typed codes and entered quantities into fully derived ledger rows.
package counts

import (
	"stocktally/internal/core/apperror"
)

// Count represents one count ledger row: a physical count of an item at a
// location by a counter on a date. Derived fields are always computed here,
// never trusted from a caller.
type Count struct {
	ID          int64  `db:"id" json:"id"`
	CounterName string `db:"counter_name" json:"counterName"`
	CodeItem    string `db:"code_item" json:"codeItem"`
	DepositID   int64  `db:"deposit_id" json:"depositId"`
	RackID      int64  `db:"rack_id" json:"rackId"`

	// Location is the denormalized "{deposit} - {rack}" string captured at
	// insert time.
	Location string `db:"location" json:"location"`

	BoxQty       int `db:"boxqty" json:"boxQty"`
	BoxUnitQty   int `db:"boxunitqty" json:"boxUnitQty"`
	BoxUnitTotal int `db:"boxunittotal" json:"boxUnitTotal"`

	// Magazijn and Winkel are the loose-unit buckets: warehouse and store.
	Magazijn int `db:"magazijn" json:"magazijn"`
	Winkel   int `db:"winkel" json:"winkel"`

	Total int `db:"total" json:"total"`

	// CurrentInventory is a snapshot of the catalog quantity at entry time.
	// Later catalog corrections do not retroactively alter historical counts.
	CurrentInventory int `db:"current_inventory" json:"currentInventory"`

	Difference int `db:"difference" json:"difference"`

	// CountDate is an ISO date string (YYYY-MM-DD).
	CountDate string `db:"count_date" json:"countDate"`

	Remarks string `db:"remarks" json:"remarks"`
}

// Quantities are the four entered quantity fields of a count.
type Quantities struct {
	BoxQty     int `json:"boxQty"`
	BoxUnitQty int `json:"boxUnitQty"`
	Magazijn   int `json:"magazijn"`
	Winkel     int `json:"winkel"`
}

// Validate rejects negative quantities. Non-integer input never reaches this
// type: it is rejected at the binding or CSV-parsing boundary.
func (q Quantities) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"boxQty", q.BoxQty},
		{"boxUnitQty", q.BoxUnitQty},
		{"magazijn", q.Magazijn},
		{"winkel", q.Winkel},
	}
	for _, f := range fields {
		if f.value < 0 {
			return apperror.NewInvalidQuantity(f.name, f.value)
		}
	}
	return nil
}

// Derived holds the computed fields of a count.
type Derived struct {
	BoxUnitTotal int
	Total        int
	Difference   int
}

// Compute derives the reconciliation fields from entered quantities and the
// catalog snapshot:
//
//	boxunittotal = boxqty * boxunitqty
//	total        = boxunittotal + magazijn + winkel
//	difference   = total - current_inventory
func Compute(q Quantities, currentInventory int) Derived {
	boxUnitTotal := q.BoxQty * q.BoxUnitQty
	total := boxUnitTotal + q.Magazijn + q.Winkel
	return Derived{
		BoxUnitTotal: boxUnitTotal,
		Total:        total,
		Difference:   total - currentInventory,
	}
}

// apply writes derived fields and the snapshot onto the row.
func (c *Count) apply(q Quantities, currentInventory int) {
	d := Compute(q, currentInventory)
	c.BoxQty = q.BoxQty
	c.BoxUnitQty = q.BoxUnitQty
	c.BoxUnitTotal = d.BoxUnitTotal
	c.Magazijn = q.Magazijn
	c.Winkel = q.Winkel
	c.Total = d.Total
	c.CurrentInventory = currentInventory
	c.Difference = d.Difference
}
