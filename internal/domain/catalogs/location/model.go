// Package location provides the two-level physical location hierarchy:
// deposits (warehouses) containing racks (shelving units).
package location

import "fmt"

// Deposit represents a warehouse. Static reference data, rarely mutated.
type Deposit struct {
	ID          int64  `db:"deposit_id" json:"id"`
	Description string `db:"deposit_description" json:"description"`
}

// Rack represents a shelving unit within a deposit.
type Rack struct {
	ID          int64  `db:"rack_id" json:"id"`
	Description string `db:"rack_description" json:"description"`
	DepositID   int64  `db:"deposit_id" json:"depositId"`
}

// Label builds the denormalized location string stored on count rows.
// Renaming a deposit or rack leaves previously stored labels stale; that
// matches the recorded behavior and is not silently repaired.
func Label(deposit *Deposit, rack *Rack) string {
	return fmt.Sprintf("%s - %s", deposit.Description, rack.Description)
}
