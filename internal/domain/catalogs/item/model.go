// Package item provides the item catalog: the baseline truth for each SKU.
// Item codes keep their leading zeros; "007" and "7" are distinct catalog keys.
package item

import (
	"strings"

	"stocktally/internal/core/apperror"
)

// Item represents a catalog row with the authoritative on-hand quantity
// as of the last catalog import.
type Item struct {
	// Code is the item code. Leading zeros are significant.
	Code string `db:"code_item" json:"code"`

	// Description is the item description.
	Description string `db:"description_item" json:"description"`

	// CurrentInventory is the authoritative on-hand quantity.
	CurrentInventory int `db:"current_inventory" json:"currentInventory"`
}

// Validate checks the item for catalog insertion.
func (i *Item) Validate() error {
	if strings.TrimSpace(i.Code) == "" {
		return apperror.NewValidation("item code is required").
			WithDetail("field", "code")
	}
	return nil
}

// StripZeros returns the code with leading zeros removed. The empty result
// for an all-zero code means there is no alternate form to try.
func StripZeros(code string) string {
	return strings.TrimLeft(code, "0")
}
