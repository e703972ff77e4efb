package importer

import (
	"fmt"
	"io"
	"strconv"
)

// Correction is one per-item quantity update from a correction CSV.
type Correction struct {
	Code             string
	CurrentInventory int
}

// ParseCorrections parses a quantity-correction CSV: a code column plus a
// current inventory column. Unlike count quantities, a non-numeric inventory
// here is a malformed correction and fails the row, not the batch.
func ParseCorrections(r io.Reader) ([]Correction, []RowFailure, error) {
	h, records, err := readAll(r)
	if err != nil {
		return nil, nil, err
	}
	if !h.has(codeAliases) || !h.has(inventoryAliases) {
		return nil, nil, fmt.Errorf("correction csv needs code and current inventory columns")
	}

	var corrections []Correction
	var failures []RowFailure
	for i, record := range records {
		line := i + 2 // 1-based, after header
		code, _ := h.get(record, codeAliases)
		if code == "" {
			failures = append(failures, RowFailure{Line: line, Record: record, Reason: "missing code"})
			continue
		}
		raw, _ := h.get(record, inventoryAliases)
		quantity, err := strconv.Atoi(raw)
		if err != nil {
			failures = append(failures, RowFailure{Line: line, Record: record, Reason: fmt.Sprintf("invalid quantity %q", raw)})
			continue
		}
		corrections = append(corrections, Correction{Code: code, CurrentInventory: quantity})
	}
	return corrections, failures, nil
}
