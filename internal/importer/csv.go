// Package importer parses the application's CSV inputs: catalog replacement,
// per-item quantity corrections and bulk count loads.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// header aliases accepted across the CSV inputs. Matching is case-insensitive
// on trimmed header text; the first alias present wins.
var (
	codeAliases        = []string{"code_item", "number", "code", "codigo", "codeitem"}
	descriptionAliases = []string{"description_item", "description", "desc"}
	inventoryAliases   = []string{"current_inventory", "current", "inventory"}
	depositAliases     = []string{"deposit_id", "deposit", "deposit_description", "deposito"}
	rackAliases        = []string{"rack_id", "rack", "rack_description"}
)

// header maps canonical column meaning to a column index.
type header map[string]int

func (h header) get(record []string, aliases []string) (string, bool) {
	for _, alias := range aliases {
		if idx, ok := h[alias]; ok && idx < len(record) {
			return strings.TrimSpace(record[idx]), true
		}
	}
	return "", false
}

func (h header) column(record []string, name string) string {
	if idx, ok := h[name]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}

func (h header) has(aliases []string) bool {
	for _, alias := range aliases {
		if _, ok := h[alias]; ok {
			return true
		}
	}
	return false
}

// readAll parses the CSV stream and returns the header map plus data records.
// Records with fewer fields than the header are tolerated; the CSV reader is
// set lenient the same way the original tooling read its files.
func readAll(r io.Reader) (header, [][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("csv is empty")
	}

	h := make(header, len(records[0]))
	for i, name := range records[0] {
		h[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return h, records[1:], nil
}

// coerceInt parses an integer field, coercing empty and non-numeric values
// to zero the way the original import did.
func coerceInt(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return parsed
}
