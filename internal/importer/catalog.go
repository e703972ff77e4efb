package importer

import (
	"fmt"
	"io"

	"stocktally/internal/domain/catalogs/item"
)

// ParseCatalog parses a catalog CSV into items. The code column is required
// (any of its aliases); description defaults to empty and current inventory
// to zero, with non-numeric inventory values coerced to zero. Rows without a
// code are skipped.
func ParseCatalog(r io.Reader) ([]item.Item, error) {
	h, records, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if !h.has(codeAliases) {
		return nil, fmt.Errorf("catalog csv is missing a code column (one of code_item, number, code, codigo)")
	}

	items := make([]item.Item, 0, len(records))
	for _, record := range records {
		code, _ := h.get(record, codeAliases)
		if code == "" {
			continue
		}
		description, _ := h.get(record, descriptionAliases)
		inventory, _ := h.get(record, inventoryAliases)

		items = append(items, item.Item{
			Code:             code,
			Description:      description,
			CurrentInventory: coerceInt(inventory),
		})
	}
	return items, nil
}
