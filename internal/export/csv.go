package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV renders the document as CSV. Section titles become single-cell
// rows preceding their data so grouped reports stay readable in a flat file.
func WriteCSV(w io.Writer, doc Document) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(doc.Headers); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}

	for _, section := range doc.Sections {
		if section.Title != "" {
			if err := cw.Write([]string{section.Title}); err != nil {
				return fmt.Errorf("write section title: %w", err)
			}
		}
		for _, row := range section.Rows {
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
