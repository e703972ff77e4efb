package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Sheet1"

// WriteXLSX renders the document as a single-sheet XLSX workbook.
func WriteXLSX(w io.Writer, doc Document) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return fmt.Errorf("create section style: %w", err)
	}

	for i, header := range doc.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(xlsxSheet, cell, header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		if err := f.SetCellStyle(xlsxSheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("style header: %w", err)
		}
	}

	rowIdx := 2
	for _, section := range doc.Sections {
		if section.Title != "" {
			cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
			if err := f.SetCellValue(xlsxSheet, cell, section.Title); err != nil {
				return fmt.Errorf("write section title: %w", err)
			}
			if err := f.SetCellStyle(xlsxSheet, cell, cell, sectionStyle); err != nil {
				return fmt.Errorf("style section title: %w", err)
			}
			rowIdx++
		}
		for _, row := range section.Rows {
			for i, value := range row {
				cell, _ := excelize.CoordinatesToCellName(i+1, rowIdx)
				if err := f.SetCellValue(xlsxSheet, cell, value); err != nil {
					return fmt.Errorf("write cell: %w", err)
				}
			}
			rowIdx++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
