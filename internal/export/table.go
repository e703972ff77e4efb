// Package export renders tabular report data to CSV, XLSX and PDF.
package export

// Format identifies an export output format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ParseFormat maps a query value to a Format, defaulting to CSV.
func ParseFormat(value string) (Format, bool) {
	switch value {
	case "", string(FormatCSV):
		return FormatCSV, true
	case string(FormatXLSX):
		return FormatXLSX, true
	case string(FormatPDF):
		return FormatPDF, true
	}
	return "", false
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/csv"
	}
}

// Extension returns the file extension for the format.
func (f Format) Extension() string {
	return string(f)
}

// Section is a titled group of rows; reports grouped by deposit/rack emit
// one section per group. A flat report uses a single untitled section.
type Section struct {
	Title string
	Rows  [][]string
}

// Document is a renderable report: a title, column headers and one or more
// sections.
type Document struct {
	Title    string
	Headers  []string
	Sections []Section
}

// Flat builds a single-section document.
func Flat(title string, headers []string, rows [][]string) Document {
	return Document{
		Title:    title,
		Headers:  headers,
		Sections: []Section{{Rows: rows}},
	}
}
