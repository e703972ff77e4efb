package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"stocktally/internal/core/apperror"
	"stocktally/internal/domain/reports"
	"stocktally/internal/export"
)

// ReportHandler serves the four inventory reports in json, csv, xlsx or pdf.
type ReportHandler struct {
	*BaseHandler
	reports *reports.Service
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService *reports.Service) *ReportHandler {
	return &ReportHandler{
		BaseHandler: NewBaseHandler(),
		reports:     reportService,
	}
}

// Counts handles GET /api/v1/reports/counts?format=csv|xlsx|pdf.
func (h *ReportHandler) Counts(c *gin.Context) {
	rows, err := h.reports.CountsByLocation(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.render(c, "counts", rows, func() export.Document {
		return reports.BuildCountsDocument(rows)
	})
}

// Differences handles GET /api/v1/reports/differences?format=csv|xlsx|pdf.
func (h *ReportHandler) Differences(c *gin.Context) {
	rows, err := h.reports.Differences(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.render(c, "differences", rows, func() export.Document {
		return reports.BuildDifferencesDocument(rows)
	})
}

// Uncounted handles GET /api/v1/reports/uncounted?format=csv|xlsx|pdf.
func (h *ReportHandler) Uncounted(c *gin.Context) {
	rows, err := h.reports.Uncounted(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.render(c, "uncounted", rows, func() export.Document {
		return reports.BuildUncountedDocument(rows)
	})
}

// Remarks handles GET /api/v1/reports/remarks?format=csv|xlsx|pdf.
func (h *ReportHandler) Remarks(c *gin.Context) {
	rows, err := h.reports.Remarks(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.render(c, "remarks", rows, func() export.Document {
		return reports.BuildRemarksDocument(rows)
	})
}

// render writes the report either as plain JSON rows (the default) or as a
// downloadable document in the requested format.
func (h *ReportHandler) render(c *gin.Context, name string, rows any, build func() export.Document) {
	raw := c.DefaultQuery("format", "json")
	if raw == "json" {
		h.OK(c, rows)
		return
	}

	format, ok := export.ParseFormat(raw)
	if !ok {
		h.Error(c, apperror.NewValidation("unsupported format").WithDetail("format", raw))
		return
	}

	doc := build()
	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s.%s"`, name, format.Extension()))
	c.Header("Content-Type", format.ContentType())
	c.Status(http.StatusOK)

	var err error
	switch format {
	case export.FormatCSV:
		err = export.WriteCSV(c.Writer, doc)
	case export.FormatXLSX:
		err = export.WriteXLSX(c.Writer, doc)
	case export.FormatPDF:
		err = export.WritePDF(c.Writer, doc)
	}
	if err != nil {
		h.Error(c, apperror.NewInternal(err))
	}
}
