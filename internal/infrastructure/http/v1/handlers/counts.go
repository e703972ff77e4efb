package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stocktally/internal/core/apperror"
	"stocktally/internal/domain/counts"
	"stocktally/internal/importer"
	"stocktally/internal/infrastructure/http/v1/dto"
	"stocktally/pkg/logger"
)

// CountHandler serves the count ledger: entry, lookup, editing and the bulk
// CSV import.
type CountHandler struct {
	*BaseHandler
	counts     *counts.Service
	importer   *importer.CountImporter
	failureDir string
}

// NewCountHandler creates a new count handler.
func NewCountHandler(countService *counts.Service, countImporter *importer.CountImporter, failureDir string) *CountHandler {
	return &CountHandler{
		BaseHandler: NewBaseHandler(),
		counts:      countService,
		importer:    countImporter,
		failureDir:  failureDir,
	}
}

// Resolve handles GET /api/v1/counts/resolve/:code: the entry-form lookup
// that resolves a typed code and warns about existing counts before any
// quantities are entered.
func (h *CountHandler) Resolve(c *gin.Context) {
	lookup, err := h.counts.Resolve(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, lookup)
}

// Submit handles POST /api/v1/counts.
func (h *CountHandler) Submit(c *gin.Context) {
	var req dto.SubmitCountRequest
	if !h.BindJSON(c, &req) {
		return
	}

	in, err := req.ToInput()
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid count date").WithDetail("countDate", req.CountDate))
		return
	}

	count, err := h.counts.Submit(c.Request.Context(), in)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, count)
}

// Get handles GET /api/v1/counts/:id.
func (h *CountHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	count, err := h.counts.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, count)
}

// List handles GET /api/v1/counts.
func (h *CountHandler) List(c *gin.Context) {
	var req dto.CountListRequest
	if !h.BindQuery(c, &req) {
		return
	}

	rows, err := h.counts.List(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.ListResponse{Items: rows, Count: len(rows)})
}

// Update handles PUT /api/v1/counts/:id.
func (h *CountHandler) Update(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateCountRequest
	if !h.BindJSON(c, &req) {
		return
	}

	in, err := req.ToInput()
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid count date"))
		return
	}

	count, err := h.counts.Update(c.Request.Context(), id, in)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, count)
}

// Delete handles DELETE /api/v1/counts/:id.
func (h *CountHandler) Delete(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.counts.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// Import handles POST /api/v1/counts/import. The request body is the CSV
// file; failed rows go to the failure log and the batch continues.
func (h *CountHandler) Import(c *gin.Context) {
	result, err := h.importer.Import(c.Request.Context(), c.Request.Body)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid counts file").WithDetail("error", err.Error()))
		return
	}

	resp := dto.ImportResultResponse{
		Imported: result.Inserted,
		Failed:   len(result.Failures),
	}
	if len(result.Failures) > 0 {
		path, err := importer.WriteFailureLog(h.failureDir, "counts", result.Failures)
		if err != nil {
			logger.Error(c.Request.Context(), "write count import failure log", "error", err)
		} else {
			resp.FailureLog = path
		}
	}
	h.OK(c, resp)
}
