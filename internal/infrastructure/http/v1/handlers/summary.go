package handlers

import (
	"github.com/gin-gonic/gin"

	"stocktally/internal/domain/summary"
	"stocktally/internal/infrastructure/http/v1/dto"
)

// SummaryHandler serves the per-code rollup.
type SummaryHandler struct {
	*BaseHandler
	summary *summary.Service
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(summaryService *summary.Service) *SummaryHandler {
	return &SummaryHandler{
		BaseHandler: NewBaseHandler(),
		summary:     summaryService,
	}
}

// List handles GET /api/v1/summary.
func (h *SummaryHandler) List(c *gin.Context) {
	rows, err := h.summary.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.ListResponse{Items: rows, Count: len(rows)})
}

// Rebuild handles POST /api/v1/summary/rebuild.
func (h *SummaryHandler) Rebuild(c *gin.Context) {
	var req dto.RebuildSummaryRequest
	if c.Request.ContentLength > 0 {
		if !h.BindJSON(c, &req) {
			return
		}
	}

	rows, err := h.summary.Rebuild(c.Request.Context(), req.Clear)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.RebuildSummaryResponse{Rows: rows, Cleared: req.Clear})
}
