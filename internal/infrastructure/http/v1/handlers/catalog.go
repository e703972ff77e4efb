package handlers

import (
	"github.com/gin-gonic/gin"

	"stocktally/internal/core/apperror"
	"stocktally/internal/domain/catalogs/item"
	"stocktally/internal/importer"
	"stocktally/internal/infrastructure/http/v1/dto"
	"stocktally/pkg/logger"
)

// CatalogHandler serves the item catalog: listing, code lookup, the
// wipe-and-reload CSV import and per-item inventory corrections.
type CatalogHandler struct {
	*BaseHandler
	items      *item.Service
	failureDir string
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(items *item.Service, failureDir string) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler: NewBaseHandler(),
		items:       items,
		failureDir:  failureDir,
	}
}

// List handles GET /api/v1/catalog/items.
func (h *CatalogHandler) List(c *gin.Context) {
	var req dto.ItemListRequest
	if !h.BindQuery(c, &req) {
		return
	}
	req.Defaults()

	items, err := h.items.List(c.Request.Context(), item.ListFilter{
		Search: req.Search,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.ListResponse{Items: items, Count: len(items)})
}

// Get handles GET /api/v1/catalog/items/:code. The code resolves through the
// leading-zero fallback, so /items/045 finds "45" when "045" is absent.
func (h *CatalogHandler) Get(c *gin.Context) {
	it, err := h.items.ResolveCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, it)
}

// Import handles POST /api/v1/catalog/items/import. The request body is the
// CSV file; the whole catalog is replaced atomically.
func (h *CatalogHandler) Import(c *gin.Context) {
	items, err := importer.ParseCatalog(c.Request.Body)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid catalog file").WithDetail("error", err.Error()))
		return
	}

	imported, err := h.items.ReplaceCatalog(c.Request.Context(), items)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.ImportResultResponse{Imported: imported})
}

// Corrections handles POST /api/v1/catalog/corrections. The request body is a
// CSV of code/current_inventory pairs; rows that fail are written to the
// failure log and the rest are applied.
func (h *CatalogHandler) Corrections(c *gin.Context) {
	corrections, failures, err := importer.ParseCorrections(c.Request.Body)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid corrections file").WithDetail("error", err.Error()))
		return
	}

	ctx := c.Request.Context()
	applied := 0
	for _, corr := range corrections {
		if err := h.items.CorrectInventory(ctx, corr.Code, corr.CurrentInventory); err != nil {
			failures = append(failures, importer.RowFailure{
				Record: []string{corr.Code},
				Reason: err.Error(),
			})
			continue
		}
		applied++
	}

	resp := dto.ImportResultResponse{Imported: applied, Failed: len(failures)}
	if len(failures) > 0 {
		path, err := importer.WriteFailureLog(h.failureDir, "corrections", failures)
		if err != nil {
			logger.Error(c.Request.Context(), "write correction failure log", "error", err)
		} else {
			resp.FailureLog = path
		}
	}
	h.OK(c, resp)
}

// Correct handles PUT /api/v1/catalog/items/:code/inventory.
func (h *CatalogHandler) Correct(c *gin.Context) {
	var req struct {
		CurrentInventory int `json:"currentInventory"`
	}
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.items.CorrectInventory(c.Request.Context(), c.Param("code"), req.CurrentInventory); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "inventory corrected")
}
