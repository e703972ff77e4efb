package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"stocktally/internal/core/apperror"
	"stocktally/internal/domain/catalogs/location"
	"stocktally/internal/infrastructure/http/v1/dto"
)

// LocationHandler serves the deposit/rack reference data.
type LocationHandler struct {
	*BaseHandler
	locations *location.Service
}

// NewLocationHandler creates a new location handler.
func NewLocationHandler(locations *location.Service) *LocationHandler {
	return &LocationHandler{
		BaseHandler: NewBaseHandler(),
		locations:   locations,
	}
}

// Deposits handles GET /api/v1/deposits.
func (h *LocationHandler) Deposits(c *gin.Context) {
	deposits, err := h.locations.Deposits(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.ListResponse{Items: deposits, Count: len(deposits)})
}

// Racks handles GET /api/v1/racks?depositId=N.
func (h *LocationHandler) Racks(c *gin.Context) {
	var depositID *int64
	if raw := c.Query("depositId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid depositId").WithDetail("depositId", raw))
			return
		}
		depositID = &id
	}

	racks, err := h.locations.Racks(c.Request.Context(), depositID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.ListResponse{Items: racks, Count: len(racks)})
}
