package handlers

import (
	"github.com/gin-gonic/gin"

	"traso/internal/domain/finance/allocation"
	"traso/internal/infrastructure/http/v1/dto"
)

// AllocationHandler handles profit allocation reports.
type AllocationHandler struct {
	BaseHandler
	service *allocation.Service
}

// NewAllocationHandler creates an allocation handler.
func NewAllocationHandler(service *allocation.Service) *AllocationHandler {
	return &AllocationHandler{service: service}
}

// RegisterRoutes registers allocation report routes.
func (h *AllocationHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("/allocations", h.Report)
}

// Report handles GET /allocations?year=&month=. Omitting month yields the
// whole-year report.
func (h *AllocationHandler) Report(c *gin.Context) {
	year := h.ParseIntQuery(c, "year", 0)
	month := h.ParseIntQuery(c, "month", 0)

	result, err := h.service.Allocate(c.Request.Context(), year, month)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromAllocationResult(result))
}
