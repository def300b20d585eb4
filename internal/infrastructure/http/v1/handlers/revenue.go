package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"traso/internal/domain/finance/revenue"
	"traso/internal/infrastructure/http/v1/dto"
)

// RevenueHandler handles monthly revenue records.
type RevenueHandler struct {
	BaseHandler
	service *revenue.Service
}

// NewRevenueHandler creates a revenue handler.
func NewRevenueHandler(service *revenue.Service) *RevenueHandler {
	return &RevenueHandler{service: service}
}

// RegisterRoutes registers revenue routes.
func (h *RevenueHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.PUT("", h.Upsert)
	g.GET("", h.ListByYear)
	g.GET("/:year/:month", h.GetByMonth)
	g.DELETE("/:id", h.Delete)
}

// Upsert handles PUT /. One record per month; re-posting replaces the amount.
func (h *RevenueHandler) Upsert(c *gin.Context) {
	var req dto.UpsertRevenueRequest
	if !h.BindJSON(c, &req) {
		return
	}

	rev := req.ToEntity()
	if err := h.service.Upsert(c.Request.Context(), rev); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromRevenue(rev))
}

// ListByYear handles GET /?year=.
func (h *RevenueHandler) ListByYear(c *gin.Context) {
	year := h.ParseIntQuery(c, "year", time.Now().Year())

	records, err := h.service.ListByYear(c.Request.Context(), year)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]dto.RevenueResponse, 0, len(records))
	for _, r := range records {
		items = append(items, dto.FromRevenue(r))
	}

	h.OK(c, items)
}

// GetByMonth handles GET /:year/:month.
func (h *RevenueHandler) GetByMonth(c *gin.Context) {
	year := h.pathInt(c, "year")
	month := h.pathInt(c, "month")

	rev, err := h.service.GetByMonth(c.Request.Context(), year, month)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromRevenue(rev))
}

// Delete handles DELETE /:id.
func (h *RevenueHandler) Delete(c *gin.Context) {
	revID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), revID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

func (h *RevenueHandler) pathInt(c *gin.Context, name string) int {
	value, _ := strconv.Atoi(c.Param(name))
	return value
}
