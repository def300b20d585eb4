package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"traso/internal/core/apperror"
	"traso/internal/core/id"
	"traso/internal/domain/ledger"
	"traso/internal/infrastructure/http/v1/dto"
)

// StockEntryHandler handles stock ledger endpoints.
type StockEntryHandler struct {
	BaseHandler
	service *ledger.Service
}

// NewStockEntryHandler creates a stock entry handler.
func NewStockEntryHandler(service *ledger.Service) *StockEntryHandler {
	return &StockEntryHandler{service: service}
}

// RegisterRoutes registers ledger routes on the group.
func (h *StockEntryHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Create handles POST /. Persists the movement and adjusts the item balance
// in one transaction.
func (h *StockEntryHandler) Create(c *gin.Context) {
	var req dto.CreateStockEntryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	entry, err := req.ToEntity()
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid itemId").WithDetail("itemId", req.ItemID))
		return
	}

	if err := h.service.Create(c.Request.Context(), entry); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromStockEntry(entry))
}

// GetByID handles GET /:id.
func (h *StockEntryHandler) GetByID(c *gin.Context) {
	entryID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	entry, err := h.service.GetByID(c.Request.Context(), entryID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromStockEntry(entry))
}

// Update handles PUT /:id. The original effect is reversed and the new
// content applied, so the item balance stays consistent through edits.
func (h *StockEntryHandler) Update(c *gin.Context) {
	entryID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStockEntryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	entry, err := h.service.GetByID(c.Request.Context(), entryID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := req.ApplyTo(entry); err != nil {
		h.Error(c, apperror.NewValidation("invalid itemId").WithDetail("itemId", req.ItemID))
		return
	}

	if err := h.service.Update(c.Request.Context(), entry); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromStockEntry(entry))
}

// Delete handles DELETE /:id.
func (h *StockEntryHandler) Delete(c *gin.Context) {
	entryID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), entryID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// List handles GET / with optional filters.
func (h *StockEntryHandler) List(c *gin.Context) {
	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}

	entries, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]dto.StockEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.FromStockEntry(e))
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: int64(len(items)),
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	})
}

// PriceHistory handles GET /items/:id/price-history.
func (h *StockEntryHandler) PriceHistory(c *gin.Context) {
	itemID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	points, err := h.service.PriceHistory(c.Request.Context(), itemID)
	if err != nil {
		h.Error(c, err)
		return
	}

	history := make([]dto.PricePointResponse, 0, len(points))
	for _, p := range points {
		history = append(history, dto.FromPricePoint(p))
	}

	h.OK(c, history)
}

func (h *StockEntryHandler) parseFilter(c *gin.Context) (ledger.Filter, bool) {
	filter := ledger.Filter{
		Limit:  h.ParseIntQuery(c, "limit", 100),
		Offset: h.ParseIntQuery(c, "offset", 0),
	}

	if raw := c.Query("itemId"); raw != "" {
		itemID, err := id.Parse(raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid itemId").WithDetail("itemId", raw))
			return filter, false
		}
		filter.ItemID = &itemID
	}

	if raw := c.Query("direction"); raw != "" {
		direction := ledger.Direction(raw)
		if !direction.IsValid() {
			h.Error(c, apperror.NewValidation("direction must be 'in' or 'out'").WithDetail("direction", raw))
			return filter, false
		}
		filter.Direction = &direction
	}

	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid from date, expected YYYY-MM-DD").WithDetail("from", raw))
			return filter, false
		}
		filter.FromDate = &from
	}

	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid to date, expected YYYY-MM-DD").WithDetail("to", raw))
			return filter, false
		}
		filter.ToDate = &to
	}

	return filter, true
}
