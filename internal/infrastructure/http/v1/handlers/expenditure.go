package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"traso/internal/domain/finance/expenditure"
	"traso/internal/infrastructure/http/v1/dto"
)

// ExpenditureHandler handles fund expenditure endpoints.
type ExpenditureHandler struct {
	BaseHandler
	service *expenditure.Service
}

// NewExpenditureHandler creates an expenditure handler.
func NewExpenditureHandler(service *expenditure.Service) *ExpenditureHandler {
	return &ExpenditureHandler{service: service}
}

// RegisterRoutes registers expenditure CRUD routes.
func (h *ExpenditureHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Create handles POST /.
func (h *ExpenditureHandler) Create(c *gin.Context) {
	var req dto.CreateExpenditureRequest
	if !h.BindJSON(c, &req) {
		return
	}

	exp := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), exp); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromExpenditure(exp))
}

// GetByID handles GET /:id.
func (h *ExpenditureHandler) GetByID(c *gin.Context) {
	expID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	exp, err := h.service.GetByID(c.Request.Context(), expID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromExpenditure(exp))
}

// Update handles PUT /:id.
func (h *ExpenditureHandler) Update(c *gin.Context) {
	expID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateExpenditureRequest
	if !h.BindJSON(c, &req) {
		return
	}

	exp, err := h.service.GetByID(c.Request.Context(), expID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(exp)
	if err := h.service.Update(c.Request.Context(), exp); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromExpenditure(exp))
}

// Delete handles DELETE /:id.
func (h *ExpenditureHandler) Delete(c *gin.Context) {
	expID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), expID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// List handles GET /?year=&month=.
func (h *ExpenditureHandler) List(c *gin.Context) {
	filter, _ := h.parseFilter(c)

	expenditures, err := h.service.ListByPeriod(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]dto.ExpenditureResponse, 0, len(expenditures))
	for _, e := range expenditures {
		items = append(items, dto.FromExpenditure(e))
	}

	h.OK(c, items)
}

// Report handles GET /reports/expenditures?year=&month=: totals by source
// account, with a per-month breakdown for year scope.
func (h *ExpenditureHandler) Report(c *gin.Context) {
	filter, month := h.parseFilter(c)

	summary, err := h.service.Report(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromExpenditureSummary(filter.Year, month, summary))
}

func (h *ExpenditureHandler) parseFilter(c *gin.Context) (expenditure.Filter, *int) {
	filter := expenditure.Filter{
		Year: h.ParseIntQuery(c, "year", time.Now().Year()),
	}
	if m := h.ParseIntQuery(c, "month", 0); m > 0 {
		filter.Month = &m
	}
	return filter, filter.Month
}
