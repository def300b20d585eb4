package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"traso/internal/domain/finance/expense"
	"traso/internal/infrastructure/http/v1/dto"
)

// ExpenseHandler handles operating expense lines.
type ExpenseHandler struct {
	BaseHandler
	service *expense.Service
}

// NewExpenseHandler creates an expense handler.
func NewExpenseHandler(service *expense.Service) *ExpenseHandler {
	return &ExpenseHandler{service: service}
}

// RegisterRoutes registers expense routes.
func (h *ExpenseHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Create handles POST /.
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	exp := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), exp); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromExpense(exp))
}

// GetByID handles GET /:id.
func (h *ExpenseHandler) GetByID(c *gin.Context) {
	expID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	exp, err := h.service.GetByID(c.Request.Context(), expID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromExpense(exp))
}

// Update handles PUT /:id.
func (h *ExpenseHandler) Update(c *gin.Context) {
	expID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
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

	h.OK(c, dto.FromExpense(exp))
}

// Delete handles DELETE /:id.
func (h *ExpenseHandler) Delete(c *gin.Context) {
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

// List handles GET /?year=&month=. With month, one month's lines; without,
// the whole year.
func (h *ExpenseHandler) List(c *gin.Context) {
	year := h.ParseIntQuery(c, "year", time.Now().Year())
	month := h.ParseIntQuery(c, "month", 0)

	var (
		expenses []*expense.Expense
		err      error
	)
	if month > 0 {
		expenses, err = h.service.ListByMonth(c.Request.Context(), year, month)
	} else {
		expenses, err = h.service.ListByYear(c.Request.Context(), year)
	}
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, dto.FromExpense(e))
	}

	h.OK(c, items)
}
