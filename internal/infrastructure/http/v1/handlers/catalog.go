package handlers

import (
	"github.com/gin-gonic/gin"

	"traso/internal/core/entity"
	"traso/internal/domain"
	"traso/internal/infrastructure/http/v1/dto"
)

// CatalogHandlerConfig configures a generic catalog handler.
type CatalogHandlerConfig[T entity.Validatable, CreateDTO any, UpdateDTO any] struct {
	Service    *domain.CatalogService[T]
	EntityName string

	// MapCreate builds a new entity from the create request.
	MapCreate func(CreateDTO) T
	// MapUpdate applies the update request onto a loaded entity.
	MapUpdate func(UpdateDTO, T)
	// MapResponse converts an entity to its API view.
	MapResponse func(T) any
}

// CatalogHandler provides generic CRUD endpoints for catalog entities.
// Per-entity handlers are thin wrappers supplying DTO mappers.
type CatalogHandler[T entity.Validatable, CreateDTO any, UpdateDTO any] struct {
	BaseHandler
	cfg CatalogHandlerConfig[T, CreateDTO, UpdateDTO]
}

// NewCatalogHandler creates a catalog handler from config.
func NewCatalogHandler[T entity.Validatable, CreateDTO any, UpdateDTO any](
	cfg CatalogHandlerConfig[T, CreateDTO, UpdateDTO],
) *CatalogHandler[T, CreateDTO, UpdateDTO] {
	return &CatalogHandler[T, CreateDTO, UpdateDTO]{cfg: cfg}
}

// RegisterRoutes registers standard catalog routes on the group.
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.PATCH("/:id/active", h.SetActive)
}

// List handles GET /.
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) List(c *gin.Context) {
	filter := domain.ListFilter{
		Search:          c.Query("search"),
		IncludeInactive: h.ParseBoolQuery(c, "includeInactive"),
		OrderBy:         c.Query("orderBy"),
		Limit:           h.ParseIntQuery(c, "limit", domain.DefaultListLimit),
		Offset:          h.ParseIntQuery(c, "offset", 0),
	}

	result, err := h.cfg.Service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, 0, len(result.Items))
	for _, e := range result.Items {
		items = append(items, h.cfg.MapResponse(e))
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	})
}

// GetByID handles GET /:id.
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) GetByID(c *gin.Context) {
	entityID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	e, err := h.cfg.Service.GetByID(c.Request.Context(), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.cfg.MapResponse(e))
}

// Create handles POST /.
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) Create(c *gin.Context) {
	var req CreateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	e := h.cfg.MapCreate(req)
	if err := h.cfg.Service.Create(c.Request.Context(), e); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, h.cfg.MapResponse(e))
}

// Update handles PUT /:id.
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) Update(c *gin.Context) {
	entityID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	e, err := h.cfg.Service.GetByID(c.Request.Context(), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.cfg.MapUpdate(req, e)
	if err := h.cfg.Service.Update(c.Request.Context(), e); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.cfg.MapResponse(e))
}

// Delete handles DELETE /:id (soft delete).
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) Delete(c *gin.Context) {
	entityID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cfg.Service.Delete(c.Request.Context(), entityID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// SetActive handles PATCH /:id/active.
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) SetActive(c *gin.Context) {
	entityID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SetActiveRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.cfg.Service.SetActive(c.Request.Context(), entityID, req.Active); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, h.cfg.EntityName+" updated")
}
