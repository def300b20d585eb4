package handlers

import (
	"github.com/gin-gonic/gin"

	"traso/internal/domain"
	"traso/internal/domain/catalogs/item"
	"traso/internal/infrastructure/http/v1/dto"
)

// ItemHandler handles stock item endpoints.
type ItemHandler struct {
	*CatalogHandler[*item.Item, dto.CreateItemRequest, dto.UpdateItemRequest]
	service *item.Service
}

// NewItemHandler creates an item handler.
func NewItemHandler(service *item.Service) *ItemHandler {
	return &ItemHandler{
		CatalogHandler: NewCatalogHandler(CatalogHandlerConfig[*item.Item, dto.CreateItemRequest, dto.UpdateItemRequest]{
			Service:    service.CatalogService,
			EntityName: "item",
			MapCreate:  func(req dto.CreateItemRequest) *item.Item { return req.ToEntity() },
			MapUpdate:  func(req dto.UpdateItemRequest, i *item.Item) { req.ApplyTo(i) },
			MapResponse: func(i *item.Item) any {
				return dto.FromItem(i)
			},
		}),
		service: service,
	}
}

// RegisterRoutes registers item routes including the low-stock report.
func (h *ItemHandler) RegisterRoutes(g *gin.RouterGroup) {
	h.CatalogHandler.RegisterRoutes(g)
	g.GET("/low-stock", h.LowStock)
}

// LowStock handles GET /low-stock.
func (h *ItemHandler) LowStock(c *gin.Context) {
	filter := domain.ListFilter{
		Limit:  h.ParseIntQuery(c, "limit", domain.DefaultListLimit),
		Offset: h.ParseIntQuery(c, "offset", 0),
	}

	result, err := h.service.FindLowStock(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]dto.ItemResponse, 0, len(result.Items))
	for _, i := range result.Items {
		items = append(items, dto.FromItem(i))
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	})
}
