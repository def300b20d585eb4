package dto

import (
	"github.com/shopspring/decimal"

	"traso/internal/domain/catalogs/item"
)

// ItemResponse is the API view of a stock item.
type ItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	MinStock     decimal.Decimal `json:"minStock"`
	LowStock     bool            `json:"lowStock"`
	IsActive     bool            `json:"isActive"`
	Version      int             `json:"version"`
}

// FromItem maps an item to its API view.
func FromItem(i *item.Item) ItemResponse {
	return ItemResponse{
		ID:           i.ID.String(),
		Name:         i.Name,
		Unit:         i.Unit,
		UnitPrice:    i.UnitPrice,
		CurrentStock: i.CurrentStock,
		MinStock:     i.MinStock,
		LowStock:     i.IsLowStock(),
		IsActive:     i.IsActive,
		Version:      i.Version,
	}
}

// CreateItemRequest for creating items.
type CreateItemRequest struct {
	Name      string           `json:"name" binding:"required"`
	Unit      string           `json:"unit" binding:"required"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
	MinStock  *decimal.Decimal `json:"minStock"`
}

// ToEntity maps the request to a new item. Stock always starts at zero;
// initial balances enter through the ledger.
func (r CreateItemRequest) ToEntity() *item.Item {
	i := item.New(r.Name, r.Unit)
	if r.UnitPrice != nil {
		i.UnitPrice = *r.UnitPrice
	}
	if r.MinStock != nil {
		i.MinStock = *r.MinStock
	}
	return i
}

// UpdateItemRequest for updating items. CurrentStock is absent on purpose:
// the balance belongs to the ledger.
type UpdateItemRequest struct {
	Name      *string          `json:"name"`
	Unit      *string          `json:"unit"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
	MinStock  *decimal.Decimal `json:"minStock"`
	Version   int              `json:"version" binding:"required,min=1"`
}

// ApplyTo patches the existing item in place.
func (r UpdateItemRequest) ApplyTo(i *item.Item) {
	if r.Name != nil {
		i.Name = *r.Name
	}
	if r.Unit != nil {
		i.Unit = *r.Unit
	}
	if r.UnitPrice != nil {
		i.UnitPrice = *r.UnitPrice
	}
	if r.MinStock != nil {
		i.MinStock = *r.MinStock
	}
	i.Version = r.Version
}
