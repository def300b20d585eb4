// Package item provides the stock item registry.
// Items are the tea-shop's raw materials and sellable goods; each carries a
// cached current stock level derived from the stock ledger.
package item

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"traso/internal/core/apperror"
	"traso/internal/core/entity"
	"traso/internal/core/types"
)

// Item represents a stock item (tea, topping, cup, ingredient).
type Item struct {
	entity.BaseCatalog

	// Name is the display name (e.g. "Trà đen", "Trân châu trắng")
	Name string `db:"name" json:"name"`

	// Unit is the unit of measure (kg, l, hộp, cái)
	Unit string `db:"unit" json:"unit"`

	// UnitPrice is the latest known purchase price per unit
	UnitPrice types.Money `db:"unit_price" json:"unitPrice"`

	// CurrentStock is the cached balance derived from the ledger.
	// Invariant: equals the signed sum of all ledger entries for this item.
	// Mutated only through the ledger service, never set directly by callers.
	CurrentStock types.Quantity `db:"current_stock" json:"currentStock"`

	// MinStock is the reorder threshold
	MinStock types.Quantity `db:"min_stock" json:"minStock"`
}

// New creates a new Item with zero initial stock.
func New(name, unit string) *Item {
	return &Item{
		BaseCatalog:  entity.NewBaseCatalog(),
		Name:         name,
		Unit:         unit,
		UnitPrice:    decimal.Zero,
		CurrentStock: decimal.Zero,
		MinStock:     decimal.Zero,
	}
}

// Validate implements entity.Validatable.
func (i *Item) Validate(ctx context.Context) error {
	if strings.TrimSpace(i.Name) == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	if strings.TrimSpace(i.Unit) == "" {
		return apperror.NewValidation("unit is required").
			WithDetail("field", "unit")
	}

	if i.UnitPrice.IsNegative() {
		return apperror.NewValidation("unit price cannot be negative").
			WithDetail("field", "unitPrice")
	}

	if i.MinStock.IsNegative() {
		return apperror.NewValidation("minimum stock cannot be negative").
			WithDetail("field", "minStock")
	}

	return nil
}

// IsLowStock reports whether the cached balance is at or below the threshold.
func (i *Item) IsLowStock() bool {
	return i.CurrentStock.LessThanOrEqual(i.MinStock)
}
