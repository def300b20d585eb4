package item

import (
	"context"

	"traso/internal/core/id"
	"traso/internal/core/types"
	"traso/internal/domain"
)

// Repository defines the interface for Item persistence.
type Repository interface {
	domain.CatalogRepository[*Item]

	// ApplyStockDelta adds delta (signed) to the item's cached current stock
	// as a single atomic UPDATE. Returns not-found if the item does not
	// exist, so a ledger mutation can never half-apply.
	ApplyStockDelta(ctx context.Context, id id.ID, delta types.Quantity) error

	// FindLowStock retrieves items with current stock at or below min stock.
	FindLowStock(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Item], error)
}
