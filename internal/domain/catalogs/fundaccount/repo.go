package fundaccount

import (
	"context"

	"traso/internal/domain"
)

// Repository defines the interface for Account persistence.
type Repository interface {
	domain.CatalogRepository[*Account]

	// ListActive returns all active accounts ordered by name.
	// Input to the allocation calculator.
	ListActive(ctx context.Context) ([]*Account, error)
}
