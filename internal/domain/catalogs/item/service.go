package item

import (
	"context"

	"traso/internal/core/apperror"
	"traso/internal/core/tx"
	"traso/internal/domain"
)

// Service provides business logic for the item registry.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Item]
	repo Repository
}

// NewService creates a new item service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Item]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "item",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().On(domain.BeforeCreate, svc.checkNameUnique)
	base.Hooks().On(domain.BeforeUpdate, svc.rejectStockPatch)

	return svc
}

// checkNameUnique rejects duplicate item names among active items.
func (s *Service) checkNameUnique(ctx context.Context, it *Item) error {
	result, err := s.repo.List(ctx, domain.ListFilter{Search: it.Name, Limit: 10})
	if err != nil {
		return nil // uniqueness check is best-effort; DB constraint is the backstop
	}
	for _, existing := range result.Items {
		if existing.Name == it.Name && existing.ID != it.ID {
			return apperror.NewDuplicate("item", "name", it.Name)
		}
	}
	return nil
}

// rejectStockPatch keeps the cached balance ledger-owned: an update must carry
// the stored current stock unchanged.
func (s *Service) rejectStockPatch(ctx context.Context, it *Item) error {
	stored, err := s.repo.GetByID(ctx, it.ID)
	if err != nil {
		return err
	}
	if !stored.CurrentStock.Equal(it.CurrentStock) {
		return apperror.NewBusinessRule(apperror.CodeBusinessRule,
			"current stock is derived from the ledger and cannot be edited directly").
			WithDetail("field", "currentStock")
	}
	return nil
}

// FindLowStock retrieves items with stock at or below minimum.
func (s *Service) FindLowStock(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Item], error) {
	return s.repo.FindLowStock(ctx, filter)
}
