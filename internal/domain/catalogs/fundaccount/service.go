package fundaccount

import (
	"context"

	"traso/internal/core/apperror"
	"traso/internal/core/tx"
	"traso/internal/domain"
)

// Service provides business logic for allocation accounts.
type Service struct {
	*domain.CatalogService[*Account]
	repo Repository
}

// NewService creates a new fund account service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Account]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "fund account",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().On(domain.BeforeCreate, svc.checkNameUnique)

	return svc
}

func (s *Service) checkNameUnique(ctx context.Context, account *Account) error {
	existing, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil
	}
	for _, other := range existing {
		if other.Name == account.Name && other.ID != account.ID {
			return apperror.NewDuplicate("fund account", "name", account.Name)
		}
	}
	return nil
}

// ListActive returns all active accounts.
func (s *Service) ListActive(ctx context.Context) ([]*Account, error) {
	return s.repo.ListActive(ctx)
}
