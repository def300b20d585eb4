package revenue

import (
	"context"

	"traso/internal/core/id"
	"traso/internal/core/tx"
	"traso/pkg/logger"
)

// Service provides business logic for monthly revenue records.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new revenue service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// Upsert records the revenue for a month, replacing any existing figure.
func (s *Service) Upsert(ctx context.Context, rev *Revenue) error {
	if err := rev.Validate(ctx); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Upsert(ctx, rev)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "revenue recorded",
		"year", rev.Year,
		"month", rev.Month,
		"amount", rev.Amount,
	)
	return nil
}

// GetByMonth retrieves the revenue record for one month.
func (s *Service) GetByMonth(ctx context.Context, year, month int) (*Revenue, error) {
	return s.repo.GetByMonth(ctx, year, month)
}

// ListByYear retrieves all revenue records for a year.
func (s *Service) ListByYear(ctx context.Context, year int) ([]*Revenue, error) {
	return s.repo.ListByYear(ctx, year)
}

// Delete removes a revenue record.
func (s *Service) Delete(ctx context.Context, revID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, revID)
	})
}
