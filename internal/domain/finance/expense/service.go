package expense

import (
	"context"
	"fmt"

	"traso/internal/core/apperror"
	"traso/internal/core/id"
	"traso/internal/core/tx"
	"traso/pkg/logger"
)

// Service provides business logic for expense lines.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new expense service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// Create records a new expense line.
func (s *Service) Create(ctx context.Context, exp *Expense) error {
	if err := exp.Validate(ctx); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, exp)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "expense created",
		"id", exp.ID,
		"name", exp.Name,
		"amount", exp.Amount,
		"period", periodKey(exp.Year, exp.Month),
	)
	return nil
}

// Update edits an expense line.
func (s *Service) Update(ctx context.Context, exp *Expense) error {
	if err := exp.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, exp); err != nil {
			return s.notFound(err, exp.ID)
		}
		return nil
	})
}

// Delete removes an expense line.
func (s *Service) Delete(ctx context.Context, expID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, expID); err != nil {
			return s.notFound(err, expID)
		}
		return nil
	})
}

// GetByID retrieves a single expense.
func (s *Service) GetByID(ctx context.Context, expID id.ID) (*Expense, error) {
	exp, err := s.repo.GetByID(ctx, expID)
	if err != nil {
		return nil, s.notFound(err, expID)
	}
	return exp, nil
}

// ListByMonth retrieves all expenses for one month.
func (s *Service) ListByMonth(ctx context.Context, year, month int) ([]*Expense, error) {
	return s.repo.ListByMonth(ctx, year, month)
}

// ListByYear retrieves all expenses for a year.
func (s *Service) ListByYear(ctx context.Context, year int) ([]*Expense, error) {
	return s.repo.ListByYear(ctx, year)
}

func (s *Service) notFound(err error, expID id.ID) error {
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound("expense", expID.String())
	}
	return err
}

func periodKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
