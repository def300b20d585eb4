package expenditure

import (
	"context"

	"traso/internal/core/apperror"
	"traso/internal/core/id"
	"traso/internal/core/tx"
	"traso/pkg/logger"
)

// Service provides business logic for fund expenditures.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new expenditure service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// Create records a new expenditure.
func (s *Service) Create(ctx context.Context, exp *Expenditure) error {
	if err := exp.Validate(ctx); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, exp)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "expenditure created",
		"id", exp.ID,
		"source_account", exp.SourceAccount,
		"amount", exp.Amount,
	)
	return nil
}

// Update edits an expenditure.
func (s *Service) Update(ctx context.Context, exp *Expenditure) error {
	if err := exp.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		original, err := s.repo.GetByID(ctx, exp.ID)
		if err != nil {
			return s.notFound(err, exp.ID)
		}
		exp.CreatedAt = original.CreatedAt
		exp.Touch()
		return s.repo.Update(ctx, exp)
	})
}

// Delete removes an expenditure.
func (s *Service) Delete(ctx context.Context, expID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, expID); err != nil {
			return s.notFound(err, expID)
		}
		return nil
	})
}

// GetByID retrieves a single expenditure.
func (s *Service) GetByID(ctx context.Context, expID id.ID) (*Expenditure, error) {
	exp, err := s.repo.GetByID(ctx, expID)
	if err != nil {
		return nil, s.notFound(err, expID)
	}
	return exp, nil
}

// ListByPeriod retrieves the raw expenditures for a period.
func (s *Service) ListByPeriod(ctx context.Context, filter Filter) ([]*Expenditure, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	return s.repo.ListByPeriod(ctx, filter)
}

// Report loads the period's expenditures and aggregates them.
func (s *Service) Report(ctx context.Context, filter Filter) (*Summary, error) {
	expenditures, err := s.ListByPeriod(ctx, filter)
	if err != nil {
		return nil, err
	}
	return Summarize(expenditures), nil
}

func validateFilter(filter Filter) error {
	if filter.Year < 2000 || filter.Year > 2100 {
		return apperror.NewValidation("year is out of range").
			WithDetail("field", "year").
			WithDetail("value", filter.Year)
	}
	if filter.Month != nil && (*filter.Month < 1 || *filter.Month > 12) {
		return apperror.NewValidation("month must be between 1 and 12").
			WithDetail("field", "month").
			WithDetail("value", *filter.Month)
	}
	return nil
}

func (s *Service) notFound(err error, expID id.ID) error {
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound("expenditure", expID.String())
	}
	return err
}
