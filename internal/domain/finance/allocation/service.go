package allocation

import (
	"context"
	"fmt"

	"traso/internal/core/apperror"
	"traso/internal/domain/catalogs/fundaccount"
	"traso/pkg/logger"
)

// Service computes allocation reports from stored figures and the active
// fund accounts.
type Service struct {
	figures  FiguresRepository
	accounts fundaccount.Repository
}

// NewService creates a new allocation service.
func NewService(figures FiguresRepository, accounts fundaccount.Repository) *Service {
	return &Service{figures: figures, accounts: accounts}
}

// Allocate computes the allocation for a year, or for one month of it when
// month is 1..12. month == 0 selects the whole year.
func (s *Service) Allocate(ctx context.Context, year, month int) (*Result, error) {
	if year < 2000 || year > 2100 {
		return nil, apperror.NewValidation("year is out of range").
			WithDetail("field", "year").
			WithDetail("value", year)
	}
	if month < 0 || month > 12 {
		return nil, apperror.NewValidation("month must be between 1 and 12").
			WithDetail("field", "month").
			WithDetail("value", month)
	}

	accounts, err := s.accounts.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("load fund accounts: %w", err)
	}

	var result *Result
	if month == 0 {
		figures, err := s.figures.YearFigures(ctx, year)
		if err != nil {
			return nil, fmt.Errorf("load year figures: %w", err)
		}
		result = ComputeYear(accounts, year, figures)
	} else {
		figures, err := s.figures.MonthFigures(ctx, year, month)
		if err != nil {
			return nil, fmt.Errorf("load month figures: %w", err)
		}
		result = ComputeMonth(accounts, year, month, figures)
	}

	logger.Debug(ctx, "allocation computed",
		"year", year,
		"month", month,
		"accounts", len(accounts),
		"net_profit", result.NetProfit,
	)
	return result, nil
}
