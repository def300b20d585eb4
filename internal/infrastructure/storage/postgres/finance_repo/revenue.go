// Package finance_repo provides PostgreSQL implementations for the finance
// repositories: revenues, expenses, fund expenditures and the aggregated
// figures the allocation calculator runs on.
package finance_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"traso/internal/core/apperror"
	"traso/internal/core/id"
	"traso/internal/domain/finance/revenue"
	"traso/internal/infrastructure/storage/postgres"
)

// Compile-time check.
var _ revenue.Repository = (*RevenueRepo)(nil)

// RevenueRepo implements revenue.Repository backed by fin_revenues.
type RevenueRepo struct {
	txm        *postgres.TxManager
	selectCols []string
}

// NewRevenueRepo creates a new revenue repository.
func NewRevenueRepo(txm *postgres.TxManager) *RevenueRepo {
	return &RevenueRepo{
		txm:        txm,
		selectCols: postgres.ExtractDBColumns[revenue.Revenue](),
	}
}

func (r *RevenueRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Upsert inserts or replaces the figure for (year, month).
// fin_revenues has a unique constraint on (year, month).
func (r *RevenueRepo) Upsert(ctx context.Context, rev *revenue.Revenue) error {
	data := postgres.StructToMap(rev)

	q := r.builder().
		Insert("fin_revenues").
		SetMap(data).
		Suffix(`ON CONFLICT (year, month) DO UPDATE
			SET amount = EXCLUDED.amount,
			    notes = EXCLUDED.notes,
			    version = fin_revenues.version + 1`)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("upsert revenue: %w", err)
	}

	return nil
}

// GetByMonth retrieves the figure for one month.
func (r *RevenueRepo) GetByMonth(ctx context.Context, year, month int) (*revenue.Revenue, error) {
	q := r.builder().
		Select(r.selectCols...).
		From("fin_revenues").
		Where(squirrel.Eq{"year": year, "month": month}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rev := &revenue.Revenue{}
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), rev, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("revenue", fmt.Sprintf("%04d-%02d", year, month))
		}
		return nil, fmt.Errorf("get revenue: %w", err)
	}

	return rev, nil
}

// ListByYear retrieves all figures for a year, ordered by month.
func (r *RevenueRepo) ListByYear(ctx context.Context, year int) ([]*revenue.Revenue, error) {
	q := r.builder().
		Select(r.selectCols...).
		From("fin_revenues").
		Where(squirrel.Eq{"year": year}).
		OrderBy("month ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var revenues []*revenue.Revenue
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &revenues, sql, args...); err != nil {
		return nil, fmt.Errorf("list revenues: %w", err)
	}

	return revenues, nil
}

// Delete removes a figure.
func (r *RevenueRepo) Delete(ctx context.Context, revID id.ID) error {
	q := r.builder().
		Delete("fin_revenues").
		Where(squirrel.Eq{"id": revID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete revenue: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("revenue", revID.String())
	}

	return nil
}
