package finance_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"traso/internal/core/apperror"
	"traso/internal/core/id"
	"traso/internal/domain/finance/expenditure"
	"traso/internal/infrastructure/storage/postgres"
)

// Compile-time check.
var _ expenditure.Repository = (*ExpenditureRepo)(nil)

// ExpenditureRepo implements expenditure.Repository backed by fin_fund_expenditures.
type ExpenditureRepo struct {
	txm        *postgres.TxManager
	selectCols []string
}

// NewExpenditureRepo creates a new expenditure repository.
func NewExpenditureRepo(txm *postgres.TxManager) *ExpenditureRepo {
	return &ExpenditureRepo{
		txm:        txm,
		selectCols: postgres.ExtractDBColumns[expenditure.Expenditure](),
	}
}

func (r *ExpenditureRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new expenditure.
func (r *ExpenditureRepo) Create(ctx context.Context, exp *expenditure.Expenditure) error {
	data := postgres.StructToMap(exp)

	q := r.builder().
		Insert("fin_fund_expenditures").
		SetMap(data)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert expenditure: %w", err)
	}

	return nil
}

// GetByID retrieves an expenditure by ID.
func (r *ExpenditureRepo) GetByID(ctx context.Context, expID id.ID) (*expenditure.Expenditure, error) {
	q := r.builder().
		Select(r.selectCols...).
		From("fin_fund_expenditures").
		Where(squirrel.Eq{"id": expID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	exp := &expenditure.Expenditure{}
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), exp, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("expenditure", expID.String())
		}
		return nil, fmt.Errorf("get expenditure: %w", err)
	}

	return exp, nil
}

// Update overwrites an expenditure with optimistic locking.
func (r *ExpenditureRepo) Update(ctx context.Context, exp *expenditure.Expenditure) error {
	data := postgres.StructToMap(exp)
	delete(data, "id")
	version := data["version"]
	delete(data, "version")

	q := r.builder().
		Update("fin_fund_expenditures").
		SetMap(data).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": exp.ID}).
		Where(squirrel.Eq{"version": version})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update expenditure: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("expenditure", exp.ID.String())
	}

	return nil
}

// Delete removes an expenditure.
func (r *ExpenditureRepo) Delete(ctx context.Context, expID id.ID) error {
	q := r.builder().
		Delete("fin_fund_expenditures").
		Where(squirrel.Eq{"id": expID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete expenditure: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("expenditure", expID.String())
	}

	return nil
}

// ListByPeriod retrieves expenditures whose spend date falls in the period.
func (r *ExpenditureRepo) ListByPeriod(ctx context.Context, filter expenditure.Filter) ([]*expenditure.Expenditure, error) {
	q := r.builder().
		Select(r.selectCols...).
		From("fin_fund_expenditures").
		Where(squirrel.Expr("EXTRACT(YEAR FROM spent_on) = ?", filter.Year)).
		OrderBy("spent_on DESC", "created_at DESC")

	if filter.Month != nil {
		q = q.Where(squirrel.Expr("EXTRACT(MONTH FROM spent_on) = ?", *filter.Month))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var expenditures []*expenditure.Expenditure
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &expenditures, sql, args...); err != nil {
		return nil, fmt.Errorf("list expenditures: %w", err)
	}

	return expenditures, nil
}
