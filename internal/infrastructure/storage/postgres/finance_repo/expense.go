package finance_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"traso/internal/core/apperror"
	"traso/internal/core/id"
	"traso/internal/domain/finance/expense"
	"traso/internal/infrastructure/storage/postgres"
)

// Compile-time check.
var _ expense.Repository = (*ExpenseRepo)(nil)

// ExpenseRepo implements expense.Repository backed by fin_expenses.
type ExpenseRepo struct {
	txm        *postgres.TxManager
	selectCols []string
}

// NewExpenseRepo creates a new expense repository.
func NewExpenseRepo(txm *postgres.TxManager) *ExpenseRepo {
	return &ExpenseRepo{
		txm:        txm,
		selectCols: postgres.ExtractDBColumns[expense.Expense](),
	}
}

func (r *ExpenseRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new expense.
func (r *ExpenseRepo) Create(ctx context.Context, exp *expense.Expense) error {
	data := postgres.StructToMap(exp)

	q := r.builder().
		Insert("fin_expenses").
		SetMap(data)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}

	return nil
}

// GetByID retrieves an expense by ID.
func (r *ExpenseRepo) GetByID(ctx context.Context, expID id.ID) (*expense.Expense, error) {
	q := r.builder().
		Select(r.selectCols...).
		From("fin_expenses").
		Where(squirrel.Eq{"id": expID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	exp := &expense.Expense{}
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), exp, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("expense", expID.String())
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}

	return exp, nil
}

// Update overwrites an expense with optimistic locking.
func (r *ExpenseRepo) Update(ctx context.Context, exp *expense.Expense) error {
	data := postgres.StructToMap(exp)
	delete(data, "id")
	version := data["version"]
	delete(data, "version")

	q := r.builder().
		Update("fin_expenses").
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
		return fmt.Errorf("update expense: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("expense", exp.ID.String())
	}

	return nil
}

// Delete removes an expense.
func (r *ExpenseRepo) Delete(ctx context.Context, expID id.ID) error {
	q := r.builder().
		Delete("fin_expenses").
		Where(squirrel.Eq{"id": expID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("expense", expID.String())
	}

	return nil
}

// ListByMonth retrieves all expenses for one month.
func (r *ExpenseRepo) ListByMonth(ctx context.Context, year, month int) ([]*expense.Expense, error) {
	return r.list(ctx, squirrel.Eq{"year": year, "month": month})
}

// ListByYear retrieves all expenses for a year, ordered by month.
func (r *ExpenseRepo) ListByYear(ctx context.Context, year int) ([]*expense.Expense, error) {
	return r.list(ctx, squirrel.Eq{"year": year})
}

func (r *ExpenseRepo) list(ctx context.Context, where squirrel.Eq) ([]*expense.Expense, error) {
	q := r.builder().
		Select(r.selectCols...).
		From("fin_expenses").
		Where(where).
		OrderBy("month ASC", "name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var expenses []*expense.Expense
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &expenses, sql, args...); err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	return expenses, nil
}
