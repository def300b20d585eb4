package finance_repo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"traso/internal/domain/finance/allocation"
	"traso/internal/infrastructure/storage/postgres"
)

// Compile-time check.
var _ allocation.FiguresRepository = (*FiguresRepo)(nil)

// FiguresRepo supplies aggregated revenue and expense sums to the allocation
// calculator. Sums run in SQL so the calculator never loads raw rows.
type FiguresRepo struct {
	txm *postgres.TxManager
}

// NewFiguresRepo creates a new figures repository.
func NewFiguresRepo(txm *postgres.TxManager) *FiguresRepo {
	return &FiguresRepo{txm: txm}
}

// MonthFigures returns revenue and expense totals for one month.
// Months with no records yield zero figures.
func (r *FiguresRepo) MonthFigures(ctx context.Context, year, month int) (allocation.Figures, error) {
	const sql = `
		SELECT
			COALESCE((SELECT SUM(amount) FROM fin_revenues WHERE year = $1 AND month = $2), 0) AS revenue,
			COALESCE((SELECT SUM(amount) FROM fin_expenses WHERE year = $1 AND month = $2), 0) AS expenses
	`

	var figures allocation.Figures
	err := r.txm.GetQuerier(ctx).
		QueryRow(ctx, sql, year, month).
		Scan(&figures.Revenue, &figures.Expenses)
	if err != nil {
		return allocation.Figures{}, fmt.Errorf("month figures: %w", err)
	}

	return figures, nil
}

// YearFigures returns per-month figures for a year, keyed by month.
// Months with neither revenue nor expense records are absent.
func (r *FiguresRepo) YearFigures(ctx context.Context, year int) (map[int]allocation.Figures, error) {
	const sql = `
		SELECT month,
		       COALESCE(SUM(revenue), 0) AS revenue,
		       COALESCE(SUM(expenses), 0) AS expenses
		FROM (
			SELECT month, amount AS revenue, 0 AS expenses
			FROM fin_revenues WHERE year = $1
			UNION ALL
			SELECT month, 0 AS revenue, amount AS expenses
			FROM fin_expenses WHERE year = $1
		) combined
		GROUP BY month
		ORDER BY month
	`

	rows, err := r.txm.GetQuerier(ctx).Query(ctx, sql, year)
	if err != nil {
		return nil, fmt.Errorf("year figures: %w", err)
	}
	defer rows.Close()

	figures := make(map[int]allocation.Figures, 12)
	for rows.Next() {
		var month int
		var revenue, expenses decimal.Decimal
		if err := rows.Scan(&month, &revenue, &expenses); err != nil {
			return nil, fmt.Errorf("scan month figures: %w", err)
		}
		figures[month] = allocation.Figures{Revenue: revenue, Expenses: expenses}
	}

	return figures, rows.Err()
}
