package allocation

import "context"

// FiguresRepository supplies the aggregated revenue and expense figures the
// calculator runs on. Implemented by the postgres finance repo with SUM
// queries over fin_revenues and fin_expenses.
type FiguresRepository interface {
	// MonthFigures returns the revenue and expense totals for one month.
	// A month with no records yields zero figures, not an error.
	MonthFigures(ctx context.Context, year, month int) (Figures, error)

	// YearFigures returns per-month figures for a year, keyed by month 1..12.
	// Months with no records are absent from the map.
	YearFigures(ctx context.Context, year int) (map[int]Figures, error)
}
