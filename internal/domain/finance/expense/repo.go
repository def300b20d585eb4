package expense

import (
	"context"

	"traso/internal/core/id"
)

// Repository defines persistence for expense lines.
type Repository interface {
	// Create inserts a new expense
	Create(ctx context.Context, exp *Expense) error

	// GetByID retrieves an expense by ID
	GetByID(ctx context.Context, id id.ID) (*Expense, error)

	// Update overwrites an existing expense (with optimistic locking)
	Update(ctx context.Context, exp *Expense) error

	// Delete removes the expense
	Delete(ctx context.Context, id id.ID) error

	// ListByMonth retrieves all expenses for one month
	ListByMonth(ctx context.Context, year, month int) ([]*Expense, error)

	// ListByYear retrieves all expenses for a year, ordered by month
	ListByYear(ctx context.Context, year int) ([]*Expense, error)
}
