package expenditure

import (
	"context"

	"traso/internal/core/id"
)

// Filter narrows expenditure queries to a period.
type Filter struct {
	Year  int  // required
	Month *int // optional, 1..12
}

// Repository defines persistence for expenditures.
type Repository interface {
	// Create inserts a new expenditure
	Create(ctx context.Context, exp *Expenditure) error

	// GetByID retrieves an expenditure by ID
	GetByID(ctx context.Context, id id.ID) (*Expenditure, error)

	// Update overwrites an existing expenditure (with optimistic locking)
	Update(ctx context.Context, exp *Expenditure) error

	// Delete removes the expenditure
	Delete(ctx context.Context, id id.ID) error

	// ListByPeriod retrieves expenditures whose spend date falls in the
	// period, ordered by date descending
	ListByPeriod(ctx context.Context, filter Filter) ([]*Expenditure, error)
}
