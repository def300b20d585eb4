package revenue

import (
	"context"

	"traso/internal/core/id"
)

// Repository defines persistence for monthly revenue records.
type Repository interface {
	// Upsert inserts the record or, if one exists for the same (year, month),
	// replaces its amount and notes
	Upsert(ctx context.Context, rev *Revenue) error

	// GetByMonth retrieves the record for a single month
	GetByMonth(ctx context.Context, year, month int) (*Revenue, error)

	// ListByYear retrieves all records for a year, ordered by month
	ListByYear(ctx context.Context, year int) ([]*Revenue, error)

	// Delete removes a record
	Delete(ctx context.Context, id id.ID) error
}
