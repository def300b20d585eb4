package ledger

import (
	"context"
	"time"

	"traso/internal/core/id"
)

// Repository defines persistence for ledger entries.
type Repository interface {
	// Create inserts a new entry
	Create(ctx context.Context, entry *Entry) error

	// GetByID retrieves an entry by ID
	GetByID(ctx context.Context, id id.ID) (*Entry, error)

	// Update overwrites an existing entry (with optimistic locking)
	Update(ctx context.Context, entry *Entry) error

	// Delete physically removes the entry. Ledger rows carry no deletion
	// mark: a deleted movement must stop contributing to the balance.
	Delete(ctx context.Context, id id.ID) error

	// List retrieves entries with filtering, newest first
	List(ctx context.Context, filter Filter) ([]*Entry, error)

	// PriceHistory returns entries with a non-null unit price for an item,
	// ordered by entry date descending
	PriceHistory(ctx context.Context, itemID id.ID) ([]PricePoint, error)
}

// Filter for listing ledger entries.
type Filter struct {
	ItemID    *id.ID
	Direction *Direction
	FromDate  *time.Time
	ToDate    *time.Time
	Limit     int
	Offset    int
}
