package ledger

import (
	"context"
	"fmt"

	"traso/internal/core/apperror"
	"traso/internal/core/id"
	"traso/internal/core/tx"
	"traso/internal/domain/catalogs/item"
	"traso/pkg/logger"
)

// Auditor records a change-log entry for a ledger mutation.
// Implemented by the postgres audit store; optional.
type Auditor interface {
	Record(ctx context.Context, entityType string, entityID id.ID, action string, changes any) error
}

// Service is the balance maintainer. It guarantees that an item's cached
// current stock always reflects the net effect of all ledger entries
// recorded against it.
//
// Every mutation runs in a single transaction and adjusts the balance with
// an atomic increment, so two concurrent mutations on the same item cannot
// lose an update, and a missing item aborts the whole operation.
type Service struct {
	repo      Repository
	items     item.Repository
	txManager tx.Manager
	audit     Auditor
}

// NewService creates a new ledger service. audit may be nil.
func NewService(repo Repository, items item.Repository, txManager tx.Manager, audit Auditor) *Service {
	return &Service{
		repo:      repo,
		items:     items,
		txManager: txManager,
		audit:     audit,
	}
}

// Create persists the entry and applies its quantity to the item's stock.
// Not idempotent: calling twice double-applies.
func (s *Service) Create(ctx context.Context, entry *Entry) error {
	if err := entry.Validate(ctx); err != nil {
		return err
	}
	entry.ComputeTotal()

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, entry); err != nil {
			return fmt.Errorf("create entry: %w", err)
		}
		if err := s.items.ApplyStockDelta(ctx, entry.ItemID, entry.SignedQuantity()); err != nil {
			return fmt.Errorf("apply stock delta: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.record(ctx, entry.ID, "create", entry)

	logger.Info(ctx, "stock entry created",
		"id", entry.ID,
		"item_id", entry.ItemID,
		"direction", entry.Direction,
		"quantity", entry.Quantity,
	)

	return nil
}

// Update edits an entry. An edit may change quantity, direction and the
// referenced item at once, each of which perturbs the balance independently.
// Rather than a delta formula per combination, the original effect is
// reversed unconditionally and the new entry is applied fresh; for balance
// purposes Update is equivalent to Delete-then-Create.
func (s *Service) Update(ctx context.Context, entry *Entry) error {
	if err := entry.Validate(ctx); err != nil {
		return err
	}
	entry.ComputeTotal()

	var original *Entry
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		original, err = s.repo.GetByID(ctx, entry.ID)
		if err != nil {
			return s.notFound(err, entry.ID)
		}

		// Reverse the effect the stored entry had on its (possibly different) item.
		if err := s.items.ApplyStockDelta(ctx, original.ItemID, original.ReversalDelta()); err != nil {
			return fmt.Errorf("reverse original: %w", err)
		}

		entry.CreatedAt = original.CreatedAt
		entry.Touch()
		if err := s.repo.Update(ctx, entry); err != nil {
			return fmt.Errorf("update entry: %w", err)
		}

		if err := s.items.ApplyStockDelta(ctx, entry.ItemID, entry.SignedQuantity()); err != nil {
			return fmt.Errorf("apply new: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.record(ctx, entry.ID, "update", map[string]any{"before": original, "after": entry})

	logger.Info(ctx, "stock entry updated",
		"id", entry.ID,
		"item_id", entry.ItemID,
	)

	return nil
}

// Delete reverses the entry's effect on the item balance and removes the row.
// Exact inverse of Create.
func (s *Service) Delete(ctx context.Context, entryID id.ID) error {
	var original *Entry
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		original, err = s.repo.GetByID(ctx, entryID)
		if err != nil {
			return s.notFound(err, entryID)
		}

		if err := s.items.ApplyStockDelta(ctx, original.ItemID, original.ReversalDelta()); err != nil {
			return fmt.Errorf("reverse entry: %w", err)
		}

		if err := s.repo.Delete(ctx, entryID); err != nil {
			return fmt.Errorf("delete entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.record(ctx, entryID, "delete", original)

	logger.Info(ctx, "stock entry deleted",
		"id", entryID,
		"item_id", original.ItemID,
	)

	return nil
}

// GetByID retrieves a single entry.
func (s *Service) GetByID(ctx context.Context, entryID id.ID) (*Entry, error) {
	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return nil, s.notFound(err, entryID)
	}
	return entry, nil
}

// List retrieves entries with filtering.
func (s *Service) List(ctx context.Context, filter Filter) ([]*Entry, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Limit > 1000 {
		filter.Limit = 1000
	}
	return s.repo.List(ctx, filter)
}

// PriceHistory returns the price projection for an item: every entry that
// carries a unit price, newest first. Pure read over the ledger.
func (s *Service) PriceHistory(ctx context.Context, itemID id.ID) ([]PricePoint, error) {
	exists, err := s.items.Exists(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("check item: %w", err)
	}
	if !exists {
		return nil, apperror.NewNotFound("item", itemID.String())
	}
	return s.repo.PriceHistory(ctx, itemID)
}

func (s *Service) notFound(err error, entryID id.ID) error {
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound("stock entry", entryID.String())
	}
	return err
}

// record writes the audit entry outside the transaction; failures are logged,
// not propagated.
func (s *Service) record(ctx context.Context, entryID id.ID, action string, changes any) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, "StockEntry", entryID, action, changes); err != nil {
		logger.Warn(ctx, "audit record failed", "action", action, "error", err)
	}
}
