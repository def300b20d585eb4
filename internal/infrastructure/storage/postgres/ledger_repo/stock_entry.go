// Package ledger_repo provides the PostgreSQL implementation of the stock
// ledger repository.
package ledger_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"traso/internal/core/apperror"
	"traso/internal/core/id"
	"traso/internal/domain/ledger"
	"traso/internal/infrastructure/storage/postgres"
)

const tableName = "doc_stock_entries"

// Compile-time check.
var _ ledger.Repository = (*StockEntryRepo)(nil)

// StockEntryRepo implements ledger.Repository backed by doc_stock_entries.
type StockEntryRepo struct {
	txm        *postgres.TxManager
	selectCols []string
}

// NewStockEntryRepo creates a new stock entry repository.
func NewStockEntryRepo(txm *postgres.TxManager) *StockEntryRepo {
	return &StockEntryRepo{
		txm:        txm,
		selectCols: postgres.ExtractDBColumns[ledger.Entry](),
	}
}

func (r *StockEntryRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *StockEntryRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder().
		Select(r.selectCols...).
		From(tableName)
}

// Create inserts a new entry.
func (r *StockEntryRepo) Create(ctx context.Context, entry *ledger.Entry) error {
	data := postgres.StructToMap(entry)

	q := r.builder().
		Insert(tableName).
		SetMap(data)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	_, err = r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		// 23503: item_id references a missing cat_items row
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperror.NewNotFound("item", entry.ItemID.String()).WithCause(err)
		}
		return fmt.Errorf("insert %s: %w", tableName, err)
	}

	return nil
}

// GetByID retrieves an entry by ID.
func (r *StockEntryRepo) GetByID(ctx context.Context, entryID id.ID) (*ledger.Entry, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"id": entryID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	entry := &ledger.Entry{}
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), entry, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("stock entry", entryID.String())
		}
		return nil, fmt.Errorf("get by id: %w", err)
	}

	return entry, nil
}

// Update overwrites an entry with optimistic locking.
func (r *StockEntryRepo) Update(ctx context.Context, entry *ledger.Entry) error {
	data := postgres.StructToMap(entry)
	delete(data, "id")
	version := data["version"]
	delete(data, "version")

	q := r.builder().
		Update(tableName).
		SetMap(data).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": entry.ID}).
		Where(squirrel.Eq{"version": version})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", tableName, err)
	}

	if result.RowsAffected() == 0 {
		// Either the row is gone or someone changed it since the load.
		exists, exErr := r.exists(ctx, entry.ID)
		if exErr == nil && !exists {
			return apperror.NewNotFound("stock entry", entry.ID.String())
		}
		return apperror.NewConcurrentModification("stock entry", entry.ID.String())
	}

	return nil
}

// Delete physically removes the entry.
func (r *StockEntryRepo) Delete(ctx context.Context, entryID id.ID) error {
	q := r.builder().
		Delete(tableName).
		Where(squirrel.Eq{"id": entryID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete %s: %w", tableName, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("stock entry", entryID.String())
	}

	return nil
}

// List retrieves entries, newest first.
func (r *StockEntryRepo) List(ctx context.Context, filter ledger.Filter) ([]*ledger.Entry, error) {
	q := r.baseSelect()

	if filter.ItemID != nil {
		q = q.Where(squirrel.Eq{"item_id": *filter.ItemID})
	}
	if filter.Direction != nil {
		q = q.Where(squirrel.Eq{"direction": *filter.Direction})
	}
	if filter.FromDate != nil {
		q = q.Where(squirrel.GtOrEq{"entry_date": *filter.FromDate})
	}
	if filter.ToDate != nil {
		q = q.Where(squirrel.LtOrEq{"entry_date": *filter.ToDate})
	}

	q = q.OrderBy("entry_date DESC", "created_at DESC")

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var entries []*ledger.Entry
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &entries, sql, args...); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return entries, nil
}

// PriceHistory returns priced entries for an item, newest first.
func (r *StockEntryRepo) PriceHistory(ctx context.Context, itemID id.ID) ([]ledger.PricePoint, error) {
	q := r.builder().
		Select("entry_date", "unit_price", "direction", "quantity", "notes").
		From(tableName).
		Where(squirrel.Eq{"item_id": itemID}).
		Where(squirrel.NotEq{"unit_price": nil}).
		OrderBy("entry_date DESC", "created_at DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var points []ledger.PricePoint
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &points, sql, args...); err != nil {
		return nil, fmt.Errorf("price history: %w", err)
	}

	return points, nil
}

func (r *StockEntryRepo) exists(ctx context.Context, entryID id.ID) (bool, error) {
	var one int
	err := r.txm.GetQuerier(ctx).
		QueryRow(ctx, "SELECT 1 FROM doc_stock_entries WHERE id = $1", entryID).
		Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
