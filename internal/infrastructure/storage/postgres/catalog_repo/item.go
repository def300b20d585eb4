package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"traso/internal/core/apperror"
	"traso/internal/core/id"
	"traso/internal/core/types"
	"traso/internal/domain"
	"traso/internal/domain/catalogs/item"
	"traso/internal/infrastructure/storage/postgres"
)

// Compile-time check.
var _ item.Repository = (*ItemRepo)(nil)

// ItemRepo implements item.Repository backed by cat_items.
type ItemRepo struct {
	*BaseCatalogRepo[*item.Item]
}

// NewItemRepo creates a new item repository.
func NewItemRepo(txm *postgres.TxManager) *ItemRepo {
	return &ItemRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			"cat_items",
			postgres.ExtractDBColumns[item.Item](),
			func() *item.Item { return &item.Item{} },
		),
	}
}

// ApplyStockDelta adjusts the cached balance with one atomic increment.
// Two concurrent ledger mutations on the same item serialize on the row,
// and each sees the other's effect; read-modify-write would lose updates.
func (r *ItemRepo) ApplyStockDelta(ctx context.Context, itemID id.ID, delta types.Quantity) error {
	const sql = `UPDATE cat_items SET current_stock = current_stock + $2 WHERE id = $1`

	result, err := r.Querier(ctx).Exec(ctx, sql, itemID, delta)
	if err != nil {
		return fmt.Errorf("apply stock delta: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("item", itemID.String())
	}

	return nil
}

// FindLowStock retrieves active items at or below their reorder threshold.
func (r *ItemRepo) FindLowStock(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*item.Item], error) {
	result := domain.ListResult[*item.Item]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.baseSelect().
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Expr("current_stock <= min_stock")).
		OrderBy("name ASC")

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, r.Querier(ctx), &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("find low stock: %w", err)
	}

	result.TotalCount = int64(len(result.Items))
	return result, nil
}
