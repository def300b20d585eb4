package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"traso/internal/domain/catalogs/fundaccount"
	"traso/internal/infrastructure/storage/postgres"
)

// Compile-time check.
var _ fundaccount.Repository = (*FundAccountRepo)(nil)

// FundAccountRepo implements fundaccount.Repository backed by cat_fund_accounts.
type FundAccountRepo struct {
	*BaseCatalogRepo[*fundaccount.Account]
}

// NewFundAccountRepo creates a new fund account repository.
func NewFundAccountRepo(txm *postgres.TxManager) *FundAccountRepo {
	return &FundAccountRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			"cat_fund_accounts",
			postgres.ExtractDBColumns[fundaccount.Account](),
			func() *fundaccount.Account { return &fundaccount.Account{} },
		),
	}
}

// ListActive retrieves all active accounts in name order.
func (r *FundAccountRepo) ListActive(ctx context.Context) ([]*fundaccount.Account, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var accounts []*fundaccount.Account
	if err := pgxscan.Select(ctx, r.Querier(ctx), &accounts, sql, args...); err != nil {
		return nil, fmt.Errorf("list active accounts: %w", err)
	}

	return accounts, nil
}
