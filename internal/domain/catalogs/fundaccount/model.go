// Package fundaccount provides the allocation account catalog.
// Each account carries a percentage weight of monthly net profit. The
// calculator does not enforce that weights sum to 100; that is the
// operator's responsibility.
package fundaccount

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"traso/internal/core/apperror"
	"traso/internal/core/entity"
	"traso/internal/core/types"
)

// Account represents a named allocation bucket.
type Account struct {
	entity.BaseCatalog

	// Name is the account name (e.g. "Quỹ dự phòng", "Marketing")
	Name string `db:"name" json:"name"`

	// Description is an optional free-text note
	Description string `db:"description" json:"description,omitempty"`

	// Percentage is the share of monthly net profit, 0..100
	Percentage types.Percent `db:"percentage" json:"percentage"`

	// IncludeInReserveTotal controls whether this account counts toward the
	// operational reserve rollup. Dividends and marketing are tracked
	// separately and keep this off.
	IncludeInReserveTotal bool `db:"include_in_reserve_total" json:"includeInReserveTotal"`
}

// New creates a new Account included in the reserve total by default.
func New(name string, percentage types.Percent) *Account {
	return &Account{
		BaseCatalog:           entity.NewBaseCatalog(),
		Name:                  name,
		Percentage:            percentage,
		IncludeInReserveTotal: true,
	}
}

// Validate implements entity.Validatable.
func (a *Account) Validate(ctx context.Context) error {
	if strings.TrimSpace(a.Name) == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	if a.Percentage.IsNegative() {
		return apperror.NewValidation("percentage cannot be negative").
			WithDetail("field", "percentage").
			WithDetail("value", a.Percentage.String())
	}

	if a.Percentage.GreaterThan(decimal.NewFromInt(100)) {
		return apperror.NewValidation("percentage cannot exceed 100").
			WithDetail("field", "percentage").
			WithDetail("value", a.Percentage.String())
	}

	return nil
}
