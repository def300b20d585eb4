// Package revenue holds monthly revenue figures, one record per (year, month).
// These are inputs to the allocation calculator, entered by the operator at
// month close.
package revenue

import (
	"context"

	"traso/internal/core/apperror"
	"traso/internal/core/entity"
	"traso/internal/core/types"
)

// Revenue is the recorded takings for one calendar month.
type Revenue struct {
	entity.BaseEntity

	Year  int `db:"year" json:"year"`
	Month int `db:"month" json:"month"`

	// Amount is the gross revenue for the month, in VND
	Amount types.Money `db:"amount" json:"amount"`

	Notes string `db:"notes" json:"notes,omitempty"`
}

// New creates a revenue record for the given month.
func New(year, month int, amount types.Money) *Revenue {
	return &Revenue{
		BaseEntity: entity.NewBaseEntity(),
		Year:       year,
		Month:      month,
		Amount:     amount,
	}
}

// Validate implements entity.Validatable.
func (r *Revenue) Validate(ctx context.Context) error {
	if r.Year < 2000 || r.Year > 2100 {
		return apperror.NewValidation("year is out of range").
			WithDetail("field", "year").
			WithDetail("value", r.Year)
	}
	if r.Month < 1 || r.Month > 12 {
		return apperror.NewValidation("month must be between 1 and 12").
			WithDetail("field", "month").
			WithDetail("value", r.Month)
	}
	if r.Amount.IsNegative() {
		return apperror.NewValidation("amount cannot be negative").
			WithDetail("field", "amount")
	}
	return nil
}
