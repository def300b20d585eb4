// Package expense holds operating expense records attributed to a calendar
// month. Together with revenue they determine the month's net profit.
package expense

import (
	"context"

	"traso/internal/core/apperror"
	"traso/internal/core/entity"
	"traso/internal/core/types"
)

// Expense is a single operating cost line (rent, wages, ingredients, ...).
type Expense struct {
	entity.BaseEntity

	Name string `db:"name" json:"name"`

	// Amount in VND
	Amount types.Money `db:"amount" json:"amount"`

	Year  int `db:"year" json:"year"`
	Month int `db:"month" json:"month"`

	// Category is a free-form grouping label ("thuê mặt bằng", "lương", ...)
	Category string `db:"category" json:"category,omitempty"`

	Notes string `db:"notes" json:"notes,omitempty"`
}

// New creates an expense line for the given month.
func New(name string, amount types.Money, year, month int) *Expense {
	return &Expense{
		BaseEntity: entity.NewBaseEntity(),
		Name:       name,
		Amount:     amount,
		Year:       year,
		Month:      month,
	}
}

// Validate implements entity.Validatable.
func (e *Expense) Validate(ctx context.Context) error {
	if e.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if e.Amount.IsNegative() {
		return apperror.NewValidation("amount cannot be negative").
			WithDetail("field", "amount")
	}
	if e.Year < 2000 || e.Year > 2100 {
		return apperror.NewValidation("year is out of range").
			WithDetail("field", "year").
			WithDetail("value", e.Year)
	}
	if e.Month < 1 || e.Month > 12 {
		return apperror.NewValidation("month must be between 1 and 12").
			WithDetail("field", "month").
			WithDetail("value", e.Month)
	}
	return nil
}
