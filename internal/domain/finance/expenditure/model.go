// Package expenditure tracks money spent out of the allocation funds and
// aggregates it by source account and by month.
package expenditure

import (
	"context"
	"time"

	"traso/internal/core/apperror"
	"traso/internal/core/entity"
	"traso/internal/core/types"
)

// Expenditure is one spend out of a fund account.
type Expenditure struct {
	entity.BaseDocument

	Name string `db:"name" json:"name"`

	// SourceAccount names the fund the money came out of. Stored as the
	// account's name at spend time, not a foreign key: renaming or retiring
	// an account must not rewrite spending history.
	SourceAccount string `db:"source_account" json:"sourceAccount"`

	// Amount in VND
	Amount types.Money `db:"amount" json:"amount"`

	// SpentOn is the business date of the spend
	SpentOn time.Time `db:"spent_on" json:"spentOn"`

	Notes string `db:"notes" json:"notes,omitempty"`
}

// New creates an expenditure record.
func New(name, sourceAccount string, amount types.Money, spentOn time.Time) *Expenditure {
	e := &Expenditure{
		BaseDocument:  entity.NewBaseDocument(),
		Name:          name,
		SourceAccount: sourceAccount,
		Amount:        amount,
		SpentOn:       spentOn,
	}
	if e.SpentOn.IsZero() {
		e.SpentOn = time.Now().UTC()
	}
	return e
}

// Validate implements entity.Validatable.
func (e *Expenditure) Validate(ctx context.Context) error {
	if e.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if e.SourceAccount == "" {
		return apperror.NewValidation("source account is required").
			WithDetail("field", "sourceAccount")
	}
	if !e.Amount.IsPositive() {
		return apperror.NewValidation("amount must be positive").
			WithDetail("field", "amount").
			WithDetail("value", e.Amount.String())
	}
	if e.SpentOn.IsZero() {
		return apperror.NewValidation("spend date is required").
			WithDetail("field", "spentOn")
	}
	return nil
}
