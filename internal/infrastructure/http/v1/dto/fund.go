package dto

import (
	"github.com/shopspring/decimal"

	"traso/internal/domain/catalogs/fundaccount"
)

// FundAccountResponse is the API view of an allocation account.
type FundAccountResponse struct {
	ID                    string          `json:"id"`
	Name                  string          `json:"name"`
	Description           string          `json:"description,omitempty"`
	Percentage            decimal.Decimal `json:"percentage"`
	IncludeInReserveTotal bool            `json:"includeInReserveTotal"`
	IsActive              bool            `json:"isActive"`
	Version               int             `json:"version"`
}

// FromFundAccount maps an account to its API view.
func FromFundAccount(a *fundaccount.Account) FundAccountResponse {
	return FundAccountResponse{
		ID:                    a.ID.String(),
		Name:                  a.Name,
		Description:           a.Description,
		Percentage:            a.Percentage,
		IncludeInReserveTotal: a.IncludeInReserveTotal,
		IsActive:              a.IsActive,
		Version:               a.Version,
	}
}

// CreateFundAccountRequest for creating allocation accounts.
type CreateFundAccountRequest struct {
	Name                  string          `json:"name" binding:"required"`
	Description           string          `json:"description"`
	Percentage            decimal.Decimal `json:"percentage"`
	IncludeInReserveTotal *bool           `json:"includeInReserveTotal"`
}

// ToEntity maps the request to a new account.
func (r CreateFundAccountRequest) ToEntity() *fundaccount.Account {
	a := fundaccount.New(r.Name, r.Percentage)
	a.Description = r.Description
	if r.IncludeInReserveTotal != nil {
		a.IncludeInReserveTotal = *r.IncludeInReserveTotal
	}
	return a
}

// UpdateFundAccountRequest for updating allocation accounts.
type UpdateFundAccountRequest struct {
	Name                  *string          `json:"name"`
	Description           *string          `json:"description"`
	Percentage            *decimal.Decimal `json:"percentage"`
	IncludeInReserveTotal *bool            `json:"includeInReserveTotal"`
	Version               int              `json:"version" binding:"required,min=1"`
}

// ApplyTo patches the existing account in place.
func (r UpdateFundAccountRequest) ApplyTo(a *fundaccount.Account) {
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.Description != nil {
		a.Description = *r.Description
	}
	if r.Percentage != nil {
		a.Percentage = *r.Percentage
	}
	if r.IncludeInReserveTotal != nil {
		a.IncludeInReserveTotal = *r.IncludeInReserveTotal
	}
	a.Version = r.Version
}
