// Package allocation computes net-profit shares across the percentage-weighted
// fund accounts for a month or a whole year.
//
// All arithmetic is exact decimal; shares are kept unrounded so that the sum
// of twelve monthly shares equals the year share. Rounding to whole dong
// happens once, at the API response boundary.
package allocation

import (
	"traso/internal/core/id"
	"traso/internal/core/types"
	"traso/internal/domain/catalogs/fundaccount"
)

// Figures are the profit inputs for one month.
type Figures struct {
	Revenue  types.Money
	Expenses types.Money
}

// NetProfit returns revenue minus expenses, unclamped.
func (f Figures) NetProfit() types.Money {
	return f.Revenue.Sub(f.Expenses)
}

// AccountShare is one account's allocation within a result.
type AccountShare struct {
	AccountID             id.ID         `json:"accountId"`
	Name                  string        `json:"name"`
	Percentage            types.Percent `json:"percentage"`
	Share                 types.Money   `json:"share"`
	IncludeInReserveTotal bool          `json:"includeInReserveTotal"`
}

// Result is a computed allocation for one scope (a month, or a full year).
type Result struct {
	Year  int `json:"year"`
	Month int `json:"month,omitempty"` // 0 for year scope

	Revenue  types.Money `json:"revenue"`
	Expenses types.Money `json:"expenses"`

	// NetProfit is revenue - expenses, which may be negative
	NetProfit types.Money `json:"netProfit"`

	// AllocatableProfit is NetProfit floored at zero; the base the
	// percentages apply to
	AllocatableProfit types.Money `json:"allocatableProfit"`

	Shares []AccountShare `json:"shares"`

	// ReserveTotal sums the shares of accounts flagged for the reserve
	ReserveTotal types.Money `json:"reserveTotal"`
}

// ComputeMonth allocates one month's profit across the accounts.
// A loss-making month allocates zero to every account. Accounts keep their
// listed order so the report is stable.
func ComputeMonth(accounts []*fundaccount.Account, year, month int, figures Figures) *Result {
	result := &Result{
		Year:      year,
		Month:     month,
		Revenue:   figures.Revenue,
		Expenses:  figures.Expenses,
		NetProfit: figures.NetProfit(),
	}
	result.AllocatableProfit = types.ClampNonNegative(result.NetProfit)

	result.Shares = make([]AccountShare, 0, len(accounts))
	result.ReserveTotal = types.Zero()
	for _, account := range accounts {
		share := types.ShareOf(result.AllocatableProfit, account.Percentage)
		result.Shares = append(result.Shares, AccountShare{
			AccountID:             account.ID,
			Name:                  account.Name,
			Percentage:            account.Percentage,
			Share:                 share,
			IncludeInReserveTotal: account.IncludeInReserveTotal,
		})
		if account.IncludeInReserveTotal {
			result.ReserveTotal = result.ReserveTotal.Add(share)
		}
	}
	return result
}

// ComputeYear allocates a full year: each month is computed independently
// (clamping applies per month) and the twelve results are summed per account.
// Months absent from figures contribute nothing.
func ComputeYear(accounts []*fundaccount.Account, year int, figures map[int]Figures) *Result {
	result := &Result{
		Year:      year,
		Revenue:   types.Zero(),
		Expenses:  types.Zero(),
		NetProfit: types.Zero(),
	}
	result.AllocatableProfit = types.Zero()
	result.ReserveTotal = types.Zero()

	result.Shares = make([]AccountShare, len(accounts))
	for i, account := range accounts {
		result.Shares[i] = AccountShare{
			AccountID:             account.ID,
			Name:                  account.Name,
			Percentage:            account.Percentage,
			Share:                 types.Zero(),
			IncludeInReserveTotal: account.IncludeInReserveTotal,
		}
	}

	for month := 1; month <= 12; month++ {
		f, ok := figures[month]
		if !ok {
			continue
		}
		monthly := ComputeMonth(accounts, year, month, f)

		result.Revenue = result.Revenue.Add(monthly.Revenue)
		result.Expenses = result.Expenses.Add(monthly.Expenses)
		result.NetProfit = result.NetProfit.Add(monthly.NetProfit)
		result.AllocatableProfit = result.AllocatableProfit.Add(monthly.AllocatableProfit)
		result.ReserveTotal = result.ReserveTotal.Add(monthly.ReserveTotal)
		for i := range result.Shares {
			result.Shares[i].Share = result.Shares[i].Share.Add(monthly.Shares[i].Share)
		}
	}
	return result
}
