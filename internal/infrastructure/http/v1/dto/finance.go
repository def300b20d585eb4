package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"traso/internal/core/types"
	"traso/internal/domain/finance/allocation"
	"traso/internal/domain/finance/expenditure"
	"traso/internal/domain/finance/expense"
	"traso/internal/domain/finance/revenue"
)

// --- Allocation ---

// AccountShareResponse is one account's line in the allocation report.
type AccountShareResponse struct {
	AccountID             string          `json:"accountId"`
	Name                  string          `json:"name"`
	Percentage            decimal.Decimal `json:"percentage"`
	Share                 decimal.Decimal `json:"share"`
	IncludeInReserveTotal bool            `json:"includeInReserveTotal"`
}

// AllocationResponse is the allocation report for a month or a year.
// Monetary fields are rounded to whole dong here and nowhere earlier, so the
// calculator's aggregation identities hold exactly.
type AllocationResponse struct {
	Year  int `json:"year"`
	Month int `json:"month,omitempty"`

	Revenue           decimal.Decimal `json:"revenue"`
	Expenses          decimal.Decimal `json:"expenses"`
	NetProfit         decimal.Decimal `json:"netProfit"`
	AllocatableProfit decimal.Decimal `json:"allocatableProfit"`

	Shares       []AccountShareResponse `json:"shares"`
	ReserveTotal decimal.Decimal        `json:"reserveTotal"`
}

// FromAllocationResult maps a computed allocation to its API view.
func FromAllocationResult(r *allocation.Result) AllocationResponse {
	resp := AllocationResponse{
		Year:              r.Year,
		Month:             r.Month,
		Revenue:           types.RoundVND(r.Revenue),
		Expenses:          types.RoundVND(r.Expenses),
		NetProfit:         types.RoundVND(r.NetProfit),
		AllocatableProfit: types.RoundVND(r.AllocatableProfit),
		ReserveTotal:      types.RoundVND(r.ReserveTotal),
		Shares:            make([]AccountShareResponse, 0, len(r.Shares)),
	}
	for _, s := range r.Shares {
		resp.Shares = append(resp.Shares, AccountShareResponse{
			AccountID:             s.AccountID.String(),
			Name:                  s.Name,
			Percentage:            s.Percentage,
			Share:                 types.RoundVND(s.Share),
			IncludeInReserveTotal: s.IncludeInReserveTotal,
		})
	}
	return resp
}

// --- Revenue ---

// RevenueResponse is the API view of a monthly revenue record.
type RevenueResponse struct {
	ID     string          `json:"id"`
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Amount decimal.Decimal `json:"amount"`
	Notes  string          `json:"notes,omitempty"`
}

// FromRevenue maps a revenue record to its API view.
func FromRevenue(r *revenue.Revenue) RevenueResponse {
	return RevenueResponse{
		ID:     r.ID.String(),
		Year:   r.Year,
		Month:  r.Month,
		Amount: r.Amount,
		Notes:  r.Notes,
	}
}

// UpsertRevenueRequest records the revenue for one month.
type UpsertRevenueRequest struct {
	Year   int             `json:"year" binding:"required"`
	Month  int             `json:"month" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
	Notes  string          `json:"notes"`
}

// ToEntity maps the request to a revenue record.
func (r UpsertRevenueRequest) ToEntity() *revenue.Revenue {
	rev := revenue.New(r.Year, r.Month, r.Amount)
	rev.Notes = r.Notes
	return rev
}

// --- Expense ---

// ExpenseResponse is the API view of an expense line.
type ExpenseResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Year     int             `json:"year"`
	Month    int             `json:"month"`
	Category string          `json:"category,omitempty"`
	Notes    string          `json:"notes,omitempty"`
	Version  int             `json:"version"`
}

// FromExpense maps an expense line to its API view.
func FromExpense(e *expense.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:       e.ID.String(),
		Name:     e.Name,
		Amount:   e.Amount,
		Year:     e.Year,
		Month:    e.Month,
		Category: e.Category,
		Notes:    e.Notes,
		Version:  e.Version,
	}
}

// CreateExpenseRequest records a new expense line.
type CreateExpenseRequest struct {
	Name     string          `json:"name" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Year     int             `json:"year" binding:"required"`
	Month    int             `json:"month" binding:"required"`
	Category string          `json:"category"`
	Notes    string          `json:"notes"`
}

// ToEntity maps the request to an expense line.
func (r CreateExpenseRequest) ToEntity() *expense.Expense {
	e := expense.New(r.Name, r.Amount, r.Year, r.Month)
	e.Category = r.Category
	e.Notes = r.Notes
	return e
}

// UpdateExpenseRequest edits an expense line.
type UpdateExpenseRequest struct {
	Name     *string          `json:"name"`
	Amount   *decimal.Decimal `json:"amount"`
	Year     *int             `json:"year"`
	Month    *int             `json:"month"`
	Category *string          `json:"category"`
	Notes    *string          `json:"notes"`
	Version  int              `json:"version" binding:"required,min=1"`
}

// ApplyTo patches the existing expense in place.
func (r UpdateExpenseRequest) ApplyTo(e *expense.Expense) {
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.Amount != nil {
		e.Amount = *r.Amount
	}
	if r.Year != nil {
		e.Year = *r.Year
	}
	if r.Month != nil {
		e.Month = *r.Month
	}
	if r.Category != nil {
		e.Category = *r.Category
	}
	if r.Notes != nil {
		e.Notes = *r.Notes
	}
	e.Version = r.Version
}

// --- Expenditure ---

// ExpenditureResponse is the API view of a fund expenditure.
type ExpenditureResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SourceAccount string          `json:"sourceAccount"`
	Amount        decimal.Decimal `json:"amount"`
	SpentOn       time.Time       `json:"spentOn"`
	Notes         string          `json:"notes,omitempty"`
	Version       int             `json:"version"`
}

// FromExpenditure maps an expenditure to its API view.
func FromExpenditure(e *expenditure.Expenditure) ExpenditureResponse {
	return ExpenditureResponse{
		ID:            e.ID.String(),
		Name:          e.Name,
		SourceAccount: e.SourceAccount,
		Amount:        e.Amount,
		SpentOn:       e.SpentOn,
		Notes:         e.Notes,
		Version:       e.Version,
	}
}

// CreateExpenditureRequest records a spend out of a fund.
type CreateExpenditureRequest struct {
	Name          string          `json:"name" binding:"required"`
	SourceAccount string          `json:"sourceAccount" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	SpentOn       time.Time       `json:"spentOn"`
	Notes         string          `json:"notes"`
}

// ToEntity maps the request to an expenditure.
func (r CreateExpenditureRequest) ToEntity() *expenditure.Expenditure {
	e := expenditure.New(r.Name, r.SourceAccount, r.Amount, r.SpentOn)
	e.Notes = r.Notes
	return e
}

// UpdateExpenditureRequest edits an expenditure.
type UpdateExpenditureRequest struct {
	Name          *string          `json:"name"`
	SourceAccount *string          `json:"sourceAccount"`
	Amount        *decimal.Decimal `json:"amount"`
	SpentOn       *time.Time       `json:"spentOn"`
	Notes         *string          `json:"notes"`
	Version       int              `json:"version" binding:"required,min=1"`
}

// ApplyTo patches the existing expenditure in place.
func (r UpdateExpenditureRequest) ApplyTo(e *expenditure.Expenditure) {
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.SourceAccount != nil {
		e.SourceAccount = *r.SourceAccount
	}
	if r.Amount != nil {
		e.Amount = *r.Amount
	}
	if r.SpentOn != nil {
		e.SpentOn = *r.SpentOn
	}
	if r.Notes != nil {
		e.Notes = *r.Notes
	}
	e.Version = r.Version
}

// ExpenditureSummaryResponse is the aggregated spending report.
type ExpenditureSummaryResponse struct {
	Year  int  `json:"year"`
	Month *int `json:"month,omitempty"`

	TotalExpended decimal.Decimal                    `json:"totalExpended"`
	ByAccount     map[string]decimal.Decimal         `json:"byAccount"`
	Monthly       map[int]map[string]decimal.Decimal `json:"monthly"`
	Count         int                                `json:"count"`
}

// FromExpenditureSummary maps an aggregated summary to its API view.
func FromExpenditureSummary(year int, month *int, s *expenditure.Summary) ExpenditureSummaryResponse {
	return ExpenditureSummaryResponse{
		Year:          year,
		Month:         month,
		TotalExpended: s.TotalExpended,
		ByAccount:     s.ByAccount,
		Monthly:       s.Monthly,
		Count:         s.Count,
	}
}
