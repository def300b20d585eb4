package expenditure

import (
	"traso/internal/core/types"
)

// Summary is the aggregated view of a period's expenditures.
type Summary struct {
	// TotalExpended is the sum over every expenditure in the period
	TotalExpended types.Money `json:"totalExpended"`

	// ByAccount maps source account name to its period total
	ByAccount map[string]types.Money `json:"byAccount"`

	// Monthly maps month (1..12) to a per-account breakdown
	Monthly map[int]map[string]types.Money `json:"monthly"`

	// Count is the number of expenditures aggregated
	Count int `json:"count"`
}

// Summarize folds the expenditures into a summary in a single pass.
// TotalExpended always equals the sum over ByAccount, and over Monthly.
func Summarize(expenditures []*Expenditure) *Summary {
	s := &Summary{
		TotalExpended: types.Zero(),
		ByAccount:     make(map[string]types.Money),
		Monthly:       make(map[int]map[string]types.Money),
		Count:         len(expenditures),
	}

	for _, exp := range expenditures {
		s.TotalExpended = s.TotalExpended.Add(exp.Amount)

		byAccount, ok := s.ByAccount[exp.SourceAccount]
		if !ok {
			byAccount = types.Zero()
		}
		s.ByAccount[exp.SourceAccount] = byAccount.Add(exp.Amount)

		month := int(exp.SpentOn.Month())
		monthly, ok := s.Monthly[month]
		if !ok {
			monthly = make(map[string]types.Money)
			s.Monthly[month] = monthly
		}
		cell, ok := monthly[exp.SourceAccount]
		if !ok {
			cell = types.Zero()
		}
		monthly[exp.SourceAccount] = cell.Add(exp.Amount)
	}

	return s
}
