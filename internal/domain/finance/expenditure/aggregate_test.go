package expenditure

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spend(account, amount string, month int) *Expenditure {
	return New("chi", account, decimal.RequireFromString(amount),
		time.Date(2026, time.Month(month), 15, 0, 0, 0, 0, time.UTC))
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.True(t, s.TotalExpended.IsZero())
	assert.Empty(t, s.ByAccount)
	assert.Empty(t, s.Monthly)
	assert.Zero(t, s.Count)
}

func TestSummarize_GroupsByAccountAndMonth(t *testing.T) {
	s := Summarize([]*Expenditure{
		spend("Quỹ dự phòng", "500000", 1),
		spend("Quỹ dự phòng", "250000", 1),
		spend("Tái đầu tư", "1200000", 1),
		spend("Quỹ dự phòng", "100000", 3),
	})

	assert.Equal(t, 4, s.Count)
	assert.True(t, decimal.RequireFromString("2050000").Equal(s.TotalExpended))

	assert.True(t, decimal.RequireFromString("850000").Equal(s.ByAccount["Quỹ dự phòng"]))
	assert.True(t, decimal.RequireFromString("1200000").Equal(s.ByAccount["Tái đầu tư"]))

	require.Contains(t, s.Monthly, 1)
	require.Contains(t, s.Monthly, 3)
	assert.True(t, decimal.RequireFromString("750000").Equal(s.Monthly[1]["Quỹ dự phòng"]))
	assert.True(t, decimal.RequireFromString("100000").Equal(s.Monthly[3]["Quỹ dự phòng"]))
}

func TestSummarize_TotalEqualsAccountSums(t *testing.T) {
	expenditures := []*Expenditure{
		spend("A", "123.45", 1), spend("B", "678.9", 2), spend("A", "0.05", 2),
		spend("C", "99999.99", 7), spend("B", "1", 12),
	}

	s := Summarize(expenditures)

	byAccount := decimal.Zero
	for _, v := range s.ByAccount {
		byAccount = byAccount.Add(v)
	}
	assert.True(t, s.TotalExpended.Equal(byAccount))

	byMonth := decimal.Zero
	for _, accounts := range s.Monthly {
		for _, v := range accounts {
			byMonth = byMonth.Add(v)
		}
	}
	assert.True(t, s.TotalExpended.Equal(byMonth))
}
