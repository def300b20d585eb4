package allocation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traso/internal/core/types"
	"traso/internal/domain/catalogs/fundaccount"
)

func account(name, pct string) *fundaccount.Account {
	return fundaccount.New(name, decimal.RequireFromString(pct))
}

func figures(revenue, expenses string) Figures {
	return Figures{
		Revenue:  decimal.RequireFromString(revenue),
		Expenses: decimal.RequireFromString(expenses),
	}
}

func shareOf(t *testing.T, r *Result, name string) types.Money {
	t.Helper()
	for _, s := range r.Shares {
		if s.Name == name {
			return s.Share
		}
	}
	t.Fatalf("no share for account %q", name)
	return decimal.Zero
}

func TestComputeMonth_ProfitableMonth(t *testing.T) {
	accounts := []*fundaccount.Account{account("Quỹ dự phòng", "25")}

	r := ComputeMonth(accounts, 2026, 3, figures("10000000", "4000000"))

	assert.True(t, decimal.RequireFromString("6000000").Equal(r.NetProfit))
	assert.True(t, decimal.RequireFromString("1500000").Equal(shareOf(t, r, "Quỹ dự phòng")))
}

func TestComputeMonth_LossMonthAllocatesZero(t *testing.T) {
	accounts := []*fundaccount.Account{
		account("Quỹ dự phòng", "25"),
		account("Tái đầu tư", "30"),
	}

	r := ComputeMonth(accounts, 2026, 2, figures("3000000", "4500000"))

	assert.True(t, r.NetProfit.IsNegative())
	assert.True(t, r.AllocatableProfit.IsZero())
	for _, s := range r.Shares {
		assert.True(t, s.Share.IsZero(), "account %s", s.Name)
	}
	assert.True(t, r.ReserveTotal.IsZero())
}

func TestComputeMonth_MissingFiguresYieldZero(t *testing.T) {
	accounts := []*fundaccount.Account{account("Quỹ dự phòng", "25")}

	r := ComputeMonth(accounts, 2026, 7, Figures{Revenue: decimal.Zero, Expenses: decimal.Zero})

	assert.True(t, r.NetProfit.IsZero())
	assert.True(t, shareOf(t, r, "Quỹ dự phòng").IsZero())
}

func TestComputeMonth_ZeroPercentage(t *testing.T) {
	accounts := []*fundaccount.Account{account("Chưa phân bổ", "0")}

	r := ComputeMonth(accounts, 2026, 1, figures("10000000", "2000000"))

	assert.True(t, shareOf(t, r, "Chưa phân bổ").IsZero())
}

func TestComputeMonth_ReserveTotalHonorsFlag(t *testing.T) {
	dividends := account("Cổ tức", "40")
	dividends.IncludeInReserveTotal = false
	marketing := account("Marketing", "10")
	marketing.IncludeInReserveTotal = false
	reserve := account("Quỹ dự phòng", "25")
	growth := account("Tái đầu tư", "15")

	accounts := []*fundaccount.Account{dividends, marketing, reserve, growth}
	r := ComputeMonth(accounts, 2026, 5, figures("12000000", "4000000"))

	// net 8_000_000: reserve 25% = 2M, growth 15% = 1.2M; dividends and
	// marketing are excluded from the rollup but still receive shares.
	assert.True(t, decimal.RequireFromString("3200000").Equal(r.ReserveTotal))
	assert.True(t, decimal.RequireFromString("3200000").Equal(shareOf(t, r, "Cổ tức")))
}

func TestComputeMonth_SharesSumToHundredPercentOfBase(t *testing.T) {
	accounts := []*fundaccount.Account{
		account("A", "33.33"), account("B", "33.33"), account("C", "33.34"),
	}

	r := ComputeMonth(accounts, 2026, 9, figures("9999999", "0"))

	total := decimal.Zero
	for _, s := range r.Shares {
		total = total.Add(s.Share)
	}
	assert.True(t, r.AllocatableProfit.Equal(total), "got %s", total)
}

func TestComputeYear_SumsMonthlyShares(t *testing.T) {
	accounts := []*fundaccount.Account{account("Quỹ dự phòng", "25")}

	monthly := map[int]Figures{
		1: figures("10000000", "4000000"), // +6M -> 1.5M
		2: figures("3000000", "4500000"),  // loss -> 0
		3: figures("8000000", "8000000"),  // break-even -> 0
		4: figures("5000000", "1000000"),  // +4M -> 1M
	}

	r := ComputeYear(accounts, 2026, monthly)

	assert.True(t, decimal.RequireFromString("2500000").Equal(shareOf(t, r, "Quỹ dự phòng")))
	// The year's allocatable base clamps per month, not on the annual net.
	assert.True(t, decimal.RequireFromString("10000000").Equal(r.AllocatableProfit))
	assert.True(t, decimal.RequireFromString("8500000").Equal(r.NetProfit))
}

func TestComputeYear_EqualsSumOfComputeMonth(t *testing.T) {
	accounts := []*fundaccount.Account{
		account("Quỹ dự phòng", "25"),
		account("Tái đầu tư", "12.5"),
	}

	monthly := map[int]Figures{
		1:  figures("7300001", "2199999"),
		2:  figures("100", "5000000"),
		6:  figures("15000000", "14999999.5"),
		12: figures("9000000", "3000000"),
	}

	year := ComputeYear(accounts, 2026, monthly)

	for _, acc := range accounts {
		sum := decimal.Zero
		for m, f := range monthly {
			sum = sum.Add(shareOf(t, ComputeMonth(accounts, 2026, m, f), acc.Name))
		}
		require.True(t, sum.Equal(shareOf(t, year, acc.Name)),
			"account %s: year %s != sum %s", acc.Name, shareOf(t, year, acc.Name), sum)
	}
}

func TestComputeYear_EmptyFigures(t *testing.T) {
	accounts := []*fundaccount.Account{account("Quỹ dự phòng", "25")}

	r := ComputeYear(accounts, 2026, nil)

	assert.True(t, r.NetProfit.IsZero())
	assert.True(t, r.ReserveTotal.IsZero())
	require.Len(t, r.Shares, 1)
	assert.True(t, r.Shares[0].Share.IsZero())
}

func TestRoundVND_AppliedOnceKeepsYearConsistent(t *testing.T) {
	// Each month's unrounded share is 61728.375; rounding per month and
	// summing gives 740736, while rounding the exact year total once gives
	// the correct 740741.
	accounts := []*fundaccount.Account{account("Quỹ dự phòng", "0.5")}
	monthly := map[int]Figures{}
	for m := 1; m <= 12; m++ {
		monthly[m] = figures("12345675", "0")
	}

	year := ComputeYear(accounts, 2026, monthly)
	exact := shareOf(t, year, "Quỹ dự phòng")

	assert.True(t, decimal.RequireFromString("740740.5").Equal(exact), "got %s", exact)
	assert.True(t, decimal.RequireFromString("740741").Equal(types.RoundVND(exact)))
}
