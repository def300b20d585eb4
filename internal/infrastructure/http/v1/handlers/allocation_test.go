package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traso/internal/core/apperror"
	"traso/internal/core/id"
	"traso/internal/core/types"
	"traso/internal/domain"
	"traso/internal/domain/catalogs/fundaccount"
	"traso/internal/domain/finance/allocation"
	"traso/internal/infrastructure/http/v1/middleware"
)

type fakeFigures struct {
	months map[int]allocation.Figures
}

func (f *fakeFigures) MonthFigures(_ context.Context, _, month int) (allocation.Figures, error) {
	return f.months[month], nil
}

func (f *fakeFigures) YearFigures(_ context.Context, _ int) (map[int]allocation.Figures, error) {
	return f.months, nil
}

type fakeAccountRepo struct {
	accounts []*fundaccount.Account
}

func (r *fakeAccountRepo) Create(_ context.Context, _ *fundaccount.Account) error { return nil }

func (r *fakeAccountRepo) GetByID(_ context.Context, accountID id.ID) (*fundaccount.Account, error) {
	for _, a := range r.accounts {
		if a.ID == accountID {
			return a, nil
		}
	}
	return nil, apperror.NewNotFound("fund account", accountID.String())
}

func (r *fakeAccountRepo) Update(_ context.Context, _ *fundaccount.Account) error { return nil }

func (r *fakeAccountRepo) SetActive(_ context.Context, _ id.ID, _ bool) error { return nil }

func (r *fakeAccountRepo) List(_ context.Context, _ domain.ListFilter) (domain.ListResult[*fundaccount.Account], error) {
	return domain.ListResult[*fundaccount.Account]{Items: r.accounts, TotalCount: int64(len(r.accounts))}, nil
}

func (r *fakeAccountRepo) Exists(_ context.Context, _ id.ID) (bool, error) { return true, nil }

func (r *fakeAccountRepo) ListActive(_ context.Context) ([]*fundaccount.Account, error) {
	return r.accounts, nil
}

func newAllocationRouter(figures *fakeFigures, accounts *fakeAccountRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())

	service := allocation.NewService(figures, accounts)
	NewAllocationHandler(service).RegisterRoutes(router.Group("/reports"))
	return router
}

func TestAllocationReport_MonthRoundsToWholeDong(t *testing.T) {
	reserve := fundaccount.New("Quỹ dự phòng", types.MustMoney("25"))
	dividends := fundaccount.New("Cổ tức", types.MustMoney("0.5"))
	dividends.IncludeInReserveTotal = false

	router := newAllocationRouter(
		&fakeFigures{months: map[int]allocation.Figures{
			3: {Revenue: types.MustMoney("12345675"), Expenses: types.Zero()},
		}},
		&fakeAccountRepo{accounts: []*fundaccount.Account{reserve, dividends}},
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/allocations?year=2025&month=3", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Year         int    `json:"year"`
		Month        int    `json:"month"`
		NetProfit    string `json:"netProfit"`
		ReserveTotal string `json:"reserveTotal"`
		Shares       []struct {
			Name  string `json:"name"`
			Share string `json:"share"`
		} `json:"shares"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 2025, body.Year)
	assert.Equal(t, 3, body.Month)
	require.Len(t, body.Shares, 2)

	// 25% of 12,345,675 is 3,086,418.75 and 0.5% is 61,728.375; both must
	// come back rounded half away from zero to whole dong.
	assert.Equal(t, "3086419", body.Shares[0].Share)
	assert.Equal(t, "61728", body.Shares[1].Share)
	assert.Equal(t, "3086419", body.ReserveTotal)
}

func TestAllocationReport_InvalidMonthReturns400(t *testing.T) {
	router := newAllocationRouter(
		&fakeFigures{months: map[int]allocation.Figures{}},
		&fakeAccountRepo{},
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/allocations?year=2025&month=13", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apperror.CodeValidation, body["code"])
}

func TestAllocationReport_YearScopeSumsMonths(t *testing.T) {
	reserve := fundaccount.New("Quỹ dự phòng", types.MustMoney("25"))

	router := newAllocationRouter(
		&fakeFigures{months: map[int]allocation.Figures{
			1: {Revenue: types.MustMoney("10000000"), Expenses: types.MustMoney("4000000")},
			2: {Revenue: types.MustMoney("3000000"), Expenses: types.MustMoney("4500000")},
		}},
		&fakeAccountRepo{accounts: []*fundaccount.Account{reserve}},
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/allocations?year=2025", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Month             int    `json:"month"`
		NetProfit         string `json:"netProfit"`
		AllocatableProfit string `json:"allocatableProfit"`
		ReserveTotal      string `json:"reserveTotal"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	// January clamps at 6M profit, February is a loss month contributing
	// nothing; the year base is 6M, not 4.5M.
	assert.Equal(t, 0, body.Month)
	assert.Equal(t, "4500000", body.NetProfit)
	assert.Equal(t, "6000000", body.AllocatableProfit)
	assert.Equal(t, "1500000", body.ReserveTotal)
}
