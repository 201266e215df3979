package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iwvelando/finance-planner/internal/plan"
	"github.com/iwvelando/finance-planner/internal/server"
	"github.com/iwvelando/finance-planner/pkg/finance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (http.Handler, *plan.Store) {
	t.Helper()
	store := plan.NewStore(nil)
	return server.NewHandler(nil, store, nil, "test"), store
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestVersionEndpoint(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/version", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "test", body["version"])
}

func TestIncomeCRUD(t *testing.T) {
	h, store := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/incomes",
		finance.Income{Name: "Salary", Amount: 5000, Frequency: finance.FrequencyMonthly})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created finance.Income
	decodeBody(t, rec, &created)
	assert.NotEmpty(t, created.ID)

	created.Amount = 5500
	rec = doJSON(t, h, http.MethodPut, "/api/incomes/"+created.ID, created)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5500.0, store.Snapshot().Incomes[0].Amount)

	rec = doJSON(t, h, http.MethodPut, "/api/incomes/missing", created)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, "/api/incomes/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, store.Snapshot().Incomes)
}

func TestAddExpenseDefaultsType(t *testing.T) {
	h, store := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/expenses",
		finance.Expense{Name: "Rent", Amount: 1500, Category: finance.CategoryHousing})
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, finance.ExpenseNeed, store.Snapshot().Expenses[0].Type)
}

func TestSummaryEndpoint(t *testing.T) {
	h, store := newTestHandler(t)
	store.AddIncome(finance.Income{Name: "Salary", Amount: 5000, Frequency: finance.FrequencyMonthly})
	store.AddExpense(finance.Expense{Name: "Rent", Amount: 1500, Frequency: finance.FrequencyMonthly})

	rec := doJSON(t, h, http.MethodGet, "/api/summary", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var breakdown finance.MonthlyBreakdown
	decodeBody(t, rec, &breakdown)
	assert.Equal(t, 5000.0, breakdown.TotalIncome)
	assert.Equal(t, 3500.0, breakdown.AvailableSavings)
	assert.Equal(t, 70.0, breakdown.SavingsRate)
}

func TestReportEndpoint(t *testing.T) {
	h, store := newTestHandler(t)
	store.AddIncome(finance.Income{Name: "Salary", Amount: 5000, Frequency: finance.FrequencyMonthly})
	store.AddDebt(finance.Debt{Name: "Card", Principal: 4000, InterestRate: 20, MonthlyPayment: 200})

	rec := doJSON(t, h, http.MethodGet, "/api/report", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]json.RawMessage
	decodeBody(t, rec, &body)
	assert.Contains(t, body, "breakdown")
	assert.Contains(t, body, "shortTerm")
	assert.Contains(t, body, "debts")
	assert.Contains(t, body, "comparison")
}

func TestStrategiesEndpoint(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/strategies", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var strategies []map[string]interface{}
	decodeBody(t, rec, &strategies)
	assert.Len(t, strategies, 5)
}

func TestCompoundEndpoint(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet,
		"/api/projections/compound?initialAmount=10000&monthlyContribution=100&annualReturn=7&inflationRate=2&years=10", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Points []map[string]interface{} `json:"points"`
		ROI    float64                  `json:"roi"`
	}
	decodeBody(t, rec, &body)
	assert.Len(t, body.Points, 11)
	assert.Greater(t, body.ROI, 0.0)
}

func TestCompoundEndpointRejectsBadYears(t *testing.T) {
	h, _ := newTestHandler(t)

	// Unparseable years falls back to zero, which is rejected.
	for _, query := range []string{"years=0", "years=-3", "years=abc", ""} {
		rec := doJSON(t, h, http.MethodGet, "/api/projections/compound?"+query, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "query %q", query)
	}
}

func TestSplitNormalizeEndpoint(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/split/normalize",
		finance.SplitValues{Needs: 25, Wants: 15, Savings: 10})

	require.Equal(t, http.StatusOK, rec.Code)
	var result finance.SplitValues
	decodeBody(t, rec, &result)
	assert.Equal(t, finance.SplitValues{Needs: 50, Wants: 30, Savings: 20}, result)
}

func TestSplitAdjustEndpoint(t *testing.T) {
	h, _ := newTestHandler(t)

	percent := 45
	rec := doJSON(t, h, http.MethodPost, "/api/split/adjust", map[string]interface{}{
		"divider": "divider1",
		"percent": percent,
		"current": finance.SplitValues{Needs: 50, Wants: 30, Savings: 20},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var result finance.SplitValues
	decodeBody(t, rec, &result)
	assert.Equal(t, finance.SplitValues{Needs: 45, Wants: 35, Savings: 20}, result)
	assert.Equal(t, 100, result.Sum())
}

func TestSplitAdjustEndpointValidation(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/split/adjust", map[string]interface{}{
		"divider": "divider9",
		"percent": 45,
		"current": finance.SplitValues{Needs: 50, Wants: 30, Savings: 20},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "unknown divider")

	rec = doJSON(t, h, http.MethodPost, "/api/split/adjust", map[string]interface{}{
		"divider": "divider1",
		"current": finance.SplitValues{Needs: 50, Wants: 30, Savings: 20},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "neither percent nor delta")
}

func TestPlanImportExport(t *testing.T) {
	h, store := newTestHandler(t)

	snapshot := `{
		"incomes": [{"id": "1", "name": "Salary", "amount": 5000, "frequency": "monthly"}],
		"expenses": [{"id": "2", "name": "Rent", "amount": 1500, "category": "housing", "frequency": "monthly"}],
		"debts": [],
		"selectedStrategy": "balanced",
		"language": "en"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/plan/import", strings.NewReader(snapshot))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	imported := store.Snapshot()
	assert.Len(t, imported.Incomes, 1)
	assert.Equal(t, finance.ExpenseNeed, imported.Expenses[0].Type, "import migrates legacy expenses")
	assert.Equal(t, "balanced", imported.SelectedStrategy)

	rec = doJSON(t, h, http.MethodGet, "/api/plan/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	exported, err := plan.Import(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, imported, exported)
}

func TestPlanImportRejectsInvalid(t *testing.T) {
	h, store := newTestHandler(t)
	store.AddIncome(finance.Income{Name: "Salary", Amount: 5000})

	req := httptest.NewRequest(http.MethodPost, "/api/plan/import",
		strings.NewReader(`{"incomes": "wrong"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, store.Snapshot().Incomes, 1, "failed import must not touch the plan")
}

func TestPlanReset(t *testing.T) {
	h, store := newTestHandler(t)
	store.AddIncome(finance.Income{Name: "Salary", Amount: 5000})

	rec := doJSON(t, h, http.MethodPost, "/api/plan/reset", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, plan.Default(), store.Snapshot())
}

func TestSelectStrategy(t *testing.T) {
	h, store := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/plan/strategy", map[string]string{"id": "debt_payoff"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "debt_payoff", store.Snapshot().SelectedStrategy)

	rec = doJSON(t, h, http.MethodPost, "/api/plan/strategy", map[string]string{"id": "custom"})
	require.Equal(t, http.StatusOK, rec.Code, "custom sentinel is always accepted")

	rec = doJSON(t, h, http.MethodPost, "/api/plan/strategy", map[string]string{"id": ""})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store.Snapshot().SelectedStrategy)

	rec = doJSON(t, h, http.MethodPost, "/api/plan/strategy", map[string]string{"id": "bogus"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomStrategy(t *testing.T) {
	h, store := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/plan/custom-strategy",
		finance.SplitValues{Needs: 40, Wants: 20, Savings: 40})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, finance.SplitValues{Needs: 40, Wants: 20, Savings: 40},
		store.Snapshot().CustomStrategy)

	rec = doJSON(t, h, http.MethodPost, "/api/plan/custom-strategy",
		finance.SplitValues{Needs: 40, Wants: 20, Savings: 20})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "breakdown must sum to 100")
}

func TestInvalidJSONRejected(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/incomes", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
