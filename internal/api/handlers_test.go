package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagekit/wagekit/internal/domain"
	"github.com/wagekit/wagekit/internal/reference"
)

func newTestRouter() http.Handler {
	return NewRouter(NewHandler(reference.NewStore(), nil))
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func getJSON(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestComputePay(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/pay", PayRequest{
		HourlyRate:   "17",
		HoursPerWeek: "40",
		State:        "TX",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.PayResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "680", result.WeeklyGross.String())
	assert.Equal(t, "35360", result.YearlyGross.String())
	assert.True(t, result.YearlyStateTax.IsZero())
}

func TestComputePay_FormattedAmounts(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/pay", PayRequest{
		HourlyRate:   "$17.00",
		HoursPerWeek: "40",
		State:        "TX",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.PayResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "680", result.WeeklyGross.String())
}

func TestComputePay_UnknownState(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/pay", PayRequest{
		HourlyRate:   "17",
		HoursPerWeek: "40",
		State:        "ZZ",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "ZZ")
}

func TestComputePay_RoleTemplate(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/pay", PayRequest{
		State: "CA",
		Role:  "server",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.PayResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.WeeklyGross.GreaterThan(decimal.Zero),
		"role template must seed pay fields")

	rec = postJSON(t, router, "/api/pay", PayRequest{State: "CA", Role: "astronaut"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestComputePay_BadJSON(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/pay", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComputeQuarterly(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/quarterly", TaxRequest{
		SelfEmploymentIncome: "35,000",
		State:                "TX",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.TaxResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "5355.00", result.SelfEmploymentTax.StringFixed(2))
	assert.False(t, result.NextDeadline.Date.IsZero())
}

func TestComputeBenefit(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/benefit", BenefitRequest{
		State:            "TX",
		HighQuarterWages: "6500",
		WeeklyEarnings:   "150",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.BenefitResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "260.00", result.WeeklyBenefit.StringFixed(2))
	assert.True(t, result.PartialBenefit.LessThan(result.WeeklyBenefit))
}

func TestProjectClaim(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/benefit/claim", ClaimRequest{
		BenefitRequest: BenefitRequest{
			State:            "TX",
			HighQuarterWages: "6500",
		},
		Schedule: []string{"0", "100", "0"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var projection domain.ClaimProjection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projection))
	require.NotEmpty(t, projection.Weeks)
	assert.Equal(t, domain.ClaimWeekWaiting, projection.Weeks[0].Status)
	assert.True(t, projection.TotalPayable.GreaterThan(decimal.Zero))
}

func TestListStates(t *testing.T) {
	router := newTestRouter()

	rec := getJSON(t, router, "/api/states")
	require.Equal(t, http.StatusOK, rec.Code)

	var states []domain.JurisdictionTaxProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &states))
	assert.Len(t, states, 51)
}

func TestGetState(t *testing.T) {
	router := newTestRouter()

	rec := getJSON(t, router, "/api/states/CA")
	require.Equal(t, http.StatusOK, rec.Code)

	var summary stateSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, "California", summary.Tax.Name)
	assert.Equal(t, "CA", summary.Unemployment.Code)

	rec = getJSON(t, router, "/api/states/ZZ")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	router := newTestRouter()

	rec := getJSON(t, router, "/api/catalog/deductions")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mileage")

	rec = getJSON(t, router, "/api/catalog/roles")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "server")

	rec = getJSON(t, router, "/api/catalog/deadlines")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHealth(t *testing.T) {
	rec := getJSON(t, newTestRouter(), "/api/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
