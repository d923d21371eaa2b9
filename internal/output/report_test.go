package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagekit/wagekit/internal/calculation"
	"github.com/wagekit/wagekit/internal/domain"
	"github.com/wagekit/wagekit/internal/reference"
)

func testPayFixture(t *testing.T) (domain.PayScenario, domain.JurisdictionTaxProfile, domain.PayResult) {
	t.Helper()
	store := reference.NewStore()
	jurisdiction, err := store.Jurisdiction("TX")
	require.NoError(t, err)

	scenario := domain.PayScenario{
		HourlyRate:     decimal.NewFromInt(17),
		HoursPerWeek:   decimal.NewFromInt(40),
		StateCode:      "TX",
		EmploymentType: domain.EmploymentW2,
	}
	calc := calculation.NewPayCalculator(calculation.NewFederalTaxCalculator(), store.ShiftDifferentials())
	result := calc.ComputePay(scenario, jurisdiction)
	return scenario, jurisdiction, result
}

func TestPayReport(t *testing.T) {
	scenario, jurisdiction, result := testPayFixture(t)

	var buf bytes.Buffer
	rg := &ReportGenerator{Out: &buf}
	require.NoError(t, rg.PayReport(scenario, jurisdiction, result))

	out := buf.String()
	assert.Contains(t, out, "TAKE-HOME PAY ESTIMATE")
	assert.Contains(t, out, "Texas (TX)")
	assert.Contains(t, out, "W-2 employee")
	assert.Contains(t, out, "$680.00", "weekly gross at $17 x 40h")
	assert.Contains(t, out, "none", "no-income-tax states show none instead of $0.00")
	assert.Contains(t, out, "1099 contractor")
}

func TestBenefitReport_PartialSection(t *testing.T) {
	store := reference.NewStore()
	profile, err := store.Unemployment("TX")
	require.NoError(t, err)

	scenario := domain.BenefitScenario{
		StateCode:        "TX",
		HighQuarterWages: decimal.NewFromInt(6500),
		WeeklyEarnings:   decimal.NewFromInt(100),
	}
	result := calculation.NewBenefitCalculator().ComputeBenefit(scenario, profile)

	var buf bytes.Buffer
	rg := &ReportGenerator{Out: &buf}
	require.NoError(t, rg.BenefitReport(scenario, profile, result))

	out := buf.String()
	assert.Contains(t, out, "PARTIAL BENEFIT")
	assert.Contains(t, out, "Earnings disregard")
	assert.Contains(t, out, "Total weekly income")
}

func TestPayCSV(t *testing.T) {
	_, _, result := testPayFixture(t)

	var buf bytes.Buffer
	rg := &ReportGenerator{Out: &buf}
	require.NoError(t, rg.PayCSV(result))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 12, "header plus eleven metrics")
	assert.Contains(t, buf.String(), "weekly_gross,680.00")
}

func TestJSONReport(t *testing.T) {
	_, _, result := testPayFixture(t)

	var buf bytes.Buffer
	rg := &ReportGenerator{Out: &buf}
	require.NoError(t, rg.JSONReport(result))

	assert.Contains(t, buf.String(), "\"yearlyNet\"")
}

func TestGeneratePayPDF(t *testing.T) {
	scenario, jurisdiction, result := testPayFixture(t)

	var buf bytes.Buffer
	require.NoError(t, GeneratePayPDF(scenario, jurisdiction, result, &buf))

	assert.True(t, strings.HasPrefix(buf.String(), "%PDF"), "output must be a PDF document")
	assert.Greater(t, buf.Len(), 1000)
}
