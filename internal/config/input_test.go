package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagekit/wagekit/internal/domain"
	"github.com/wagekit/wagekit/internal/reference"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_PayScenario(t *testing.T) {
	path := writeScenario(t, `
pay:
  hourly_rate: 17
  hours_per_week: 40
  tips_per_hour: 2.50
  state: TX
  employment_type: w2
  holiday_pay: true
`)

	sf, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	require.NotNil(t, sf.Pay)

	assert.True(t, sf.Pay.HourlyRate.Equal(decimal.NewFromInt(17)))
	assert.True(t, sf.Pay.TipsPerHour.Equal(decimal.NewFromFloat(2.50)))
	assert.Equal(t, "TX", sf.Pay.StateCode)
	assert.Equal(t, domain.EmploymentW2, sf.Pay.EmploymentType)
	assert.True(t, sf.Pay.HolidayPay)
}

func TestLoadFromFile_NegativeValuesClamped(t *testing.T) {
	path := writeScenario(t, `
pay:
  hourly_rate: -12
  hours_per_week: 40
  state: CA
`)

	sf, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, sf.Pay.HourlyRate.IsZero(), "negative rate must clamp to zero")
}

func TestLoadFromFile_MissingState(t *testing.T) {
	path := writeScenario(t, `
tax:
  self_employment_income: 35000
`)

	_, err := NewInputParser().LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "state is required")
}

func TestLoadFromFile_EmptyFile(t *testing.T) {
	path := writeScenario(t, "")

	_, err := NewInputParser().LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one of")
}

func TestValidateAgainst_UnknownState(t *testing.T) {
	store := reference.NewStore()
	sf := &ScenarioFile{
		Pay: &domain.PayScenario{StateCode: "ZZ"},
	}

	err := NewInputParser().ValidateAgainst(sf, store)
	require.Error(t, err)
	assert.ErrorIs(t, err, reference.ErrUnknownJurisdiction)
}

func TestValidateAgainst_UnknownDeduction(t *testing.T) {
	store := reference.NewStore()
	sf := &ScenarioFile{
		Tax: &domain.TaxScenario{
			StateCode:  "TX",
			Deductions: []domain.DeductionSelection{{ID: "yacht"}},
		},
	}

	err := NewInputParser().ValidateAgainst(sf, store)
	require.Error(t, err)
	assert.ErrorIs(t, err, reference.ErrUnknownCatalogEntry)
}

func TestValidateAgainst_TwoQuarterStateNeedsSecondFigure(t *testing.T) {
	store := reference.NewStore()
	sf := &ScenarioFile{
		Benefit: &domain.BenefitScenario{
			StateCode:        "MA", // two-highest-quarters state
			HighQuarterWages: decimal.NewFromInt(9000),
		},
	}

	err := NewInputParser().ValidateAgainst(sf, store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "second_quarter_wages")

	sf.Benefit.SecondQuarterWages = decimal.NewFromInt(8000)
	assert.NoError(t, NewInputParser().ValidateAgainst(sf, store))
}

func TestApplyDataset_OverridesJurisdiction(t *testing.T) {
	path := writeScenario(t, `
pay:
  hourly_rate: 20
  hours_per_week: 40
  state: PA
dataset:
  jurisdictions:
    - code: PA
      name: Pennsylvania
      income_tax_rate: 0.04
      minimum_wage: 9.50
      overtime_rule: weekly
      unemployment_max_weekly: 605
`)

	sf, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	store := reference.NewStore()
	ApplyDataset(sf, store)

	profile, err := store.Jurisdiction("PA")
	require.NoError(t, err)
	assert.True(t, profile.IncomeTaxRate.Equal(decimal.NewFromFloat(0.04)))
	assert.True(t, profile.MinimumWage.Equal(decimal.NewFromFloat(9.50)))
}

func TestLoadFromFile_ZeroRateOverrideMarksNoIncomeTax(t *testing.T) {
	path := writeScenario(t, `
pay:
  hourly_rate: 20
  hours_per_week: 40
  state: XX
dataset:
  jurisdictions:
    - code: XX
      name: Testland
      income_tax_rate: 0
`)

	sf, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, sf.Dataset.Jurisdictions, 1)
	assert.True(t, sf.Dataset.Jurisdictions[0].HasNoIncomeTax)
}
