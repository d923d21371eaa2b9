package compare

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagekit/wagekit/internal/domain"
	"github.com/wagekit/wagekit/internal/reference"
)

func testPayScenario() domain.PayScenario {
	return domain.PayScenario{
		HourlyRate:     decimal.NewFromInt(20),
		HoursPerWeek:   decimal.NewFromInt(40),
		EmploymentType: domain.EmploymentW2,
	}
}

func TestComparePay_CoversEveryStateRanked(t *testing.T) {
	engine := NewEngine(reference.NewStore())

	set := engine.ComparePay(testPayScenario())

	require.Len(t, set.Rows, 51)
	seen := map[string]bool{}
	for i, row := range set.Rows {
		assert.Equal(t, i+1, row.Rank)
		assert.False(t, seen[row.StateCode], "duplicate state %s", row.StateCode)
		seen[row.StateCode] = true
		if i > 0 {
			assert.True(t, set.Rows[i-1].YearlyNet.GreaterThanOrEqual(row.YearlyNet),
				"rows must be sorted by yearly net descending")
		}
	}
}

func TestComparePay_NoTaxStatesRankAboveTaxedStates(t *testing.T) {
	engine := NewEngine(reference.NewStore())

	set := engine.ComparePay(testPayScenario())

	// With identical gross everywhere, the top rows must all be
	// no-income-tax states.
	top := set.Rows[0]
	assert.True(t, top.YearlyStateTax.IsZero())
	assert.True(t, top.IncomeTaxRate.IsZero())

	bottom := set.Rows[len(set.Rows)-1]
	assert.True(t, bottom.YearlyStateTax.GreaterThan(decimal.Zero))
}

func TestCompareBenefit_RankedByWeeklyBenefit(t *testing.T) {
	engine := NewEngine(reference.NewStore())

	set := engine.CompareBenefit(domain.BenefitScenario{
		HighQuarterWages:   decimal.NewFromInt(9000),
		SecondQuarterWages: decimal.NewFromInt(8500),
	})

	require.Len(t, set.Rows, 51)
	for i := 1; i < len(set.Rows); i++ {
		assert.True(t, set.Rows[i-1].WeeklyBenefit.GreaterThanOrEqual(set.Rows[i].WeeklyBenefit))
	}
	for _, row := range set.Rows {
		assert.True(t, row.WeeklyBenefit.GreaterThanOrEqual(decimal.Zero))
	}
}

func TestFormatters(t *testing.T) {
	engine := NewEngine(reference.NewStore())
	set := engine.ComparePay(testPayScenario())

	table := (&TableFormatter{}).FormatPay(set)
	assert.Contains(t, table, "Rank")
	assert.Contains(t, table, "TX")

	csvOut, err := (&CSVFormatter{}).FormatPay(set)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(csvOut), "\n")
	assert.Len(t, lines, 52, "header plus one row per state")

	jsonOut, err := (&JSONFormatter{Pretty: true}).FormatPay(set)
	require.NoError(t, err)
	assert.Contains(t, jsonOut, "\"yearlyNet\"")
}
