package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagekit/wagekit/internal/domain"
	"github.com/wagekit/wagekit/internal/reference"
)

func newTestPayCalculator() *PayCalculator {
	return NewPayCalculator(NewFederalTaxCalculator(), reference.NewStore().ShiftDifferentials())
}

func noTaxState(code string) domain.JurisdictionTaxProfile {
	return domain.JurisdictionTaxProfile{
		Code:           code,
		HasNoIncomeTax: true,
		OvertimeRule:   domain.OvertimeWeekly,
	}
}

func flatTaxState(code string, rate float64) domain.JurisdictionTaxProfile {
	return domain.JurisdictionTaxProfile{
		Code:          code,
		IncomeTaxRate: decimal.NewFromFloat(rate),
		OvertimeRule:  domain.OvertimeWeekly,
	}
}

func TestComputePay_TexasW2RoundTrip(t *testing.T) {
	pc := newTestPayCalculator()

	scenario := domain.PayScenario{
		HourlyRate:     decimal.NewFromInt(17),
		HoursPerWeek:   decimal.NewFromInt(40),
		StateCode:      "TX",
		EmploymentType: domain.EmploymentW2,
	}

	result := pc.ComputePay(scenario, noTaxState("TX"))

	expectedWeekly := decimal.NewFromInt(680)
	expectedYearly := decimal.NewFromInt(35360)
	expectedFICA := expectedYearly.Mul(decimal.NewFromFloat(0.0765))

	assert.True(t, result.WeeklyGross.Equal(expectedWeekly),
		"weekly gross: expected %s, got %s", expectedWeekly, result.WeeklyGross.StringFixed(2))
	assert.True(t, result.YearlyGross.Equal(expectedYearly))
	assert.True(t, result.YearlyStateTax.IsZero(), "no-income-tax state must have exactly zero state tax")
	assert.True(t, result.YearlyPayrollTax.Equal(expectedFICA),
		"FICA: expected %s, got %s", expectedFICA.StringFixed(2), result.YearlyPayrollTax.StringFixed(2))
	assert.True(t, result.YearlyNet.LessThan(result.YearlyGross), "net must be below gross")
	assert.True(t, result.YearlyNet.GreaterThan(decimal.Zero))
}

func TestComputePay_ZeroHours(t *testing.T) {
	pc := newTestPayCalculator()

	// Premium fields are set on purpose: with no scheduled hours the
	// night differential and holiday average must not accrue either.
	scenario := domain.PayScenario{
		HourlyRate:     decimal.NewFromInt(22),
		HoursPerWeek:   decimal.Zero,
		TipsPerHour:    decimal.NewFromInt(4),
		NightHours:     decimal.NewFromInt(10),
		HolidayPay:     true,
		StateCode:      "CA",
		EmploymentType: domain.EmploymentW2,
	}

	result := pc.ComputePay(scenario, flatTaxState("CA", 0.06))

	assert.True(t, result.WeeklyGross.IsZero())
	assert.True(t, result.YearlyGross.IsZero())
	assert.True(t, result.YearlyNet.IsZero())
	assert.True(t, result.EffectiveHourlyRate.IsZero(), "zero hours must not divide by zero")
	assert.True(t, result.EffectiveTaxRate.IsZero())
}

func TestComputePay_NegativeInputsClampToZero(t *testing.T) {
	pc := newTestPayCalculator()

	scenario := domain.PayScenario{
		HourlyRate:     decimal.NewFromInt(-17),
		HoursPerWeek:   decimal.NewFromInt(-40),
		TipsPerHour:    decimal.NewFromInt(-2),
		StateCode:      "TX",
		EmploymentType: domain.EmploymentW2,
	}

	result := pc.ComputePay(scenario, noTaxState("TX"))
	assert.True(t, result.YearlyGross.IsZero())
	assert.True(t, result.YearlyNet.IsZero())
}

func TestComputePay_EmploymentComparisonAntiSymmetric(t *testing.T) {
	pc := newTestPayCalculator()
	jurisdiction := flatTaxState("PA", 0.0307)

	scenario := domain.PayScenario{
		HourlyRate:     decimal.NewFromFloat(21.50),
		HoursPerWeek:   decimal.NewFromInt(38),
		TipsPerHour:    decimal.NewFromInt(3),
		StateCode:      "PA",
		EmploymentType: domain.EmploymentW2,
	}

	asW2 := pc.ComputePay(scenario, jurisdiction)

	scenario.EmploymentType = domain.Employment1099
	as1099 := pc.ComputePay(scenario, jurisdiction)

	// Identical inputs produce identical gross, so the two comparison
	// deltas must be exact negations of each other.
	require.True(t, asW2.YearlyGross.Equal(as1099.YearlyGross))
	assert.True(t, asW2.Comparison.YearlyNetDelta.Equal(as1099.Comparison.YearlyNetDelta.Neg()),
		"W2 delta %s should negate 1099 delta %s",
		asW2.Comparison.YearlyNetDelta.StringFixed(2), as1099.Comparison.YearlyNetDelta.StringFixed(2))
	assert.Equal(t, domain.Employment1099, asW2.Comparison.AlternateType)
	assert.Equal(t, domain.EmploymentW2, as1099.Comparison.AlternateType)
	assert.True(t, asW2.Comparison.AlternateYearlyNet.Equal(as1099.YearlyNet))
}

func TestComputePay_SelfEmploymentTaxAndDeduction(t *testing.T) {
	pc := newTestPayCalculator()

	scenario := domain.PayScenario{
		HourlyRate:     decimal.NewFromInt(25),
		HoursPerWeek:   decimal.NewFromInt(40),
		StateCode:      "FL",
		EmploymentType: domain.Employment1099,
	}

	result := pc.ComputePay(scenario, noTaxState("FL"))

	yearlyGross := decimal.NewFromInt(52000)
	expectedSE := yearlyGross.Mul(decimal.NewFromFloat(0.153))
	require.True(t, result.YearlyGross.Equal(yearlyGross))
	assert.True(t, result.YearlyPayrollTax.Equal(expectedSE),
		"SE tax: expected %s, got %s", expectedSE.StringFixed(2), result.YearlyPayrollTax.StringFixed(2))

	// Half the SE tax is deducted before federal tax, so the 1099 federal
	// tax must be below the W-2 federal tax at identical gross.
	scenario.EmploymentType = domain.EmploymentW2
	asW2 := pc.ComputePay(scenario, noTaxState("FL"))
	assert.True(t, result.YearlyFederalTax.LessThan(asW2.YearlyFederalTax))
}

func TestComputePay_ShiftDifferentialsAndTips(t *testing.T) {
	pc := newTestPayCalculator()

	scenario := domain.PayScenario{
		HourlyRate:     decimal.NewFromInt(20),
		HoursPerWeek:   decimal.NewFromInt(40),
		TipsPerHour:    decimal.NewFromInt(2),
		NightHours:     decimal.NewFromInt(10),
		WeekendHours:   decimal.NewFromInt(8),
		StateCode:      "TX",
		EmploymentType: domain.EmploymentW2,
	}

	result := pc.ComputePay(scenario, noTaxState("TX"))

	// 20*40 + 2*40 + 10*1.50 + 8*1.00
	expected := decimal.NewFromInt(800).
		Add(decimal.NewFromInt(80)).
		Add(decimal.NewFromInt(15)).
		Add(decimal.NewFromInt(8))
	assert.True(t, result.WeeklyGross.Equal(expected),
		"weekly gross: expected %s, got %s", expected, result.WeeklyGross.StringFixed(2))
}

func TestComputePay_HolidayAveraging(t *testing.T) {
	pc := newTestPayCalculator()

	base := domain.PayScenario{
		HourlyRate:     decimal.NewFromInt(20),
		HoursPerWeek:   decimal.NewFromInt(40),
		StateCode:      "TX",
		EmploymentType: domain.EmploymentW2,
	}
	withHoliday := base
	withHoliday.HolidayPay = true

	plain := pc.ComputePay(base, noTaxState("TX"))
	holiday := pc.ComputePay(withHoliday, noTaxState("TX"))

	// One 8-hour 1.5x shift per month smoothed over the year:
	// 20 * 1.5 * (96/52) per week.
	expectedBump := decimal.NewFromInt(20).
		Mul(decimal.NewFromFloat(1.5)).
		Mul(decimal.NewFromInt(96).Div(decimal.NewFromInt(52)))
	gotBump := holiday.WeeklyGross.Sub(plain.WeeklyGross)
	assert.True(t, gotBump.Equal(expectedBump),
		"holiday bump: expected %s, got %s", expectedBump.StringFixed(4), gotBump.StringFixed(4))
}

func TestComputePay_WeeklyNetDerivedFromYearly(t *testing.T) {
	pc := newTestPayCalculator()

	scenario := domain.PayScenario{
		HourlyRate:     decimal.NewFromInt(18),
		HoursPerWeek:   decimal.NewFromInt(40),
		HolidayPay:     true,
		StateCode:      "GA",
		EmploymentType: domain.EmploymentW2,
	}

	result := pc.ComputePay(scenario, flatTaxState("GA", 0.0549))

	assert.True(t, result.WeeklyNet.Equal(result.YearlyNet.Div(decimal.NewFromInt(52))))
	assert.True(t, result.MonthlyNet.Equal(result.YearlyNet.Div(decimal.NewFromInt(12))))
}
