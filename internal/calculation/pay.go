package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/wagekit/wagekit/internal/domain"
	"github.com/wagekit/wagekit/internal/reference"
)

// PAY ENGINE ASSUMPTIONS:
//
// 1. Holiday pay is modeled as an average, not a calendar: one 8-hour
//    holiday shift per month at 1.5x base rate, smoothed into a constant
//    weekly contribution (8 * 12 / 52 hours per week). Pay never spikes on
//    actual holidays.
// 2. Monthly gross is weekly gross * 4.33 and yearly gross is weekly
//    gross * 52; no compounding and no calendar-exact month lengths.
// 3. Weekly and monthly nets are derived from yearly net (/ 52, / 12),
//    not re-derived from weekly gross, so the holiday averaging cannot
//    drift between granularities.

// holidayWeeklyHours is the smoothed weekly hour contribution of one
// 8-hour holiday shift per month.
var holidayWeeklyHours = decimal.NewFromInt(96).Div(decimal.NewFromInt(52))

// PayCalculator computes gross and net pay for one PayScenario against one
// jurisdiction. It is stateless apart from its injected reference tables
// and is safe for concurrent use.
type PayCalculator struct {
	Federal       *FederalTaxCalculator
	Differentials map[string]domain.ShiftDifferentialRule
	Logger        Logger
}

// NewPayCalculator creates a pay calculator using the given federal
// calculator and shift differential rules.
func NewPayCalculator(federal *FederalTaxCalculator, differentials map[string]domain.ShiftDifferentialRule) *PayCalculator {
	return &PayCalculator{
		Federal:       federal,
		Differentials: differentials,
		Logger:        NopLogger{},
	}
}

// ComputePay produces the full gross/net breakdown for the scenario,
// including the same-gross comparison against the opposite employment
// type. Inputs are sanitized first; zero hours yields all-zero monetary
// outputs rather than an error.
func (pc *PayCalculator) ComputePay(scenario domain.PayScenario, jurisdiction domain.JurisdictionTaxProfile) domain.PayResult {
	scenario = scenario.Sanitize()

	weeklyGross := pc.weeklyGross(scenario)
	monthlyGross := weeklyGross.Mul(WeeksPerMonth)
	yearlyGross := weeklyGross.Mul(WeeksPerYear)

	payrollTax, federalTax, stateTax := pc.yearlyTaxes(yearlyGross, scenario.EmploymentType, jurisdiction)
	totalTax := payrollTax.Add(federalTax).Add(stateTax)
	yearlyNet := yearlyGross.Sub(totalTax)

	// Same gross, opposite employment type.
	altType := scenario.EmploymentType.Opposite()
	altPayroll, altFederal, altState := pc.yearlyTaxes(yearlyGross, altType, jurisdiction)
	altNet := yearlyGross.Sub(altPayroll).Sub(altFederal).Sub(altState)

	result := domain.PayResult{
		WeeklyGross:      weeklyGross,
		MonthlyGross:     monthlyGross,
		YearlyGross:      yearlyGross,
		YearlyPayrollTax: payrollTax,
		YearlyFederalTax: federalTax,
		YearlyStateTax:   stateTax,
		YearlyNet:        yearlyNet,
		MonthlyNet:       yearlyNet.Div(MonthsPerYear),
		WeeklyNet:        yearlyNet.Div(WeeksPerYear),
		Comparison: domain.EmploymentComparison{
			AlternateType:      altType,
			AlternateYearlyNet: altNet,
			YearlyNetDelta:     yearlyNet.Sub(altNet),
		},
	}

	if yearlyGross.GreaterThan(decimal.Zero) {
		result.EffectiveTaxRate = totalTax.Div(yearlyGross)
	}
	// Effective hourly rate is over scheduled hours, not gross hours
	// including differentials.
	if scenario.HoursPerWeek.GreaterThan(decimal.Zero) {
		result.EffectiveHourlyRate = result.WeeklyNet.Div(scenario.HoursPerWeek)
	}

	return result
}

// weeklyGross sums base pay, tips, night and weekend differentials, and
// the averaged holiday premium.
func (pc *PayCalculator) weeklyGross(scenario domain.PayScenario) decimal.Decimal {
	// No scheduled hours means no pay at all; premiums and the holiday
	// average only accrue on a worked week.
	if scenario.HoursPerWeek.IsZero() {
		return decimal.Zero
	}

	gross := scenario.HourlyRate.Mul(scenario.HoursPerWeek)
	gross = gross.Add(scenario.TipsPerHour.Mul(scenario.HoursPerWeek))

	if rule, ok := pc.Differentials[reference.DifferentialNight]; ok {
		gross = gross.Add(scenario.NightHours.Mul(rule.PremiumPerHour))
	}
	if rule, ok := pc.Differentials[reference.DifferentialWeekend]; ok {
		gross = gross.Add(scenario.WeekendHours.Mul(rule.PremiumPerHour))
	}
	if scenario.HolidayPay {
		multiplier := decimal.NewFromFloat(1.5)
		if rule, ok := pc.Differentials[reference.DifferentialHoliday]; ok && rule.Multiplier.GreaterThan(decimal.Zero) {
			multiplier = rule.Multiplier
		}
		gross = gross.Add(scenario.HourlyRate.Mul(multiplier).Mul(holidayWeeklyHours))
	}

	return gross
}

// yearlyTaxes splits yearly gross into payroll, federal, and state tax for
// the given employment type. For 1099 work half the self-employment tax is
// deducted from taxable income before the federal calculation, mirroring
// the above-the-line SE-tax deduction.
func (pc *PayCalculator) yearlyTaxes(yearlyGross decimal.Decimal, et domain.EmploymentType, jurisdiction domain.JurisdictionTaxProfile) (payroll, federal, state decimal.Decimal) {
	federalTaxable := yearlyGross
	if et == domain.Employment1099 {
		payroll = yearlyGross.Mul(SelfEmploymentTaxRate)
		federalTaxable = yearlyGross.Sub(payroll.Div(two))
	} else {
		payroll = yearlyGross.Mul(FICAEmployeeRate)
	}

	federal = pc.Federal.Calculate(federalTaxable)

	if !jurisdiction.HasNoIncomeTax {
		state = yearlyGross.Mul(jurisdiction.IncomeTaxRate)
	}

	return payroll, federal, state
}
