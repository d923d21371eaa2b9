package domain

import (
	"github.com/shopspring/decimal"
)

// EmploymentType distinguishes W-2 payroll employment from 1099 contract
// work. The two differ only in how payroll taxes are computed.
type EmploymentType string

const (
	EmploymentW2   EmploymentType = "w2"
	Employment1099 EmploymentType = "1099"
)

// Opposite returns the alternate employment type for cross-scenario
// comparisons.
func (et EmploymentType) Opposite() EmploymentType {
	if et == Employment1099 {
		return EmploymentW2
	}
	return Employment1099
}

// PayScenario is the input to one take-home pay computation. Scenarios are
// ephemeral: engines never mutate them and never retain references after
// returning a result.
type PayScenario struct {
	HourlyRate     decimal.Decimal `yaml:"hourly_rate" json:"hourlyRate"`
	HoursPerWeek   decimal.Decimal `yaml:"hours_per_week" json:"hoursPerWeek"`
	TipsPerHour    decimal.Decimal `yaml:"tips_per_hour" json:"tipsPerHour"`
	StateCode      string          `yaml:"state" json:"state"`
	EmploymentType EmploymentType  `yaml:"employment_type" json:"employmentType"`
	NightHours     decimal.Decimal `yaml:"night_hours" json:"nightHours"`
	WeekendHours   decimal.Decimal `yaml:"weekend_hours" json:"weekendHours"`
	HolidayPay     bool            `yaml:"holiday_pay" json:"holidayPay"`
}

// Sanitize clamps negative amounts to zero and defaults the employment
// type. Engines only ever see sanitized scenarios.
func (ps PayScenario) Sanitize() PayScenario {
	ps.HourlyRate = clampNonNegative(ps.HourlyRate)
	ps.HoursPerWeek = clampNonNegative(ps.HoursPerWeek)
	ps.TipsPerHour = clampNonNegative(ps.TipsPerHour)
	ps.NightHours = clampNonNegative(ps.NightHours)
	ps.WeekendHours = clampNonNegative(ps.WeekendHours)
	if ps.EmploymentType != Employment1099 {
		ps.EmploymentType = EmploymentW2
	}
	return ps
}

// DeductionSelection picks a catalog deduction, optionally overriding its
// default amount. Overrides are ignored for mileage entries, which are
// driven by AnnualMiles on the scenario.
type DeductionSelection struct {
	ID       string           `yaml:"id" json:"id"`
	Override *decimal.Decimal `yaml:"override,omitempty" json:"override,omitempty"`
}

// TaxScenario is the input to one quarterly self-employment tax estimate.
type TaxScenario struct {
	W2Income       decimal.Decimal      `yaml:"w2_income" json:"w2Income"`
	SelfEmployment decimal.Decimal      `yaml:"self_employment_income" json:"selfEmploymentIncome"`
	StateCode      string               `yaml:"state" json:"state"`
	CombinedIncome bool                 `yaml:"combined_income" json:"combinedIncome"`
	Deductions     []DeductionSelection `yaml:"deductions" json:"deductions"`
	AnnualMiles    decimal.Decimal      `yaml:"annual_miles" json:"annualMiles"`
}

// Sanitize clamps negative amounts to zero. The deduction slice is
// copied before overrides are clamped so the caller's scenario is never
// written through.
func (ts TaxScenario) Sanitize() TaxScenario {
	ts.W2Income = clampNonNegative(ts.W2Income)
	ts.SelfEmployment = clampNonNegative(ts.SelfEmployment)
	ts.AnnualMiles = clampNonNegative(ts.AnnualMiles)
	if len(ts.Deductions) > 0 {
		deductions := make([]DeductionSelection, len(ts.Deductions))
		copy(deductions, ts.Deductions)
		for i, sel := range deductions {
			if sel.Override != nil {
				v := clampNonNegative(*sel.Override)
				deductions[i].Override = &v
			}
		}
		ts.Deductions = deductions
	}
	return ts
}

// BenefitScenario is the input to one unemployment benefit estimate.
// SecondQuarterWages is only consulted for two-highest-quarters states.
// WeeklyEarnings above zero triggers the partial-benefit computation.
type BenefitScenario struct {
	StateCode          string          `yaml:"state" json:"state"`
	HighQuarterWages   decimal.Decimal `yaml:"high_quarter_wages" json:"highQuarterWages"`
	SecondQuarterWages decimal.Decimal `yaml:"second_quarter_wages" json:"secondQuarterWages"`
	Dependents         int             `yaml:"dependents" json:"dependents"`
	WeeklyEarnings     decimal.Decimal `yaml:"weekly_earnings" json:"weeklyEarnings"`
}

// Sanitize clamps negative wages, earnings, and dependent counts to zero.
func (bs BenefitScenario) Sanitize() BenefitScenario {
	bs.HighQuarterWages = clampNonNegative(bs.HighQuarterWages)
	bs.SecondQuarterWages = clampNonNegative(bs.SecondQuarterWages)
	bs.WeeklyEarnings = clampNonNegative(bs.WeeklyEarnings)
	if bs.Dependents < 0 {
		bs.Dependents = 0
	}
	return bs
}

func clampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return d
}

// ApplyRole fills a PayScenario's pay fields from a role template. The
// state code and employment type are left for the caller.
func ApplyRole(ps PayScenario, role RoleTemplate) PayScenario {
	ps.HourlyRate = role.HourlyRate
	ps.HoursPerWeek = role.WeeklyHours
	if role.Tipped {
		ps.TipsPerHour = role.AvgTipsPerHour
	} else {
		ps.TipsPerHour = decimal.Zero
	}
	if !role.NightShifts {
		ps.NightHours = decimal.Zero
	}
	if !role.WeekendShifts {
		ps.WeekendHours = decimal.Zero
	}
	return ps
}
