package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmploymentComparison reports what net pay would have been under the
// opposite employment type at the identical gross, and the signed
// difference (current minus alternate).
type EmploymentComparison struct {
	AlternateType      EmploymentType  `json:"alternateType"`
	AlternateYearlyNet decimal.Decimal `json:"alternateYearlyNet"`
	YearlyNetDelta     decimal.Decimal `json:"yearlyNetDelta"`
}

// PayResult is the full gross/net breakdown for one PayScenario.
// Weekly and monthly nets are derived from the yearly net (divided by 52
// and 12) rather than re-derived from weekly gross, so the holiday
// averaging step cannot introduce drift between granularities.
type PayResult struct {
	WeeklyGross  decimal.Decimal `json:"weeklyGross"`
	MonthlyGross decimal.Decimal `json:"monthlyGross"`
	YearlyGross  decimal.Decimal `json:"yearlyGross"`

	// YearlyPayrollTax is the employee FICA share for W-2 work or the
	// full self-employment tax for 1099 work.
	YearlyPayrollTax decimal.Decimal `json:"yearlyPayrollTax"`
	YearlyFederalTax decimal.Decimal `json:"yearlyFederalTax"`
	YearlyStateTax   decimal.Decimal `json:"yearlyStateTax"`

	WeeklyNet  decimal.Decimal `json:"weeklyNet"`
	MonthlyNet decimal.Decimal `json:"monthlyNet"`
	YearlyNet  decimal.Decimal `json:"yearlyNet"`

	EffectiveTaxRate    decimal.Decimal `json:"effectiveTaxRate"`
	EffectiveHourlyRate decimal.Decimal `json:"effectiveHourlyRate"`

	Comparison EmploymentComparison `json:"employmentTypeComparison"`
}

// NextDeadline is the next estimated-tax due date, resolved to a concrete
// calendar date.
type NextDeadline struct {
	Label string    `json:"label"`
	Date  time.Time `json:"date"`
}

// TaxResult is the quarterly self-employment tax estimate for one
// TaxScenario.
type TaxResult struct {
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalDeductions   decimal.Decimal `json:"totalDeductions"`
	TaxableIncome     decimal.Decimal `json:"taxableIncome"`
	SelfEmploymentTax decimal.Decimal `json:"selfEmploymentTax"`
	FICATax           decimal.Decimal `json:"ficaTax"`
	FederalTax        decimal.Decimal `json:"federalTax"`
	StateTax          decimal.Decimal `json:"stateTax"`
	TotalTax          decimal.Decimal `json:"totalTax"`
	QuarterlyPayment  decimal.Decimal `json:"quarterlyPayment"`
	MonthlySetAside   decimal.Decimal `json:"monthlySetAside"`
	DeductionSavings  decimal.Decimal `json:"estimatedDeductionSavings"`
	NextDeadline      NextDeadline    `json:"nextDeadline"`
}

// BenefitResult is the unemployment benefit estimate for one
// BenefitScenario.
type BenefitResult struct {
	// WeeklyBenefit is the un-reduced WBA: base amount plus dependent
	// bonus, capped at the state maximum.
	WeeklyBenefit  decimal.Decimal `json:"weeklyBenefit"`
	BaseAmount     decimal.Decimal `json:"baseAmount"`
	DependentBonus decimal.Decimal `json:"dependentBonus"`

	// PartialBenefit equals WeeklyBenefit when no earnings were reported.
	PartialBenefit    decimal.Decimal `json:"partialBenefit"`
	EarningsDisregard decimal.Decimal `json:"earningsDisregard"`
	Reduction         decimal.Decimal `json:"reduction"`

	TotalWeeklyIncome decimal.Decimal `json:"totalWeeklyIncome"`
	MonthlyBenefit    decimal.Decimal `json:"monthlyBenefit"`
	TotalBenefits     decimal.Decimal `json:"totalBenefits"`
	MaxWeeks          int             `json:"maxWeeks"`
	WorthWorking      bool            `json:"worthWorking"`
}

// ClaimWeekStatus labels one week of a projected unemployment claim.
type ClaimWeekStatus string

const (
	ClaimWeekWaiting   ClaimWeekStatus = "waiting"
	ClaimWeekActive    ClaimWeekStatus = "active"
	ClaimWeekExhausted ClaimWeekStatus = "exhausted"
)

// ClaimWeek is one week of a projected claim schedule. Each active week is
// recomputed independently from that week's reported earnings; no history
// carries between weeks except the consumed week count.
type ClaimWeek struct {
	Week     int             `json:"week"`
	Status   ClaimWeekStatus `json:"status"`
	Earnings decimal.Decimal `json:"earnings"`
	Benefit  decimal.Decimal `json:"benefit"`
}

// ClaimProjection is a full week-by-week claim schedule.
type ClaimProjection struct {
	Weeks        []ClaimWeek     `json:"weeks"`
	TotalPayable decimal.Decimal `json:"totalPayable"`
}
