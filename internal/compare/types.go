package compare

import (
	"github.com/shopspring/decimal"

	"github.com/wagekit/wagekit/internal/domain"
)

// PayComparisonRow is one state's outcome for a shared pay scenario.
type PayComparisonRow struct {
	Rank                int             `json:"rank"`
	StateCode           string          `json:"stateCode"`
	StateName           string          `json:"stateName"`
	IncomeTaxRate       decimal.Decimal `json:"incomeTaxRate"`
	YearlyGross         decimal.Decimal `json:"yearlyGross"`
	YearlyStateTax      decimal.Decimal `json:"yearlyStateTax"`
	YearlyNet           decimal.Decimal `json:"yearlyNet"`
	EffectiveTaxRate    decimal.Decimal `json:"effectiveTaxRate"`
	EffectiveHourlyRate decimal.Decimal `json:"effectiveHourlyRate"`
}

// PayComparisonSet ranks every jurisdiction by yearly net pay for one
// scenario.
type PayComparisonSet struct {
	Scenario domain.PayScenario `json:"scenario"`
	Rows     []PayComparisonRow `json:"rows"`
}

// BenefitComparisonRow is one state's outcome for a shared benefit
// scenario.
type BenefitComparisonRow struct {
	Rank          int             `json:"rank"`
	StateCode     string          `json:"stateCode"`
	WeeklyBenefit decimal.Decimal `json:"weeklyBenefit"`
	PartialBenefit decimal.Decimal `json:"partialBenefit"`
	MaxWeeks      int             `json:"maxWeeks"`
	TotalBenefits decimal.Decimal `json:"totalBenefits"`
}

// BenefitComparisonSet ranks every jurisdiction by weekly benefit for one
// scenario.
type BenefitComparisonSet struct {
	Scenario domain.BenefitScenario `json:"scenario"`
	Rows     []BenefitComparisonRow `json:"rows"`
}
