package domain

import (
	"github.com/shopspring/decimal"
)

// OvertimeRule identifies how a state triggers overtime pay.
type OvertimeRule string

const (
	OvertimeWeekly OvertimeRule = "weekly" // over 40 hours in a workweek
	OvertimeDaily  OvertimeRule = "daily"  // over 8 hours in a workday (CA-style)
)

// JurisdictionTaxProfile holds the per-state tax and wage parameters used by
// the pay and quarterly tax engines. Profiles are loaded once at startup and
// treated as read-only for the process lifetime; every engine receives one by
// value and never mutates it.
type JurisdictionTaxProfile struct {
	Code                  string          `yaml:"code" json:"code"`
	Name                  string          `yaml:"name" json:"name"`
	IncomeTaxRate         decimal.Decimal `yaml:"income_tax_rate" json:"incomeTaxRate"`
	HasNoIncomeTax        bool            `yaml:"has_no_income_tax" json:"hasNoIncomeTax"`
	MinimumWage           decimal.Decimal `yaml:"minimum_wage" json:"minimumWage"`
	OvertimeRule          OvertimeRule    `yaml:"overtime_rule" json:"overtimeRule"`
	UnemploymentMaxWeekly decimal.Decimal `yaml:"unemployment_max_weekly" json:"unemploymentMaxWeekly"`
}

// BenefitCalculationMethod selects which base-period quarters size the
// weekly benefit amount.
type BenefitCalculationMethod string

const (
	SingleHighestQuarter BenefitCalculationMethod = "single-highest-quarter"
	TwoHighestQuarters   BenefitCalculationMethod = "two-highest-quarters"
)

// EarningsDisregardType selects how a state computes the portion of
// part-time earnings that does not reduce the weekly benefit.
type EarningsDisregardType string

const (
	DisregardFlat       EarningsDisregardType = "flat"       // fixed dollar amount
	DisregardPercentage EarningsDisregardType = "percentage" // fraction of the WBA
	DisregardGreaterOf  EarningsDisregardType = "greater-of" // max of the two
)

// UnemploymentProfile holds a state's unemployment insurance formula.
//
// WeeklyDivisor is the state's own divisor applied to the base-period wage
// figure (e.g. 26 for half of a single highest quarter, 52 for two quarters
// averaged over a year). It is state data, not a universal constant.
type UnemploymentProfile struct {
	Code                     string                   `yaml:"code" json:"code"`
	MaxWeeklyBenefit         decimal.Decimal          `yaml:"max_weekly_benefit" json:"maxWeeklyBenefit"`
	MaxWeeks                 int                      `yaml:"max_weeks" json:"maxWeeks"`
	WaitingWeek              bool                     `yaml:"waiting_week" json:"waitingWeek"`
	CalculationMethod        BenefitCalculationMethod `yaml:"calculation_method" json:"calculationMethod"`
	WeeklyDivisor            decimal.Decimal          `yaml:"weekly_divisor" json:"weeklyDivisor"`
	DependentAllowance       decimal.Decimal          `yaml:"dependent_allowance" json:"dependentAllowance"`
	MaxDependents            int                      `yaml:"max_dependents" json:"maxDependents"`
	DisregardType            EarningsDisregardType    `yaml:"disregard_type" json:"disregardType"`
	EarningsDisregard        decimal.Decimal          `yaml:"earnings_disregard" json:"earningsDisregard"`
	EarningsDisregardPercent decimal.Decimal          `yaml:"earnings_disregard_percent" json:"earningsDisregardPercent"`
	BenefitReductionRate     decimal.Decimal          `yaml:"benefit_reduction_rate" json:"benefitReductionRate"`
}

// RoleCategory groups role templates for catalog listings.
type RoleCategory string

const (
	RoleIndustrial  RoleCategory = "industrial"
	RoleHospitality RoleCategory = "hospitality"
	RoleRetail      RoleCategory = "retail"
	RoleFacilities  RoleCategory = "facilities"
)

// RoleTemplate pre-populates a PayScenario with typical values for a job
// role. Templates are catalog data only; nothing is computed from them
// directly.
type RoleTemplate struct {
	ID             string          `yaml:"id" json:"id"`
	Name           string          `yaml:"name" json:"name"`
	Category       RoleCategory    `yaml:"category" json:"category"`
	HourlyRate     decimal.Decimal `yaml:"hourly_rate" json:"hourlyRate"`
	WeeklyHours    decimal.Decimal `yaml:"weekly_hours" json:"weeklyHours"`
	Tipped         bool            `yaml:"tipped" json:"tipped"`
	AvgTipsPerHour decimal.Decimal `yaml:"avg_tips_per_hour" json:"avgTipsPerHour"`
	NightShifts    bool            `yaml:"night_shifts" json:"nightShifts"`
	WeekendShifts  bool            `yaml:"weekend_shifts" json:"weekendShifts"`
}

// DeductionCalculationType is the tagged variant for how a catalog
// deduction turns into an annual dollar amount.
type DeductionCalculationType string

const (
	DeductionMileage DeductionCalculationType = "mileage" // miles x per-mile rate
	DeductionAnnual  DeductionCalculationType = "annual"  // flat annual amount
	DeductionMonthly DeductionCalculationType = "monthly" // flat monthly amount x 12
)

// DeductionCategory groups catalog deductions for display.
type DeductionCategory string

const (
	DeductionVehicle   DeductionCategory = "vehicle"
	DeductionEquipment DeductionCategory = "equipment"
	DeductionBusiness  DeductionCategory = "business"
	DeductionHome      DeductionCategory = "home"
)

// DeductionCatalogEntry is one selectable 1099 business deduction.
type DeductionCatalogEntry struct {
	ID              string                   `yaml:"id" json:"id"`
	Name            string                   `yaml:"name" json:"name"`
	Category        DeductionCategory        `yaml:"category" json:"category"`
	CalculationType DeductionCalculationType `yaml:"calculation_type" json:"calculationType"`
	DefaultValue    decimal.Decimal          `yaml:"default_value" json:"defaultValue"`
}

// ShiftDifferentialRule describes extra pay for less desirable hours.
// Night and weekend rules add PremiumPerHour on top of the base rate;
// the holiday rule applies Multiplier to the base rate instead.
type ShiftDifferentialRule struct {
	ID             string          `yaml:"id" json:"id"`
	Name           string          `yaml:"name" json:"name"`
	PremiumPerHour decimal.Decimal `yaml:"premium_per_hour" json:"premiumPerHour"`
	Multiplier     decimal.Decimal `yaml:"multiplier" json:"multiplier"`
}

// QuarterlyDeadline is one entry of the fixed estimated-tax due-date list.
// Month and Day are calendar positions within a year; the lookup treats the
// list as circular across tax years.
type QuarterlyDeadline struct {
	Label string `yaml:"label" json:"label"`
	Month int    `yaml:"month" json:"month"`
	Day   int    `yaml:"day" json:"day"`
}
