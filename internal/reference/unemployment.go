package reference

import (
	"github.com/shopspring/decimal"

	"github.com/wagekit/wagekit/internal/domain"
)

// uiRow is a compact row form for the unemployment table below. Zero
// values mean "state has no such provision" (no dependent allowance, no
// flat disregard) except reduction, which defaults to dollar-for-dollar.
type uiRow struct {
	code      string
	maxWeekly int64
	maxWeeks  int
	waiting   bool
	method    domain.BenefitCalculationMethod
	divisor   int64
	depAllow  float64
	maxDeps   int
	disType   domain.EarningsDisregardType
	disFlat   float64
	disPct    float64
	reduction float64
}

func (r uiRow) profile() domain.UnemploymentProfile {
	reduction := r.reduction
	if reduction == 0 {
		reduction = 1.0
	}
	return domain.UnemploymentProfile{
		Code:                     r.code,
		MaxWeeklyBenefit:         decimal.NewFromInt(r.maxWeekly),
		MaxWeeks:                 r.maxWeeks,
		WaitingWeek:              r.waiting,
		CalculationMethod:        r.method,
		WeeklyDivisor:            decimal.NewFromInt(r.divisor),
		DependentAllowance:       decimal.NewFromFloat(r.depAllow),
		MaxDependents:            r.maxDeps,
		DisregardType:            r.disType,
		EarningsDisregard:        decimal.NewFromFloat(r.disFlat),
		EarningsDisregardPercent: decimal.NewFromFloat(r.disPct),
		BenefitReductionRate:     decimal.NewFromFloat(reduction),
	}
}

// The table mixes the three disregard policies and both base-period
// methods the way real state rules do: most states divide the single
// highest quarter by 26, a handful average the two highest quarters over
// 52, and a few reduce benefits at only fifty cents per earned dollar.
func defaultUnemploymentProfiles() map[string]domain.UnemploymentProfile {
	const (
		single = domain.SingleHighestQuarter
		two    = domain.TwoHighestQuarters
	)
	const (
		flat = domain.DisregardFlat
		pct  = domain.DisregardPercentage
		gtr  = domain.DisregardGreaterOf
	)

	rows := []uiRow{
		{code: "AL", maxWeekly: 275, maxWeeks: 14, waiting: false, method: single, divisor: 26, disType: flat, disFlat: 15},
		{code: "AK", maxWeekly: 370, maxWeeks: 26, waiting: true, method: single, divisor: 26, depAllow: 24, maxDeps: 3, disType: flat, disFlat: 50, reduction: 0.75},
		{code: "AZ", maxWeekly: 320, maxWeeks: 24, waiting: true, method: single, divisor: 25, disType: flat, disFlat: 160},
		{code: "AR", maxWeekly: 451, maxWeeks: 16, waiting: true, method: single, divisor: 26, disType: pct, disPct: 0.40},
		{code: "CA", maxWeekly: 450, maxWeeks: 26, waiting: true, method: single, divisor: 26, disType: pct, disPct: 0.25, reduction: 0.75},
		{code: "CO", maxWeekly: 742, maxWeeks: 26, waiting: true, method: single, divisor: 26, disType: pct, disPct: 0.50},
		{code: "CT", maxWeekly: 721, maxWeeks: 26, waiting: false, method: two, divisor: 52, depAllow: 15, maxDeps: 5, disType: pct, disPct: 0.3333},
		{code: "DE", maxWeekly: 450, maxWeeks: 26, waiting: false, method: single, divisor: 46, disType: gtr, disFlat: 10, disPct: 0.50},
		{code: "DC", maxWeekly: 444, maxWeeks: 26, waiting: true, method: single, divisor: 26, disType: pct, disPct: 0.20, reduction: 0.66},
		{code: "FL", maxWeekly: 275, maxWeeks: 12, waiting: true, method: single, divisor: 26, disType: flat, disFlat: 58},
		{code: "GA", maxWeekly: 365, maxWeeks: 14, waiting: false, method: two, divisor: 42, disType: flat, disFlat: 150},
		{code: "HI", maxWeekly: 763, maxWeeks: 26, waiting: true, method: single, divisor: 21, disType: flat, disFlat: 150},
		{code: "ID", maxWeekly: 532, maxWeeks: 20, waiting: true, method: single, divisor: 26, disType: pct, disPct: 0.50},
		{code: "IL", maxWeekly: 578, maxWeeks: 26, waiting: true, method: two, divisor: 52, depAllow: 26, maxDeps: 2, disType: pct, disPct: 0.50},
		{code: "IN", maxWeekly: 390, maxWeeks: 26, waiting: true, method: single, divisor: 26, disType: pct, disPct: 0.20},
		{code: "IA", maxWeekly: 602, maxWeeks: 16, waiting: false, method: single, divisor: 23, depAllow: 15, maxDeps: 4, disType: pct, disPct: 0.25},
		{code: "KS", maxWeekly: 560, maxWeeks: 16, waiting: true, method: single, divisor: 26, disType: pct, disPct: 0.25},
		{code: "KY", maxWeekly: 626, maxWeeks: 12, waiting: false, method: single, divisor: 26, disType: flat, disFlat: 50, reduction: 0.80},
		{code: "LA", maxWeekly: 275, maxWeeks: 26, waiting: true, method: single, divisor: 25, disType: gtr, disFlat: 50, disPct: 0.50},
		{code: "ME", maxWeekly: 538, maxWeeks: 26, waiting: true, method: two, divisor: 44, depAllow: 10, maxDeps: 5, disType: flat, disFlat: 100},
		{code: "MD", maxWeekly: 430, maxWeeks: 26, waiting: false, method: single, divisor: 24, depAllow: 8, maxDeps: 5, disType: flat, disFlat: 50},
		{code: "MA", maxWeekly: 1033, maxWeeks: 26, waiting: true, method: two, divisor: 52, depAllow: 25, maxDeps: 4, disType: pct, disPct: 0.3333},
		{code: "MI", maxWeekly: 362, maxWeeks: 20, waiting: false, method: single, divisor: 24, depAllow: 6, maxDeps: 5, disType: pct, disPct: 0.50, reduction: 0.50},
		{code: "MN", maxWeekly: 857, maxWeeks: 26, waiting: true, method: single, divisor: 26, disType: pct, disPct: 0.50, reduction: 0.50},
		{code: "MS", maxWeekly: 235, maxWeeks: 26, waiting: true, method: single, divisor: 26, disType: flat, disFlat: 40},
		{code: "MO", maxWeekly: 320, maxWeeks: 20, waiting: true, method: single, divisor: 25, disType: gtr, disFlat: 20, disPct: 0.20},
		{code: "MT", maxWeekly: 552, maxWeeks: 28, waiting: true, method: two, divisor: 52, disType: pct, disPct: 0.25, reduction: 0.50},
		{code: "NE", maxWeekly: 514, maxWeeks: 26, waiting: true, method: single, divisor: 26, disType: pct, disPct: 0.25},
		{code: "NV", maxWeekly: 483, maxWeeks: 26, waiting: false, method: single, divisor: 26, disType: pct, disPct: 0.25, reduction: 0.75},
		{code: "NH", maxWeekly: 427, maxWeeks: 26, waiting: true, method: single, divisor: 26, disType: pct, disPct: 0.30},
		{code: "NJ", maxWeekly: 854, maxWeeks: 26, waiting: true, method: single, divisor: 26, depAllow: 0, maxDeps: 0, disType: pct, disPct: 0.20},
		{code: "NM", maxWeekly: 511, maxWeeks: 26, waiting: true, method: single, divisor: 26, depAllow: 25, maxDeps: 4, disType: pct, disPct: 0.20},
		{code: "NY", maxWeekly: 504, maxWeeks: 26, waiting: true, method: single, divisor: 26, disType: flat, disFlat: 100, reduction: 0.75},
		{code: "NC", maxWeekly: 350, maxWeeks: 12, waiting: true, method: two, divisor: 52, disType: pct, disPct: 0.20},
		{code: "ND", maxWeekly: 633, maxWeeks: 26, waiting: true, method: single, divisor: 26, disType: pct, disPct: 0.60},
		{code: "OH", maxWeekly: 583, maxWeeks: 26, waiting: true, method: single, divisor: 26, depAllow: 30, maxDeps: 3, disType: pct, disPct: 0.20},
		{code: "OK", maxWeekly: 539, maxWeeks: 26, waiting: true, method: single, divisor: 23, disType: flat, disFlat: 100},
		{code: "OR", maxWeekly: 783, maxWeeks: 26, waiting: true, method: single, divisor: 26, disType: gtr, disFlat: 150, disPct: 0.3333},
		{code: "PA", maxWeekly: 605, maxWeeks: 26, waiting: true, method: single, divisor: 25, depAllow: 5, maxDeps: 2, disType: pct, disPct: 0.30},
		{code: "RI", maxWeekly: 661, maxWeeks: 26, waiting: true, method: two, divisor: 52, depAllow: 15, maxDeps: 5, disType: pct, disPct: 0.20},
		{code: "SC", maxWeekly: 326, maxWeeks: 20, waiting: true, method: single, divisor: 26, disType: pct, disPct: 0.25},
		{code: "SD", maxWeekly: 466, maxWeeks: 26, waiting: true, method: single, divisor: 26, disType: flat, disFlat: 25, reduction: 0.50},
		{code: "TN", maxWeekly: 275, maxWeeks: 26, waiting: true, method: single, divisor: 26, disType: flat, disFlat: 50},
		{code: "TX", maxWeekly: 577, maxWeeks: 26, waiting: true, method: single, divisor: 25, disType: gtr, disFlat: 5, disPct: 0.25},
		{code: "UT", maxWeekly: 712, maxWeeks: 26, waiting: true, method: single, divisor: 26, disType: pct, disPct: 0.30},
		{code: "VT", maxWeekly: 705, maxWeeks: 26, waiting: false, method: two, divisor: 45, disType: flat, disFlat: 150, reduction: 0.50},
		{code: "VA", maxWeekly: 378, maxWeeks: 26, waiting: true, method: two, divisor: 50, disType: flat, disFlat: 50},
		{code: "WA", maxWeekly: 999, maxWeeks: 26, waiting: true, method: two, divisor: 52, disType: flat, disFlat: 5, reduction: 0.75},
		{code: "WV", maxWeekly: 662, maxWeeks: 26, waiting: true, method: single, divisor: 26, disType: flat, disFlat: 60},
		{code: "WI", maxWeekly: 370, maxWeeks: 26, waiting: true, method: single, divisor: 25, disType: flat, disFlat: 30, reduction: 0.67},
		{code: "WY", maxWeekly: 595, maxWeeks: 26, waiting: false, method: single, divisor: 25, disType: pct, disPct: 0.50},
	}

	m := make(map[string]domain.UnemploymentProfile, len(rows))
	for _, r := range rows {
		m[r.code] = r.profile()
	}
	return m
}
