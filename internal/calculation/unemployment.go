package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/wagekit/wagekit/internal/domain"
)

// BenefitCalculator estimates weekly unemployment benefits, including the
// reduced partial benefit when the claimant reports concurrent part-time
// earnings.
type BenefitCalculator struct{}

// NewBenefitCalculator creates a benefit calculator.
func NewBenefitCalculator() *BenefitCalculator {
	return &BenefitCalculator{}
}

// ComputeBenefit produces the benefit estimate for the scenario under the
// state's formula. The maximum-benefit cap is applied after the dependent
// bonus, never before; the partial benefit never goes below zero.
func (bc *BenefitCalculator) ComputeBenefit(scenario domain.BenefitScenario, profile domain.UnemploymentProfile) domain.BenefitResult {
	scenario = scenario.Sanitize()

	base := bc.baseAmount(scenario, profile)

	dependents := scenario.Dependents
	if dependents > profile.MaxDependents {
		dependents = profile.MaxDependents
	}
	dependentBonus := profile.DependentAllowance.Mul(decimal.NewFromInt(int64(dependents)))

	wba := base.Add(dependentBonus)
	if wba.GreaterThan(profile.MaxWeeklyBenefit) {
		wba = profile.MaxWeeklyBenefit
	}

	result := domain.BenefitResult{
		WeeklyBenefit:  wba,
		BaseAmount:     base,
		DependentBonus: dependentBonus,
		PartialBenefit: wba,
		MaxWeeks:       profile.MaxWeeks,
	}

	if scenario.WeeklyEarnings.GreaterThan(decimal.Zero) {
		disregard := bc.disregard(wba, profile)
		excess := scenario.WeeklyEarnings.Sub(disregard)
		if excess.LessThan(decimal.Zero) {
			excess = decimal.Zero
		}
		reduction := profile.BenefitReductionRate.Mul(excess)
		partial := wba.Sub(reduction)
		if partial.LessThan(decimal.Zero) {
			partial = decimal.Zero
		}
		result.EarningsDisregard = disregard
		result.Reduction = reduction
		result.PartialBenefit = partial
	}

	result.TotalWeeklyIncome = result.PartialBenefit.Add(scenario.WeeklyEarnings)
	// Working is worth it when benefit plus earnings beats the full
	// benefit with no work at all.
	result.WorthWorking = result.TotalWeeklyIncome.GreaterThan(wba)
	result.MonthlyBenefit = result.PartialBenefit.Mul(WeeksPerMonth)

	// The waiting week is unpaid but still consumes claim accounting, so
	// it reduces the total payable amount rather than delaying it.
	weeks := decimal.NewFromInt(int64(profile.MaxWeeks))
	result.TotalBenefits = result.PartialBenefit.Mul(weeks)
	if profile.WaitingWeek {
		result.TotalBenefits = result.TotalBenefits.Sub(result.PartialBenefit)
	}
	if result.TotalBenefits.LessThan(decimal.Zero) {
		result.TotalBenefits = decimal.Zero
	}

	return result
}

// baseAmount applies the state's base-period formula: the highest quarter
// (or the two highest, summed) divided by the state's own divisor.
func (bc *BenefitCalculator) baseAmount(scenario domain.BenefitScenario, profile domain.UnemploymentProfile) decimal.Decimal {
	wages := scenario.HighQuarterWages
	if profile.CalculationMethod == domain.TwoHighestQuarters {
		wages = wages.Add(scenario.SecondQuarterWages)
	}
	if profile.WeeklyDivisor.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return wages.Div(profile.WeeklyDivisor)
}

// disregard resolves the state's earnings-disregard policy against the
// computed WBA.
func (bc *BenefitCalculator) disregard(wba decimal.Decimal, profile domain.UnemploymentProfile) decimal.Decimal {
	flat := profile.EarningsDisregard
	pct := profile.EarningsDisregardPercent.Mul(wba)
	switch profile.DisregardType {
	case domain.DisregardFlat:
		return flat
	case domain.DisregardPercentage:
		return pct
	case domain.DisregardGreaterOf:
		return decimal.Max(flat, pct)
	default:
		return decimal.Zero
	}
}

// ProjectClaim walks a claim week by week: an unpaid waiting week first
// where the state has one, then active weeks until the week budget is
// exhausted. Each active week's benefit is recomputed independently from
// that week's reported earnings; history does not carry between weeks
// except for consuming the week count. weeklyEarnings may be shorter than
// the claim; missing weeks are treated as zero earnings.
func (bc *BenefitCalculator) ProjectClaim(scenario domain.BenefitScenario, profile domain.UnemploymentProfile, weeklyEarnings []decimal.Decimal) domain.ClaimProjection {
	scenario = scenario.Sanitize()

	projection := domain.ClaimProjection{}
	remaining := profile.MaxWeeks
	week := 0

	if profile.WaitingWeek && remaining > 0 {
		week++
		remaining--
		projection.Weeks = append(projection.Weeks, domain.ClaimWeek{
			Week:   week,
			Status: domain.ClaimWeekWaiting,
		})
	}

	earningsAt := func(i int) decimal.Decimal {
		if i < len(weeklyEarnings) {
			return weeklyEarnings[i]
		}
		return decimal.Zero
	}

	for i := 0; remaining > 0; i++ {
		week++
		remaining--

		weekScenario := scenario
		weekScenario.WeeklyEarnings = earningsAt(i)
		weekResult := bc.ComputeBenefit(weekScenario, profile)

		projection.Weeks = append(projection.Weeks, domain.ClaimWeek{
			Week:     week,
			Status:   domain.ClaimWeekActive,
			Earnings: weekScenario.WeeklyEarnings,
			Benefit:  weekResult.PartialBenefit,
		})
		projection.TotalPayable = projection.TotalPayable.Add(weekResult.PartialBenefit)
	}

	projection.Weeks = append(projection.Weeks, domain.ClaimWeek{
		Week:   week + 1,
		Status: domain.ClaimWeekExhausted,
	})

	return projection
}
