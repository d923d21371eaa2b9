package breakeven

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/wagekit/wagekit/internal/calculation"
	"github.com/wagekit/wagekit/internal/domain"
)

var two = decimal.NewFromInt(2)

// Solver runs binary searches over the deterministic engines. The
// engines are pure, so every probe is just a recomputation.
type Solver struct {
	Pay     *calculation.PayCalculator
	Benefit *calculation.BenefitCalculator
	Options SolverOptions
}

// NewSolver creates a solver with the given options.
func NewSolver(pay *calculation.PayCalculator, benefit *calculation.BenefitCalculator, options SolverOptions) *Solver {
	return &Solver{Pay: pay, Benefit: benefit, Options: options}
}

// NewDefaultSolver creates a solver with default options.
func NewDefaultSolver(pay *calculation.PayCalculator, benefit *calculation.BenefitCalculator) *Solver {
	return NewSolver(pay, benefit, DefaultSolverOptions())
}

// MatchingContractRate finds the 1099 hourly rate whose yearly net
// equals the given W-2 scenario's yearly net, holding hours, tips, and
// shift mix constant. Self-employment tax always exceeds the employee
// FICA share, so the answer is at or above the W-2 rate.
func (s *Solver) MatchingContractRate(ctx context.Context, scenario domain.PayScenario, jurisdiction domain.JurisdictionTaxProfile) (Result, error) {
	scenario = scenario.Sanitize()
	if scenario.HourlyRate.IsZero() || scenario.HoursPerWeek.IsZero() {
		return Result{}, &Error{Operation: "contract_rate", Message: "scenario has no paid hours"}
	}

	scenario.EmploymentType = domain.EmploymentW2
	target := s.Pay.ComputePay(scenario, jurisdiction).YearlyNet

	netAt := func(rate decimal.Decimal) decimal.Decimal {
		probe := scenario
		probe.HourlyRate = rate
		probe.EmploymentType = domain.Employment1099
		return s.Pay.ComputePay(probe, jurisdiction).YearlyNet
	}

	lo := scenario.HourlyRate
	hi := scenario.HourlyRate.Mul(two)
	for netAt(hi).LessThan(target) {
		hi = hi.Mul(two)
	}

	iterations := 0
	for iterations < s.Options.MaxIterations {
		iterations++
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		mid := lo.Add(hi).Div(two)
		net := netAt(mid)
		if net.Sub(target).Abs().LessThanOrEqual(s.Options.Tolerance) {
			return Result{Value: mid, Iterations: iterations, Converged: true}, nil
		}
		if net.LessThan(target) {
			lo = mid
		} else {
			hi = mid
		}
	}

	return Result{Value: lo.Add(hi).Div(two), Iterations: iterations, Converged: false}, nil
}

// BenefitCutoffEarnings finds the weekly earnings level at which the
// partial benefit reaches zero. States that never reduce benefits have
// no cutoff and return an error.
func (s *Solver) BenefitCutoffEarnings(ctx context.Context, scenario domain.BenefitScenario, profile domain.UnemploymentProfile) (Result, error) {
	scenario = scenario.Sanitize()
	if profile.BenefitReductionRate.LessThanOrEqual(decimal.Zero) {
		return Result{}, &Error{Operation: "benefit_cutoff", Message: "state never reduces benefits; no cutoff exists"}
	}

	partialAt := func(earnings decimal.Decimal) decimal.Decimal {
		probe := scenario
		probe.WeeklyEarnings = earnings
		return s.Benefit.ComputeBenefit(probe, profile).PartialBenefit
	}

	wba := s.Benefit.ComputeBenefit(scenario, profile).WeeklyBenefit
	if wba.IsZero() {
		return Result{Value: decimal.Zero, Iterations: 0, Converged: true}, nil
	}

	lo := decimal.Zero
	hi := wba
	for partialAt(hi).GreaterThan(decimal.Zero) {
		hi = hi.Mul(two)
	}

	iterations := 0
	for iterations < s.Options.MaxIterations {
		iterations++
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		if hi.Sub(lo).LessThanOrEqual(s.Options.Tolerance) {
			return Result{Value: hi, Iterations: iterations, Converged: true}, nil
		}
		mid := lo.Add(hi).Div(two)
		if partialAt(mid).GreaterThan(decimal.Zero) {
			lo = mid
		} else {
			hi = mid
		}
	}

	return Result{Value: hi, Iterations: iterations, Converged: false}, nil
}
