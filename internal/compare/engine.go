// Package compare runs one scenario against every known jurisdiction and
// ranks the outcomes. The engines are pure functions over the immutable
// reference dataset, so the per-state computations fan out concurrently
// with no coordination beyond a WaitGroup.
package compare

import (
	"sort"
	"sync"

	"github.com/wagekit/wagekit/internal/calculation"
	"github.com/wagekit/wagekit/internal/domain"
	"github.com/wagekit/wagekit/internal/reference"
)

// Engine orchestrates all-state comparisons.
type Engine struct {
	Pay     *calculation.PayCalculator
	Benefit *calculation.BenefitCalculator
	Store   *reference.Store
}

// NewEngine creates a comparison engine over the given reference store.
func NewEngine(store *reference.Store) *Engine {
	return &Engine{
		Pay:     calculation.NewPayCalculator(calculation.NewFederalTaxCalculator(), store.ShiftDifferentials()),
		Benefit: calculation.NewBenefitCalculator(),
		Store:   store,
	}
}

// ComparePay computes the scenario's take-home pay in every jurisdiction
// and ranks states by yearly net, highest first. The scenario's own state
// code is ignored; each row substitutes its jurisdiction.
func (e *Engine) ComparePay(scenario domain.PayScenario) *PayComparisonSet {
	codes := e.Store.Codes()
	rows := make([]PayComparisonRow, len(codes))

	var wg sync.WaitGroup
	for i, code := range codes {
		wg.Add(1)
		go func(i int, code string) {
			defer wg.Done()
			jurisdiction, err := e.Store.Jurisdiction(code)
			if err != nil {
				return // codes came from the store; cannot happen
			}
			result := e.Pay.ComputePay(scenario, jurisdiction)
			rows[i] = PayComparisonRow{
				StateCode:           code,
				StateName:           jurisdiction.Name,
				IncomeTaxRate:       jurisdiction.IncomeTaxRate,
				YearlyGross:         result.YearlyGross,
				YearlyStateTax:      result.YearlyStateTax,
				YearlyNet:           result.YearlyNet,
				EffectiveTaxRate:    result.EffectiveTaxRate,
				EffectiveHourlyRate: result.EffectiveHourlyRate,
			}
		}(i, code)
	}
	wg.Wait()

	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].YearlyNet.GreaterThan(rows[b].YearlyNet)
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}

	return &PayComparisonSet{Scenario: scenario.Sanitize(), Rows: rows}
}

// CompareBenefit computes the scenario's unemployment benefit in every
// jurisdiction and ranks states by weekly benefit, highest first.
func (e *Engine) CompareBenefit(scenario domain.BenefitScenario) *BenefitComparisonSet {
	codes := e.Store.Codes()
	rows := make([]BenefitComparisonRow, len(codes))

	var wg sync.WaitGroup
	for i, code := range codes {
		wg.Add(1)
		go func(i int, code string) {
			defer wg.Done()
			profile, err := e.Store.Unemployment(code)
			if err != nil {
				return
			}
			result := e.Benefit.ComputeBenefit(scenario, profile)
			rows[i] = BenefitComparisonRow{
				StateCode:      code,
				WeeklyBenefit:  result.WeeklyBenefit,
				PartialBenefit: result.PartialBenefit,
				MaxWeeks:       result.MaxWeeks,
				TotalBenefits:  result.TotalBenefits,
			}
		}(i, code)
	}
	wg.Wait()

	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].WeeklyBenefit.GreaterThan(rows[b].WeeklyBenefit)
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}

	return &BenefitComparisonSet{Scenario: scenario.Sanitize(), Rows: rows}
}
