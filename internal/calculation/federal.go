package calculation

import (
	"github.com/shopspring/decimal"
)

// FEDERAL TAX ASSUMPTIONS:
//
// 1. Single-filer brackets only; filing status and dependents are not
//    modeled. The engines produce estimates, not filings.
// 2. The bracket table is a fixed current-year snapshot with no inflation
//    indexing across years.
// 3. Standard deduction is not applied here; callers pass taxable income.

// TaxBracket represents one federal marginal bracket.
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// FederalTaxCalculator computes progressive federal income tax from a
// taxable-income amount. It is deterministic, has no jurisdiction
// dependency, and never errors: negative input is clamped to zero and any
// finite input yields a finite, non-negative tax.
type FederalTaxCalculator struct {
	Brackets []TaxBracket
}

// NewFederalTaxCalculator creates a calculator with the built-in
// single-filer bracket table.
func NewFederalTaxCalculator() *FederalTaxCalculator {
	return &FederalTaxCalculator{
		Brackets: []TaxBracket{
			{decimal.Zero, decimal.NewFromInt(11925), decimal.NewFromFloat(0.10)},
			{decimal.NewFromInt(11925), decimal.NewFromInt(48475), decimal.NewFromFloat(0.12)},
			{decimal.NewFromInt(48475), decimal.NewFromInt(103350), decimal.NewFromFloat(0.22)},
			{decimal.NewFromInt(103350), decimal.NewFromInt(197300), decimal.NewFromFloat(0.24)},
			{decimal.NewFromInt(197300), decimal.NewFromInt(250525), decimal.NewFromFloat(0.32)},
			{decimal.NewFromInt(250525), decimal.NewFromInt(626350), decimal.NewFromFloat(0.35)},
			{decimal.NewFromInt(626350), decimal.NewFromInt(999999999), decimal.NewFromFloat(0.37)},
		},
	}
}

// Calculate returns the federal income tax on taxableIncome, summing each
// fully consumed bracket's width times its rate plus the partial top
// bracket. Monotonic non-decreasing in its input; zero for input <= 0.
func (ftc *FederalTaxCalculator) Calculate(taxableIncome decimal.Decimal) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	var totalTax decimal.Decimal
	for _, bracket := range ftc.Brackets {
		if taxableIncome.LessThanOrEqual(bracket.Min) {
			break
		}
		incomeInBracket := decimal.Min(taxableIncome, bracket.Max).Sub(bracket.Min)
		if incomeInBracket.GreaterThan(decimal.Zero) {
			totalTax = totalTax.Add(incomeInBracket.Mul(bracket.Rate))
		}
	}

	return totalTax
}
