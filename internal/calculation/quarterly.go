package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wagekit/wagekit/internal/domain"
)

// QUARTERLY TAX ASSUMPTIONS:
//
// 1. Deduction savings use a blended approximate marginal rate
//    (state flat rate + BlendedMarginalRate), not exact bracket math.
// 2. The deadline list is circular across tax years: once the September
//    payment has passed, the lookup wraps to the January entry of the
//    following year. The "all deadlines passed" case is expected behavior,
//    not an error path.

// QuarterlyTaxCalculator estimates quarterly self-employment tax
// obligations from combined W-2/1099 income and selected deductions.
type QuarterlyTaxCalculator struct {
	Federal   *FederalTaxCalculator
	Catalog   []domain.DeductionCatalogEntry
	Deadlines []domain.QuarterlyDeadline

	// Now is injectable for deadline tests.
	Now func() time.Time
}

// NewQuarterlyTaxCalculator creates a quarterly tax calculator over the
// given deduction catalog and deadline list.
func NewQuarterlyTaxCalculator(federal *FederalTaxCalculator, catalog []domain.DeductionCatalogEntry, deadlines []domain.QuarterlyDeadline) *QuarterlyTaxCalculator {
	return &QuarterlyTaxCalculator{
		Federal:   federal,
		Catalog:   catalog,
		Deadlines: deadlines,
		Now:       time.Now,
	}
}

// ComputeQuarterlyTax produces the full quarterly estimate for the
// scenario. Unknown deduction ids are skipped; input validation happens at
// the boundary, not here.
func (qtc *QuarterlyTaxCalculator) ComputeQuarterlyTax(scenario domain.TaxScenario, jurisdiction domain.JurisdictionTaxProfile) domain.TaxResult {
	scenario = scenario.Sanitize()

	totalDeductions := qtc.totalDeductions(scenario)

	seTaxable := scenario.SelfEmployment.Sub(totalDeductions)
	if seTaxable.LessThan(decimal.Zero) {
		seTaxable = decimal.Zero
	}
	seTax := seTaxable.Mul(SelfEmploymentTaxRate)
	seDeduction := seTax.Div(two)

	w2Income := decimal.Zero
	ficaTax := decimal.Zero
	if scenario.CombinedIncome {
		w2Income = scenario.W2Income
		ficaTax = w2Income.Mul(FICAEmployeeRate)
	}

	federalTaxable := w2Income.Add(seTaxable).Sub(seDeduction)
	if federalTaxable.LessThan(decimal.Zero) {
		federalTaxable = decimal.Zero
	}
	federalTax := qtc.Federal.Calculate(federalTaxable)

	totalIncome := w2Income.Add(scenario.SelfEmployment)
	stateTax := decimal.Zero
	if !jurisdiction.HasNoIncomeTax {
		stateTax = totalIncome.Mul(jurisdiction.IncomeTaxRate)
	}

	totalTax := seTax.Add(ficaTax).Add(federalTax).Add(stateTax)

	savingsRate := jurisdiction.IncomeTaxRate.Add(BlendedMarginalRate)

	return domain.TaxResult{
		TotalIncome:       totalIncome,
		TotalDeductions:   totalDeductions,
		TaxableIncome:     federalTaxable,
		SelfEmploymentTax: seTax,
		FICATax:           ficaTax,
		FederalTax:        federalTax,
		StateTax:          stateTax,
		TotalTax:          totalTax,
		QuarterlyPayment:  totalTax.Div(decimal.NewFromInt(4)),
		MonthlySetAside:   totalTax.Div(MonthsPerYear),
		DeductionSavings:  totalDeductions.Mul(savingsRate),
		NextDeadline:      qtc.NextDeadline(qtc.Now()),
	}
}

// totalDeductions resolves the selected catalog ids to annual dollar
// amounts: mileage entries multiply the scenario's annual miles by the
// standard per-mile rate, annual entries take the override or catalog
// default, monthly entries take (override or default) x 12.
func (qtc *QuarterlyTaxCalculator) totalDeductions(scenario domain.TaxScenario) decimal.Decimal {
	total := decimal.Zero
	for _, sel := range scenario.Deductions {
		entry, ok := qtc.catalogEntry(sel.ID)
		if !ok {
			continue
		}
		switch entry.CalculationType {
		case domain.DeductionMileage:
			total = total.Add(scenario.AnnualMiles.Mul(MileageRatePerMile))
		case domain.DeductionAnnual:
			total = total.Add(selectedAmount(sel, entry))
		case domain.DeductionMonthly:
			total = total.Add(selectedAmount(sel, entry).Mul(MonthsPerYear))
		}
	}
	return total
}

func (qtc *QuarterlyTaxCalculator) catalogEntry(id string) (domain.DeductionCatalogEntry, bool) {
	for _, e := range qtc.Catalog {
		if e.ID == id {
			return e, true
		}
	}
	return domain.DeductionCatalogEntry{}, false
}

func selectedAmount(sel domain.DeductionSelection, entry domain.DeductionCatalogEntry) decimal.Decimal {
	if sel.Override != nil {
		return *sel.Override
	}
	return entry.DefaultValue
}

// NextDeadline selects the next not-yet-passed estimated payment date. A
// deadline counts as passed only after its day has ended. When every entry
// in the current year has passed, the lookup wraps to the first entry of
// the following year.
func (qtc *QuarterlyTaxCalculator) NextDeadline(now time.Time) domain.NextDeadline {
	if len(qtc.Deadlines) == 0 {
		return domain.NextDeadline{}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for _, d := range qtc.Deadlines {
		due := time.Date(now.Year(), time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
		if !due.Before(today) {
			return domain.NextDeadline{Label: d.Label, Date: due}
		}
	}

	first := qtc.Deadlines[0]
	return domain.NextDeadline{
		Label: first.Label,
		Date:  time.Date(now.Year()+1, time.Month(first.Month), first.Day, 0, 0, 0, 0, time.UTC),
	}
}
