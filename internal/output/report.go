// Package output renders estimate results for humans. The console
// reports mirror the breakdown order of the calculators so a reader can
// follow each line back to the input that produced it.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/wagekit/wagekit/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// ReportGenerator writes formatted reports. The zero value writes to
// stdout.
type ReportGenerator struct {
	Out io.Writer
}

// NewReportGenerator creates a report generator writing to stdout.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{Out: os.Stdout}
}

func (rg *ReportGenerator) out() io.Writer {
	if rg.Out != nil {
		return rg.Out
	}
	return os.Stdout
}

// PayReport writes a console breakdown of a take-home pay estimate.
func (rg *ReportGenerator) PayReport(scenario domain.PayScenario, jurisdiction domain.JurisdictionTaxProfile, result domain.PayResult) error {
	w := rg.out()

	rg.header(w, "TAKE-HOME PAY ESTIMATE")
	fmt.Fprintf(w, "State:            %s (%s)\n", jurisdiction.Name, jurisdiction.Code)
	fmt.Fprintf(w, "Employment type:  %s\n", employmentLabel(scenario.EmploymentType))
	fmt.Fprintf(w, "Hourly rate:      $%s for %s hours/week\n", scenario.HourlyRate.StringFixed(2), scenario.HoursPerWeek.StringFixed(1))
	if scenario.TipsPerHour.GreaterThan(decimal.Zero) {
		fmt.Fprintf(w, "Tips:             $%s/hour\n", scenario.TipsPerHour.StringFixed(2))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "GROSS PAY")
	rg.moneyLine(w, "Weekly", result.WeeklyGross)
	rg.moneyLine(w, "Monthly", result.MonthlyGross)
	rg.moneyLine(w, "Yearly", result.YearlyGross)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "YEARLY TAXES")
	rg.moneyLine(w, payrollTaxLabel(scenario.EmploymentType), result.YearlyPayrollTax)
	rg.moneyLine(w, "Federal income tax", result.YearlyFederalTax)
	if jurisdiction.HasNoIncomeTax {
		fmt.Fprintf(w, "  %-24s %14s\n", "State income tax", "none")
	} else {
		rg.moneyLine(w, "State income tax", result.YearlyStateTax)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "NET PAY")
	rg.moneyLine(w, "Weekly", result.WeeklyNet)
	rg.moneyLine(w, "Monthly", result.MonthlyNet)
	rg.moneyLine(w, "Yearly", result.YearlyNet)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Effective tax rate:     %s%%\n", result.EffectiveTaxRate.Mul(hundred).StringFixed(1))
	fmt.Fprintf(w, "Effective hourly rate:  $%s\n", result.EffectiveHourlyRate.StringFixed(2))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "As %s at the same gross, yearly net would be $%s (%s).\n",
		employmentLabel(result.Comparison.AlternateType),
		result.Comparison.AlternateYearlyNet.StringFixed(2),
		signedDelta(result.Comparison.YearlyNetDelta))

	return nil
}

// TaxReport writes a console breakdown of a quarterly tax estimate.
func (rg *ReportGenerator) TaxReport(scenario domain.TaxScenario, jurisdiction domain.JurisdictionTaxProfile, result domain.TaxResult) error {
	w := rg.out()

	rg.header(w, "QUARTERLY TAX ESTIMATE")
	fmt.Fprintf(w, "State:            %s (%s)\n", jurisdiction.Name, jurisdiction.Code)
	rg.moneyLine(w, "Total income", result.TotalIncome)
	rg.moneyLine(w, "Deductions", result.TotalDeductions)
	rg.moneyLine(w, "Taxable income", result.TaxableIncome)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "ANNUAL TAX")
	rg.moneyLine(w, "Self-employment tax", result.SelfEmploymentTax)
	if scenario.CombinedIncome {
		rg.moneyLine(w, "FICA on W-2 wages", result.FICATax)
	}
	rg.moneyLine(w, "Federal income tax", result.FederalTax)
	rg.moneyLine(w, "State income tax", result.StateTax)
	rg.moneyLine(w, "Total", result.TotalTax)
	fmt.Fprintln(w)

	rg.moneyLine(w, "Quarterly payment", result.QuarterlyPayment)
	rg.moneyLine(w, "Monthly set-aside", result.MonthlySetAside)
	if result.DeductionSavings.GreaterThan(decimal.Zero) {
		rg.moneyLine(w, "Est. deduction savings", result.DeductionSavings)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Next deadline: %s (%s)\n",
		result.NextDeadline.Date.Format("January 2, 2006"), result.NextDeadline.Label)

	return nil
}

// BenefitReport writes a console breakdown of an unemployment benefit
// estimate.
func (rg *ReportGenerator) BenefitReport(scenario domain.BenefitScenario, profile domain.UnemploymentProfile, result domain.BenefitResult) error {
	w := rg.out()

	rg.header(w, "UNEMPLOYMENT BENEFIT ESTIMATE")
	fmt.Fprintf(w, "State:            %s\n", profile.Code)
	rg.moneyLine(w, "Base amount", result.BaseAmount)
	if result.DependentBonus.GreaterThan(decimal.Zero) {
		rg.moneyLine(w, "Dependent bonus", result.DependentBonus)
	}
	rg.moneyLine(w, "Weekly benefit", result.WeeklyBenefit)
	fmt.Fprintln(w)

	if scenario.WeeklyEarnings.GreaterThan(decimal.Zero) {
		fmt.Fprintln(w, "PARTIAL BENEFIT")
		rg.moneyLine(w, "Weekly earnings", scenario.WeeklyEarnings)
		rg.moneyLine(w, "Earnings disregard", result.EarningsDisregard)
		rg.moneyLine(w, "Benefit reduction", result.Reduction)
		rg.moneyLine(w, "Partial benefit", result.PartialBenefit)
		rg.moneyLine(w, "Total weekly income", result.TotalWeeklyIncome)
		if result.WorthWorking {
			fmt.Fprintln(w, "Working these hours beats the full benefit alone.")
		} else {
			fmt.Fprintln(w, "Working these hours does not add to weekly income.")
		}
		fmt.Fprintln(w)
	}

	rg.moneyLine(w, "Monthly benefit", result.MonthlyBenefit)
	fmt.Fprintf(w, "  %-24s %14d\n", "Max weeks", result.MaxWeeks)
	if profile.WaitingWeek {
		fmt.Fprintln(w, "  One unpaid waiting week applies.")
	}
	rg.moneyLine(w, "Total benefits", result.TotalBenefits)

	return nil
}

// ClaimReport writes a week-by-week claim projection table.
func (rg *ReportGenerator) ClaimReport(projection domain.ClaimProjection) error {
	w := rg.out()

	rg.header(w, "CLAIM PROJECTION")
	fmt.Fprintf(w, "%-6s %-10s %12s %12s\n", "Week", "Status", "Earnings", "Benefit")
	fmt.Fprintln(w, strings.Repeat("-", 44))
	for _, week := range projection.Weeks {
		fmt.Fprintf(w, "%-6d %-10s %12s %12s\n",
			week.Week,
			string(week.Status),
			"$"+week.Earnings.StringFixed(2),
			"$"+week.Benefit.StringFixed(2))
	}
	fmt.Fprintln(w)
	rg.moneyLine(w, "Total payable", projection.TotalPayable)

	return nil
}

// PayCSV writes a pay result as metric,value rows for spreadsheet use.
func (rg *ReportGenerator) PayCSV(result domain.PayResult) error {
	writer := csv.NewWriter(rg.out())
	records := [][]string{
		{"metric", "value"},
		{"weekly_gross", result.WeeklyGross.StringFixed(2)},
		{"monthly_gross", result.MonthlyGross.StringFixed(2)},
		{"yearly_gross", result.YearlyGross.StringFixed(2)},
		{"yearly_payroll_tax", result.YearlyPayrollTax.StringFixed(2)},
		{"yearly_federal_tax", result.YearlyFederalTax.StringFixed(2)},
		{"yearly_state_tax", result.YearlyStateTax.StringFixed(2)},
		{"weekly_net", result.WeeklyNet.StringFixed(2)},
		{"monthly_net", result.MonthlyNet.StringFixed(2)},
		{"yearly_net", result.YearlyNet.StringFixed(2)},
		{"effective_tax_rate", result.EffectiveTaxRate.StringFixed(4)},
		{"effective_hourly_rate", result.EffectiveHourlyRate.StringFixed(2)},
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// JSONReport marshals any result to indented JSON.
func (rg *ReportGenerator) JSONReport(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	fmt.Fprintln(rg.out(), string(data))
	return nil
}

func (rg *ReportGenerator) header(w io.Writer, title string) {
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w)
}

func (rg *ReportGenerator) moneyLine(w io.Writer, label string, amount decimal.Decimal) {
	fmt.Fprintf(w, "  %-24s %14s\n", label, "$"+amount.StringFixed(2))
}

func employmentLabel(et domain.EmploymentType) string {
	if et == domain.Employment1099 {
		return "1099 contractor"
	}
	return "W-2 employee"
}

func payrollTaxLabel(et domain.EmploymentType) string {
	if et == domain.Employment1099 {
		return "Self-employment tax"
	}
	return "FICA (employee share)"
}

func signedDelta(d decimal.Decimal) string {
	if d.GreaterThanOrEqual(decimal.Zero) {
		return "+$" + d.StringFixed(2) + " with your current type"
	}
	return "-$" + d.Abs().StringFixed(2) + " with your current type"
}
