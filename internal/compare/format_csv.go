package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison sets as CSV.
type CSVFormatter struct{}

// FormatPay generates CSV output for a pay comparison set.
func (cf *CSVFormatter) FormatPay(set *PayComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{"Rank", "State", "Name", "Income Tax Rate", "Yearly Gross", "Yearly State Tax", "Yearly Net", "Effective Tax Rate", "Effective Hourly Rate"}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, row := range set.Rows {
		record := []string{
			itoa(row.Rank),
			row.StateCode,
			row.StateName,
			row.IncomeTaxRate.StringFixed(4),
			row.YearlyGross.StringFixed(2),
			row.YearlyStateTax.StringFixed(2),
			row.YearlyNet.StringFixed(2),
			row.EffectiveTaxRate.StringFixed(4),
			row.EffectiveHourlyRate.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// FormatBenefit generates CSV output for a benefit comparison set.
func (cf *CSVFormatter) FormatBenefit(set *BenefitComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{"Rank", "State", "Weekly Benefit", "Partial Benefit", "Max Weeks", "Total Benefits"}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, row := range set.Rows {
		record := []string{
			itoa(row.Rank),
			row.StateCode,
			row.WeeklyBenefit.StringFixed(2),
			row.PartialBenefit.StringFixed(2),
			itoa(row.MaxWeeks),
			row.TotalBenefits.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
