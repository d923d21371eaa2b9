package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TableFormatter renders comparison sets as fixed-width console tables.
type TableFormatter struct{}

// FormatPay renders a pay comparison set.
func (tf *TableFormatter) FormatPay(set *PayComparisonSet) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%-4s %-5s %-22s %10s %12s %12s %8s\n",
		"Rank", "State", "Name", "State Tax", "Yearly Net", "Net/Hour", "Tax %")
	sb.WriteString(strings.Repeat("-", 80))
	sb.WriteString("\n")

	for _, row := range set.Rows {
		fmt.Fprintf(&sb, "%-4d %-5s %-22s %10s %12s %12s %7s%%\n",
			row.Rank,
			row.StateCode,
			row.StateName,
			"$"+row.YearlyStateTax.StringFixed(0),
			"$"+row.YearlyNet.StringFixed(0),
			"$"+row.EffectiveHourlyRate.StringFixed(2),
			row.EffectiveTaxRate.Mul(hundred).StringFixed(1),
		)
	}

	return sb.String()
}

// FormatBenefit renders a benefit comparison set.
func (tf *TableFormatter) FormatBenefit(set *BenefitComparisonSet) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%-4s %-5s %14s %14s %6s %14s\n",
		"Rank", "State", "Weekly", "Partial", "Weeks", "Total")
	sb.WriteString(strings.Repeat("-", 64))
	sb.WriteString("\n")

	for _, row := range set.Rows {
		fmt.Fprintf(&sb, "%-4d %-5s %14s %14s %6d %14s\n",
			row.Rank,
			row.StateCode,
			"$"+row.WeeklyBenefit.StringFixed(2),
			"$"+row.PartialBenefit.StringFixed(2),
			row.MaxWeeks,
			"$"+row.TotalBenefits.StringFixed(2),
		)
	}

	return sb.String()
}
