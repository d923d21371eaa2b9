package calculation

import "github.com/shopspring/decimal"

// Payroll and scaling constants shared by the pay and quarterly engines.
var (
	// FICAEmployeeRate is the employee share of Social Security plus
	// Medicare (6.2% + 1.45%). The employer share is invisible to the
	// worker and excluded.
	FICAEmployeeRate = decimal.NewFromFloat(0.0765)

	// SelfEmploymentTaxRate is the combined 15.3% owed directly by 1099
	// workers. Half of the computed tax is deductible against federal
	// taxable income.
	SelfEmploymentTaxRate = decimal.NewFromFloat(0.153)

	// MileageRatePerMile is the standard IRS business mileage rate.
	MileageRatePerMile = decimal.NewFromFloat(0.67)

	// BlendedMarginalRate approximates the federal marginal rate when
	// estimating deduction savings. A blended flat rate, not an exact
	// bracket lookup; downstream numbers depend on this exact value.
	BlendedMarginalRate = decimal.NewFromFloat(0.15)

	// WeeksPerMonth scales weekly figures to monthly (52/12).
	WeeksPerMonth = decimal.NewFromFloat(4.33)

	// WeeksPerYear scales weekly figures to yearly.
	WeeksPerYear = decimal.NewFromInt(52)

	// MonthsPerYear divides yearly figures into monthly ones.
	MonthsPerYear = decimal.NewFromInt(12)

	two = decimal.NewFromInt(2)
)
