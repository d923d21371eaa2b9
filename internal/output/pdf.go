package output

import (
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/wagekit/wagekit/internal/domain"
)

// GeneratePayPDF writes a one-page printable pay estimate to w.
func GeneratePayPDF(scenario domain.PayScenario, jurisdiction domain.JurisdictionTaxProfile, result domain.PayResult, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	marginL, marginT, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	// Header bar
	pdf.SetFillColor(30, 30, 30)
	pdf.Rect(marginL, marginT, contentW, 10, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginL+2, marginT+1.5)
	pdf.CellFormat(contentW-4, 7, "TAKE-HOME PAY ESTIMATE", "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	y := marginT + 14

	// Scenario section
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(marginL, y)
	pdf.CellFormat(contentW, 5.5, "SCENARIO", "LRT", 1, "L", true, 0, "")
	y += 5.5

	pdf.SetFont("Helvetica", "", 9)
	colHalf := contentW / 2
	pdf.SetXY(marginL, y)
	pdf.CellFormat(colHalf, 6, "State: "+jurisdiction.Name+" ("+jurisdiction.Code+")", "L", 0, "L", false, 0, "")
	pdf.CellFormat(colHalf, 6, "Type: "+employmentLabel(scenario.EmploymentType), "R", 1, "L", false, 0, "")
	y += 6
	pdf.SetXY(marginL, y)
	rateLine := "$" + scenario.HourlyRate.StringFixed(2) + "/hour, " + scenario.HoursPerWeek.StringFixed(1) + " hours/week"
	if scenario.TipsPerHour.GreaterThan(decimal.Zero) {
		rateLine += ", tips $" + scenario.TipsPerHour.StringFixed(2) + "/hour"
	}
	pdf.CellFormat(contentW, 6, rateLine, "LB", 1, "L", false, 0, "")
	y += 10

	// Breakdown table
	labelW := contentW * 0.6
	amtW := contentW - labelW

	drawTableHeader := func(title string) {
		pdf.SetFillColor(30, 30, 30)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 8.5)
		pdf.SetXY(marginL, y)
		pdf.CellFormat(labelW, 7, title, "1", 0, "L", true, 0, "")
		pdf.CellFormat(amtW, 7, "Amount", "1", 1, "R", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		y += 7
	}

	type line struct {
		label string
		value decimal.Decimal
		bold  bool
	}

	drawRows := func(rows []line) {
		rowH := 6.5
		for i, r := range rows {
			if i%2 == 0 {
				pdf.SetFillColor(250, 250, 250)
			} else {
				pdf.SetFillColor(255, 255, 255)
			}
			if r.bold {
				pdf.SetFont("Helvetica", "B", 8.5)
			} else {
				pdf.SetFont("Helvetica", "", 8.5)
			}
			pdf.SetXY(marginL, y)
			pdf.CellFormat(labelW, rowH, r.label, "1", 0, "L", true, 0, "")
			pdf.CellFormat(amtW, rowH, "$"+r.value.StringFixed(2), "1", 1, "R", true, 0, "")
			y += rowH
		}
	}

	drawTableHeader("Gross Pay")
	drawRows([]line{
		{"Weekly", result.WeeklyGross, false},
		{"Monthly", result.MonthlyGross, false},
		{"Yearly", result.YearlyGross, true},
	})
	y += 4

	drawTableHeader("Yearly Taxes")
	drawRows([]line{
		{payrollTaxLabel(scenario.EmploymentType), result.YearlyPayrollTax, false},
		{"Federal income tax", result.YearlyFederalTax, false},
		{"State income tax", result.YearlyStateTax, false},
	})
	y += 4

	drawTableHeader("Net Pay")
	drawRows([]line{
		{"Weekly", result.WeeklyNet, false},
		{"Monthly", result.MonthlyNet, false},
		{"Yearly", result.YearlyNet, true},
	})
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(marginL, y)
	pdf.CellFormat(contentW, 6,
		"Effective tax rate: "+result.EffectiveTaxRate.Mul(hundred).StringFixed(1)+
			"%    Effective hourly rate: $"+result.EffectiveHourlyRate.StringFixed(2),
		"", 1, "L", false, 0, "")
	y += 6
	pdf.SetXY(marginL, y)
	pdf.CellFormat(contentW, 6,
		"As "+employmentLabel(result.Comparison.AlternateType)+" at the same gross: $"+
			result.Comparison.AlternateYearlyNet.StringFixed(2)+" yearly net",
		"", 1, "L", false, 0, "")

	// Footer
	pdf.SetFont("Helvetica", "I", 7.5)
	pdf.SetTextColor(130, 130, 130)
	pdf.SetXY(marginL, y+10)
	pdf.CellFormat(contentW, 5, "Estimates assume a single filer and flat state rates. Not tax advice.", "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	return pdf.Output(w)
}
