package api

import (
	"github.com/wagekit/wagekit/internal/domain"
)

// Request bodies carry amounts as strings so clients can send "$1,200",
// "1200.50", or "" interchangeably. Parsing is forgiving: anything
// unparseable becomes zero rather than a 400, matching the calculators'
// treatment of missing input.

// PayRequest is the body for POST /api/pay.
type PayRequest struct {
	HourlyRate     string `json:"hourlyRate"`
	HoursPerWeek   string `json:"hoursPerWeek"`
	TipsPerHour    string `json:"tipsPerHour"`
	State          string `json:"state"`
	EmploymentType string `json:"employmentType"`
	NightHours     string `json:"nightHours"`
	WeekendHours   string `json:"weekendHours"`
	HolidayPay     bool   `json:"holidayPay"`

	// Role optionally names a role template whose pay fields seed the
	// scenario before the explicit fields above are considered.
	Role string `json:"role,omitempty"`
}

func (pr PayRequest) toScenario() domain.PayScenario {
	return domain.PayScenario{
		HourlyRate:     domain.ParseAmount(pr.HourlyRate),
		HoursPerWeek:   domain.ParseAmount(pr.HoursPerWeek),
		TipsPerHour:    domain.ParseAmount(pr.TipsPerHour),
		StateCode:      pr.State,
		EmploymentType: domain.EmploymentType(pr.EmploymentType),
		NightHours:     domain.ParseAmount(pr.NightHours),
		WeekendHours:   domain.ParseAmount(pr.WeekendHours),
		HolidayPay:     pr.HolidayPay,
	}.Sanitize()
}

// DeductionRequest selects one catalog deduction.
type DeductionRequest struct {
	ID       string `json:"id"`
	Override string `json:"override,omitempty"`
}

// TaxRequest is the body for POST /api/quarterly.
type TaxRequest struct {
	W2Income             string             `json:"w2Income"`
	SelfEmploymentIncome string             `json:"selfEmploymentIncome"`
	State                string             `json:"state"`
	CombinedIncome       bool               `json:"combinedIncome"`
	Deductions           []DeductionRequest `json:"deductions"`
	AnnualMiles          string             `json:"annualMiles"`
}

func (tr TaxRequest) toScenario() domain.TaxScenario {
	scenario := domain.TaxScenario{
		W2Income:       domain.ParseAmount(tr.W2Income),
		SelfEmployment: domain.ParseAmount(tr.SelfEmploymentIncome),
		StateCode:      tr.State,
		CombinedIncome: tr.CombinedIncome,
		AnnualMiles:    domain.ParseAmount(tr.AnnualMiles),
	}
	for _, d := range tr.Deductions {
		sel := domain.DeductionSelection{ID: d.ID}
		if d.Override != "" {
			amount := domain.ParseAmount(d.Override)
			sel.Override = &amount
		}
		scenario.Deductions = append(scenario.Deductions, sel)
	}
	return scenario.Sanitize()
}

// BenefitRequest is the body for POST /api/benefit.
type BenefitRequest struct {
	State              string `json:"state"`
	HighQuarterWages   string `json:"highQuarterWages"`
	SecondQuarterWages string `json:"secondQuarterWages"`
	Dependents         string `json:"dependents"`
	WeeklyEarnings     string `json:"weeklyEarnings"`
}

func (br BenefitRequest) toScenario() domain.BenefitScenario {
	return domain.BenefitScenario{
		StateCode:          br.State,
		HighQuarterWages:   domain.ParseAmount(br.HighQuarterWages),
		SecondQuarterWages: domain.ParseAmount(br.SecondQuarterWages),
		Dependents:         domain.ParseCount(br.Dependents),
		WeeklyEarnings:     domain.ParseAmount(br.WeeklyEarnings),
	}.Sanitize()
}

// ClaimRequest is the body for POST /api/benefit/claim. Schedule lists
// expected earnings per claim week, in order.
type ClaimRequest struct {
	BenefitRequest
	Schedule []string `json:"schedule"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
