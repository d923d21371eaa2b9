package reference

import (
	"github.com/shopspring/decimal"

	"github.com/wagekit/wagekit/internal/domain"
)

// DATASET ASSUMPTIONS:
//
// 1. Income tax rates are flat effective rates, not bracket schedules.
//    Graduated-rate states are represented by a single blended rate; this
//    matches the estimate-only contract of the engines.
// 2. Minimum wages are the state floor; local ordinances above the state
//    floor are not modeled.
// 3. Unemployment maximums are the standard weekly maximum without
//    temporary supplements.
//
// Figures are point-in-time snapshots and are expected to be refreshed via
// a dataset override file rather than a code change.

func jp(code, name string, rate, minWage float64, ot domain.OvertimeRule, uiMax int64) domain.JurisdictionTaxProfile {
	return domain.JurisdictionTaxProfile{
		Code:                  code,
		Name:                  name,
		IncomeTaxRate:         decimal.NewFromFloat(rate),
		HasNoIncomeTax:        rate == 0,
		MinimumWage:           decimal.NewFromFloat(minWage),
		OvertimeRule:          ot,
		UnemploymentMaxWeekly: decimal.NewFromInt(uiMax),
	}
}

func defaultJurisdictions() map[string]domain.JurisdictionTaxProfile {
	weekly := domain.OvertimeWeekly
	daily := domain.OvertimeDaily

	profiles := []domain.JurisdictionTaxProfile{
		jp("AL", "Alabama", 0.0500, 7.25, weekly, 275),
		jp("AK", "Alaska", 0, 11.73, daily, 370),
		jp("AZ", "Arizona", 0.0250, 14.35, weekly, 320),
		jp("AR", "Arkansas", 0.0440, 11.00, weekly, 451),
		jp("CA", "California", 0.0600, 16.00, daily, 450),
		jp("CO", "Colorado", 0.0440, 14.42, daily, 742),
		jp("CT", "Connecticut", 0.0500, 15.69, weekly, 721),
		jp("DE", "Delaware", 0.0500, 13.25, weekly, 450),
		jp("DC", "District of Columbia", 0.0600, 17.00, weekly, 444),
		jp("FL", "Florida", 0, 12.00, weekly, 275),
		jp("GA", "Georgia", 0.0549, 7.25, weekly, 365),
		jp("HI", "Hawaii", 0.0700, 14.00, weekly, 763),
		jp("ID", "Idaho", 0.0580, 7.25, weekly, 532),
		jp("IL", "Illinois", 0.0495, 14.00, weekly, 578),
		jp("IN", "Indiana", 0.0305, 7.25, weekly, 390),
		jp("IA", "Iowa", 0.0570, 7.25, weekly, 602),
		jp("KS", "Kansas", 0.0550, 7.25, weekly, 560),
		jp("KY", "Kentucky", 0.0400, 7.25, weekly, 626),
		jp("LA", "Louisiana", 0.0425, 7.25, weekly, 275),
		jp("ME", "Maine", 0.0600, 14.15, weekly, 538),
		jp("MD", "Maryland", 0.0475, 15.00, weekly, 430),
		jp("MA", "Massachusetts", 0.0500, 15.00, weekly, 1033),
		jp("MI", "Michigan", 0.0425, 10.33, weekly, 362),
		jp("MN", "Minnesota", 0.0600, 10.85, weekly, 857),
		jp("MS", "Mississippi", 0.0470, 7.25, weekly, 235),
		jp("MO", "Missouri", 0.0480, 12.30, weekly, 320),
		jp("MT", "Montana", 0.0590, 10.30, weekly, 552),
		jp("NE", "Nebraska", 0.0500, 12.00, weekly, 514),
		jp("NV", "Nevada", 0, 12.00, daily, 483),
		jp("NH", "New Hampshire", 0, 7.25, weekly, 427),
		jp("NJ", "New Jersey", 0.0550, 15.13, weekly, 854),
		jp("NM", "New Mexico", 0.0490, 12.00, weekly, 511),
		jp("NY", "New York", 0.0600, 15.00, weekly, 504),
		jp("NC", "North Carolina", 0.0450, 7.25, weekly, 350),
		jp("ND", "North Dakota", 0.0200, 7.25, weekly, 633),
		jp("OH", "Ohio", 0.0350, 10.45, weekly, 583),
		jp("OK", "Oklahoma", 0.0475, 7.25, weekly, 539),
		jp("OR", "Oregon", 0.0800, 14.20, weekly, 783),
		jp("PA", "Pennsylvania", 0.0307, 7.25, weekly, 605),
		jp("RI", "Rhode Island", 0.0500, 14.00, weekly, 661),
		jp("SC", "South Carolina", 0.0620, 7.25, weekly, 326),
		jp("SD", "South Dakota", 0, 11.20, weekly, 466),
		jp("TN", "Tennessee", 0, 7.25, weekly, 275),
		jp("TX", "Texas", 0, 7.25, weekly, 577),
		jp("UT", "Utah", 0.0465, 7.25, weekly, 712),
		jp("VT", "Vermont", 0.0600, 13.67, weekly, 705),
		jp("VA", "Virginia", 0.0500, 12.00, weekly, 378),
		jp("WA", "Washington", 0, 16.28, weekly, 999),
		jp("WV", "West Virginia", 0.0512, 8.75, weekly, 662),
		jp("WI", "Wisconsin", 0.0530, 7.25, weekly, 370),
		jp("WY", "Wyoming", 0, 7.25, weekly, 595),
	}

	m := make(map[string]domain.JurisdictionTaxProfile, len(profiles))
	for _, p := range profiles {
		m[p.Code] = p
	}
	return m
}
