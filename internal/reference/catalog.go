package reference

import (
	"github.com/shopspring/decimal"

	"github.com/wagekit/wagekit/internal/domain"
)

// Shift differential ids used across the catalogs and the pay engine.
const (
	DifferentialNight   = "night"
	DifferentialWeekend = "weekend"
	DifferentialHoliday = "holiday"
)

func defaultShiftDifferentials() map[string]domain.ShiftDifferentialRule {
	return map[string]domain.ShiftDifferentialRule{
		DifferentialNight: {
			ID:             DifferentialNight,
			Name:           "Night shift",
			PremiumPerHour: decimal.NewFromFloat(1.50),
		},
		DifferentialWeekend: {
			ID:             DifferentialWeekend,
			Name:           "Weekend shift",
			PremiumPerHour: decimal.NewFromFloat(1.00),
		},
		DifferentialHoliday: {
			ID:         DifferentialHoliday,
			Name:       "Holiday shift",
			Multiplier: decimal.NewFromFloat(1.5),
		},
	}
}

func ded(id, name string, cat domain.DeductionCategory, calc domain.DeductionCalculationType, value float64) domain.DeductionCatalogEntry {
	return domain.DeductionCatalogEntry{
		ID:              id,
		Name:            name,
		Category:        cat,
		CalculationType: calc,
		DefaultValue:    decimal.NewFromFloat(value),
	}
}

func defaultDeductionCatalog() []domain.DeductionCatalogEntry {
	return []domain.DeductionCatalogEntry{
		// Mileage entries carry no default amount; the engine multiplies
		// the scenario's annual miles by the standard per-mile rate.
		ded("mileage", "Business mileage", domain.DeductionVehicle, domain.DeductionMileage, 0),
		ded("vehicle_maintenance", "Vehicle maintenance and repairs", domain.DeductionVehicle, domain.DeductionAnnual, 1200),
		ded("vehicle_insurance", "Commercial auto insurance", domain.DeductionVehicle, domain.DeductionMonthly, 120),
		ded("phone", "Phone and data plan", domain.DeductionEquipment, domain.DeductionMonthly, 75),
		ded("equipment", "Tools and equipment", domain.DeductionEquipment, domain.DeductionAnnual, 500),
		ded("safety_gear", "Safety gear and uniforms", domain.DeductionEquipment, domain.DeductionAnnual, 250),
		ded("software", "Software subscriptions", domain.DeductionBusiness, domain.DeductionMonthly, 30),
		ded("supplies", "Supplies and materials", domain.DeductionBusiness, domain.DeductionAnnual, 300),
		ded("liability_insurance", "Liability insurance", domain.DeductionBusiness, domain.DeductionMonthly, 45),
		ded("home_office", "Home office", domain.DeductionHome, domain.DeductionAnnual, 1500),
		ded("internet", "Internet service (business share)", domain.DeductionHome, domain.DeductionMonthly, 40),
	}
}

func role(id, name string, cat domain.RoleCategory, rate, hours, tips float64, night, weekend bool) domain.RoleTemplate {
	return domain.RoleTemplate{
		ID:             id,
		Name:           name,
		Category:       cat,
		HourlyRate:     decimal.NewFromFloat(rate),
		WeeklyHours:    decimal.NewFromFloat(hours),
		Tipped:         tips > 0,
		AvgTipsPerHour: decimal.NewFromFloat(tips),
		NightShifts:    night,
		WeekendShifts:  weekend,
	}
}

func defaultRoleTemplates() []domain.RoleTemplate {
	return []domain.RoleTemplate{
		role("warehouse_associate", "Warehouse associate", domain.RoleIndustrial, 18.00, 40, 0, true, false),
		role("forklift_operator", "Forklift operator", domain.RoleIndustrial, 21.50, 40, 0, true, false),
		role("delivery_driver", "Delivery driver", domain.RoleIndustrial, 19.00, 38, 0, false, true),
		role("server", "Restaurant server", domain.RoleHospitality, 7.25, 30, 12.00, false, true),
		role("bartender", "Bartender", domain.RoleHospitality, 10.00, 28, 15.00, true, true),
		role("line_cook", "Line cook", domain.RoleHospitality, 17.00, 40, 0, true, true),
		role("barista", "Barista", domain.RoleHospitality, 15.00, 28, 3.50, false, true),
		role("retail_associate", "Retail sales associate", domain.RoleRetail, 15.00, 32, 0, false, true),
		role("cashier", "Cashier", domain.RoleRetail, 13.50, 30, 0, false, true),
		role("janitor", "Janitor", domain.RoleFacilities, 16.00, 40, 0, true, false),
		role("security_guard", "Security guard", domain.RoleFacilities, 17.50, 40, 0, true, true),
	}
}

// defaultQuarterlyDeadlines lists the IRS estimated payment due dates in
// calendar order. The January entry is the prior year's fourth payment,
// which is what makes the wrap-around lookup land on it after the
// September date has passed.
func defaultQuarterlyDeadlines() []domain.QuarterlyDeadline {
	return []domain.QuarterlyDeadline{
		{Label: "Q4 (prior year)", Month: 1, Day: 15},
		{Label: "Q1", Month: 4, Day: 15},
		{Label: "Q2", Month: 6, Day: 15},
		{Label: "Q3", Month: 9, Day: 15},
	}
}
