package reference

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagekit/wagekit/internal/domain"
)

func TestStore_CoversAllStates(t *testing.T) {
	store := NewStore()

	codes := store.Codes()
	assert.Len(t, codes, 51, "50 states plus DC")

	// Every tax profile code has exactly one unemployment profile too.
	for _, code := range codes {
		jurisdiction, err := store.Jurisdiction(code)
		require.NoError(t, err, code)
		assert.Equal(t, code, jurisdiction.Code)

		ui, err := store.Unemployment(code)
		require.NoError(t, err, code)
		assert.Equal(t, code, ui.Code)
	}
}

func TestStore_UnknownJurisdiction(t *testing.T) {
	store := NewStore()

	_, err := store.Jurisdiction("ZZ")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownJurisdiction)

	_, err = store.Unemployment("ZZ")
	assert.ErrorIs(t, err, ErrUnknownJurisdiction)
}

func TestStore_NoIncomeTaxConsistency(t *testing.T) {
	store := NewStore()

	for _, code := range store.Codes() {
		p, err := store.Jurisdiction(code)
		require.NoError(t, err)
		if p.HasNoIncomeTax {
			assert.True(t, p.IncomeTaxRate.IsZero(), "%s flagged no-income-tax but has a rate", code)
		} else {
			assert.True(t, p.IncomeTaxRate.GreaterThan(decimal.Zero), "%s has a zero rate without the flag", code)
		}
	}
}

func TestStore_UnemploymentProfilesWellFormed(t *testing.T) {
	store := NewStore()

	for _, code := range store.Codes() {
		p, err := store.Unemployment(code)
		require.NoError(t, err)

		assert.True(t, p.MaxWeeklyBenefit.GreaterThan(decimal.Zero), code)
		assert.Greater(t, p.MaxWeeks, 0, code)
		assert.True(t, p.WeeklyDivisor.GreaterThan(decimal.Zero), code)
		assert.True(t, p.BenefitReductionRate.GreaterThan(decimal.Zero), code)
		assert.True(t, p.BenefitReductionRate.LessThanOrEqual(decimal.NewFromInt(1)), code)

		switch p.DisregardType {
		case domain.DisregardFlat:
			assert.True(t, p.EarningsDisregard.GreaterThan(decimal.Zero), code)
		case domain.DisregardPercentage:
			assert.True(t, p.EarningsDisregardPercent.GreaterThan(decimal.Zero), code)
		case domain.DisregardGreaterOf:
			assert.True(t, p.EarningsDisregard.GreaterThan(decimal.Zero), code)
			assert.True(t, p.EarningsDisregardPercent.GreaterThan(decimal.Zero), code)
		default:
			t.Errorf("%s has unknown disregard type %q", code, p.DisregardType)
		}
	}
}

func TestStore_Catalogs(t *testing.T) {
	store := NewStore()

	catalog := store.DeductionCatalog()
	assert.NotEmpty(t, catalog)

	mileage, err := store.Deduction("mileage")
	require.NoError(t, err)
	assert.Equal(t, domain.DeductionMileage, mileage.CalculationType)

	_, err = store.Deduction("missing")
	assert.ErrorIs(t, err, ErrUnknownCatalogEntry)

	roles := store.Roles()
	assert.NotEmpty(t, roles)
	for _, r := range roles {
		assert.True(t, r.HourlyRate.GreaterThan(decimal.Zero), r.ID)
		assert.True(t, r.WeeklyHours.GreaterThan(decimal.Zero), r.ID)
		if r.Tipped {
			assert.True(t, r.AvgTipsPerHour.GreaterThan(decimal.Zero), r.ID)
		}
	}

	server, err := store.Role("server")
	require.NoError(t, err)
	assert.True(t, server.Tipped)
}

func TestStore_QuarterlyDeadlinesInCalendarOrder(t *testing.T) {
	store := NewStore()

	deadlines := store.QuarterlyDeadlines()
	require.Len(t, deadlines, 4)
	for i := 1; i < len(deadlines); i++ {
		prev := deadlines[i-1].Month*100 + deadlines[i-1].Day
		cur := deadlines[i].Month*100 + deadlines[i].Day
		assert.Greater(t, cur, prev, "deadlines must be in calendar order for the wrap-around lookup")
	}
}

func TestStore_OverrideReplacesEntry(t *testing.T) {
	store := NewStore()

	store.Override([]domain.JurisdictionTaxProfile{{
		Code:          "TX",
		Name:          "Texas",
		IncomeTaxRate: decimal.NewFromFloat(0.01),
	}}, nil)

	p, err := store.Jurisdiction("TX")
	require.NoError(t, err)
	assert.True(t, p.IncomeTaxRate.Equal(decimal.NewFromFloat(0.01)))
}
