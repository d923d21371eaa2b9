// Package reference holds the static jurisdiction dataset: per-state tax
// and unemployment parameters plus the role, deduction, and shift
// differential catalogs. The dataset is built once at startup and is
// read-only afterwards; engines receive values, never pointers into the
// store.
package reference

import (
	"errors"
	"fmt"
	"sort"

	"github.com/wagekit/wagekit/internal/domain"
)

// ErrUnknownJurisdiction is returned when a state code has no profile.
// The set of valid codes is closed and known at build time, so callers
// should treat this as a configuration error, not a recoverable one.
var ErrUnknownJurisdiction = errors.New("unknown jurisdiction")

// ErrUnknownCatalogEntry is returned for deduction or role ids that are
// not in the catalog.
var ErrUnknownCatalogEntry = errors.New("unknown catalog entry")

// Store is the immutable jurisdiction reference dataset.
type Store struct {
	jurisdictions map[string]domain.JurisdictionTaxProfile
	unemployment  map[string]domain.UnemploymentProfile
	deductions    []domain.DeductionCatalogEntry
	roles         []domain.RoleTemplate
	differentials map[string]domain.ShiftDifferentialRule
	deadlines     []domain.QuarterlyDeadline
}

// NewStore builds a store with the built-in dataset for all 50 states plus
// DC.
func NewStore() *Store {
	return &Store{
		jurisdictions: defaultJurisdictions(),
		unemployment:  defaultUnemploymentProfiles(),
		deductions:    defaultDeductionCatalog(),
		roles:         defaultRoleTemplates(),
		differentials: defaultShiftDifferentials(),
		deadlines:     defaultQuarterlyDeadlines(),
	}
}

// Jurisdiction returns the tax profile for a 2-letter state code.
func (s *Store) Jurisdiction(code string) (domain.JurisdictionTaxProfile, error) {
	p, ok := s.jurisdictions[code]
	if !ok {
		return domain.JurisdictionTaxProfile{}, fmt.Errorf("%w: %q", ErrUnknownJurisdiction, code)
	}
	return p, nil
}

// Unemployment returns the unemployment formula for a state code.
func (s *Store) Unemployment(code string) (domain.UnemploymentProfile, error) {
	p, ok := s.unemployment[code]
	if !ok {
		return domain.UnemploymentProfile{}, fmt.Errorf("%w: %q", ErrUnknownJurisdiction, code)
	}
	return p, nil
}

// Codes returns all known state codes in sorted order.
func (s *Store) Codes() []string {
	codes := make([]string, 0, len(s.jurisdictions))
	for code := range s.jurisdictions {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// DeductionCatalog returns the full deduction catalog.
func (s *Store) DeductionCatalog() []domain.DeductionCatalogEntry {
	out := make([]domain.DeductionCatalogEntry, len(s.deductions))
	copy(out, s.deductions)
	return out
}

// Deduction returns a single catalog entry by id.
func (s *Store) Deduction(id string) (domain.DeductionCatalogEntry, error) {
	for _, e := range s.deductions {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.DeductionCatalogEntry{}, fmt.Errorf("%w: deduction %q", ErrUnknownCatalogEntry, id)
}

// Roles returns the role template catalog.
func (s *Store) Roles() []domain.RoleTemplate {
	out := make([]domain.RoleTemplate, len(s.roles))
	copy(out, s.roles)
	return out
}

// Role returns a single role template by id.
func (s *Store) Role(id string) (domain.RoleTemplate, error) {
	for _, r := range s.roles {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.RoleTemplate{}, fmt.Errorf("%w: role %q", ErrUnknownCatalogEntry, id)
}

// ShiftDifferential returns the rule for a differential id
// (night, weekend, holiday).
func (s *Store) ShiftDifferential(id string) (domain.ShiftDifferentialRule, error) {
	r, ok := s.differentials[id]
	if !ok {
		return domain.ShiftDifferentialRule{}, fmt.Errorf("%w: differential %q", ErrUnknownCatalogEntry, id)
	}
	return r, nil
}

// ShiftDifferentials returns all differential rules keyed by id.
func (s *Store) ShiftDifferentials() map[string]domain.ShiftDifferentialRule {
	out := make(map[string]domain.ShiftDifferentialRule, len(s.differentials))
	for k, v := range s.differentials {
		out[k] = v
	}
	return out
}

// QuarterlyDeadlines returns the estimated-tax due-date list in calendar
// order.
func (s *Store) QuarterlyDeadlines() []domain.QuarterlyDeadline {
	out := make([]domain.QuarterlyDeadline, len(s.deadlines))
	copy(out, s.deadlines)
	return out
}

// Override replaces individual dataset entries, typically from a YAML
// dataset file loaded at startup. Overrides happen before the store is
// shared; the store is read-only once engines are running.
func (s *Store) Override(jurisdictions []domain.JurisdictionTaxProfile, unemployment []domain.UnemploymentProfile) {
	for _, p := range jurisdictions {
		s.jurisdictions[p.Code] = p
	}
	for _, p := range unemployment {
		s.unemployment[p.Code] = p
	}
}
