// Package config loads scenario input files and jurisdiction dataset
// overrides from YAML. All numeric normalization (clamping negatives,
// defaulting blanks to zero) happens here or in domain Sanitize methods;
// the calculation engines never see raw input.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/wagekit/wagekit/internal/domain"
	"github.com/wagekit/wagekit/internal/reference"
)

// ScenarioFile is the on-disk input format. Any subset of the three
// scenario sections may be present; the dataset section optionally
// overrides built-in jurisdiction entries.
type ScenarioFile struct {
	Pay     *domain.PayScenario     `yaml:"pay"`
	Tax     *domain.TaxScenario     `yaml:"tax"`
	Benefit *domain.BenefitScenario `yaml:"benefit"`
	Dataset *DatasetOverride        `yaml:"dataset"`
}

// DatasetOverride replaces individual built-in reference entries.
type DatasetOverride struct {
	Jurisdictions []domain.JurisdictionTaxProfile `yaml:"jurisdictions"`
	Unemployment  []domain.UnemploymentProfile    `yaml:"unemployment"`
}

// InputParser handles parsing of scenario input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a scenario file.
func (ip *InputParser) LoadFromFile(filename string) (*ScenarioFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var sf ScenarioFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.Validate(&sf); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}

	ip.normalize(&sf)
	return &sf, nil
}

// Validate checks structural requirements: each present section needs a
// state code, and overrides must carry codes to key on. Numeric
// sanitization is not an error path; negatives are clamped in normalize.
func (ip *InputParser) Validate(sf *ScenarioFile) error {
	if sf.Pay == nil && sf.Tax == nil && sf.Benefit == nil {
		return fmt.Errorf("at least one of pay, tax, or benefit is required")
	}
	if sf.Pay != nil && sf.Pay.StateCode == "" {
		return fmt.Errorf("pay: state is required")
	}
	if sf.Tax != nil && sf.Tax.StateCode == "" {
		return fmt.Errorf("tax: state is required")
	}
	if sf.Benefit != nil && sf.Benefit.StateCode == "" {
		return fmt.Errorf("benefit: state is required")
	}
	if sf.Dataset != nil {
		for i, p := range sf.Dataset.Jurisdictions {
			if p.Code == "" {
				return fmt.Errorf("dataset: jurisdiction override %d has no state code", i)
			}
		}
		for i, p := range sf.Dataset.Unemployment {
			if p.Code == "" {
				return fmt.Errorf("dataset: unemployment override %d has no state code", i)
			}
		}
	}
	return nil
}

// ValidateAgainst checks the scenario against a reference store: state
// codes must resolve, deduction ids must be in the catalog, and
// two-highest-quarters states need both wage figures.
func (ip *InputParser) ValidateAgainst(sf *ScenarioFile, store *reference.Store) error {
	if sf.Pay != nil {
		if _, err := store.Jurisdiction(sf.Pay.StateCode); err != nil {
			return fmt.Errorf("pay: %w", err)
		}
	}
	if sf.Tax != nil {
		if _, err := store.Jurisdiction(sf.Tax.StateCode); err != nil {
			return fmt.Errorf("tax: %w", err)
		}
		for _, sel := range sf.Tax.Deductions {
			if _, err := store.Deduction(sel.ID); err != nil {
				return fmt.Errorf("tax: %w", err)
			}
		}
	}
	if sf.Benefit != nil {
		profile, err := store.Unemployment(sf.Benefit.StateCode)
		if err != nil {
			return fmt.Errorf("benefit: %w", err)
		}
		if profile.CalculationMethod == domain.TwoHighestQuarters && sf.Benefit.SecondQuarterWages.IsZero() {
			return fmt.Errorf("benefit: %s uses two highest quarters; second_quarter_wages is required", sf.Benefit.StateCode)
		}
	}
	return nil
}

// normalize applies the clamp-to-zero policy so downstream engines only
// see non-negative numbers.
func (ip *InputParser) normalize(sf *ScenarioFile) {
	if sf.Pay != nil {
		*sf.Pay = sf.Pay.Sanitize()
	}
	if sf.Tax != nil {
		*sf.Tax = sf.Tax.Sanitize()
	}
	if sf.Benefit != nil {
		*sf.Benefit = sf.Benefit.Sanitize()
	}
	if sf.Dataset != nil {
		for i := range sf.Dataset.Jurisdictions {
			p := &sf.Dataset.Jurisdictions[i]
			if p.IncomeTaxRate.LessThan(decimal.Zero) {
				p.IncomeTaxRate = decimal.Zero
			}
			if p.IncomeTaxRate.IsZero() {
				p.HasNoIncomeTax = true
			}
		}
	}
}

// ApplyDataset merges a scenario file's dataset overrides into the store.
func ApplyDataset(sf *ScenarioFile, store *reference.Store) {
	if sf.Dataset == nil {
		return
	}
	store.Override(sf.Dataset.Jurisdictions, sf.Dataset.Unemployment)
}
