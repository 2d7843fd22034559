package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of salary input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config, err := ip.Parse(data)
	if err != nil {
		return nil, err
	}

	// Regime files are resolved relative to the input file
	if config.RegimeFile != "" && !filepath.IsAbs(config.RegimeFile) {
		config.RegimeFile = filepath.Join(filepath.Dir(filename), config.RegimeFile)
	}
	return config, nil
}

// Parse decodes and validates an in-memory configuration. Fields the document leaves out
// keep the defaults: new regime, percentage mode, employer PF included and, when no
// component is given, the default component structure. Unknown keys are rejected so a
// misplaced block (for example a nested "salary:") fails instead of computing on defaults.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config := domain.Configuration{
		Salary: domain.SalaryInput{
			Regime:  domain.RegimeNew,
			Mode:    domain.ModePercentage,
			Options: domain.DecomposeOptions{IncludeEmployerPF: true},
		},
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if config.Salary.Components.IsZero() {
		config.Salary.Components = domain.DefaultComponentConfig()
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates and normalizes the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateSalaryInput(&config.Salary); err != nil {
		return fmt.Errorf("salary validation failed: %w", err)
	}

	if config.TargetMonthly.IsNegative() {
		return fmt.Errorf("target_monthly cannot be negative")
	}

	seen := make(map[string]bool, len(config.Offers))
	for i, offer := range config.Offers {
		if err := ip.validateOffer(i, &config.Offers[i]); err != nil {
			return fmt.Errorf("offer %d (%s) validation failed: %w", i, offer.Name, err)
		}
		if seen[config.Offers[i].Name] {
			return fmt.Errorf("duplicate offer name %q", offer.Name)
		}
		seen[config.Offers[i].Name] = true
	}

	if config.Hike != nil && config.Hike.Percent.LessThanOrEqual(decimal.NewFromInt(-100)) {
		return fmt.Errorf("hike percent must be greater than -100")
	}

	if config.Solver != nil {
		if config.Solver.MaxIterations < 0 {
			return fmt.Errorf("solver max_iterations cannot be negative")
		}
		if config.Solver.Tolerance.IsNegative() {
			return fmt.Errorf("solver tolerance cannot be negative")
		}
	}

	return nil
}

// validateSalaryInput normalizes regime and mode spellings and rejects negative amounts
func (ip *InputParser) validateSalaryInput(in *domain.SalaryInput) error {
	regime, err := domain.ParseRegimeName(string(in.Regime))
	if err != nil {
		return err
	}
	in.Regime = regime

	mode, err := domain.ParseInputMode(string(in.Mode))
	if err != nil {
		return err
	}
	in.Mode = mode

	if in.CTC.IsNegative() {
		return fmt.Errorf("ctc cannot be negative")
	}
	if in.Deductions.RentPaid.IsNegative() {
		return fmt.Errorf("rent_paid cannot be negative")
	}
	in.Components = in.Components.MirrorEmployerPF()
	return validateComponents(in.Components)
}

func validateComponents(c domain.ComponentConfig) error {
	fields := map[string]decimal.Decimal{
		"basic":       c.Basic,
		"hra":         c.HRA,
		"da":          c.DA,
		"employee_pf": c.EmployeePF,
		"employer_pf": c.EmployerPF,
		"gratuity":    c.Gratuity,
		"insurance":   c.Insurance,
		"other":       c.Other,
		"nps":         c.NPS,
		"prof_tax":    c.ProfTax,
	}
	for name, v := range fields {
		if v.IsNegative() {
			return fmt.Errorf("component %s cannot be negative", name)
		}
	}
	return nil
}

// validateOffer validates a single offer
func (ip *InputParser) validateOffer(index int, offer *domain.Offer) error {
	if offer.Name == "" {
		offer.Name = fmt.Sprintf("Offer %d", index+1)
	}
	if offer.CTC.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("ctc must be positive")
	}
	if offer.Mode != "" {
		mode, err := domain.ParseInputMode(string(offer.Mode))
		if err != nil {
			return err
		}
		offer.Mode = mode
	}
	if offer.Components != nil {
		c := offer.Components.MirrorEmployerPF()
		offer.Components = &c
		if err := validateComponents(c); err != nil {
			return err
		}
	}
	return nil
}
