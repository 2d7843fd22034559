package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// LoadRegimeRegistry overlays the regimes of a YAML regime file onto the built-in registry.
// Entries with an existing (regime, variant) key replace the built-in table; new keys add
// a variant. An empty path returns the built-in registry.
func LoadRegimeRegistry(path string) (*domain.RegimeRegistry, error) {
	reg := calculation.NewDefaultRegistry()
	if path == "" {
		return reg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read regime file %s: %w", path, err)
	}
	return ParseRegimeFile(reg, data)
}

// ParseRegimeFile overlays an in-memory regime document onto a copy of base
func ParseRegimeFile(base *domain.RegimeRegistry, data []byte) (*domain.RegimeRegistry, error) {
	// Regimes stay as nodes so each entry decodes over its defaults and a key the file
	// omits is distinguishable from an explicit zero
	var file struct {
		DefaultVariant string      `yaml:"default_variant"`
		Regimes        []yaml.Node `yaml:"regimes"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse regime YAML: %w", err)
	}

	reg := base.Clone()
	for i, node := range file.Regimes {
		rc := domain.RegimeConfig{CessRate: calculation.DefaultCessRate()}
		if err := node.Decode(&rc); err != nil {
			return nil, fmt.Errorf("regime %d: %w", i, err)
		}
		name, err := domain.ParseRegimeName(string(rc.Name))
		if err != nil {
			return nil, fmt.Errorf("regime %d: %w", i, err)
		}
		rc.Name = name
		applyRegimeDefaults(&rc)
		if err := reg.Register(rc); err != nil {
			return nil, fmt.Errorf("regime %d: %w", i, err)
		}
	}

	if file.DefaultVariant != "" {
		if _, err := reg.Get(domain.RegimeNew, file.DefaultVariant); err != nil {
			return nil, fmt.Errorf("default variant: %w", err)
		}
		reg.DefaultVariant = file.DefaultVariant
	}
	return reg, nil
}

// applyRegimeDefaults fills the values a regime file usually leaves out
func applyRegimeDefaults(rc *domain.RegimeConfig) {
	if rc.Surcharge.Name == "" && len(rc.Surcharge.Bands) == 0 {
		rc.Surcharge = calculation.FullSurcharge()
	}
	if rc.Slabs.Name == "" {
		rc.Slabs.Name = string(rc.Name) + "-" + rc.Variant
	}
	if rc.Name == domain.RegimeOld {
		if rc.Section80CLimit.IsZero() {
			rc.Section80CLimit = decimal.NewFromInt(150000)
		}
		if rc.Section80CCD1BLimit.IsZero() {
			rc.Section80CCD1BLimit = decimal.NewFromInt(50000)
		}
	}
}

// ResolveRegistry returns the registry a configuration asks for
func (ip *InputParser) ResolveRegistry(config *domain.Configuration) (*domain.RegimeRegistry, error) {
	return LoadRegimeRegistry(config.RegimeFile)
}
