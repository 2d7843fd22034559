package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `ctc: 1500000
regime: old
variant: fy2023-24
mode: percentage
components:
  basic: 40
  hra: 50
  employee_pf: 12
  employer_pf: 12
  gratuity: 4.81
  prof_tax: 2400
options:
  da_reduces_special: true
deductions:
  rent_paid: 300000
  metro: true
target_monthly: 100000
offers:
  - name: Current
    ctc: 1200000
  - name: New Job
    ctc: 1600000
    components:
      basic: 50
      hra: 40
  - ctc: 1400000
hike:
  percent: 15
solver:
  max_iterations: 40
regime_file: regimes.yaml
`

const sampleRegimes = `default_variant: fy2025-26
regimes:
  - name: new
    variant: fy2025-26
    standard_deduction: 75000
    rebate_threshold: 1200000
    full_rebate: true
    slabs:
      slabs:
        - upper_bound: 400000
          rate: 0
        - upper_bound: 800000
          rate: 0.05
        - upper_bound: 1200000
          rate: 0.10
        - upper_bound: 1600000
          rate: 0.15
        - upper_bound: 2000000
          rate: 0.20
        - upper_bound: 2400000
          rate: 0.25
        - rate: 0.30
  - name: old
    variant: fy2025-26
    standard_deduction: 50000
    rebate_threshold: 500000
    rebate_amount: 12500
    slabs:
      slabs:
        - upper_bound: 250000
          rate: 0
        - upper_bound: 500000
          rate: 0.05
        - upper_bound: 1000000
          rate: 0.20
        - rate: 0.30
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_Comprehensive(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "salary.yaml", sampleInput)

	parser := NewInputParser()
	config, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.True(t, config.Salary.CTC.Equal(decimal.NewFromInt(1500000)))
	assert.Equal(t, domain.RegimeOld, config.Salary.Regime)
	assert.Equal(t, "fy2023-24", config.Salary.Variant)
	assert.True(t, config.Salary.Components.Gratuity.Equal(decimal.NewFromFloat(4.81)))
	assert.True(t, config.Salary.Options.DAReducesSpecial)
	assert.True(t, config.Salary.Deductions.Metro)
	assert.True(t, config.Salary.Deductions.RentPaid.Equal(decimal.NewFromInt(300000)))
	assert.True(t, config.TargetMonthly.Equal(decimal.NewFromInt(100000)))

	require.Len(t, config.Offers, 3)
	assert.Equal(t, "New Job", config.Offers[1].Name)
	require.NotNil(t, config.Offers[1].Components)
	assert.True(t, config.Offers[1].Components.HRA.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, "Offer 3", config.Offers[2].Name, "unnamed offers get a positional name")

	require.NotNil(t, config.Hike)
	assert.True(t, config.Hike.Percent.Equal(decimal.NewFromInt(15)))
	require.NotNil(t, config.Solver)
	assert.Equal(t, 40, config.Solver.MaxIterations)

	assert.Equal(t, filepath.Join(dir, "regimes.yaml"), config.RegimeFile)
}

func TestLoadFromFile_Missing(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "salary.json", `{"ctc": 800000, "regime": "new", "deductions": {"metro": true}}`)

	config, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, config.Salary.CTC.Equal(decimal.NewFromInt(800000)))
	assert.True(t, config.Salary.Deductions.Metro)
}

func TestLoadRegimeRegistry(t *testing.T) {
	t.Run("empty path gives built-ins", func(t *testing.T) {
		reg, err := LoadRegimeRegistry("")
		require.NoError(t, err)
		assert.Equal(t, calculation.VariantFY2024, reg.DefaultVariant)
		assert.Len(t, reg.All(), 6)
	})

	t.Run("overlay adds a variant", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "regimes.yaml", sampleRegimes)
		reg, err := LoadRegimeRegistry(path)
		require.NoError(t, err)

		assert.Equal(t, "fy2025-26", reg.DefaultVariant)
		assert.Len(t, reg.All(), 8)
		assert.Contains(t, reg.Variants(), calculation.VariantComparison, "built-in variants are kept")

		oldCfg, err := reg.Get(domain.RegimeOld, "fy2025-26")
		require.NoError(t, err)
		assert.True(t, oldCfg.Section80CLimit.Equal(decimal.NewFromInt(150000)), "old regime limits default")
		assert.True(t, oldCfg.CessRate.Equal(decimal.NewFromFloat(0.04)))

		newCfg, err := reg.Get(domain.RegimeNew, "")
		require.NoError(t, err)
		assert.True(t, newCfg.Slabs.Slabs[len(newCfg.Slabs.Slabs)-1].IsUnbounded())

		// 13L CTC on default components leaves taxable income under the 12L rebate
		b, err := calculation.Recompute(reg, domain.DefaultSalaryInput(decimal.NewFromInt(1300000), domain.RegimeNew))
		require.NoError(t, err)
		assert.True(t, b.TaxCalc.FinalTax.IsZero())
		assert.Equal(t, "fy2025-26", b.Variant)
	})

	t.Run("invalid slab table rejected", func(t *testing.T) {
		bad := "regimes:\n  - name: new\n    variant: broken\n    slabs:\n      slabs:\n        - upper_bound: 100\n          rate: 0.1\n"
		_, err := ParseRegimeFile(calculation.NewDefaultRegistry(), []byte(bad))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unbounded")
	})

	t.Run("explicit zero cess is kept", func(t *testing.T) {
		doc := "regimes:\n  - name: new\n    variant: nocess\n    cess_rate: 0\n    slabs:\n      slabs:\n        - upper_bound: 300000\n          rate: 0\n        - rate: 0.1\n"
		reg, err := ParseRegimeFile(calculation.NewDefaultRegistry(), []byte(doc))
		require.NoError(t, err)

		cfg, err := reg.Get(domain.RegimeNew, "nocess")
		require.NoError(t, err)
		assert.True(t, cfg.CessRate.IsZero())

		result := calculation.ComputeRegimeTax(decimal.NewFromInt(400000), cfg)
		assert.True(t, result.Cess.IsZero())
		assert.True(t, result.FinalTax.Equal(decimal.NewFromInt(10000)), result.FinalTax.String())
	})

	t.Run("unknown default variant rejected", func(t *testing.T) {
		_, err := ParseRegimeFile(calculation.NewDefaultRegistry(), []byte("default_variant: nowhere\n"))
		assert.Error(t, err)
	})

	t.Run("base registry untouched", func(t *testing.T) {
		base := calculation.NewDefaultRegistry()
		_, err := ParseRegimeFile(base, []byte(sampleRegimes))
		require.NoError(t, err)
		assert.Len(t, base.All(), 6)
		assert.Equal(t, calculation.VariantFY2024, base.DefaultVariant)
	})
}

func TestResolveRegistry(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "regimes.yaml", sampleRegimes)
	path := writeFile(t, dir, "salary.yaml", sampleInput)

	parser := NewInputParser()
	config, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	reg, err := parser.ResolveRegistry(config)
	require.NoError(t, err)
	assert.Equal(t, "fy2025-26", reg.DefaultVariant)
}
