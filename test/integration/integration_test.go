package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/compare"
	"github.com/rgehrsitz/ctcgo/internal/config"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/output"
	"github.com/rgehrsitz/ctcgo/internal/solver"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const examplePath = "../testdata/salary_example.yaml"

type fixture struct {
	cfg    *domain.Configuration
	reg    *domain.RegimeRegistry
	engine *calculation.Engine
}

func loadExample(t *testing.T) fixture {
	t.Helper()
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(examplePath)
	require.NoError(t, err)
	reg, err := parser.ResolveRegistry(cfg)
	require.NoError(t, err)
	return fixture{cfg: cfg, reg: reg, engine: calculation.NewEngine(reg)}
}

// TestIntegrationSuite runs the end to end flows over the example input
func TestIntegrationSuite(t *testing.T) {
	t.Run("Forward", testForward)
	t.Run("Output_Formats", testOutputFormats)
	t.Run("Reverse_Round_Trip", testReverseRoundTrip)
	t.Run("Offers_And_Hike", testOffersAndHike)
	t.Run("Error_Handling", testErrorHandling)
}

func testForward(t *testing.T) {
	f := loadExample(t)

	assert.Equal(t, "fy2025-26", f.reg.DefaultVariant)
	assert.Equal(t, domain.DefaultComponentConfig(), f.cfg.Salary.Components)

	b, err := calculation.Recompute(f.reg, f.cfg.Salary)
	require.NoError(t, err)
	assert.Equal(t, "fy2025-26", b.Variant)
	assert.True(t, b.TaxCalc.TaxableIncome.Equal(decimal.NewFromInt(1115735)))
	assert.True(t, b.TaxCalc.FinalTax.IsZero(), "taxable income under 12L is fully rebated")

	// Recompute is pure: the same input gives the same breakdown
	again, err := calculation.Recompute(f.reg, f.cfg.Salary)
	require.NoError(t, err)
	assert.Equal(t, b, again)

	// Built-in variants remain reachable through the overlay
	in := f.cfg.Salary.WithCTC(decimal.NewFromInt(1500000))
	in.Variant = calculation.VariantFY2024
	b, err = calculation.Recompute(f.reg, in)
	require.NoError(t, err)
	assert.True(t, b.NetInHandYearly.Equal(decimal.RequireFromString("1177748.6")))
}

func testOutputFormats(t *testing.T) {
	f := loadExample(t)
	b := f.engine.Forward(f.cfg.Salary)

	for _, name := range output.AvailableFormatterNames() {
		t.Run(name, func(t *testing.T) {
			fm := output.GetFormatterByName(name)
			require.NotNil(t, fm)
			data, err := fm.Format(b)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}

	t.Run("write_file", func(t *testing.T) {
		dir := t.TempDir()
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		defer func() { _ = os.Chdir(wd) }()

		filename, err := output.WriteFormatted(output.GetFormatterByName("json"), b, "json")
		require.NoError(t, err)
		matches, err := filepath.Glob(filepath.Join(dir, "salary_breakdown_*.json"))
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, filename, filepath.Base(matches[0]))
	})
}

func testReverseRoundTrip(t *testing.T) {
	f := loadExample(t)
	s := solver.NewSolver(f.engine, solver.DefaultSolverOptions().WithSettings(f.cfg.Solver))

	for _, regime := range []domain.RegimeName{domain.RegimeNew, domain.RegimeOld} {
		t.Run(string(regime), func(t *testing.T) {
			in := f.cfg.Salary.WithCTC(decimal.NewFromInt(1500000)).WithRegime(regime)
			in.Variant = calculation.VariantFY2024
			forward := f.engine.Forward(in)

			res, err := s.SolveForCTC(context.Background(), forward.NetInHandMonthly, in)
			require.NoError(t, err)
			assert.True(t, res.Converged)
			assert.True(t, res.Residual.Abs().LessThanOrEqual(decimal.NewFromInt(1)))
			assert.True(t, res.CTC.Sub(in.CTC).Abs().LessThan(decimal.NewFromInt(100)),
				"recovered CTC %s", res.CTC)
		})
	}
}

func testOffersAndHike(t *testing.T) {
	f := loadExample(t)
	ce := compare.NewCompareEngine(f.engine)

	cs, err := ce.Compare(context.Background(), f.cfg, compare.CompareOptions{ConfigPath: examplePath})
	require.NoError(t, err)
	assert.Equal(t, "Current", cs.BaseOfferName)
	require.Len(t, cs.AlternativeResults, 1)
	assert.Equal(t, "Product Co", cs.AlternativeResults[0].OfferName)
	assert.True(t, cs.AlternativeResults[0].NetDiffFromBase.IsPositive())
	assert.NotEmpty(t, cs.Recommendations)

	p := ce.ProjectHike(f.cfg.Salary, f.cfg.Hike.Percent)
	assert.True(t, p.NewCTC.Equal(decimal.NewFromInt(1456000)))
	assert.True(t, p.YearlyIncrease.IsPositive())

	rc := ce.CompareRegimes(f.cfg.Salary)
	assert.Contains(t, []domain.RegimeName{domain.RegimeOld, domain.RegimeNew}, rc.Recommended)
	assert.False(t, rc.YearlySavings.IsNegative())
}

func testErrorHandling(t *testing.T) {
	parser := config.NewInputParser()

	_, err := parser.LoadFromFile("../testdata/missing.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = parser.Parse([]byte("ctc: [oops"))
	assert.Error(t, err)

	_, err = parser.Parse([]byte("ctc: 100000\nregime: flat\n"))
	assert.Error(t, err)

	in := domain.DefaultSalaryInput(decimal.NewFromInt(1000000), domain.RegimeNew)
	in.Variant = "fy1999-00"
	_, err = calculation.Recompute(calculation.NewDefaultRegistry(), in)
	var lookup *domain.LookupError
	assert.ErrorAs(t, err, &lookup)

	// Forward never fails; it falls back to the default variant
	b := calculation.NewDefaultEngine().Forward(in)
	assert.Equal(t, calculation.VariantFY2024, b.Variant)
}
