package calculation

import (
	"testing"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultEngine(t *testing.T) {
	engine := NewDefaultEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Registry, "Should initialize registry")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
	assert.Equal(t, VariantFY2024, engine.Registry.DefaultVariant)
}

func TestEngine_SetLogger(t *testing.T) {
	engine := NewDefaultEngine()

	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)
	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	engine.Forward(domain.DefaultSalaryInput(dec(1200000), domain.RegimeNew))
	assert.NotEmpty(t, customLogger.messages, "Should log the computation")

	engine.SetLogger(nil)
	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestEngine_Forward(t *testing.T) {
	engine := NewDefaultEngine()

	tests := []struct {
		name        string
		in          domain.SalaryInput
		wantGross   decimal.Decimal
		wantTaxable decimal.Decimal
		wantTax     decimal.Decimal
		wantNet     decimal.Decimal
	}{
		{
			name:        "new regime fifteen lakh",
			in:          domain.DefaultSalaryInput(dec(1500000), domain.RegimeNew),
			wantGross:   dec(1373925),
			wantTaxable: dec(1298925),
			wantTax:     dec(103776.4),
			wantNet:     dec(1177748.6),
		},
		{
			name:        "old regime fifteen lakh",
			in:          domain.DefaultSalaryInput(dec(1500000), domain.RegimeOld),
			wantGross:   dec(1373925),
			wantTaxable: dec(1231525),
			wantTax:     dec(189235.8),
			wantNet:     dec(1092289.2),
		},
		{
			name:        "new regime six lakh falls under the rebate",
			in:          domain.DefaultSalaryInput(dec(600000), domain.RegimeNew),
			wantGross:   dec(549570),
			wantTaxable: dec(474570),
			wantTax:     decimal.Zero,
			wantNet:     dec(511170),
		},
		{
			name:        "old regime six lakh falls under the rebate",
			in:          domain.DefaultSalaryInput(dec(600000), domain.RegimeOld),
			wantGross:   dec(549570),
			wantTaxable: dec(461170),
			wantTax:     decimal.Zero,
			wantNet:     dec(511170),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := engine.Forward(tt.in)
			require.NotNil(t, b)
			assertDecimal(t, tt.wantGross, b.GrossSalary, "gross")
			assertDecimal(t, tt.wantTaxable, b.TaxCalc.TaxableIncome, "taxable")
			assertDecimal(t, tt.wantTax, b.TaxCalc.FinalTax, "tax")
			assertDecimal(t, tt.wantNet, b.NetInHandYearly, "net")
			assertDecimal(t, b.NetInHandYearly.Div(twelve), b.NetInHandMonthly, "monthly")
			assert.Empty(t, b.Advisories)
		})
	}
}

func TestEngine_Forward_Reconciles(t *testing.T) {
	engine := NewDefaultEngine()
	b := engine.Forward(domain.DefaultSalaryInput(dec(1500000), domain.RegimeNew))

	employerSide := b.GrossSalary.
		Sub(b.Components.DA).
		Add(b.EmployerPF).
		Add(b.EmployerGratuity).
		Add(b.InsuranceEmployer).
		Add(b.NPSEmployer).
		Add(b.OtherEmployer)
	assertDecimal(t, b.CTC, employerSide, "components sum to ctc")

	assertDecimal(t, b.Deductions.EmployeePF.Add(b.Deductions.NPSDeduction).Add(b.Deductions.ProfTax).Add(b.Deductions.TotalTax),
		b.Deductions.Total, "deductions total")
	assert.Equal(t, "6.92", b.EffectiveTaxRate.StringFixed(2))
	assert.Equal(t, VariantFY2024, b.Variant)
}

func TestEngine_Forward_InvalidCTC(t *testing.T) {
	engine := NewDefaultEngine()
	for _, ctc := range []decimal.Decimal{decimal.Zero, dec(-100)} {
		b := engine.Forward(domain.DefaultSalaryInput(ctc, domain.RegimeNew))
		require.NotNil(t, b)
		assert.True(t, b.HasAdvisory(domain.AdvisoryInvalidCTC))
		assert.True(t, b.NetInHandYearly.IsZero())
		assert.True(t, b.TaxCalc.FinalTax.IsZero())
		assert.Empty(t, b.TaxCalc.SlabBreakdown)
	}
}

func TestEngine_Forward_PercentageSumAdvisory(t *testing.T) {
	engine := NewDefaultEngine()
	in := domain.DefaultSalaryInput(dec(1000000), domain.RegimeNew)
	in.Components.Basic = dec(90)

	b := engine.Forward(in)
	assert.True(t, b.HasAdvisory(domain.AdvisoryPercentageSum))
	assert.True(t, b.Components.Special.IsZero())
}

func TestEngine_Forward_UnknownVariantFallsBack(t *testing.T) {
	engine := NewDefaultEngine()
	in := domain.DefaultSalaryInput(dec(1500000), domain.RegimeNew)
	in.Variant = "fy1999-00"

	b := engine.Forward(in)
	assert.Equal(t, VariantFY2024, b.Variant)
	assertDecimal(t, dec(103776.4), b.TaxCalc.FinalTax)
}

func TestEngine_Forward_Variants(t *testing.T) {
	engine := NewDefaultEngine()
	base := domain.DefaultSalaryInput(dec(1500000), domain.RegimeNew)

	fy24 := engine.Forward(base)
	base.Variant = VariantFY2023
	fy23 := engine.Forward(base)

	assert.Equal(t, VariantFY2023, fy23.Variant)
	assertDecimal(t, dec(50000), fy23.TaxCalc.StandardDeduction)
	assert.True(t, fy23.TaxCalc.FinalTax.GreaterThan(fy24.TaxCalc.FinalTax))
}

func TestRecompute(t *testing.T) {
	reg := NewDefaultRegistry()
	in := domain.DefaultSalaryInput(dec(1500000), domain.RegimeOld)

	first, err := Recompute(reg, in)
	require.NoError(t, err)
	second, err := Recompute(reg, in)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same input should give the same breakdown")
	assert.NotSame(t, first, second, "each call returns a fresh snapshot")

	in.Variant = "missing"
	_, err = Recompute(reg, in)
	require.Error(t, err)
	var lookupErr *domain.LookupError
	assert.ErrorAs(t, err, &lookupErr)
}

// TestLogger is a simple logger for testing
type TestLogger struct {
	messages []string
}

func (tl *TestLogger) Debugf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "DEBUG: "+format)
}

func (tl *TestLogger) Infof(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "INFO: "+format)
}

func (tl *TestLogger) Warnf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "WARN: "+format)
}

func (tl *TestLogger) Errorf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "ERROR: "+format)
}
