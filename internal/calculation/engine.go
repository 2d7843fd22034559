package calculation

import (
	"fmt"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine runs forward salary computations against a regime registry
type Engine struct {
	Registry *domain.RegimeRegistry
	Logger   Logger
}

// NewEngine creates an engine over the given registry
func NewEngine(reg *domain.RegimeRegistry) *Engine {
	if reg == nil {
		reg = NewDefaultRegistry()
	}
	return &Engine{Registry: reg, Logger: NopLogger{}}
}

// NewDefaultEngine creates an engine over the built-in regime tables
func NewDefaultEngine() *Engine {
	return NewEngine(NewDefaultRegistry())
}

// SetLogger sets the logger; nil restores the no-op logger
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Forward computes the full breakdown for one input. An unknown regime variant falls
// back to the registry default so numeric computation never fails.
func (e *Engine) Forward(in domain.SalaryInput) *domain.SalaryBreakdown {
	if in.Regime == "" {
		in.Regime = domain.RegimeNew
	}
	regime, err := e.Registry.Get(in.Regime, in.Variant)
	if err != nil {
		e.Logger.Warnf("%v, using %s", err, e.Registry.DefaultVariant)
		in.Variant = ""
		regime, err = e.Registry.Get(in.Regime, "")
		if err != nil {
			// Registry without the requested regime at all: fall back to the built-in table
			regime, _ = NewDefaultRegistry().Get(in.Regime, "")
		}
	}
	b := forward(regime, in)
	e.Logger.Debugf("forward ctc=%s regime=%s/%s net=%s tax=%s",
		b.CTC.StringFixed(0), b.Regime, b.Variant, b.NetInHandYearly.StringFixed(2), b.TaxCalc.FinalTax.StringFixed(2))
	return b
}

// Recompute is the pure form of Forward: a fresh breakdown derived only from the registry
// and the input. Callers re-run it on every change instead of patching a previous result.
func Recompute(reg *domain.RegimeRegistry, in domain.SalaryInput) (*domain.SalaryBreakdown, error) {
	if in.Regime == "" {
		in.Regime = domain.RegimeNew
	}
	regime, err := reg.Get(in.Regime, in.Variant)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve regime: %w", err)
	}
	return forward(regime, in), nil
}

func forward(regime domain.RegimeConfig, in domain.SalaryInput) *domain.SalaryBreakdown {
	mode := in.Mode
	if mode == "" {
		mode = domain.ModePercentage
	}

	if in.CTC.LessThanOrEqual(decimal.Zero) {
		return zeroBreakdown(regime, in.CTC)
	}

	parts := Decompose(in.CTC, in.Components, mode, in.Options)
	calc := TaxForRegime(regime, parts, in.Deductions)

	deductions := domain.Deductions{
		EmployeePF:   parts.EmployeePF,
		NPSDeduction: parts.NPS,
		ProfTax:      parts.ProfTax,
		TotalTax:     calc.FinalTax,
	}
	deductions.Total = deductions.EmployeePF.
		Add(deductions.NPSDeduction).
		Add(deductions.ProfTax).
		Add(deductions.TotalTax)

	net := parts.GrossSalary.Sub(deductions.Total)

	b := &domain.SalaryBreakdown{
		CTC:     in.CTC,
		Regime:  regime.Name,
		Variant: regime.Variant,
		Components: domain.SalaryComponents{
			Basic:   parts.Basic,
			HRA:     parts.HRA,
			Special: parts.Special,
			DA:      parts.DA,
		},
		GrossSalary:       parts.GrossSalary,
		EmployerPF:        parts.EmployerPF,
		EmployerGratuity:  parts.Gratuity,
		InsuranceEmployer: parts.Insurance,
		NPSEmployer:       parts.NPS,
		OtherEmployer:     parts.Other,
		Deductions:        deductions,
		TaxCalc:           calc,
		NetInHandYearly:   net,
		NetInHandMonthly:  net.Div(twelve),
		EffectiveTaxRate:  calc.FinalTax.Div(in.CTC).Mul(hundred),
	}

	if mode == domain.ModePercentage {
		if sum := PercentageSum(in.Components, in.Options); sum.GreaterThan(hundred) {
			b.Advisories = append(b.Advisories, domain.Advisory{
				Code:    domain.AdvisoryPercentageSum,
				Message: fmt.Sprintf("configured components allocate %s%% of CTC; special allowance clamped to zero", sum.StringFixed(2)),
			})
		}
	}
	return b
}

func zeroBreakdown(regime domain.RegimeConfig, ctc decimal.Decimal) *domain.SalaryBreakdown {
	return &domain.SalaryBreakdown{
		CTC:     ctc,
		Regime:  regime.Name,
		Variant: regime.Variant,
		TaxCalc: domain.TaxCalc{SlabBreakdown: []domain.SlabAmount{}},
		Advisories: []domain.Advisory{{
			Code:    domain.AdvisoryInvalidCTC,
			Message: "CTC must be greater than zero",
		}},
	}
}
