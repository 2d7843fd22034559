package calculation

import (
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
)

var npsCeiling = decimal.NewFromFloat(0.14)

// Decompose resolves a component configuration into absolute annual amounts for a CTC.
// Special allowance absorbs whatever CTC is left after the employer-side components and
// is clamped at zero when the configured components alone exceed CTC.
func Decompose(ctc decimal.Decimal, cfg domain.ComponentConfig, mode domain.InputMode, opts domain.DecomposeOptions) domain.ResolvedComponents {
	if ctc.IsNegative() {
		ctc = decimal.Zero
	}
	cfg = cfg.Normalize(mode)

	ofCTC := func(v decimal.Decimal) decimal.Decimal {
		if mode == domain.ModeAmount {
			return v
		}
		return v.Div(hundred).Mul(ctc)
	}

	var r domain.ResolvedComponents
	r.Basic = ofCTC(cfg.Basic)

	ofBasic := func(v decimal.Decimal) decimal.Decimal {
		if mode == domain.ModeAmount {
			return v
		}
		return v.Div(hundred).Mul(r.Basic)
	}

	r.HRA = ofBasic(cfg.HRA)
	r.EmployeePF = ofBasic(cfg.EmployeePF)
	r.Gratuity = ofBasic(cfg.Gratuity)
	if opts.IncludeEmployerPF {
		r.EmployerPF = ofBasic(cfg.EmployerPF)
	}
	r.NPS = decimal.Min(ofBasic(cfg.NPS), r.Basic.Mul(npsCeiling))

	r.Insurance = ofCTC(cfg.Insurance)
	r.Other = ofCTC(cfg.Other)
	r.DA = ofCTC(cfg.DA)
	r.ProfTax = cfg.ProfTax

	allocated := r.Basic.
		Add(r.HRA).
		Add(r.EmployerPF).
		Add(r.Gratuity).
		Add(r.Insurance).
		Add(r.NPS).
		Add(r.Other)
	if opts.DAReducesSpecial {
		allocated = allocated.Add(r.DA)
	}
	r.Special = decimal.Max(decimal.Zero, ctc.Sub(allocated))
	r.GrossSalary = r.Basic.Add(r.HRA).Add(r.DA).Add(r.Special)
	return r
}

// PercentageSum returns the share of CTC (in percent) a percentage-mode config allocates
// before special allowance: basic, insurance and other directly, plus HRA, employer PF,
// gratuity and NPS through basic. DA is counted only when it reduces special allowance.
func PercentageSum(cfg domain.ComponentConfig, opts domain.DecomposeOptions) decimal.Decimal {
	cfg = cfg.Normalize(domain.ModePercentage)
	basicShare := cfg.Basic.Div(hundred)
	viaBasic := cfg.HRA.Add(cfg.Gratuity).Add(cfg.NPS)
	if opts.IncludeEmployerPF {
		viaBasic = viaBasic.Add(cfg.EmployerPF)
	}
	sum := cfg.Basic.
		Add(cfg.Insurance).
		Add(cfg.Other).
		Add(viaBasic.Mul(basicShare))
	if opts.DAReducesSpecial {
		sum = sum.Add(cfg.DA)
	}
	return sum
}
