package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// InputMode controls how ComponentConfig values are interpreted
type InputMode string

const (
	// ModePercentage: basic, da, insurance and other are % of CTC; hra, PF,
	// gratuity and NPS are % of basic.
	ModePercentage InputMode = "percentage"
	// ModeAmount: every value is an absolute annual amount.
	ModeAmount InputMode = "amount"
)

// ParseInputMode normalizes user input into an InputMode
func ParseInputMode(s string) (InputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "percentage", "percent", "pct", "%", "":
		return ModePercentage, nil
	case "amount", "amounts", "absolute":
		return ModeAmount, nil
	default:
		return "", fmt.Errorf("unknown input mode %q (expected percentage or amount)", s)
	}
}

// Statutory ceilings applied to percentage inputs
var (
	MaxComponentPercent = decimal.NewFromInt(100)
	MaxGratuityPercent  = decimal.NewFromFloat(4.81)
	MaxNPSPercent       = decimal.NewFromInt(14)
)

// ComponentConfig holds the configured salary components. ProfTax is always an absolute amount.
type ComponentConfig struct {
	Basic      decimal.Decimal `yaml:"basic" json:"basic"`
	HRA        decimal.Decimal `yaml:"hra" json:"hra"`
	DA         decimal.Decimal `yaml:"da" json:"da"`
	EmployeePF decimal.Decimal `yaml:"employee_pf" json:"empPF"`
	EmployerPF decimal.Decimal `yaml:"employer_pf" json:"emplrPF"`
	Gratuity   decimal.Decimal `yaml:"gratuity" json:"gratuity"`
	Insurance  decimal.Decimal `yaml:"insurance" json:"insurance"`
	Other      decimal.Decimal `yaml:"other" json:"other"`
	NPS        decimal.Decimal `yaml:"nps" json:"nps"`
	ProfTax    decimal.Decimal `yaml:"prof_tax" json:"profTax"`
}

// DefaultComponentConfig returns the percentage-mode structure most employers start from
func DefaultComponentConfig() ComponentConfig {
	return ComponentConfig{
		Basic:      decimal.NewFromInt(50),
		HRA:        decimal.NewFromInt(50),
		EmployeePF: decimal.NewFromInt(12),
		EmployerPF: decimal.NewFromInt(12),
		Gratuity:   decimal.NewFromFloat(4.81),
		ProfTax:    decimal.NewFromInt(2400),
	}
}

// IsZero reports whether no component has been configured
func (c ComponentConfig) IsZero() bool {
	for _, v := range []decimal.Decimal{c.Basic, c.HRA, c.DA, c.EmployeePF, c.EmployerPF, c.Gratuity, c.Insurance, c.Other, c.NPS, c.ProfTax} {
		if !v.IsZero() {
			return false
		}
	}
	return true
}

// WithEmployeePF sets the employee PF value; the employer contribution mirrors it
func (c ComponentConfig) WithEmployeePF(v decimal.Decimal) ComponentConfig {
	c.EmployeePF = v
	c.EmployerPF = v
	return c
}

// MirrorEmployerPF fills an unset employer PF from the employee PF
func (c ComponentConfig) MirrorEmployerPF() ComponentConfig {
	if c.EmployerPF.IsZero() && !c.EmployeePF.IsZero() {
		return c.WithEmployeePF(c.EmployeePF)
	}
	return c
}

// Normalize coerces negative values to zero and, in percentage mode, applies the
// statutory ceilings (100% per component, 4.81% gratuity, 14% NPS).
func (c ComponentConfig) Normalize(mode InputMode) ComponentConfig {
	nonNeg := func(d decimal.Decimal) decimal.Decimal {
		if d.IsNegative() {
			return decimal.Zero
		}
		return d
	}
	c.Basic = nonNeg(c.Basic)
	c.HRA = nonNeg(c.HRA)
	c.DA = nonNeg(c.DA)
	c.EmployeePF = nonNeg(c.EmployeePF)
	c.EmployerPF = nonNeg(c.EmployerPF)
	c.Gratuity = nonNeg(c.Gratuity)
	c.Insurance = nonNeg(c.Insurance)
	c.Other = nonNeg(c.Other)
	c.NPS = nonNeg(c.NPS)
	c.ProfTax = nonNeg(c.ProfTax)

	if mode != ModePercentage {
		return c
	}
	c.Basic = decimal.Min(c.Basic, MaxComponentPercent)
	c.HRA = decimal.Min(c.HRA, MaxComponentPercent)
	c.DA = decimal.Min(c.DA, MaxComponentPercent)
	c.EmployeePF = decimal.Min(c.EmployeePF, MaxComponentPercent)
	c.EmployerPF = decimal.Min(c.EmployerPF, MaxComponentPercent)
	c.Insurance = decimal.Min(c.Insurance, MaxComponentPercent)
	c.Other = decimal.Min(c.Other, MaxComponentPercent)
	c.Gratuity = decimal.Min(c.Gratuity, MaxGratuityPercent)
	c.NPS = decimal.Min(c.NPS, MaxNPSPercent)
	return c
}

// CoerceAmount parses a user-supplied number. Missing or non-numeric input becomes zero.
func CoerceAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseComponentConfig builds a ComponentConfig from loosely typed name/value pairs.
// Unknown names are ignored and unparseable values become zero.
func ParseComponentConfig(values map[string]string) ComponentConfig {
	var c ComponentConfig
	for name, raw := range values {
		v := CoerceAmount(raw)
		switch strings.ToLower(name) {
		case "basic":
			c.Basic = v
		case "hra":
			c.HRA = v
		case "da":
			c.DA = v
		case "emppf", "employee_pf", "employeepf":
			c.EmployeePF = v
		case "emplrpf", "employer_pf", "employerpf":
			c.EmployerPF = v
		case "gratuity":
			c.Gratuity = v
		case "insurance":
			c.Insurance = v
		case "other":
			c.Other = v
		case "nps":
			c.NPS = v
		case "proftax", "prof_tax", "professional_tax":
			c.ProfTax = v
		}
	}
	return c
}

// DecomposeOptions are the per-call-site switches of the decomposition engine
type DecomposeOptions struct {
	IncludeEmployerPF bool `yaml:"include_employer_pf" json:"includeEmployerPF"`
	// DAReducesSpecial subtracts DA from the CTC residual before special allowance is derived.
	DAReducesSpecial bool `yaml:"da_reduces_special" json:"daReducesSpecial"`
}

// ResolvedComponents are the absolute annual amounts produced by decomposition
type ResolvedComponents struct {
	Basic       decimal.Decimal `json:"basic"`
	HRA         decimal.Decimal `json:"hra"`
	DA          decimal.Decimal `json:"da"`
	EmployeePF  decimal.Decimal `json:"empPF"`
	EmployerPF  decimal.Decimal `json:"emplrPF"`
	Gratuity    decimal.Decimal `json:"gratuity"`
	Insurance   decimal.Decimal `json:"insurance"`
	Other       decimal.Decimal `json:"other"`
	NPS         decimal.Decimal `json:"nps"`
	Special     decimal.Decimal `json:"special"`
	ProfTax     decimal.Decimal `json:"profTax"`
	GrossSalary decimal.Decimal `json:"grossSalary"`
}

// DeductionInputs carry the employee-side facts the old regime needs
type DeductionInputs struct {
	RentPaid decimal.Decimal `yaml:"rent_paid" json:"rentPaid"`
	Metro    bool            `yaml:"metro" json:"metro"`
}

// SalaryInput is the full, immutable input of one forward computation
type SalaryInput struct {
	CTC        decimal.Decimal  `yaml:"ctc" json:"ctc"`
	Regime     RegimeName       `yaml:"regime" json:"regime"`
	Variant    string           `yaml:"variant" json:"variant"`
	Components ComponentConfig  `yaml:"components" json:"components"`
	Mode       InputMode        `yaml:"mode" json:"mode"`
	Options    DecomposeOptions `yaml:"options" json:"options"`
	Deductions DeductionInputs  `yaml:"deductions" json:"deductions"`
}

// DefaultSalaryInput returns an input using the default component structure
func DefaultSalaryInput(ctc decimal.Decimal, regime RegimeName) SalaryInput {
	return SalaryInput{
		CTC:        ctc,
		Regime:     regime,
		Components: DefaultComponentConfig(),
		Mode:       ModePercentage,
		Options:    DecomposeOptions{IncludeEmployerPF: true},
	}
}

// WithCTC returns a copy of the input with a different CTC
func (in SalaryInput) WithCTC(ctc decimal.Decimal) SalaryInput {
	in.CTC = ctc
	return in
}

// WithRegime returns a copy of the input under a different regime
func (in SalaryInput) WithRegime(regime RegimeName) SalaryInput {
	in.Regime = regime
	return in
}

// SalaryComponents are the cash components paid to the employee
type SalaryComponents struct {
	Basic   decimal.Decimal `json:"basic"`
	HRA     decimal.Decimal `json:"hra"`
	Special decimal.Decimal `json:"special"`
	DA      decimal.Decimal `json:"da,omitempty"`
}

// Deductions are the amounts withheld from gross salary
type Deductions struct {
	EmployeePF   decimal.Decimal `json:"employeePF"`
	NPSDeduction decimal.Decimal `json:"npsDeduction"`
	ProfTax      decimal.Decimal `json:"profTax"`
	TotalTax     decimal.Decimal `json:"totalTax"`
	Total        decimal.Decimal `json:"total"`
}

// TaxCalc captures how the final tax was reached
type TaxCalc struct {
	TaxableIncome     decimal.Decimal `json:"taxableIncome"`
	StandardDeduction decimal.Decimal `json:"standardDeduction"`
	HRAExemption      decimal.Decimal `json:"hraExemption"`
	Section80C        decimal.Decimal `json:"section80C"`
	Section80CCD1B    decimal.Decimal `json:"section80CCD1B"`
	TaxBeforeCharges  decimal.Decimal `json:"taxBeforeCharges"`
	Surcharge         decimal.Decimal `json:"surcharge"`
	Cess              decimal.Decimal `json:"cess"`
	Rebate            decimal.Decimal `json:"rebate"`
	FinalTax          decimal.Decimal `json:"finalTax"`
	SlabBreakdown     []SlabAmount    `json:"slabBreakdown"`
}

// SalaryBreakdown is an immutable snapshot of one forward computation
type SalaryBreakdown struct {
	CTC               decimal.Decimal  `json:"ctc"`
	Regime            RegimeName       `json:"regime"`
	Variant           string           `json:"variant"`
	Components        SalaryComponents `json:"components"`
	GrossSalary       decimal.Decimal  `json:"grossSalary"`
	EmployerPF        decimal.Decimal  `json:"employerPF"`
	EmployerGratuity  decimal.Decimal  `json:"employerGratuity"`
	InsuranceEmployer decimal.Decimal  `json:"insuranceEmployer"`
	NPSEmployer       decimal.Decimal  `json:"npsEmployer"`
	OtherEmployer     decimal.Decimal  `json:"otherEmployer"`
	Deductions        Deductions       `json:"deductions"`
	TaxCalc           TaxCalc          `json:"taxCalc"`
	NetInHandYearly   decimal.Decimal  `json:"netInHandYearly"`
	NetInHandMonthly  decimal.Decimal  `json:"netInHandMonthly"`
	EffectiveTaxRate  decimal.Decimal  `json:"effectiveTaxRate"`
	Advisories        []Advisory       `json:"advisories,omitempty"`
}

// HasAdvisory reports whether an advisory with the code is attached
func (b *SalaryBreakdown) HasAdvisory(code AdvisoryCode) bool {
	for _, a := range b.Advisories {
		if a.Code == code {
			return true
		}
	}
	return false
}

// AdvisoryCode classifies a non-fatal condition callers may surface to users
type AdvisoryCode string

const (
	AdvisoryInvalidCTC    AdvisoryCode = "invalid_ctc"
	AdvisoryInvalidTarget AdvisoryCode = "invalid_target"
	AdvisoryPercentageSum AdvisoryCode = "percentage_sum"
	AdvisoryNotConverged  AdvisoryCode = "not_converged"
)

// Advisory is a non-fatal warning attached to a result
type Advisory struct {
	Code    AdvisoryCode `json:"code"`
	Message string       `json:"message"`
}
