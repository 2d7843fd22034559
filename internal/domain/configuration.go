package domain

import (
	"github.com/shopspring/decimal"
)

// Configuration is the top-level salary input file
type Configuration struct {
	Salary        SalaryInput     `yaml:",inline" json:"salary"`
	TargetMonthly decimal.Decimal `yaml:"target_monthly" json:"targetMonthly"`
	Offers        []Offer         `yaml:"offers,omitempty" json:"offers,omitempty"`
	Hike          *HikeConfig     `yaml:"hike,omitempty" json:"hike,omitempty"`
	Solver        *SolverSettings `yaml:"solver,omitempty" json:"solver,omitempty"`
	RegimeFile    string          `yaml:"regime_file,omitempty" json:"regimeFile,omitempty"`
}

// Offer is one job offer to compare. Unset fields inherit from the base salary input.
type Offer struct {
	Name       string            `yaml:"name" json:"name"`
	CTC        decimal.Decimal   `yaml:"ctc" json:"ctc"`
	Components *ComponentConfig  `yaml:"components,omitempty" json:"components,omitempty"`
	Mode       InputMode         `yaml:"mode,omitempty" json:"mode,omitempty"`
	Options    *DecomposeOptions `yaml:"options,omitempty" json:"options,omitempty"`
	Deductions *DeductionInputs  `yaml:"deductions,omitempty" json:"deductions,omitempty"`
}

// Apply overlays the offer onto a base input
func (o Offer) Apply(base SalaryInput) SalaryInput {
	in := base.WithCTC(o.CTC)
	if o.Components != nil {
		in.Components = *o.Components
	}
	if o.Mode != "" {
		in.Mode = o.Mode
	}
	if o.Options != nil {
		in.Options = *o.Options
	}
	if o.Deductions != nil {
		in.Deductions = *o.Deductions
	}
	return in
}

// HikeConfig describes a raise to project
type HikeConfig struct {
	Percent decimal.Decimal `yaml:"percent" json:"percent"`
}

// SolverSettings override the reverse calculator's search parameters
type SolverSettings struct {
	MaxIterations int             `yaml:"max_iterations" json:"maxIterations"`
	Tolerance     decimal.Decimal `yaml:"tolerance" json:"tolerance"`
}
