package solver

import (
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
)

// SolverOptions configures the bisection search
type SolverOptions struct {
	MaxIterations int             // Maximum bisection steps
	Tolerance     decimal.Decimal // Acceptable |net monthly - target|, in rupees
	LowerMultiple decimal.Decimal // Lower bracket = target x LowerMultiple
	UpperMultiple decimal.Decimal // Upper bracket = target x UpperMultiple
}

// DefaultSolverOptions returns the standard 30 step, one rupee search over [12x, 24x] the target
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		MaxIterations: 30,
		Tolerance:     decimal.NewFromInt(1),
		LowerMultiple: decimal.NewFromInt(12),
		UpperMultiple: decimal.NewFromInt(24),
	}
}

// WithSettings overlays configured solver settings; zero values keep the current option
func (o SolverOptions) WithSettings(s *domain.SolverSettings) SolverOptions {
	if s == nil {
		return o
	}
	if s.MaxIterations > 0 {
		o.MaxIterations = s.MaxIterations
	}
	if s.Tolerance.GreaterThan(decimal.Zero) {
		o.Tolerance = s.Tolerance
	}
	return o
}

// Validate checks the options describe a usable search
func (o SolverOptions) Validate() error {
	if o.MaxIterations <= 0 {
		return &SolveError{Operation: "validate_options", Message: "max iterations must be positive"}
	}
	if !o.Tolerance.GreaterThan(decimal.Zero) {
		return &SolveError{Operation: "validate_options", Message: "tolerance must be positive"}
	}
	if !o.LowerMultiple.GreaterThan(decimal.Zero) || !o.UpperMultiple.GreaterThan(o.LowerMultiple) {
		return &SolveError{Operation: "validate_options", Message: "bracket multiples must satisfy 0 < lower < upper"}
	}
	return nil
}

// Result is the outcome of a reverse (in-hand to CTC) search
type Result struct {
	TargetMonthly decimal.Decimal         `json:"targetMonthly"`
	CTC           decimal.Decimal         `json:"ctc"`
	Breakdown     *domain.SalaryBreakdown `json:"breakdown"`
	Iterations    int                     `json:"iterations"`
	// Residual is computed net monthly minus target
	Residual  decimal.Decimal `json:"residual"`
	Converged bool            `json:"converged"`
	LowerCTC  decimal.Decimal `json:"lowerCTC"`
	UpperCTC  decimal.Decimal `json:"upperCTC"`
}

// RegimeSolveResult holds the required CTC for the same target under both regimes
type RegimeSolveResult struct {
	TargetMonthly decimal.Decimal `json:"targetMonthly"`
	Old           *Result         `json:"old"`
	New           *Result         `json:"new"`
	// Cheaper is the regime that reaches the target at the lower CTC
	Cheaper    domain.RegimeName `json:"cheaper"`
	CTCSavings decimal.Decimal   `json:"ctcSavings"`
}

// SolveError represents errors from the reverse solver
type SolveError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *SolveError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *SolveError) Unwrap() error {
	return e.Cause
}
