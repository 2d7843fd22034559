package solver

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Solver finds the CTC that produces a target monthly take-home
type Solver struct {
	Engine  *calculation.Engine
	Options SolverOptions
}

// NewSolver creates a new reverse solver
func NewSolver(engine *calculation.Engine, options SolverOptions) *Solver {
	if engine == nil {
		engine = calculation.NewDefaultEngine()
	}
	return &Solver{
		Engine:  engine,
		Options: options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(engine *calculation.Engine) *Solver {
	return NewSolver(engine, DefaultSolverOptions())
}

// SolveForCTC bisects CTC over [target x LowerMultiple, target x UpperMultiple] holding the
// rest of the input fixed. Net in-hand is assumed non-decreasing in CTC; when a rebate or
// surcharge cliff breaks that, the last evaluated breakdown is returned with a not_converged
// advisory instead of an error. The only errors are invalid options and cancellation.
func (s *Solver) SolveForCTC(ctx context.Context, targetMonthly decimal.Decimal, in domain.SalaryInput) (*Result, error) {
	if err := s.Options.Validate(); err != nil {
		return nil, err
	}

	if targetMonthly.LessThanOrEqual(decimal.Zero) {
		b := s.Engine.Forward(in.WithCTC(decimal.Zero))
		b.Advisories = []domain.Advisory{{
			Code:    domain.AdvisoryInvalidTarget,
			Message: "target monthly in-hand must be greater than zero",
		}}
		return &Result{
			TargetMonthly: targetMonthly,
			Breakdown:     b,
			Residual:      b.NetInHandMonthly.Sub(targetMonthly),
		}, nil
	}

	low := targetMonthly.Mul(s.Options.LowerMultiple)
	high := targetMonthly.Mul(s.Options.UpperMultiple)
	result := &Result{TargetMonthly: targetMonthly, LowerCTC: low, UpperCTC: high}

	for result.Iterations < s.Options.MaxIterations {
		select {
		case <-ctx.Done():
			return nil, &SolveError{
				Operation: "solve_for_ctc",
				Message:   fmt.Sprintf("cancelled after %d iterations", result.Iterations),
				Cause:     ctx.Err(),
			}
		default:
		}
		result.Iterations++

		mid := low.Add(high).Div(two)
		b := s.Engine.Forward(in.WithCTC(mid))
		result.CTC = mid
		result.Breakdown = b
		result.Residual = b.NetInHandMonthly.Sub(targetMonthly)

		if result.Residual.Abs().LessThan(s.Options.Tolerance) {
			result.Converged = true
			break
		}
		if result.Residual.IsNegative() {
			low = mid
		} else {
			high = mid
		}
	}

	s.Engine.Logger.Debugf("solve target=%s ctc=%s iterations=%d residual=%s converged=%t",
		targetMonthly.StringFixed(2), result.CTC.StringFixed(2), result.Iterations, result.Residual.StringFixed(4), result.Converged)

	if !result.Converged {
		msg := fmt.Sprintf("no CTC within %s of the target after %d iterations (residual %s)",
			s.Options.Tolerance.String(), result.Iterations, result.Residual.StringFixed(2))
		result.Breakdown.Advisories = append(result.Breakdown.Advisories, domain.Advisory{
			Code:    domain.AdvisoryNotConverged,
			Message: msg,
		})
	}
	return result, nil
}
