package solver

import (
	"context"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
)

// SolveAcrossRegimes solves the same target under both regimes and reports which one
// reaches it at the lower CTC
func (s *Solver) SolveAcrossRegimes(ctx context.Context, targetMonthly decimal.Decimal, in domain.SalaryInput) (*RegimeSolveResult, error) {
	oldResult, err := s.SolveForCTC(ctx, targetMonthly, in.WithRegime(domain.RegimeOld))
	if err != nil {
		return nil, err
	}
	newResult, err := s.SolveForCTC(ctx, targetMonthly, in.WithRegime(domain.RegimeNew))
	if err != nil {
		return nil, err
	}

	out := &RegimeSolveResult{
		TargetMonthly: targetMonthly,
		Old:           oldResult,
		New:           newResult,
		Cheaper:       domain.RegimeNew,
	}
	if oldResult.CTC.LessThan(newResult.CTC) {
		out.Cheaper = domain.RegimeOld
	}
	out.CTCSavings = oldResult.CTC.Sub(newResult.CTC).Abs()
	return out, nil
}
