package compare

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
)

// CompareEngine orchestrates offer comparison, hike projection and regime comparison
type CompareEngine struct {
	CalcEngine        *calculation.Engine
	MetricsCalculator *MetricsCalculator
	// Variant is the regime table offers and hikes are computed with
	Variant string
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	if calcEngine == nil {
		calcEngine = calculation.NewDefaultEngine()
	}
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		Variant:           calculation.VariantComparison,
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseOfferName string // Offer the others are compared against; defaults to the first
	ConfigPath    string
}

// Compare runs the offers of a configuration file against each other
func (ce *CompareEngine) Compare(ctx context.Context, config *domain.Configuration, options CompareOptions) (*ComparisonSet, error) {
	return ce.CompareOffers(ctx, config.Salary, config.Offers, options)
}

// CompareOffers computes every offer on top of the base input and diffs them against the base offer
func (ce *CompareEngine) CompareOffers(ctx context.Context, base domain.SalaryInput, offers []domain.Offer, options CompareOptions) (*ComparisonSet, error) {
	if len(offers) < 2 {
		return nil, errors.New("at least two offers are required for a comparison")
	}

	baseIndex := 0
	if options.BaseOfferName != "" {
		baseIndex = -1
		for i := range offers {
			if offers[i].Name == options.BaseOfferName {
				baseIndex = i
				break
			}
		}
		if baseIndex < 0 {
			return nil, fmt.Errorf("base offer %s not found", options.BaseOfferName)
		}
	}

	results := make([]ComparisonResult, len(offers))
	for i, offer := range offers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("comparison cancelled: %w", ctx.Err())
		default:
		}

		name := offer.Name
		if name == "" {
			name = fmt.Sprintf("Offer %d", i+1)
		}
		if !offer.CTC.IsPositive() {
			return nil, fmt.Errorf("offer %s: ctc must be greater than zero", name)
		}

		in := offer.Apply(base)
		in.Variant = ce.Variant
		results[i] = ce.MetricsCalculator.CalculateMetrics(name, ce.CalcEngine.Forward(in))
	}

	baseResult := results[baseIndex]
	alternatives := make([]ComparisonResult, 0, len(results)-1)
	for i, r := range results {
		if i == baseIndex {
			continue
		}
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(r, baseResult))
	}

	compSet := &ComparisonSet{
		BaseOfferName:      baseResult.OfferName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
		ConfigPath:         options.ConfigPath,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

// ProjectHike re-runs the forward calculator at the raised CTC and diffs it with the current package
func (ce *CompareEngine) ProjectHike(current domain.SalaryInput, hikePercent decimal.Decimal) *HikeProjection {
	current.Variant = ce.Variant
	newCTC := current.CTC.Mul(hundred.Add(hikePercent)).Div(hundred)

	before := ce.CalcEngine.Forward(current)
	after := ce.CalcEngine.Forward(current.WithCTC(newCTC))

	p := &HikeProjection{
		HikePercent:     hikePercent,
		CurrentCTC:      current.CTC,
		NewCTC:          newCTC,
		Current:         before,
		Projected:       after,
		MonthlyIncrease: after.NetInHandMonthly.Sub(before.NetInHandMonthly),
		YearlyIncrease:  after.NetInHandYearly.Sub(before.NetInHandYearly),
		TaxIncrease:     after.TaxCalc.FinalTax.Sub(before.TaxCalc.FinalTax),
	}
	if before.NetInHandYearly.IsPositive() {
		p.EffectiveHikePercent = p.YearlyIncrease.Div(before.NetInHandYearly).Mul(hundred)
	}
	return p
}

// CompareRegimes computes the same input under both regimes and recommends the higher take-home.
// Ties go to the new regime.
func (ce *CompareEngine) CompareRegimes(in domain.SalaryInput) *RegimeComparison {
	oldB := ce.CalcEngine.Forward(in.WithRegime(domain.RegimeOld))
	newB := ce.CalcEngine.Forward(in.WithRegime(domain.RegimeNew))

	rc := &RegimeComparison{
		CTC:         in.CTC,
		Old:         oldB,
		New:         newB,
		Recommended: domain.RegimeNew,
	}
	if oldB.NetInHandYearly.GreaterThan(newB.NetInHandYearly) {
		rc.Recommended = domain.RegimeOld
	}
	rc.YearlySavings = oldB.NetInHandYearly.Sub(newB.NetInHandYearly).Abs()
	rc.MonthlySavings = rc.YearlySavings.Div(decimal.NewFromInt(12))
	return rc
}
