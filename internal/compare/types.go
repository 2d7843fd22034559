package compare

import (
	"fmt"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/pkg/inr"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComparisonResult represents a single offer with calculated metrics
type ComparisonResult struct {
	OfferName   string                  `json:"offerName"`
	Description string                  `json:"description,omitempty"`
	Breakdown   *domain.SalaryBreakdown `json:"breakdown"`

	// Key Metrics
	CTC                decimal.Decimal `json:"ctc"`
	GrossSalary        decimal.Decimal `json:"grossSalary"`
	NetInHandYearly    decimal.Decimal `json:"netInHandYearly"`
	NetInHandMonthly   decimal.Decimal `json:"netInHandMonthly"`
	AnnualTax          decimal.Decimal `json:"annualTax"`
	EffectiveTaxRate   decimal.Decimal `json:"effectiveTaxRate"`
	RetirementBenefits decimal.Decimal `json:"retirementBenefits"` // employer PF + gratuity + NPS
	InHandRatio        decimal.Decimal `json:"inHandRatio"`        // net yearly as % of CTC

	// Comparison to Base
	CTCDiffFromBase decimal.Decimal `json:"ctcDiffFromBase"`
	NetDiffFromBase decimal.Decimal `json:"netDiffFromBase"`
	NetPctFromBase  decimal.Decimal `json:"netPctFromBase"`
	TaxDiffFromBase decimal.Decimal `json:"taxDiffFromBase"`
}

// ComparisonSet represents a collection of offer comparisons
type ComparisonSet struct {
	BaseOfferName      string             `json:"baseOfferName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath"`
}

// All returns the base followed by the alternatives
func (cs *ComparisonSet) All() []ComparisonResult {
	out := make([]ComparisonResult, 0, len(cs.AlternativeResults)+1)
	if cs.BaseResult != nil {
		out = append(out, *cs.BaseResult)
	}
	return append(out, cs.AlternativeResults...)
}

// HikeProjection compares the current package with the package after a raise
type HikeProjection struct {
	HikePercent          decimal.Decimal         `json:"hikePercent"`
	CurrentCTC           decimal.Decimal         `json:"currentCTC"`
	NewCTC               decimal.Decimal         `json:"newCTC"`
	Current              *domain.SalaryBreakdown `json:"current"`
	Projected            *domain.SalaryBreakdown `json:"projected"`
	MonthlyIncrease      decimal.Decimal         `json:"monthlyIncrease"`
	YearlyIncrease       decimal.Decimal         `json:"yearlyIncrease"`
	TaxIncrease          decimal.Decimal         `json:"taxIncrease"`
	EffectiveHikePercent decimal.Decimal         `json:"effectiveHikePercent"` // in-hand growth
}

// RegimeComparison is one CTC computed under both regimes
type RegimeComparison struct {
	CTC            decimal.Decimal         `json:"ctc"`
	Old            *domain.SalaryBreakdown `json:"old"`
	New            *domain.SalaryBreakdown `json:"new"`
	Recommended    domain.RegimeName       `json:"recommended"`
	YearlySavings  decimal.Decimal         `json:"yearlySavings"`
	MonthlySavings decimal.Decimal         `json:"monthlySavings"`
}

// MetricsCalculator extracts key metrics from salary breakdowns
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for one offer
func (mc *MetricsCalculator) CalculateMetrics(name string, b *domain.SalaryBreakdown) ComparisonResult {
	result := ComparisonResult{
		OfferName:          name,
		Breakdown:          b,
		CTC:                b.CTC,
		GrossSalary:        b.GrossSalary,
		NetInHandYearly:    b.NetInHandYearly,
		NetInHandMonthly:   b.NetInHandMonthly,
		AnnualTax:          b.TaxCalc.FinalTax,
		EffectiveTaxRate:   b.EffectiveTaxRate,
		RetirementBenefits: b.EmployerPF.Add(b.EmployerGratuity).Add(b.NPSEmployer),
	}
	if b.CTC.IsPositive() {
		result.InHandRatio = b.NetInHandYearly.Div(b.CTC).Mul(hundred)
	}
	return result
}

// CalculateComparison computes comparison metrics between an offer and the base
func (mc *MetricsCalculator) CalculateComparison(offer, base ComparisonResult) ComparisonResult {
	offer.CTCDiffFromBase = offer.CTC.Sub(base.CTC)
	offer.NetDiffFromBase = offer.NetInHandYearly.Sub(base.NetInHandYearly)

	if !base.NetInHandYearly.IsZero() {
		offer.NetPctFromBase = offer.NetDiffFromBase.
			Div(base.NetInHandYearly).
			Mul(hundred)
	}

	offer.TaxDiffFromBase = offer.AnnualTax.Sub(base.AnnualTax)
	return offer
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 || compSet.BaseResult == nil {
		return recommendations
	}

	// Best take-home
	bestNet := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.NetInHandYearly.GreaterThan(bestNet.NetInHandYearly) {
			bestNet = alt
		}
	}
	if bestNet != compSet.BaseResult {
		diff := bestNet.NetInHandYearly.Sub(compSet.BaseResult.NetInHandYearly)
		recommendations = append(recommendations,
			"Best Take-Home: "+bestNet.OfferName+" pays "+inr.Format(diff)+
				" more in hand per year ("+inr.Format(diff.Div(decimal.NewFromInt(12)))+" a month) than "+compSet.BaseOfferName)
	}

	// Best retirement benefits
	bestRetirement := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.RetirementBenefits.GreaterThan(bestRetirement.RetirementBenefits) {
			bestRetirement = alt
		}
	}
	if bestRetirement != compSet.BaseResult {
		diff := bestRetirement.RetirementBenefits.Sub(compSet.BaseResult.RetirementBenefits)
		recommendations = append(recommendations,
			"Best Retirement Benefits: "+bestRetirement.OfferName+" adds "+inr.Format(diff)+
				" a year in employer PF, gratuity and NPS")
	}

	// Most tax efficient
	bestRatio := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.InHandRatio.GreaterThan(bestRatio.InHandRatio) {
			bestRatio = alt
		}
	}
	if bestRatio != compSet.BaseResult {
		recommendations = append(recommendations,
			fmt.Sprintf("Most Efficient Structure: %s keeps %s%% of CTC in hand", bestRatio.OfferName, bestRatio.InHandRatio.StringFixed(1)))
	}

	return recommendations
}
