package calculation

import (
	"fmt"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/pkg/inr"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Slabs are marginal: each bracket taxes only the income between the previous
//    bound and its own upper bound.
//
// 2. Surcharge applies to slab tax only, chosen by the highest income band exceeded.
//    No marginal relief is modelled at band edges.
//
// 3. Health and education cess is a flat 4% of slab tax plus surcharge.
//
// 4. Rebates (section 87A style) are applied afterwards by ApplyRebate and operate on
//    the cess-inclusive final tax. Cess is not recomputed.

var (
	hundred     = decimal.NewFromInt(100)
	twelve      = decimal.NewFromInt(12)
	defaultCess = decimal.NewFromFloat(0.04)
)

// ComputeTax applies a slab table, surcharge schedule and the default 4% cess to taxable income
func ComputeTax(taxableIncome decimal.Decimal, slabs domain.SlabTable, surcharge domain.SurchargeSchedule) domain.TaxResult {
	return computeTaxWithCess(taxableIncome, slabs, surcharge, defaultCess)
}

// ComputeRegimeTax runs the progressive calculator with a regime's own slabs, surcharge and
// cess. A zero CessRate means no cess.
func ComputeRegimeTax(taxableIncome decimal.Decimal, regime domain.RegimeConfig) domain.TaxResult {
	return computeTaxWithCess(taxableIncome, regime.Slabs, regime.Surcharge, regime.CessRate)
}

// DefaultCessRate is the 4% health and education cess
func DefaultCessRate() decimal.Decimal {
	return defaultCess
}

func computeTaxWithCess(taxableIncome decimal.Decimal, slabs domain.SlabTable, surcharge domain.SurchargeSchedule, cessRate decimal.Decimal) domain.TaxResult {
	result := domain.TaxResult{SlabBreakdown: []domain.SlabAmount{}}
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return result
	}

	var totalTax decimal.Decimal
	previousBound := decimal.Zero
	for _, slab := range slabs.Slabs {
		if taxableIncome.LessThanOrEqual(previousBound) {
			break
		}

		upper := taxableIncome
		if !slab.IsUnbounded() {
			upper = decimal.Min(taxableIncome, *slab.UpperBound)
		}
		amountInSlab := upper.Sub(previousBound)
		if amountInSlab.GreaterThan(decimal.Zero) {
			slabTax := amountInSlab.Mul(slab.Rate)
			totalTax = totalTax.Add(slabTax)
			result.SlabBreakdown = append(result.SlabBreakdown, domain.SlabAmount{
				Range:       slabRange(previousBound, slab),
				RatePercent: slab.Rate.Mul(hundred),
				Amount:      amountInSlab,
				Tax:         slabTax,
			})
		}

		if slab.IsUnbounded() {
			break
		}
		previousBound = *slab.UpperBound
	}

	result.TaxBeforeCharges = totalTax
	result.Surcharge = totalTax.Mul(surcharge.RateFor(taxableIncome))
	result.Cess = totalTax.Add(result.Surcharge).Mul(cessRate)
	result.FinalTax = totalTax.Add(result.Surcharge).Add(result.Cess)
	return result
}

// slabRange renders a bracket as "3,00,000 - 6,00,000" or "15,00,000+"
func slabRange(lower decimal.Decimal, slab domain.TaxSlab) string {
	if slab.IsUnbounded() {
		return fmt.Sprintf("%s+", inr.Group(lower))
	}
	return fmt.Sprintf("%s - %s", inr.Group(lower), inr.Group(*slab.UpperBound))
}

// ApplyRebate applies the regime's rebate rule to a computed result.
// Full rebate regimes zero the tax outright; flat rebate regimes subtract the rebate
// amount from the cess-inclusive final tax, clamped at zero.
func ApplyRebate(regime domain.RegimeConfig, taxableIncome decimal.Decimal, result domain.TaxResult) domain.TaxResult {
	if taxableIncome.GreaterThan(regime.RebateThreshold) {
		return result
	}
	if regime.FullRebate {
		result.RebateApplied = result.FinalTax
		result.FinalTax = decimal.Zero
		return result
	}
	after := decimal.Max(decimal.Zero, result.FinalTax.Sub(regime.RebateAmount))
	result.RebateApplied = result.FinalTax.Sub(after)
	result.FinalTax = after
	return result
}
