package calculation

import (
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Built-in regime variants. They differ in the second new-regime boundary, the standard
// deduction and the surcharge bands, and are never merged.
const (
	VariantFY2024 = "fy2024-25"
	VariantFY2023 = "fy2023-24"
	// VariantComparison is the table used by offer comparison and hike projection.
	VariantComparison = "comparison"
)

func bound(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func rate(pct float64) decimal.Decimal {
	return decimal.NewFromFloat(pct).Div(hundred)
}

// BasicSurcharge has the two bands found in the comparison tables
func BasicSurcharge() domain.SurchargeSchedule {
	return domain.SurchargeSchedule{
		Name: "basic",
		Bands: []domain.SurchargeBand{
			{Threshold: decimal.NewFromInt(5000000), Rate: rate(10)},
			{Threshold: decimal.NewFromInt(10000000), Rate: rate(15)},
		},
	}
}

// FullSurcharge adds the 2Cr and 5Cr bands
func FullSurcharge() domain.SurchargeSchedule {
	return domain.SurchargeSchedule{
		Name: "full",
		Bands: []domain.SurchargeBand{
			{Threshold: decimal.NewFromInt(5000000), Rate: rate(10)},
			{Threshold: decimal.NewFromInt(10000000), Rate: rate(15)},
			{Threshold: decimal.NewFromInt(20000000), Rate: rate(25)},
			{Threshold: decimal.NewFromInt(50000000), Rate: rate(37)},
		},
	}
}

// OldRegimeSlabs is the 0/5/20/30 table
func OldRegimeSlabs() domain.SlabTable {
	return domain.SlabTable{
		Name: "old",
		Slabs: []domain.TaxSlab{
			{UpperBound: bound(250000), Rate: rate(0)},
			{UpperBound: bound(500000), Rate: rate(5)},
			{UpperBound: bound(1000000), Rate: rate(20)},
			{Rate: rate(30)},
		},
	}
}

// NewRegimeSlabs600K is the new-regime table with a 6L second boundary
func NewRegimeSlabs600K() domain.SlabTable {
	return domain.SlabTable{
		Name: "new-600k",
		Slabs: []domain.TaxSlab{
			{UpperBound: bound(300000), Rate: rate(0)},
			{UpperBound: bound(600000), Rate: rate(5)},
			{UpperBound: bound(900000), Rate: rate(10)},
			{UpperBound: bound(1200000), Rate: rate(15)},
			{UpperBound: bound(1500000), Rate: rate(20)},
			{Rate: rate(30)},
		},
	}
}

// NewRegimeSlabs700K is the new-regime table with a 7L second boundary
func NewRegimeSlabs700K() domain.SlabTable {
	return domain.SlabTable{
		Name: "new-700k",
		Slabs: []domain.TaxSlab{
			{UpperBound: bound(300000), Rate: rate(0)},
			{UpperBound: bound(700000), Rate: rate(5)},
			{UpperBound: bound(1000000), Rate: rate(10)},
			{UpperBound: bound(1200000), Rate: rate(15)},
			{UpperBound: bound(1500000), Rate: rate(20)},
			{Rate: rate(30)},
		},
	}
}

func oldRegime(variant string, surcharge domain.SurchargeSchedule) domain.RegimeConfig {
	return domain.RegimeConfig{
		Name:                domain.RegimeOld,
		Variant:             variant,
		Slabs:               OldRegimeSlabs(),
		Surcharge:           surcharge,
		StandardDeduction:   decimal.NewFromInt(50000),
		RebateThreshold:     decimal.NewFromInt(500000),
		RebateAmount:        decimal.NewFromInt(12500),
		CessRate:            defaultCess,
		Section80CLimit:     decimal.NewFromInt(150000),
		Section80CCD1BLimit: decimal.NewFromInt(50000),
	}
}

func newRegime(variant string, slabs domain.SlabTable, stdDeduction int64, surcharge domain.SurchargeSchedule) domain.RegimeConfig {
	return domain.RegimeConfig{
		Name:              domain.RegimeNew,
		Variant:           variant,
		Slabs:             slabs,
		Surcharge:         surcharge,
		StandardDeduction: decimal.NewFromInt(stdDeduction),
		RebateThreshold:   decimal.NewFromInt(700000),
		FullRebate:        true,
		CessRate:          defaultCess,
	}
}

// NewDefaultRegistry returns the built-in regime registry with fy2024-25 as default
func NewDefaultRegistry() *domain.RegimeRegistry {
	reg := domain.NewRegimeRegistry(VariantFY2024)
	builtIns := []domain.RegimeConfig{
		oldRegime(VariantFY2024, FullSurcharge()),
		newRegime(VariantFY2024, NewRegimeSlabs700K(), 75000, FullSurcharge()),
		oldRegime(VariantFY2023, FullSurcharge()),
		newRegime(VariantFY2023, NewRegimeSlabs600K(), 50000, FullSurcharge()),
		oldRegime(VariantComparison, BasicSurcharge()),
		newRegime(VariantComparison, NewRegimeSlabs600K(), 50000, BasicSurcharge()),
	}
	for _, cfg := range builtIns {
		// Built-in tables are known to validate
		_ = reg.Register(cfg)
	}
	return reg
}

// HRAExemption is the least of actual HRA, 50%/40% of basic and rent in excess of 10% of basic
func HRAExemption(basic, hraReceived, rentPaid decimal.Decimal, metro bool) decimal.Decimal {
	return CalculateHRAExemption(basic, hraReceived, rentPaid, metro).Exempt
}

// DeriveTaxableIncome applies the regime's deductions to gross salary
func DeriveTaxableIncome(regime domain.RegimeConfig, grossSalary decimal.Decimal, parts domain.ResolvedComponents, in domain.DeductionInputs) domain.TaxCalc {
	calc := domain.TaxCalc{StandardDeduction: regime.StandardDeduction}
	taxable := grossSalary.Sub(regime.StandardDeduction)

	if regime.Name == domain.RegimeOld {
		calc.HRAExemption = HRAExemption(parts.Basic, parts.HRA, in.RentPaid, in.Metro)
		calc.Section80C = decimal.Min(parts.EmployeePF, regime.Section80CLimit)
		calc.Section80CCD1B = decimal.Min(parts.NPS, regime.Section80CCD1BLimit)
		taxable = taxable.
			Sub(calc.HRAExemption).
			Sub(calc.Section80C).
			Sub(calc.Section80CCD1B).
			Sub(parts.ProfTax)
	}

	calc.TaxableIncome = decimal.Max(decimal.Zero, taxable)
	return calc
}

// TaxForRegime derives taxable income, runs the slab calculator and applies the rebate
func TaxForRegime(regime domain.RegimeConfig, parts domain.ResolvedComponents, in domain.DeductionInputs) domain.TaxCalc {
	calc := DeriveTaxableIncome(regime, parts.GrossSalary, parts, in)
	result := ComputeRegimeTax(calc.TaxableIncome, regime)
	result = ApplyRebate(regime, calc.TaxableIncome, result)

	calc.TaxBeforeCharges = result.TaxBeforeCharges
	calc.Surcharge = result.Surcharge
	calc.Cess = result.Cess
	calc.Rebate = result.RebateApplied
	calc.FinalTax = result.FinalTax
	calc.SlabBreakdown = result.SlabBreakdown
	return calc
}
