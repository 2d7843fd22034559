package calculation

import (
	"fmt"
	"time"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Statutory constants
var (
	pfRate              = decimal.NewFromFloat(0.12)
	epsRate             = decimal.NewFromFloat(0.0833)
	epsWageCeiling      = decimal.NewFromInt(15000)
	bonusMinRate        = decimal.NewFromFloat(0.0833)
	bonusMaxRate        = decimal.NewFromFloat(0.20)
	gratuityTaxFreeCap  = decimal.NewFromInt(2000000)
	gratuityMinYears    = 5
	gratuityDaysPerYear = decimal.NewFromInt(15)
	gratuityWorkingDays = decimal.NewFromInt(26)
)

// CalculatePF splits a monthly basic into employee PF, employer EPS and employer EPF.
// EPS is 8.33% of basic capped at the 15,000 wage ceiling; the rest of the employer's
// 12% goes to EPF.
func CalculatePF(basicMonthly decimal.Decimal) domain.PFContribution {
	basic := decimal.Max(decimal.Zero, basicMonthly)
	employee := basic.Mul(pfRate)
	eps := decimal.Min(basic, epsWageCeiling).Mul(epsRate)
	epf := basic.Mul(pfRate).Sub(eps)
	return domain.PFContribution{
		BasicMonthly: basic,
		Employee:     employee,
		EmployerEPS:  eps,
		EmployerEPF:  epf,
		Total:        employee.Add(eps).Add(epf),
	}
}

// CalculateGratuity applies (15 x basic x years) / 26 to the last drawn monthly basic
func CalculateGratuity(basicMonthly decimal.Decimal, years int) domain.GratuityResult {
	basic := decimal.Max(decimal.Zero, basicMonthly)
	if years < 0 {
		years = 0
	}
	amount := gratuityDaysPerYear.
		Mul(basic).
		Mul(decimal.NewFromInt(int64(years))).
		Div(gratuityWorkingDays)
	return domain.GratuityResult{
		BasicMonthly:   basic,
		Years:          years,
		Eligible:       years >= gratuityMinYears,
		Amount:         amount,
		TaxFreeCeiling: gratuityTaxFreeCap,
		TaxableAmount:  decimal.Max(decimal.Zero, amount.Sub(gratuityTaxFreeCap)),
	}
}

// CalculateGratuityForService derives completed years of service from join and exit dates.
// A final part year of more than six months counts as a full year.
func CalculateGratuityForService(basicMonthly decimal.Decimal, joined, left time.Time) (domain.GratuityResult, error) {
	if left.Before(joined) {
		return domain.GratuityResult{}, fmt.Errorf("exit date %s is before join date %s",
			left.Format("2006-01-02"), joined.Format("2006-01-02"))
	}
	result := CalculateGratuity(basicMonthly, ServiceYears(joined, left))
	result.JoinDate = &joined
	result.ExitDate = &left
	return result, nil
}

// ServiceYears counts completed years between two dates, rounding a remainder over six months up
func ServiceYears(joined, left time.Time) int {
	months := (left.Year()-joined.Year())*12 + int(left.Month()) - int(joined.Month())
	if left.Day() < joined.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	years := months / 12
	if months%12 > 6 {
		years++
	}
	return years
}

// CalculateHRAExemption evaluates all three legs even with zero rent, so zero rent exempts nothing
func CalculateHRAExemption(basic, hraReceived, rentPaid decimal.Decimal, metro bool) domain.HRAExemptionResult {
	share := decimal.NewFromFloat(0.40)
	if metro {
		share = decimal.NewFromFloat(0.50)
	}
	basicShare := basic.Mul(share)
	rentOver := decimal.Max(decimal.Zero, rentPaid.Sub(basic.Mul(decimal.NewFromFloat(0.10))))

	exempt := decimal.Max(decimal.Zero, decimal.Min(hraReceived, basicShare, rentOver))
	var limiting string
	switch {
	case exempt.Equal(hraReceived):
		limiting = "actual HRA received"
	case exempt.Equal(basicShare):
		limiting = fmt.Sprintf("%s%% of basic", share.Mul(hundred).StringFixed(0))
	default:
		limiting = "rent paid over 10% of basic"
	}

	return domain.HRAExemptionResult{
		ActualHRA:      hraReceived,
		BasicShare:     basicShare,
		RentOverTenPct: rentOver,
		Exempt:         exempt,
		Taxable:        decimal.Max(decimal.Zero, hraReceived.Sub(exempt)),
		Metro:          metro,
		LimitingFactor: limiting,
	}
}

// CalculateBonus returns the statutory 8.33% to 20% bonus range and, when customPercent
// is given, the bonus at that percentage of basic.
func CalculateBonus(basic decimal.Decimal, customPercent *decimal.Decimal) domain.BonusResult {
	result := domain.BonusResult{
		Basic:   basic,
		Minimum: basic.Mul(bonusMinRate),
		Maximum: basic.Mul(bonusMaxRate),
	}
	if customPercent != nil {
		custom := customPercent.Mul(basic).Div(hundred)
		result.Custom = &custom
	}
	return result
}

// CalculateLTA exempts the lesser of the allowance received and the actual travel cost
func CalculateLTA(received, actualCost decimal.Decimal) domain.LTAResult {
	exempt := decimal.Max(decimal.Zero, decimal.Min(received, actualCost))
	return domain.LTAResult{
		Received: received,
		Actual:   actualCost,
		Exempt:   exempt,
		Taxable:  decimal.Max(decimal.Zero, received.Sub(exempt)),
	}
}
