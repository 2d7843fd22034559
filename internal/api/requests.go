package api

import (
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
)

// newSalaryInput returns the defaults a request body is decoded over
func newSalaryInput() domain.SalaryInput {
	return domain.SalaryInput{
		Regime:  domain.RegimeNew,
		Mode:    domain.ModePercentage,
		Options: domain.DecomposeOptions{IncludeEmployerPF: true},
	}
}

type reverseRequest struct {
	TargetMonthly decimal.Decimal `json:"targetMonthly"`
	domain.SalaryInput
}

type offersRequest struct {
	Base      domain.SalaryInput `json:"base"`
	Offers    []domain.Offer     `json:"offers"`
	BaseOffer string             `json:"baseOffer"`
}

type hikeRequest struct {
	Current domain.SalaryInput `json:"current"`
	Percent decimal.Decimal    `json:"percent"`
}

type taxRequest struct {
	TaxableIncome decimal.Decimal   `json:"taxableIncome"`
	Regime        domain.RegimeName `json:"regime"`
	Variant       string            `json:"variant"`
}

type taxResponse struct {
	Regime  domain.RegimeName `json:"regime"`
	Variant string            `json:"variant"`
	domain.TaxResult
}

type regimesResponse struct {
	DefaultVariant string                `json:"defaultVariant"`
	Variants       []string              `json:"variants"`
	Regimes        []domain.RegimeConfig `json:"regimes"`
}

type cityIndex struct {
	City  string          `json:"city"`
	Index decimal.Decimal `json:"index"`
}

type pfRequest struct {
	BasicMonthly decimal.Decimal `json:"basicMonthly"`
}

type gratuityRequest struct {
	BasicMonthly decimal.Decimal `json:"basicMonthly"`
	Years        int             `json:"years"`
	// JoinDate and ExitDate (YYYY-MM-DD) take precedence over Years when both are set
	JoinDate string `json:"joinDate"`
	ExitDate string `json:"exitDate"`
}

type hraRequest struct {
	Basic    decimal.Decimal `json:"basic"`
	HRA      decimal.Decimal `json:"hra"`
	RentPaid decimal.Decimal `json:"rentPaid"`
	Metro    bool            `json:"metro"`
}

type bonusRequest struct {
	Basic         decimal.Decimal  `json:"basic"`
	CustomPercent *decimal.Decimal `json:"customPercent"`
}

type ltaRequest struct {
	Received decimal.Decimal `json:"received"`
	Actual   decimal.Decimal `json:"actual"`
}

type costOfLivingRequest struct {
	Salary   decimal.Decimal `json:"salary"`
	FromCity string          `json:"fromCity"`
	ToCity   string          `json:"toCity"`
}
