package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PFContribution splits a monthly basic into the employee and employer provident fund shares
type PFContribution struct {
	BasicMonthly decimal.Decimal `json:"basicMonthly"`
	Employee     decimal.Decimal `json:"employee"`
	EmployerEPS  decimal.Decimal `json:"employerEPS"`
	EmployerEPF  decimal.Decimal `json:"employerEPF"`
	Total        decimal.Decimal `json:"total"`
}

// GratuityResult is the statutory gratuity payable on exit
type GratuityResult struct {
	BasicMonthly   decimal.Decimal `json:"basicMonthly"`
	Years          int             `json:"years"`
	JoinDate       *time.Time      `json:"joinDate,omitempty"`
	ExitDate       *time.Time      `json:"exitDate,omitempty"`
	Eligible       bool            `json:"eligible"`
	Amount         decimal.Decimal `json:"amount"`
	TaxFreeCeiling decimal.Decimal `json:"taxFreeCeiling"`
	TaxableAmount  decimal.Decimal `json:"taxableAmount"`
}

// HRAExemptionResult shows all three legs of the HRA exemption rule
type HRAExemptionResult struct {
	ActualHRA      decimal.Decimal `json:"actualHRA"`
	BasicShare     decimal.Decimal `json:"basicShare"`
	RentOverTenPct decimal.Decimal `json:"rentOverTenPercent"`
	Exempt         decimal.Decimal `json:"exempt"`
	Taxable        decimal.Decimal `json:"taxable"`
	Metro          bool            `json:"metro"`
	LimitingFactor string          `json:"limitingFactor"`
}

// BonusResult is the statutory bonus range for a basic salary
type BonusResult struct {
	Basic   decimal.Decimal  `json:"basic"`
	Minimum decimal.Decimal  `json:"minimum"`
	Maximum decimal.Decimal  `json:"maximum"`
	Custom  *decimal.Decimal `json:"custom,omitempty"`
}

// LTAResult splits leave travel allowance into exempt and taxable parts
type LTAResult struct {
	Received decimal.Decimal `json:"received"`
	Actual   decimal.Decimal `json:"actual"`
	Exempt   decimal.Decimal `json:"exempt"`
	Taxable  decimal.Decimal `json:"taxable"`
}

// CostOfLivingResult is a salary translated between two cities
type CostOfLivingResult struct {
	Salary     decimal.Decimal `json:"salary"`
	FromCity   string          `json:"fromCity"`
	ToCity     string          `json:"toCity"`
	FromIndex  decimal.Decimal `json:"fromIndex"`
	ToIndex    decimal.Decimal `json:"toIndex"`
	Equivalent decimal.Decimal `json:"equivalent"`
	Difference decimal.Decimal `json:"difference"`
}
