package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Offer",
		"Type",
		"CTC",
		"Gross Salary",
		"Net In-Hand Yearly",
		"Net In-Hand Monthly",
		"Annual Tax",
		"Effective Tax Rate",
		"Retirement Benefits",
		"CTC Diff from Base",
		"Net Diff from Base",
		"Net % Change",
		"Tax Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, offerType string) []string {
	return []string{
		result.OfferName,
		offerType,
		result.CTC.StringFixed(2),
		result.GrossSalary.StringFixed(2),
		result.NetInHandYearly.StringFixed(2),
		result.NetInHandMonthly.StringFixed(2),
		result.AnnualTax.StringFixed(2),
		result.EffectiveTaxRate.StringFixed(2),
		result.RetirementBenefits.StringFixed(2),
		result.CTCDiffFromBase.StringFixed(2),
		result.NetDiffFromBase.StringFixed(2),
		result.NetPctFromBase.StringFixed(2),
		result.TaxDiffFromBase.StringFixed(2),
	}
}
