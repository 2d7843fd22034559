package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/pkg/inr"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing offers
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("OFFER COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Offer: %s\n", compSet.BaseOfferName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	// Column widths
	nameWidth := 20
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Offer",
		numWidth, "CTC",
		numWidth, "Monthly",
		numWidth, "Annual Tax",
		numWidth, "Retirement"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Deltas from base
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.OfferName))
			sb.WriteString(fmt.Sprintf("  CTC:              %s%s\n",
				tf.deltaSymbol(alt.CTCDiffFromBase), tf.formatDecimal(alt.CTCDiffFromBase)))
			sb.WriteString(fmt.Sprintf("  Take-Home:        %s%s (%s%%)\n",
				tf.deltaSymbol(alt.NetDiffFromBase),
				tf.formatDecimal(alt.NetDiffFromBase),
				alt.NetPctFromBase.StringFixed(1)))
			if !alt.TaxDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Tax Impact:       %s%s\n",
					tf.deltaSymbol(alt.TaxDiffFromBase),
					tf.formatDecimal(alt.TaxDiffFromBase)))
			}
		}
		sb.WriteString("\n")
	}

	// Recommendations
	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single offer row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.OfferName
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, tf.formatDecimal(result.CTC),
		numWidth, inr.Format(result.NetInHandMonthly),
		numWidth, tf.formatDecimal(result.AnnualTax),
		numWidth, tf.formatDecimal(result.RetirementBenefits))
}

// FormatHike renders a hike projection
func (tf *TableFormatter) FormatHike(p *HikeProjection) string {
	var sb strings.Builder

	sb.WriteString("HIKE PROJECTION\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Hike:                 %s%%\n", p.HikePercent.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("%-20s %18s %18s\n", "", "Current", "After Hike"))
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	sb.WriteString(fmt.Sprintf("%-20s %18s %18s\n", "CTC", inr.Format(p.CurrentCTC), inr.Format(p.NewCTC)))
	sb.WriteString(fmt.Sprintf("%-20s %18s %18s\n", "Monthly In-Hand",
		inr.Format(p.Current.NetInHandMonthly), inr.Format(p.Projected.NetInHandMonthly)))
	sb.WriteString(fmt.Sprintf("%-20s %18s %18s\n", "Annual Tax",
		inr.Format(p.Current.TaxCalc.FinalTax), inr.Format(p.Projected.TaxCalc.FinalTax)))
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Monthly Increase:     %s%s\n", tf.deltaSymbol(p.MonthlyIncrease), inr.Format(p.MonthlyIncrease)))
	sb.WriteString(fmt.Sprintf("Yearly Increase:      %s%s\n", tf.deltaSymbol(p.YearlyIncrease), inr.Format(p.YearlyIncrease)))
	sb.WriteString(fmt.Sprintf("In-Hand Growth:       %s%%\n", p.EffectiveHikePercent.StringFixed(2)))

	return sb.String()
}

// FormatRegimes renders an old versus new regime comparison
func (tf *TableFormatter) FormatRegimes(rc *RegimeComparison) string {
	var sb strings.Builder

	sb.WriteString("REGIME COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("CTC: %s (%s)\n\n", inr.Format(rc.CTC), inr.Compact(rc.CTC)))
	sb.WriteString(fmt.Sprintf("%-20s %18s %18s\n", "", "Old Regime", "New Regime"))
	sb.WriteString(strings.Repeat("-", 60) + "\n")

	rows := []struct {
		label          string
		oldVal, newVal decimal.Decimal
	}{
		{"Taxable Income", rc.Old.TaxCalc.TaxableIncome, rc.New.TaxCalc.TaxableIncome},
		{"Annual Tax", rc.Old.TaxCalc.FinalTax, rc.New.TaxCalc.FinalTax},
		{"Yearly In-Hand", rc.Old.NetInHandYearly, rc.New.NetInHandYearly},
		{"Monthly In-Hand", rc.Old.NetInHandMonthly, rc.New.NetInHandMonthly},
	}
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-20s %18s %18s\n", r.label, inr.Format(r.oldVal), inr.Format(r.newVal)))
	}
	sb.WriteString(strings.Repeat("-", 60) + "\n")

	if rc.YearlySavings.IsZero() {
		sb.WriteString("Both regimes give the same take-home.\n")
	} else {
		sb.WriteString(fmt.Sprintf("Recommended: %s regime, saving %s a year (%s a month)\n",
			tf.regimeLabel(rc.Recommended), inr.Format(rc.YearlySavings), inr.Format(rc.MonthlySavings)))
	}

	return sb.String()
}

func (tf *TableFormatter) regimeLabel(r domain.RegimeName) string {
	if r == domain.RegimeOld {
		return "old"
	}
	return "new"
}

// formatDecimal formats an amount in lakh/crore shorthand
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	return inr.Compact(d)
}

// deltaSymbol returns a + for positive deltas; negative amounts carry their own sign
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each offer
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseOfferName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		netChange := "="
		if !alt.NetDiffFromBase.IsZero() {
			netChange = tf.deltaSymbol(alt.NetDiffFromBase) + tf.formatDecimal(alt.NetDiffFromBase) + "/yr"
		}

		sb.WriteString(fmt.Sprintf("%s: %s", alt.OfferName, netChange))
	}

	return sb.String()
}
