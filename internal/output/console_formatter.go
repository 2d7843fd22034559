package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/pkg/inr"
)

// ConsoleFormatter prints a short take-home summary
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(b *domain.SalaryBreakdown) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "TAKE-HOME SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("=", 40))
	fmt.Fprintf(&buf, "CTC: %s (%s)\n", FormatCurrency(b.CTC), inr.Compact(b.CTC))
	fmt.Fprintf(&buf, "Regime: %s (%s)\n", b.Regime, b.Variant)
	fmt.Fprintf(&buf, "Tax: %s (effective %s)\n", FormatCurrency(b.TaxCalc.FinalTax), FormatPercentage(b.EffectiveTaxRate))
	fmt.Fprintf(&buf, "In-hand: %s / month, %s / year\n", FormatCurrency(b.NetInHandMonthly), FormatCurrency(b.NetInHandYearly))
	for _, a := range b.Advisories {
		fmt.Fprintf(&buf, "! %s\n", a.Message)
	}
	return buf.Bytes(), nil
}
