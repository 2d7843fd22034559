package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/pkg/inr"
	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// ConsoleVerboseFormatter renders the full payslip-style breakdown with the slab table.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(b *domain.SalaryBreakdown) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 64))
	fmt.Fprintf(&buf, "SALARY BREAKDOWN: CTC %s (%s REGIME, %s)\n", FormatCurrency(b.CTC), strings.ToUpper(string(b.Regime)), b.Variant)
	fmt.Fprintln(&buf, strings.Repeat("=", 64))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-28s %16s %14s\n", "", "Yearly", "Monthly")
	fmt.Fprintln(&buf, "EARNINGS")
	amountLine(&buf, "Basic", b.Components.Basic)
	amountLine(&buf, "HRA", b.Components.HRA)
	if !b.Components.DA.IsZero() {
		amountLine(&buf, "Dearness Allowance", b.Components.DA)
	}
	amountLine(&buf, "Special Allowance", b.Components.Special)
	amountLine(&buf, "GROSS SALARY", b.GrossSalary)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "EMPLOYER CONTRIBUTIONS (in CTC)")
	amountLine(&buf, "Employer PF", b.EmployerPF)
	amountLine(&buf, "Gratuity", b.EmployerGratuity)
	amountLine(&buf, "Insurance", b.InsuranceEmployer)
	amountLine(&buf, "NPS", b.NPSEmployer)
	amountLine(&buf, "Other", b.OtherEmployer)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "DEDUCTIONS")
	amountLine(&buf, "Employee PF", b.Deductions.EmployeePF)
	amountLine(&buf, "NPS", b.Deductions.NPSDeduction)
	amountLine(&buf, "Professional Tax", b.Deductions.ProfTax)
	amountLine(&buf, "Income Tax", b.Deductions.TotalTax)
	amountLine(&buf, "TOTAL DEDUCTIONS", b.Deductions.Total)
	fmt.Fprintln(&buf)

	writeTaxComputation(&buf, b.TaxCalc)

	fmt.Fprintln(&buf, "TAKE-HOME")
	amountLine(&buf, "NET IN-HAND", b.NetInHandYearly)
	fmt.Fprintf(&buf, "  Effective tax rate: %s of CTC\n", FormatPercentage(b.EffectiveTaxRate))
	fmt.Fprintf(&buf, "  In words: %s per month\n", inr.Words(b.NetInHandMonthly))

	if len(b.Advisories) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "ADVISORIES:")
		for _, a := range b.Advisories {
			fmt.Fprintf(&buf, "• [%s] %s\n", a.Code, a.Message)
		}
	}
	return buf.Bytes(), nil
}

func amountLine(buf *bytes.Buffer, label string, yearly decimal.Decimal) {
	fmt.Fprintf(buf, "  %-26s %16s %14s\n", label, FormatCurrency(yearly), FormatCurrency(yearly.Div(twelve)))
}

func writeTaxComputation(buf *bytes.Buffer, calc domain.TaxCalc) {
	fmt.Fprintln(buf, "TAX COMPUTATION")
	fmt.Fprintf(buf, "  %-26s %16s\n", "Standard Deduction", FormatCurrency(calc.StandardDeduction))
	if !calc.HRAExemption.IsZero() {
		fmt.Fprintf(buf, "  %-26s %16s\n", "HRA Exemption", FormatCurrency(calc.HRAExemption))
	}
	if !calc.Section80C.IsZero() {
		fmt.Fprintf(buf, "  %-26s %16s\n", "Section 80C", FormatCurrency(calc.Section80C))
	}
	if !calc.Section80CCD1B.IsZero() {
		fmt.Fprintf(buf, "  %-26s %16s\n", "Section 80CCD(1B)", FormatCurrency(calc.Section80CCD1B))
	}
	fmt.Fprintf(buf, "  %-26s %16s\n", "Taxable Income", FormatCurrency(calc.TaxableIncome))

	if len(calc.SlabBreakdown) > 0 {
		fmt.Fprintf(buf, "  %-26s %6s %16s %12s\n", "Slab", "Rate", "Income", "Tax")
		for _, s := range calc.SlabBreakdown {
			fmt.Fprintf(buf, "  %-26s %5s%% %16s %12s\n", s.Range, s.RatePercent.StringFixed(0), FormatCurrency(s.Amount), FormatCurrency(s.Tax))
		}
	}

	fmt.Fprintf(buf, "  %-26s %16s\n", "Tax on Slabs", FormatCurrency(calc.TaxBeforeCharges))
	fmt.Fprintf(buf, "  %-26s %16s\n", "Surcharge", FormatCurrency(calc.Surcharge))
	fmt.Fprintf(buf, "  %-26s %16s\n", "Cess", FormatCurrency(calc.Cess))
	if !calc.Rebate.IsZero() {
		fmt.Fprintf(buf, "  %-26s %16s\n", "Rebate", FormatCurrency(calc.Rebate.Neg()))
	}
	fmt.Fprintf(buf, "  %-26s %16s\n", "FINAL TAX", FormatCurrency(calc.FinalTax))
	fmt.Fprintln(buf)
}
