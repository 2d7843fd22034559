package solver

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rgehrsitz/ctcgo/pkg/inr"
	"github.com/shopspring/decimal"
)

// TableFormatter formats solver results as a console table
type TableFormatter struct{}

// Format generates a formatted table for a reverse solve
func (tf *TableFormatter) Format(result *Result) string {
	var sb strings.Builder

	sb.WriteString("REVERSE CALCULATION (IN-HAND TO CTC)\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Target Monthly In-Hand: %s\n", inr.Format(result.TargetMonthly)))
	sb.WriteString(fmt.Sprintf("Status:                 %s\n", tf.formatStatus(result.Converged)))
	sb.WriteString(fmt.Sprintf("Iterations:             %d\n", result.Iterations))
	sb.WriteString(fmt.Sprintf("Search Bracket:         %s to %s\n", inr.Format(result.LowerCTC), inr.Format(result.UpperCTC)))
	sb.WriteString("\n")

	if result.Breakdown == nil {
		return sb.String()
	}
	b := result.Breakdown

	sb.WriteString("REQUIRED PACKAGE\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Required CTC:           %s (%s)\n", inr.Format(result.CTC), inr.Compact(result.CTC)))
	sb.WriteString(fmt.Sprintf("Regime:                 %s (%s)\n", b.Regime, b.Variant))
	sb.WriteString(fmt.Sprintf("Achieved Monthly:       %s\n", inr.Format(b.NetInHandMonthly)))
	sb.WriteString(fmt.Sprintf("Difference:             %s%s\n", tf.deltaSymbol(result.Residual), result.Residual.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Annual Tax:             %s\n", inr.Format(b.TaxCalc.FinalTax)))
	sb.WriteString("\n")

	if len(b.Advisories) > 0 {
		sb.WriteString("NOTES\n")
		sb.WriteString(strings.Repeat("-", 60) + "\n")
		for _, a := range b.Advisories {
			sb.WriteString(fmt.Sprintf("• %s\n", a.Message))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatRegimes formats a solve across both regimes
func (tf *TableFormatter) FormatRegimes(result *RegimeSolveResult) string {
	var sb strings.Builder

	sb.WriteString("REQUIRED CTC BY REGIME\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Target Monthly In-Hand: %s\n\n", inr.Format(result.TargetMonthly)))
	sb.WriteString(fmt.Sprintf("%-10s %18s %14s %12s\n", "Regime", "Required CTC", "Annual Tax", "Status"))
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	for _, r := range []*Result{result.Old, result.New} {
		if r == nil || r.Breakdown == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-10s %18s %14s %12s\n",
			tf.truncate(string(r.Breakdown.Regime), 10),
			inr.Format(r.CTC),
			inr.Compact(r.Breakdown.TaxCalc.FinalTax),
			tf.shortStatus(r.Converged)))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("The %s regime reaches the target for %s less CTC.\n",
		result.Cheaper, inr.Format(result.CTCSavings)))

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result interface{}) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Helper methods

func (tf *TableFormatter) formatStatus(converged bool) string {
	if converged {
		return "✓ Converged"
	}
	return "⚠ Did not converge"
}

func (tf *TableFormatter) shortStatus(converged bool) string {
	if converged {
		return "converged"
	}
	return "best effort"
}

func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
