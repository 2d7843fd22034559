package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVSummarizer writes one row per salary line with yearly and monthly amounts.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(b *domain.SalaryBreakdown) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Component", "Section", "Yearly", "Monthly"}); err != nil {
		return nil, err
	}
	rows := []struct {
		name, section string
		value         decimal.Decimal
	}{
		{"Basic", "earnings", b.Components.Basic},
		{"HRA", "earnings", b.Components.HRA},
		{"DA", "earnings", b.Components.DA},
		{"Special Allowance", "earnings", b.Components.Special},
		{"Gross Salary", "earnings", b.GrossSalary},
		{"Employer PF", "employer", b.EmployerPF},
		{"Gratuity", "employer", b.EmployerGratuity},
		{"Insurance", "employer", b.InsuranceEmployer},
		{"NPS", "employer", b.NPSEmployer},
		{"Other", "employer", b.OtherEmployer},
		{"Employee PF", "deductions", b.Deductions.EmployeePF},
		{"NPS Deduction", "deductions", b.Deductions.NPSDeduction},
		{"Professional Tax", "deductions", b.Deductions.ProfTax},
		{"Income Tax", "deductions", b.Deductions.TotalTax},
		{"Total Deductions", "deductions", b.Deductions.Total},
		{"Net In-Hand", "net", b.NetInHandYearly},
	}
	for _, r := range rows {
		row := []string{r.name, r.section, r.value.StringFixed(2), r.value.Div(twelve).StringFixed(2)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// SlabCSVFormatter writes the per-slab tax breakdown
type SlabCSVFormatter struct{}

func (s SlabCSVFormatter) Name() string { return "slabs-csv" }

func (s SlabCSVFormatter) Format(b *domain.SalaryBreakdown) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Range", "RatePercent", "Income", "Tax"}); err != nil {
		return nil, err
	}
	for _, slab := range b.TaxCalc.SlabBreakdown {
		row := []string{slab.Range, slab.RatePercent.StringFixed(2), slab.Amount.StringFixed(2), slab.Tax.StringFixed(2)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
