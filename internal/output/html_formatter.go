package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/pkg/inr"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone payslip-style HTML page.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/breakdown.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("breakdown").Funcs(template.FuncMap{
	"curr":    FormatCurrency,
	"pct":     FormatPercentage,
	"words":   inr.Words,
	"monthly": func(d decimal.Decimal) decimal.Decimal { return d.Div(twelve) },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(b *domain.SalaryBreakdown) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.SalaryBreakdown
		Assumptions []string
	}{b, DefaultAssumptions}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
