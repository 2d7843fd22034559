package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/pkg/inr"
	"github.com/shopspring/decimal"
)

// Formatter renders a salary breakdown into a byte representation
type Formatter interface {
	Name() string
	Format(b *domain.SalaryBreakdown) ([]byte, error)
}

// FormatterFunc adapts a plain function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(b *domain.SalaryBreakdown) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(b *domain.SalaryBreakdown) ([]byte, error) { return f.F(b) }

var formatters = map[string]Formatter{
	"console-lite": ConsoleFormatter{},
	"console":      ConsoleVerboseFormatter{},
	"csv":          CSVSummarizer{},
	"slabs-csv":    SlabCSVFormatter{},
	"json":         JSONFormatter{Pretty: true},
	"html":         HTMLFormatter{},
}

var aliasMap = map[string]string{
	"verbose":         "console",
	"console-verbose": "console",
	"text":            "console",
	"table":           "console",
	"lite":            "console-lite",
	"summary":         "console-lite",
	"slabs":           "slabs-csv",
}

// AvailableFormatterNames lists the registered formatter names in sorted order
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists the accepted alternative names
func AvailableFormatAliases() []string {
	aliases := make([]string, 0, len(aliasMap))
	for alias := range aliasMap {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// GetFormatterByName resolves a formatter by name or alias; nil when unknown
func GetFormatterByName(name string) Formatter {
	key := strings.ToLower(strings.TrimSpace(name))
	if target, ok := aliasMap[key]; ok {
		key = target
	}
	return formatters[key]
}

// WriteFormatted renders the breakdown and writes it to a timestamped file in the working directory
func WriteFormatted(f Formatter, b *domain.SalaryBreakdown, ext string) (string, error) {
	data, err := f.Format(b)
	if err != nil {
		return "", fmt.Errorf("failed to format breakdown: %w", err)
	}
	filename := fmt.Sprintf("salary_breakdown_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// FormatCurrency formats an amount with Indian digit grouping
func FormatCurrency(amount decimal.Decimal) string {
	return inr.Format(amount)
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}
