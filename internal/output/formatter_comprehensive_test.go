package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestBreakdown() *domain.SalaryBreakdown {
	in := domain.DefaultSalaryInput(decimal.NewFromInt(1500000), domain.RegimeNew)
	return calculation.NewDefaultEngine().Forward(in)
}

func TestFormatterFunc_Format(t *testing.T) {
	called := false
	var received *domain.SalaryBreakdown

	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(b *domain.SalaryBreakdown) ([]byte, error) {
			called = true
			received = b
			return []byte("test output"), nil
		},
	}

	b := buildTestBreakdown()
	output, err := formatter.Format(b)

	assert.NoError(t, err)
	assert.True(t, called, "Should call the function")
	assert.Equal(t, b, received, "Should pass the breakdown")
	assert.Equal(t, []byte("test output"), output)
	assert.Equal(t, "test-formatter", formatter.Name())
}

func TestWriteFormatted(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer os.Chdir(originalDir)

	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(b *domain.SalaryBreakdown) ([]byte, error) {
			return []byte("test output content"), nil
		},
	}

	filename, err := WriteFormatted(formatter, buildTestBreakdown(), "txt")
	require.NoError(t, err)
	assert.Contains(t, filename, "salary_breakdown_")
	assert.True(t, strings.HasSuffix(filename, ".txt"))

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "test output content", string(content))
}

func TestWriteFormatted_FormatterError(t *testing.T) {
	formatter := FormatterFunc{
		ID: "error-formatter",
		F: func(b *domain.SalaryBreakdown) ([]byte, error) {
			return nil, fmt.Errorf("formatter error")
		},
	}

	filename, err := WriteFormatted(formatter, buildTestBreakdown(), "txt")
	assert.Error(t, err)
	assert.Empty(t, filename, "Should return empty filename on error")
	assert.Contains(t, err.Error(), "formatter error")
}

func TestConsoleFormatter_Format(t *testing.T) {
	output, err := ConsoleFormatter{}.Format(buildTestBreakdown())
	require.NoError(t, err)

	content := string(output)
	assert.Contains(t, content, "TAKE-HOME SUMMARY")
	assert.Contains(t, content, "CTC: ₹15,00,000 (₹15.00L)")
	assert.Contains(t, content, "Tax: ₹1,03,776 (effective 6.92%)")
	assert.Contains(t, content, "₹11,77,749 / year")
}

func TestConsoleFormatter_ShowsAdvisories(t *testing.T) {
	b := calculation.NewDefaultEngine().Forward(domain.DefaultSalaryInput(decimal.Zero, domain.RegimeNew))
	output, err := ConsoleFormatter{}.Format(b)
	require.NoError(t, err)
	assert.Contains(t, string(output), "! ")
}

func TestConsoleVerboseFormatter_Format(t *testing.T) {
	output, err := ConsoleVerboseFormatter{}.Format(buildTestBreakdown())
	require.NoError(t, err)

	content := string(output)
	assert.Contains(t, content, "SALARY BREAKDOWN: CTC ₹15,00,000 (NEW REGIME, fy2024-25)")
	assert.Contains(t, content, "KEY ASSUMPTIONS:")
	assert.Contains(t, content, "GROSS SALARY")
	assert.Contains(t, content, "₹13,73,925")
	assert.Contains(t, content, "Taxable Income")
	assert.Contains(t, content, "₹12,98,925")
	assert.NotContains(t, content, "15,00,000+", "unbounded slab is not reached")
	assert.NotContains(t, content, "HRA Exemption", "new regime has no HRA exemption")
	assert.Contains(t, content, "In words: Ninety Eight Thousand One Hundred Forty Six Rupees per month")
}

func TestConsoleVerboseFormatter_OldRegime(t *testing.T) {
	in := domain.DefaultSalaryInput(decimal.NewFromInt(1500000), domain.RegimeOld)
	in.Deductions = domain.DeductionInputs{RentPaid: decimal.NewFromInt(300000), Metro: true}
	b := calculation.NewDefaultEngine().Forward(in)

	output, err := ConsoleVerboseFormatter{}.Format(b)
	require.NoError(t, err)
	content := string(output)
	assert.Contains(t, content, "OLD REGIME")
	assert.Contains(t, content, "HRA Exemption")
	assert.Contains(t, content, "Section 80C")
}

func TestCSVSummarizer_Format(t *testing.T) {
	output, err := CSVSummarizer{}.Format(buildTestBreakdown())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	assert.Equal(t, "Component,Section,Yearly,Monthly", lines[0])
	assert.Len(t, lines, 17)
	assert.Contains(t, string(output), "Gross Salary,earnings,1373925.00,114493.75")
	assert.Contains(t, string(output), "Net In-Hand,net,1177748.60,")
}

func TestSlabCSVFormatter_Format(t *testing.T) {
	output, err := SlabCSVFormatter{}.Format(buildTestBreakdown())
	require.NoError(t, err)

	content := string(output)
	assert.True(t, strings.HasPrefix(content, "Range,RatePercent,Income,Tax\n"))
	assert.Contains(t, content, `"3,00,000 - 7,00,000",5.00,400000.00,20000.00`)
}

func TestJSONFormatter_Format(t *testing.T) {
	output, err := JSONFormatter{Pretty: true}.Format(buildTestBreakdown())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(output, &decoded))
	assert.Contains(t, decoded, "netInHandMonthly")
	assert.Contains(t, decoded, "taxCalc")
	assert.Equal(t, "new", decoded["regime"])
	assert.Contains(t, string(output), "\n  ", "pretty output is indented")

	compact, err := JSONFormatter{}.Format(buildTestBreakdown())
	require.NoError(t, err)
	assert.NotContains(t, string(compact), "\n")
}

func TestHTMLFormatter_Format(t *testing.T) {
	output, err := HTMLFormatter{}.Format(buildTestBreakdown())
	require.NoError(t, err)

	content := string(output)
	assert.Contains(t, content, "<!DOCTYPE html>")
	assert.Contains(t, content, "<title>Salary Breakdown</title>")
	assert.Contains(t, content, "₹15,00,000")
	assert.Contains(t, content, "Tax Computation")
}

func TestAvailableFormatterNames(t *testing.T) {
	names := AvailableFormatterNames()
	assert.Equal(t, []string{"console", "console-lite", "csv", "html", "json", "slabs-csv"}, names)
}

func TestAvailableFormatAliases(t *testing.T) {
	aliases := AvailableFormatAliases()
	assert.Contains(t, aliases, "verbose")
	assert.Contains(t, aliases, "console-verbose")
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"console-lite", "console-lite"},
		{"CONSOLE", "console"},
		{"verbose", "console"},
		{"summary", "console-lite"},
		{" json ", "json"},
		{"slabs", "slabs-csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := GetFormatterByName(tt.name)
			require.NotNil(t, f)
			assert.Equal(t, tt.expected, f.Name())
		})
	}

	assert.Nil(t, GetFormatterByName("non-existent"))
}
