package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/ctcgo/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// ProgressBar displays how much of a budget has been used, e.g. solver iterations
type ProgressBar struct {
	Current   int
	Total     int
	Width     int
	Label     string
	ShowCount bool
}

// NewProgressBar creates a new progress bar
func NewProgressBar(current, total int) *ProgressBar {
	return &ProgressBar{
		Current:   current,
		Total:     total,
		Width:     30,
		ShowCount: true,
	}
}

// WithLabel sets the progress label
func (p *ProgressBar) WithLabel(label string) *ProgressBar {
	p.Label = label
	return p
}

// WithWidth sets the bar width
func (p *ProgressBar) WithWidth(width int) *ProgressBar {
	p.Width = width
	return p
}

// Percentage returns the completion percentage
func (p *ProgressBar) Percentage() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Current) / float64(p.Total) * 100
}

// Render returns the styled progress bar
func (p *ProgressBar) Render() string {
	var content strings.Builder

	if p.Label != "" {
		content.WriteString(tuistyles.MetricLabelStyle.Render(p.Label))
		content.WriteString(" ")
	}

	filled := int(float64(p.Width) * p.Percentage() / 100)
	if filled > p.Width {
		filled = p.Width
	}
	filledStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary)
	emptyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)
	content.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	content.WriteString(emptyStyle.Render(strings.Repeat("░", p.Width-filled)))

	if p.ShowCount {
		content.WriteString(tuistyles.MetricLabelStyle.Render(fmt.Sprintf(" %d/%d", p.Current, p.Total)))
	}
	return content.String()
}

// AllocationItem is one slice of a CTC split
type AllocationItem struct {
	Label  string
	Amount decimal.Decimal
	Color  lipgloss.Color
}

// AllocationBars renders each item as a horizontal bar sized by its share of total
func AllocationBars(items []AllocationItem, total decimal.Decimal, width int) string {
	if total.IsZero() || len(items) == 0 {
		return ""
	}

	labelWidth := 0
	for _, it := range items {
		if len(it.Label) > labelWidth {
			labelWidth = len(it.Label)
		}
	}

	hundred := decimal.NewFromInt(100)
	var rows []string
	for _, it := range items {
		share := it.Amount.Div(total)
		n := int(share.Mul(decimal.NewFromInt(int64(width))).Round(0).IntPart())
		if n < 0 {
			n = 0
		}
		if n > width {
			n = width
		}
		color := it.Color
		if color == "" {
			color = tuistyles.ColorPrimary
		}
		bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", n))
		pad := strings.Repeat(" ", width-n)
		pct := tuistyles.MetricLabelStyle.Render(fmt.Sprintf("%5s%%", share.Mul(hundred).StringFixed(1)))
		rows = append(rows, fmt.Sprintf("%-*s %s%s %s", labelWidth, it.Label, bar, pad, pct))
	}
	return strings.Join(rows, "\n")
}
