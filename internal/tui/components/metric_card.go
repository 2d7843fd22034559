package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/ctcgo/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// MetricCard shows one rupee figure, an optional note and an optional change against a reference
type MetricCard struct {
	Label  string
	Amount decimal.Decimal
	Note   string
	Width  int

	delta    *decimal.Decimal
	upIsGood bool
}

// NewAmountCard creates a card for a rupee amount
func NewAmountCard(label string, amount decimal.Decimal) *MetricCard {
	return &MetricCard{Label: label, Amount: amount, Width: 26}
}

// WithNote sets the muted line under the value
func (m *MetricCard) WithNote(note string) *MetricCard {
	m.Note = note
	return m
}

// WithDelta shows a signed change. upIsGood is false for figures like tax.
// A zero delta is not shown.
func (m *MetricCard) WithDelta(delta decimal.Decimal, upIsGood bool) *MetricCard {
	if delta.IsZero() {
		m.delta = nil
		return m
	}
	m.delta = &delta
	m.upIsGood = upIsGood
	return m
}

func (m *MetricCard) deltaText() string {
	if m.delta == nil {
		return ""
	}
	good := m.delta.IsPositive() == m.upIsGood
	text := tuistyles.FormatCurrency(*m.delta)
	if m.delta.IsPositive() {
		text = "+" + text
	}
	return tuistyles.MetricTrendStyle(good).Render(tuistyles.TrendIndicator(good) + " " + text)
}

// Render draws the card inside a rounded border
func (m *MetricCard) Render() string {
	lines := []string{
		tuistyles.MetricLabelStyle.Render(m.Label),
		tuistyles.MetricValueStyle.Render(tuistyles.FormatCurrency(m.Amount)),
	}
	if d := m.deltaText(); d != "" {
		lines = append(lines, d)
	}
	if m.Note != "" {
		lines = append(lines, tuistyles.SubtitleStyle.Render(m.Note))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderCompact is the single-line "Label: value" form
func (m *MetricCard) RenderCompact() string {
	out := tuistyles.MetricLabelStyle.Render(m.Label+":") + " " +
		tuistyles.MetricValueStyle.Render(tuistyles.FormatCurrency(m.Amount))
	if d := m.deltaText(); d != "" {
		out += " " + d
	}
	if m.Note != "" {
		out += " " + tuistyles.SubtitleStyle.Render("("+m.Note+")")
	}
	return out
}

// MetricGrid lays cards out left to right, columns per row
func MetricGrid(cards []*MetricCard, columns int) string {
	columns = max(columns, 1)
	var rows []string
	for start := 0; start < len(cards); start += columns {
		end := min(start+columns, len(cards))
		row := make([]string, 0, end-start)
		for _, c := range cards[start:end] {
			row = append(row, c.Render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
