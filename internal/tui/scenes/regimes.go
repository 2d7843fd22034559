package scenes

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/ctcgo/internal/compare"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/tui/components"
	"github.com/rgehrsitz/ctcgo/internal/tui/tuistyles"
)

// RegimesModel shows the current input under both regimes side by side
type RegimesModel struct {
	engine     *compare.CompareEngine
	input      domain.SalaryInput
	comparison *compare.RegimeComparison
	width      int
	height     int
}

// NewRegimesModel creates a new regime comparison scene
func NewRegimesModel() *RegimesModel {
	return &RegimesModel{}
}

// SetEngine sets the comparison engine
func (m *RegimesModel) SetEngine(e *compare.CompareEngine) {
	m.engine = e
	m.recompute()
}

// SetInput recomputes the comparison for a new input
func (m *RegimesModel) SetInput(in domain.SalaryInput) {
	m.input = in
	m.recompute()
}

// Comparison returns the latest comparison
func (m *RegimesModel) Comparison() *compare.RegimeComparison {
	return m.comparison
}

// SetSize updates the scene dimensions
func (m *RegimesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *RegimesModel) recompute() {
	if m.engine == nil {
		return
	}
	m.comparison = m.engine.CompareRegimes(m.input)
}

// Update handles messages for the regimes scene; it has no keys of its own
func (m *RegimesModel) Update(msg tea.Msg) (*RegimesModel, tea.Cmd) {
	return m, nil
}

// View renders the regimes scene
func (m *RegimesModel) View() string {
	rc := m.comparison
	if rc == nil {
		return "No salary loaded."
	}

	oldCol := renderRegimeColumn("OLD REGIME", rc.Old, rc.Recommended == domain.RegimeOld)
	newCol := renderRegimeColumn("NEW REGIME", rc.New, rc.Recommended == domain.RegimeNew)

	verdict := fmt.Sprintf("%s regime saves %s a year (%s a month)",
		regimeTitle(rc.Recommended),
		tuistyles.FormatCurrency(rc.YearlySavings),
		tuistyles.FormatCurrency(rc.MonthlySavings))
	if rc.YearlySavings.IsZero() {
		verdict = "Both regimes leave the same take-home"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		tuistyles.MetricLabelStyle.Render("CTC "+tuistyles.FormatCurrency(rc.CTC)),
		lipgloss.JoinHorizontal(lipgloss.Top, oldCol, "  ", newCol),
		"",
		tuistyles.InfoStyle.Render(verdict),
	)
}

func regimeTitle(r domain.RegimeName) string {
	if r == domain.RegimeOld {
		return "Old"
	}
	return "New"
}

func renderRegimeColumn(title string, b *domain.SalaryBreakdown, recommended bool) string {
	style := tuistyles.BorderStyle
	if recommended {
		style = tuistyles.ActiveBorderStyle
		title += " ✓"
	}

	cards := []*components.MetricCard{
		components.NewAmountCard("Taxable income", b.TaxCalc.TaxableIncome),
		components.NewAmountCard("Income tax", b.TaxCalc.FinalTax).
			WithNote("Effective " + b.EffectiveTaxRate.StringFixed(2) + "%"),
		components.NewAmountCard("In-hand / month", b.NetInHandMonthly),
	}
	var rendered []string
	rendered = append(rendered, tuistyles.SectionStyle.Render(title))
	for _, c := range cards {
		rendered = append(rendered, c.RenderCompact())
	}
	if !b.TaxCalc.HRAExemption.IsZero() {
		rendered = append(rendered, components.NewAmountCard("HRA exempt", b.TaxCalc.HRAExemption).RenderCompact())
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, rendered...))
}
