package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/tui/components"
	"github.com/rgehrsitz/ctcgo/internal/tui/tuimsg"
	"github.com/rgehrsitz/ctcgo/internal/tui/tuistyles"
)

// Slider keys
const (
	SliderCTC   = "ctc"
	SliderBasic = "basic"
	SliderHRA   = "hra"
	SliderPF    = "pf"
	SliderNPS   = "nps"
	SliderRent  = "rent"
)

var (
	lakh          = decimal.NewFromInt(100000)
	thousandYear  = decimal.NewFromInt(12000) // ₹1K a month, annualized
	forwardKeyMap = struct {
		Up, Down, Left, Right, Regime, Metro key.Binding
	}{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Left:   key.NewBinding(key.WithKeys("left", "h")),
		Right:  key.NewBinding(key.WithKeys("right", "l")),
		Regime: key.NewBinding(key.WithKeys("t")),
		Metro:  key.NewBinding(key.WithKeys("m")),
	}
)

// ForwardModel is the interactive CTC to in-hand calculator
type ForwardModel struct {
	engine    *calculation.Engine
	input     domain.SalaryInput
	breakdown *domain.SalaryBreakdown
	sliders   []*components.ParameterSlider
	focused   int
	width     int
	height    int
}

// NewForwardModel creates a new forward calculator scene
func NewForwardModel() *ForwardModel {
	return &ForwardModel{}
}

// SetEngine sets the engine used for recomputation
func (m *ForwardModel) SetEngine(engine *calculation.Engine) {
	m.engine = engine
	m.recompute()
}

// SetInput replaces the input and rebuilds the sliders from it
func (m *ForwardModel) SetInput(in domain.SalaryInput) {
	m.input = in
	m.buildSliders()
	m.recompute()
}

// Input returns the current input
func (m *ForwardModel) Input() domain.SalaryInput {
	return m.input
}

// Breakdown returns the latest computed breakdown
func (m *ForwardModel) Breakdown() *domain.SalaryBreakdown {
	return m.breakdown
}

// Sliders returns the parameter sliders in display order
func (m *ForwardModel) Sliders() []*components.ParameterSlider {
	return m.sliders
}

// Focused returns the index of the focused slider
func (m *ForwardModel) Focused() int {
	return m.focused
}

// SetSize updates the scene dimensions
func (m *ForwardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// buildSliders creates sliders for the values worth nudging. Component percentages only
// make sense in percentage mode.
func (m *ForwardModel) buildSliders() {
	in := m.input
	m.sliders = []*components.ParameterSlider{
		components.NewParameterSlider(components.SliderSpec{
			Key: SliderCTC, Label: "CTC", Min: 1, Max: 200, Step: 0.5, Unit: "L", Digits: 1,
			Hint: "Annual cost to company in lakh",
		}, in.CTC.Div(lakh).InexactFloat64()),
	}

	if in.Mode != domain.ModeAmount {
		c := in.Components
		m.sliders = append(m.sliders,
			components.NewParameterSlider(components.SliderSpec{
				Key: SliderBasic, Label: "Basic", Min: 20, Max: 70, Step: 1, Unit: "% of CTC",
				Hint: "Drives HRA, PF and gratuity",
			}, c.Basic.InexactFloat64()),
			components.NewParameterSlider(components.SliderSpec{
				Key: SliderHRA, Label: "HRA", Min: 0, Max: 50, Step: 5, Unit: "% of basic",
			}, c.HRA.InexactFloat64()),
			components.NewParameterSlider(components.SliderSpec{
				Key: SliderPF, Label: "PF", Min: 0, Max: 20, Step: 1, Unit: "% of basic",
				Hint: "Employee contribution; the employer matches it",
			}, c.EmployeePF.InexactFloat64()),
			components.NewParameterSlider(components.SliderSpec{
				Key: SliderNPS, Label: "Employer NPS", Min: 0, Max: 14, Step: 1, Unit: "% of basic",
				Hint: "Deductible under 80CCD(1B) in the old regime",
			}, c.NPS.InexactFloat64()),
		)
	}

	rentMonthly := in.Deductions.RentPaid.Div(thousandYear).InexactFloat64()
	m.sliders = append(m.sliders,
		components.NewParameterSlider(components.SliderSpec{
			Key: SliderRent, Label: "Rent", Min: 0, Max: 150, Step: 1, Unit: "K/month",
			Hint: "Rent paid, used for the old regime HRA exemption",
		}, rentMonthly))

	if m.focused >= len(m.sliders) {
		m.focused = 0
	}
	for i, s := range m.sliders {
		s.SetFocused(i == m.focused)
	}
}

func (m *ForwardModel) recompute() {
	if m.engine == nil {
		return
	}
	m.breakdown = m.engine.Forward(m.input)
}

// Update handles messages for the forward scene
func (m *ForwardModel) Update(msg tea.Msg) (*ForwardModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m *ForwardModel) handleKeyPress(msg tea.KeyMsg) (*ForwardModel, tea.Cmd) {
	if len(m.sliders) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, forwardKeyMap.Up):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(msg, forwardKeyMap.Down):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, forwardKeyMap.Left):
		m.sliders[m.focused].Decrement()
		m.applySlider(m.sliders[m.focused])
		return m, m.changed()

	case key.Matches(msg, forwardKeyMap.Right):
		m.sliders[m.focused].Increment()
		m.applySlider(m.sliders[m.focused])
		return m, m.changed()

	case key.Matches(msg, forwardKeyMap.Regime):
		m.input.Regime = m.input.Regime.Other()
		return m, m.changed()

	case key.Matches(msg, forwardKeyMap.Metro):
		m.input.Deductions.Metro = !m.input.Deductions.Metro
		return m, m.changed()
	}

	return m, nil
}

func (m *ForwardModel) moveFocus(delta int) {
	next := m.focused + delta
	if next < 0 || next >= len(m.sliders) {
		return
	}
	m.sliders[m.focused].SetFocused(false)
	m.focused = next
	m.sliders[m.focused].SetFocused(true)
}

// applySlider writes one slider's value back to the input
func (m *ForwardModel) applySlider(s *components.ParameterSlider) {
	v := decimal.NewFromFloat(s.Value)
	switch s.Key {
	case SliderCTC:
		m.input.CTC = v.Mul(lakh)
	case SliderBasic:
		m.input.Components.Basic = v
	case SliderHRA:
		m.input.Components.HRA = v
	case SliderPF:
		m.input.Components = m.input.Components.WithEmployeePF(v)
	case SliderNPS:
		m.input.Components.NPS = v
	case SliderRent:
		m.input.Deductions.RentPaid = v.Mul(thousandYear)
	}
}

// changed recomputes from scratch and publishes the new input
func (m *ForwardModel) changed() tea.Cmd {
	m.recompute()
	in := m.input
	return func() tea.Msg {
		return tuimsg.InputChangedMsg{Input: in}
	}
}

// View renders the forward scene
func (m *ForwardModel) View() string {
	if m.breakdown == nil {
		return "No salary loaded."
	}

	left := renderSliderPanel(m.sliders, m.input)
	right := lipgloss.JoinVertical(
		lipgloss.Left,
		renderForwardMetrics(m.breakdown),
		"",
		renderAllocation(m.breakdown),
		renderAdvisories(m.breakdown.Advisories),
	)

	help := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted).
		Render("↑/↓ select • ←/→ adjust • t regime • m metro • r reverse • g regimes")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right),
		"",
		help,
	)
}

func renderSliderPanel(sliders []*components.ParameterSlider, in domain.SalaryInput) string {
	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(1, 2)

	var rendered []string
	for _, s := range sliders {
		rendered = append(rendered, s.Render(), "")
	}

	metro := "non-metro"
	if in.Deductions.Metro {
		metro = "metro"
	}
	rendered = append(rendered, tuistyles.MetricLabelStyle.Render(
		fmt.Sprintf("Regime: %s • City: %s", strings.ToUpper(string(in.Regime)), metro)))

	return containerStyle.Render(strings.Join(rendered, "\n"))
}

func renderForwardMetrics(b *domain.SalaryBreakdown) string {
	cards := []*components.MetricCard{
		components.NewAmountCard("In-hand / month", b.NetInHandMonthly).
			WithNote(tuistyles.FormatCurrency(b.NetInHandYearly) + " a year"),
		components.NewAmountCard("Income tax", b.TaxCalc.FinalTax).
			WithNote("Effective " + b.EffectiveTaxRate.StringFixed(2) + "%"),
		components.NewAmountCard("Gross salary", b.GrossSalary).
			WithNote(tuistyles.FormatCurrency(b.GrossSalary.Div(decimal.NewFromInt(12))) + " a month"),
		components.NewAmountCard("Taxable income", b.TaxCalc.TaxableIncome),
	}
	return components.MetricGrid(cards, 2)
}

func renderAllocation(b *domain.SalaryBreakdown) string {
	items := []components.AllocationItem{
		{Label: "Basic", Amount: b.Components.Basic, Color: tuistyles.ColorPrimary},
		{Label: "HRA", Amount: b.Components.HRA, Color: tuistyles.ColorSecondary},
		{Label: "Special", Amount: b.Components.Special, Color: tuistyles.ColorAccent},
		{Label: "Employer PF", Amount: b.EmployerPF, Color: tuistyles.ColorInfo},
		{Label: "Gratuity", Amount: b.EmployerGratuity, Color: tuistyles.ColorInfo},
		{Label: "NPS", Amount: b.NPSEmployer, Color: tuistyles.ColorSuccess},
		{Label: "Other", Amount: b.InsuranceEmployer.Add(b.OtherEmployer), Color: tuistyles.ColorMuted},
	}
	if !b.Components.DA.IsZero() {
		items = append(items, components.AllocationItem{Label: "DA", Amount: b.Components.DA, Color: tuistyles.ColorSecondary})
	}

	title := tuistyles.SectionStyle.Render("Where the CTC goes")
	return title + "\n" + components.AllocationBars(items, b.CTC, 24)
}

func renderAdvisories(advisories []domain.Advisory) string {
	if len(advisories) == 0 {
		return ""
	}
	var lines []string
	for _, a := range advisories {
		lines = append(lines, tuistyles.WarningStyle.Render("⚠ "+a.Message))
	}
	return "\n" + strings.Join(lines, "\n")
}
