package scenes

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/solver"
	"github.com/rgehrsitz/ctcgo/internal/tui/components"
	"github.com/rgehrsitz/ctcgo/internal/tui/tuimsg"
	"github.com/rgehrsitz/ctcgo/internal/tui/tuistyles"
)

// ErrInvalidTarget is reported when the typed target is not a positive amount
var ErrInvalidTarget = errors.New("enter a monthly in-hand amount greater than zero")

var reverseKeyMap = struct {
	Solve, Regime, Edit key.Binding
}{
	Solve:  key.NewBinding(key.WithKeys("enter")),
	Regime: key.NewBinding(key.WithKeys("t")),
	Edit:   key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "backspace", "delete", "left", "right", "home", "end")),
}

// ReverseModel searches for the CTC that yields a monthly take-home
type ReverseModel struct {
	solver  *solver.Solver
	input   domain.SalaryInput
	target  textinput.Model
	result  *solver.Result
	err     error
	solving bool
	width   int
	height  int
}

// NewReverseModel creates a new reverse search scene
func NewReverseModel() *ReverseModel {
	ti := textinput.New()
	ti.Prompt = "₹ "
	ti.Placeholder = "100000"
	ti.CharLimit = 9
	ti.Width = 16
	ti.Focus()
	return &ReverseModel{target: ti}
}

// SetSolver sets the solver
func (m *ReverseModel) SetSolver(s *solver.Solver) {
	m.solver = s
}

// SetInput sets the salary structure held fixed while CTC is searched. A previous result
// is dropped since it no longer matches.
func (m *ReverseModel) SetInput(in domain.SalaryInput) {
	m.input = in
	m.result = nil
	m.err = nil
}

// SetTarget pre-fills the target monthly in-hand
func (m *ReverseModel) SetTarget(target decimal.Decimal) {
	m.target.SetValue(target.Round(0).String())
}

// Target returns the typed target as an amount
func (m *ReverseModel) Target() decimal.Decimal {
	return domain.CoerceAmount(m.target.Value())
}

// SetResult records a finished search
func (m *ReverseModel) SetResult(res *solver.Result, err error) {
	m.solving = false
	m.result = res
	m.err = err
}

// Result returns the last search result
func (m *ReverseModel) Result() *solver.Result {
	return m.result
}

// Err returns the last search error
func (m *ReverseModel) Err() error {
	return m.err
}

// Solving reports whether a search is in flight
func (m *ReverseModel) Solving() bool {
	return m.solving
}

// SetSize updates the scene dimensions
func (m *ReverseModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the reverse scene
func (m *ReverseModel) Update(msg tea.Msg) (*ReverseModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.target, cmd = m.target.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, reverseKeyMap.Solve):
		return m, m.solve()

	case key.Matches(keyMsg, reverseKeyMap.Regime):
		m.input.Regime = m.input.Regime.Other()
		m.result = nil
		return m, nil

	case key.Matches(keyMsg, reverseKeyMap.Edit):
		var cmd tea.Cmd
		m.target, cmd = m.target.Update(keyMsg)
		return m, cmd
	}

	return m, nil
}

// solve validates the target and starts the search in a command
func (m *ReverseModel) solve() tea.Cmd {
	if m.solving || m.solver == nil {
		return nil
	}
	target := m.Target()
	if !target.GreaterThan(decimal.Zero) {
		m.err = ErrInvalidTarget
		m.result = nil
		return nil
	}

	m.solving = true
	m.err = nil
	s, in := m.solver, m.input
	return func() tea.Msg {
		res, err := s.SolveForCTC(context.Background(), target, in)
		return tuimsg.SolveCompleteMsg{Result: res, Err: err}
	}
}

// View renders the reverse scene
func (m *ReverseModel) View() string {
	title := tuistyles.SectionStyle.Render("Target monthly in-hand")
	regime := tuistyles.MetricLabelStyle.Render(fmt.Sprintf("Regime: %s (t to toggle)", m.input.Regime))

	sections := []string{title, m.target.View(), regime, ""}

	switch {
	case m.solving:
		sections = append(sections, tuistyles.InfoStyle.Render("Searching..."))
	case m.err != nil:
		sections = append(sections, tuistyles.ErrorStyle.Render(m.err.Error()))
	case m.result != nil:
		sections = append(sections, m.renderResult())
	default:
		sections = append(sections, tuistyles.MetricLabelStyle.Render("Press Enter to find the CTC"))
	}

	help := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted).
		Render("0-9 type • Enter solve • t regime • f forward • g regimes")
	sections = append(sections, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *ReverseModel) renderResult() string {
	res := m.result
	b := res.Breakdown

	ctcCard := components.NewAmountCard("Required CTC", res.CTC).
		WithNote(tuistyles.FormatCurrency(res.CTC.Div(decimal.NewFromInt(12))) + " a month")
	netCard := components.NewAmountCard("Achieved in-hand", b.NetInHandMonthly).
		WithDelta(res.Residual.Round(0), true)
	taxCard := components.NewAmountCard("Income tax", b.TaxCalc.FinalTax).
		WithNote("Effective " + b.EffectiveTaxRate.StringFixed(2) + "%")

	maxIter := 0
	if m.solver != nil {
		maxIter = m.solver.Options.MaxIterations
	}
	progress := components.NewProgressBar(res.Iterations, maxIter).
		WithLabel("Iterations").
		WithWidth(24)

	status := tuistyles.InfoStyle.Render("✓ Converged")
	if !res.Converged {
		status = tuistyles.WarningStyle.Render("⚠ Did not converge; closest CTC shown")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		components.MetricGrid([]*components.MetricCard{ctcCard, netCard, taxCard}, 3),
		progress.Render(),
		status,
		renderAdvisories(b.Advisories),
	)
}
