package scenes

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/compare"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/solver"
	"github.com/rgehrsitz/ctcgo/internal/tui/tuimsg"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func defaultInput(ctc int64) domain.SalaryInput {
	return domain.DefaultSalaryInput(decimal.NewFromInt(ctc), domain.RegimeNew)
}

func newForward(t *testing.T, in domain.SalaryInput) *ForwardModel {
	t.Helper()
	m := NewForwardModel()
	m.SetEngine(calculation.NewDefaultEngine())
	m.SetInput(in)
	require.NotNil(t, m.Breakdown())
	return m
}

func TestForwardModel_InitialBreakdown(t *testing.T) {
	m := newForward(t, defaultInput(1500000))

	assert.True(t, m.Breakdown().NetInHandYearly.Equal(decimal.RequireFromString("1177748.6")))
	require.Len(t, m.Sliders(), 6)
	assert.Equal(t, SliderCTC, m.Sliders()[0].Key)
	assert.Equal(t, 15.0, m.Sliders()[0].Value)
	assert.True(t, m.Sliders()[0].IsFocused)
	assert.Contains(t, m.View(), "Where the CTC goes")
}

func TestForwardModel_AdjustCTC(t *testing.T) {
	m := newForward(t, defaultInput(1500000))
	before := m.Breakdown().NetInHandMonthly

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.NotNil(t, cmd)
	msg, ok := cmd().(tuimsg.InputChangedMsg)
	require.True(t, ok)

	assert.True(t, msg.Input.CTC.Equal(decimal.NewFromInt(1550000)))
	assert.True(t, m.Input().CTC.Equal(decimal.NewFromInt(1550000)))
	assert.True(t, m.Breakdown().NetInHandMonthly.GreaterThan(before))

	m, _ = m.Update(runes("h"))
	assert.True(t, m.Input().CTC.Equal(decimal.NewFromInt(1500000)))
	assert.True(t, m.Breakdown().NetInHandMonthly.Equal(before))
}

func TestForwardModel_FocusAndComponents(t *testing.T) {
	m := newForward(t, defaultInput(1500000))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.Focused())
	assert.Equal(t, SliderBasic, m.Sliders()[1].Key)

	m, _ = m.Update(runes("l"))
	assert.True(t, m.Input().Components.Basic.Equal(decimal.NewFromInt(51)))

	// Focus stops at both ends
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Focused())
	for i := 0; i < 10; i++ {
		m, _ = m.Update(runes("j"))
	}
	assert.Equal(t, len(m.Sliders())-1, m.Focused())
	assert.Equal(t, SliderRent, m.Sliders()[m.Focused()].Key)

	m, _ = m.Update(runes("l"))
	assert.True(t, m.Input().Deductions.RentPaid.Equal(decimal.NewFromInt(12000)))
}

func TestForwardModel_PFSliderMovesBothContributions(t *testing.T) {
	m := newForward(t, defaultInput(1500000))
	for i := 0; i < 3; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	require.Equal(t, SliderPF, m.Sliders()[m.Focused()].Key)
	assert.Equal(t, 12.0, m.Sliders()[m.Focused()].Value)

	m, _ = m.Update(runes("h"))
	assert.True(t, m.Input().Components.EmployeePF.Equal(decimal.NewFromInt(11)))
	assert.True(t, m.Input().Components.EmployerPF.Equal(decimal.NewFromInt(11)))
	// 11% of a 7.5L basic
	assert.True(t, m.Breakdown().EmployerPF.Equal(decimal.NewFromInt(82500)), m.Breakdown().EmployerPF.String())
}

func TestForwardModel_ToggleRegimeAndMetro(t *testing.T) {
	m := newForward(t, defaultInput(1500000))

	m, cmd := m.Update(runes("t"))
	require.NotNil(t, cmd)
	assert.Equal(t, domain.RegimeOld, m.Input().Regime)
	assert.Equal(t, domain.RegimeOld, m.Breakdown().Regime)

	m, _ = m.Update(runes("m"))
	assert.True(t, m.Input().Deductions.Metro)

	m, _ = m.Update(runes("t"))
	assert.Equal(t, domain.RegimeNew, m.Input().Regime)
}

func TestForwardModel_AmountModeHidesPercentSliders(t *testing.T) {
	in := defaultInput(1000000)
	in.Mode = domain.ModeAmount
	in.Components = domain.ComponentConfig{Basic: decimal.NewFromInt(500000)}

	m := newForward(t, in)
	require.Len(t, m.Sliders(), 2)
	assert.Equal(t, SliderCTC, m.Sliders()[0].Key)
	assert.Equal(t, SliderRent, m.Sliders()[1].Key)
}

func TestForwardModel_SliderClampLeavesInputUntouched(t *testing.T) {
	m := newForward(t, defaultInput(25000000))

	assert.Equal(t, 200.0, m.Sliders()[0].Value)
	assert.True(t, m.Input().CTC.Equal(decimal.NewFromInt(25000000)))
}

func TestForwardModel_NoEngine(t *testing.T) {
	m := NewForwardModel()
	m.SetInput(defaultInput(1000000))

	assert.Nil(t, m.Breakdown())
	assert.Equal(t, "No salary loaded.", m.View())
}

func newReverse(in domain.SalaryInput) *ReverseModel {
	m := NewReverseModel()
	m.SetSolver(solver.NewDefaultSolver(calculation.NewDefaultEngine()))
	m.SetInput(in)
	return m
}

func TestReverseModel_TypeAndSolve(t *testing.T) {
	m := newReverse(defaultInput(1000000))

	for _, r := range "9a8146" {
		m, _ = m.Update(runes(string(r)))
	}
	assert.True(t, m.Target().Equal(decimal.NewFromInt(98146)), "letters are ignored")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.True(t, m.Target().Equal(decimal.NewFromInt(9814)))
	m, _ = m.Update(runes("6"))

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.Solving())

	// A second Enter while solving is ignored
	_, again := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, again)

	done, ok := cmd().(tuimsg.SolveCompleteMsg)
	require.True(t, ok)
	require.NoError(t, done.Err)
	m.SetResult(done.Result, done.Err)

	res := m.Result()
	require.NotNil(t, res)
	assert.False(t, m.Solving())
	assert.True(t, res.Converged)
	assert.True(t, res.Residual.Abs().LessThanOrEqual(decimal.NewFromInt(1)))
	assert.True(t, res.CTC.Sub(decimal.NewFromInt(1500000)).Abs().LessThan(decimal.NewFromInt(100)))
	assert.Contains(t, m.View(), "Required CTC")
}

func TestReverseModel_InvalidTarget(t *testing.T) {
	m := newReverse(defaultInput(1000000))

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.ErrorIs(t, m.Err(), ErrInvalidTarget)
	assert.False(t, m.Solving())
	assert.Contains(t, m.View(), ErrInvalidTarget.Error())
}

func TestReverseModel_SetTargetAndRegime(t *testing.T) {
	m := newReverse(defaultInput(1000000))
	m.SetTarget(decimal.RequireFromString("90000.4"))
	assert.Equal(t, "90000", m.target.Value())

	m, _ = m.Update(runes("t"))
	assert.Equal(t, domain.RegimeOld, m.input.Regime)

	m.SetResult(&solver.Result{}, nil)
	m.SetInput(defaultInput(1200000))
	assert.Nil(t, m.Result(), "a new input drops the stale result")
}

func TestRegimesModel(t *testing.T) {
	m := NewRegimesModel()
	assert.Equal(t, "No salary loaded.", m.View())

	m.SetEngine(compare.NewCompareEngine(calculation.NewDefaultEngine()))
	m.SetInput(defaultInput(1500000))

	rc := m.Comparison()
	require.NotNil(t, rc)
	assert.Equal(t, domain.RegimeNew, rc.Recommended)
	assert.True(t, rc.YearlySavings.Equal(decimal.RequireFromString("85459.4")))

	view := m.View()
	assert.Contains(t, view, "NEW REGIME ✓")
	assert.Contains(t, view, "OLD REGIME")
	assert.Contains(t, view, "New regime saves")
}
