package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/ctcgo/internal/tui/tuistyles"
)

// SliderSpec fixes a slider's range and presentation
type SliderSpec struct {
	Key    string
	Label  string
	Min    float64
	Max    float64
	Step   float64
	Unit   string // appended to the value, e.g. "L" or "% of basic"
	Digits int    // decimals shown
	Hint   string // shown under the bar while focused
}

// ParameterSlider is one adjustable input on the forward screen
type ParameterSlider struct {
	SliderSpec
	Value     float64
	Width     int
	IsFocused bool
}

// NewParameterSlider creates a slider at value, clamped into its range
func NewParameterSlider(spec SliderSpec, value float64) *ParameterSlider {
	p := &ParameterSlider{SliderSpec: spec, Width: 36}
	p.SetValue(value)
	return p
}

// SetFocused toggles the highlight
func (p *ParameterSlider) SetFocused(focused bool) {
	p.IsFocused = focused
}

func (p *ParameterSlider) Increment() { p.SetValue(p.Value + p.Step) }

func (p *ParameterSlider) Decrement() { p.SetValue(p.Value - p.Step) }

// SetValue clamps to [Min, Max]. Repeated float steps are snapped to 1e-6.
func (p *ParameterSlider) SetValue(value float64) {
	v := math.Max(p.Min, math.Min(p.Max, value))
	p.Value = math.Round(v*1e6) / 1e6
}

// Percentage is the position of Value within the range, 0 to 1
func (p *ParameterSlider) Percentage() float64 {
	if p.Max <= p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// Text renders a value with the slider's digits and unit
func (p *ParameterSlider) Text(v float64) string {
	return fmt.Sprintf("%.*f", p.Digits, v) + p.Unit
}

// Render draws "Label  value" over the bar and its bounds
func (p *ParameterSlider) Render() string {
	label, value := tuistyles.ParameterLabelStyle, tuistyles.ParameterValueStyle
	thumb := tuistyles.SliderThumbStyle
	if p.IsFocused {
		label = label.Foreground(tuistyles.ColorPrimary)
		value = value.Foreground(tuistyles.ColorAccent)
		thumb = thumb.Foreground(tuistyles.ColorAccent)
	}

	pos := int(math.Round(float64(p.Width-1) * p.Percentage()))
	pos = max(0, min(p.Width-1, pos))
	bar := thumb.Render(strings.Repeat("━", pos)+"●") +
		tuistyles.SliderTrackStyle.Render(strings.Repeat("─", p.Width-1-pos))

	muted := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	lines := []string{
		label.Render(p.Label) + "  " + value.Render(p.Text(p.Value)),
		"[" + bar + "] " + muted.Render(p.Text(p.Min)+" to "+p.Text(p.Max)),
	}
	if p.IsFocused && p.Hint != "" {
		lines = append(lines, muted.Italic(true).Render(p.Hint))
	}
	return strings.Join(lines, "\n")
}
