package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderLoading()
	}

	if m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneForward:
		content = m.forwardModel.View()
	case SceneReverse:
		content = m.reverseModel.View()
	case SceneRegimes:
		content = m.regimesModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar, status bar, and main container
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	contentHeight := m.height - 4 // Title (2) + status (1) + padding (1)
	if contentHeight < 1 {
		contentHeight = 1
	}

	contentContainer := lipgloss.NewStyle().
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("CTCGO - Salary Calculator")

	crumb := m.currentScene.String()
	if m.config != nil {
		variant := m.input.Variant
		if variant == "" && m.registry != nil {
			variant = m.registry.DefaultVariant
		}
		crumb = fmt.Sprintf("%s / %s regime / %s", crumb, m.input.Regime, variant)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		SubtitleStyle.Render(crumb),
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("f", "forward"),
		formatShortcut("r", "reverse"),
		formatShortcut("g", "regimes"),
		formatShortcut("?", "help"),
		formatShortcut("q", "quit"),
	}

	statusText := strings.Join(shortcuts, " • ")

	if m.configPath != "" && m.config != nil {
		name := SubtitleStyle.Render(m.configPath)
		width := m.width - lipgloss.Width(statusText) - lipgloss.Width(name) - 2
		statusText = statusText + strings.Repeat(" ", max(0, width)) + name
	}

	return StatusBarStyle.Width(m.width).Render(statusText)
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

// renderLoading renders a loading message
func (m Model) renderLoading() string {
	message := m.loadingMessage
	if message == "" {
		message = "Loading..."
	}

	content := BorderStyle.Render(fmt.Sprintf("⠋ %s", message))
	return m.renderApp(content)
}

// renderError renders an error message
func (m Model) renderError() string {
	content := ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err.Error()),
	)
	return m.renderApp(content)
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	helpText := `
CTCGO - Indian Salary Calculator

KEYBOARD SHORTCUTS:
  f        CTC → in-hand calculator
  r        In-hand → CTC search
  g        Old vs new regime comparison
  ?        Show this help
  ESC      Go back
  q/Ctrl+C Quit

CALCULATOR:
  ↑/↓ or j/k   Move between sliders
  ←/→ or h/l   Adjust the focused value
  t            Toggle old/new regime
  m            Toggle metro city (old regime HRA)

REVERSE SEARCH:
  Type the target monthly in-hand, Enter to solve
  t            Toggle old/new regime
`

	return BorderStyle.Render(helpText)
}
