package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/ctcgo/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// Standard tea.Msg types
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.forwardModel.SetSize(m.width, m.height)
		m.reverseModel.SetSize(m.width, m.height)
		m.regimesModel.SetSize(m.width, m.height)
		return m, nil

	// Custom messages
	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case QuitMsg:
		return m, tea.Quit

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case tuimsg.ErrorMsg:
		m.err = msg.Err
		return m, nil

	case ConfigLoadedMsg:
		m.loading = false
		if msg.Config != nil {
			m.applyConfig(msg.Config, msg.Registry)
		}
		return m, nil

	case tuimsg.InputChangedMsg:
		// The forward scene owns edits; the others recompute from the shared input
		m.input = msg.Input
		m.reverseModel.SetInput(msg.Input)
		m.regimesModel.SetInput(msg.Input)
		return m, nil

	case tuimsg.SolveCompleteMsg:
		m.reverseModel.SetResult(msg.Result, msg.Err)
		return m, nil
	}

	// Delegate to scene-specific update handlers
	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key dismisses an error
	if m.err != nil {
		m.err = nil
		return m, nil
	}
	if m.loading {
		return m, nil
	}

	// Global keyboard shortcuts
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		return m, navigate(SceneHelp)

	case "esc":
		// Go back to previous scene or the forward calculator
		if m.currentScene != SceneForward {
			target := SceneForward
			if m.previousScene != m.currentScene && m.previousScene != SceneHelp {
				target = m.previousScene
			}
			return m, navigate(target)
		}

	case "f":
		if m.currentScene != SceneForward {
			return m, navigate(SceneForward)
		}

	case "r":
		if m.currentScene != SceneReverse {
			return m, navigate(SceneReverse)
		}

	case "g":
		if m.currentScene != SceneRegimes {
			return m, navigate(SceneRegimes)
		}
	}

	// Let the current scene handle other keys
	return m.updateCurrentScene(msg)
}

func navigate(s Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: s}
	}
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneForward:
		m.forwardModel, cmd = m.forwardModel.Update(msg)
	case SceneReverse:
		m.reverseModel, cmd = m.reverseModel.Update(msg)
	case SceneRegimes:
		m.regimesModel, cmd = m.regimesModel.Update(msg)
	}
	return m, cmd
}
