package tui

import (
	"github.com/rgehrsitz/ctcgo/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneForward Scene = iota
	SceneReverse
	SceneRegimes
	SceneHelp
)

// Message types for the Bubble Tea update cycle

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// QuitMsg signals the application should exit
type QuitMsg struct{}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ConfigLoadedMsg carries the loaded salary configuration and the regime registry it resolves to
type ConfigLoadedMsg struct {
	Config   *domain.Configuration
	Registry *domain.RegimeRegistry
}

// WindowSizeMsg signals the terminal window has been resized
type WindowSizeMsg struct {
	Width  int
	Height int
}
