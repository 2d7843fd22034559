package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/tui"
)

func main() {
	_ = godotenv.Load()

	// Config file is optional; without one the calculator starts from the default structure
	configPath := ""
	if len(os.Args) > 1 {
		configPath = os.Args[1]
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			fmt.Printf("Error: Config file not found: %s\n", configPath)
			os.Exit(1)
		}
	}

	var regime domain.RegimeName
	if v := os.Getenv("CTCGO_REGIME"); v != "" {
		r, err := domain.ParseRegimeName(v)
		if err != nil {
			fmt.Printf("Error: CTCGO_REGIME: %v\n", err)
			os.Exit(1)
		}
		regime = r
	}

	model := tui.NewModel(configPath).WithOverrides(regime, os.Getenv("CTCGO_VARIANT"))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
