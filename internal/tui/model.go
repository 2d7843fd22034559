package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/compare"
	"github.com/rgehrsitz/ctcgo/internal/config"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/solver"
	"github.com/rgehrsitz/ctcgo/internal/tui/scenes"
)

// DefaultCTC seeds the calculator when no configuration file is given
var DefaultCTC = decimal.NewFromInt(1200000)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Configuration and data
	configPath string
	config     *domain.Configuration
	registry   *domain.RegimeRegistry
	input      domain.SalaryInput

	// Environment overrides applied over whatever the config file says
	regimeOverride  domain.RegimeName
	variantOverride string

	// Engines
	engine        *calculation.Engine
	solver        *solver.Solver
	compareEngine *compare.CompareEngine

	// Scene-specific models
	forwardModel *scenes.ForwardModel
	reverseModel *scenes.ReverseModel
	regimesModel *scenes.RegimesModel

	// Error state
	err error

	// Loading state
	loading        bool
	loadingMessage string
}

// NewModel creates a new application model. An empty configPath starts from the
// default component structure.
func NewModel(configPath string) Model {
	return Model{
		currentScene:   SceneForward,
		configPath:     configPath,
		forwardModel:   scenes.NewForwardModel(),
		reverseModel:   scenes.NewReverseModel(),
		regimesModel:   scenes.NewRegimesModel(),
		loading:        true,
		loadingMessage: "Loading configuration...",
		width:          80,
		height:         24,
	}
}

// WithOverrides forces the regime and variant of every loaded configuration. Empty values
// leave the configuration alone.
func (m Model) WithOverrides(regime domain.RegimeName, variant string) Model {
	m.regimeOverride = regime
	m.variantOverride = variant
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadConfigCmd(m.configPath)
}

// loadConfigCmd returns a command that loads the configuration file and its regime overlay
func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return ConfigLoadedMsg{
				Config:   &domain.Configuration{Salary: domain.DefaultSalaryInput(DefaultCTC, domain.RegimeNew)},
				Registry: calculation.NewDefaultRegistry(),
			}
		}

		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		reg, err := parser.ResolveRegistry(cfg)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to load regimes: %w", err)}
		}

		return ConfigLoadedMsg{
			Config:   cfg,
			Registry: reg,
		}
	}
}

// applyConfig wires engines and scenes to a freshly loaded configuration
func (m *Model) applyConfig(cfg *domain.Configuration, reg *domain.RegimeRegistry) {
	if reg == nil {
		reg = calculation.NewDefaultRegistry()
	}
	m.config = cfg
	m.registry = reg
	m.input = cfg.Salary
	if m.regimeOverride != "" {
		m.input.Regime = m.regimeOverride
	}
	if m.variantOverride != "" {
		m.input.Variant = m.variantOverride
	}

	m.engine = calculation.NewEngine(reg)
	m.solver = solver.NewSolver(m.engine, solver.DefaultSolverOptions().WithSettings(cfg.Solver))
	m.compareEngine = compare.NewCompareEngine(m.engine)

	m.forwardModel.SetEngine(m.engine)
	m.forwardModel.SetInput(m.input)
	m.reverseModel.SetSolver(m.solver)
	m.reverseModel.SetInput(m.input)
	if !cfg.TargetMonthly.IsZero() {
		m.reverseModel.SetTarget(cfg.TargetMonthly)
	}
	m.regimesModel.SetEngine(m.compareEngine)
	m.regimesModel.SetInput(m.input)

	m.forwardModel.SetSize(m.width, m.height)
	m.reverseModel.SetSize(m.width, m.height)
	m.regimesModel.SetSize(m.width, m.height)
}

// Input returns the salary input shared by all scenes
func (m Model) Input() domain.SalaryInput {
	return m.input
}

// CurrentScene returns the active scene
func (m Model) CurrentScene() Scene {
	return m.currentScene
}

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneForward:
		return "CTC → In-hand"
	case SceneReverse:
		return "In-hand → CTC"
	case SceneRegimes:
		return "Old vs New"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
