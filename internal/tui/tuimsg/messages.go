package tuimsg

import (
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/solver"
)

// InputChangedMsg signals the shared salary input was edited in a scene
type InputChangedMsg struct {
	Input domain.SalaryInput
}

// SolveCompleteMsg signals a reverse search has finished
type SolveCompleteMsg struct {
	Result *solver.Result
	Err    error
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
