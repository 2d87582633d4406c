package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/kvedit/internal/editor"
	"github.com/atomicstack/kvedit/internal/logging/events"
	"github.com/atomicstack/kvedit/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	File       string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Result is the editor state left behind when the program ends.
type Result struct {
	State     *editor.State
	PrintJSON bool
}

// NewModel builds the UI model for cfg, loading cfg.File when set. A failed
// startup load is reported inside the UI rather than aborting.
func NewModel(cfg Config) *ui.Model {
	model := ui.NewModel(editor.New(), ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
	})
	if cfg.File != "" {
		_ = model.LoadFile(cfg.File)
	}
	return model
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) (Result, error) {
	model := NewModel(cfg)
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return Result{State: model.State()}, fmt.Errorf("run editor: %w", err)
	}
	if m, ok := final.(*ui.Model); ok && m != nil {
		model = m
	}
	result := Result{State: model.State(), PrintJSON: model.PrintOnExit()}
	events.App.Stop(result.State.Len(), result.PrintJSON)
	return result, nil
}
