package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/kvedit/internal/editor"
	"github.com/atomicstack/kvedit/internal/logging"
	"github.com/atomicstack/kvedit/internal/logging/events"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoadForm prompts for the path of a JSON file to merge into the editor.
type LoadForm struct {
	input textinput.Model
	title string
	help  string
}

// NewLoadForm returns a focused prompt, pre-filled with initial when set.
func NewLoadForm(initial string, mode cursor.Mode) *LoadForm {
	ti := textinput.New()
	ti.Placeholder = "path/to/pairs.json"
	ti.CharLimit = 4096
	ti.Prompt = "> "
	ti.Cursor.SetMode(mode)
	if initial != "" {
		ti.SetValue(initial)
		ti.CursorEnd()
	}
	ti.Focus()
	return &LoadForm{
		input: ti,
		title: "Load JSON file",
		help:  "Press Enter to load. Esc to cancel.",
	}
}

func (f *LoadForm) Title() string     { return f.title }
func (f *LoadForm) Help() string      { return f.help }
func (f *LoadForm) Value() string     { return strings.TrimSpace(f.input.Value()) }
func (f *LoadForm) InputView() string { return f.input.View() }

// SetCursorMode changes how the input caret is drawn.
func (f *LoadForm) SetCursorMode(mode cursor.Mode) {
	f.input.Cursor.SetMode(mode)
}

// Update handles a message and reports whether the form was submitted or
// cancelled.
func (f *LoadForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+u":
			if f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
			}
			return nil, false, false
		}
		switch key.Type {
		case tea.KeyEsc:
			return nil, false, true
		case tea.KeyEnter:
			if f.Value() == "" {
				return nil, false, true
			}
			return nil, true, false
		}
	}
	return f.Forward(msg), false, false
}

// Forward passes msg to the text input unchanged.
func (f *LoadForm) Forward(msg tea.Msg) tea.Cmd {
	updated, cmd := f.input.Update(msg)
	f.input = updated
	return cmd
}

func (m *Model) startLoadForm() tea.Cmd {
	initial := ""
	if m.state.LoadPhase == editor.LoadDone {
		initial = m.lastLoadPath
	}
	m.loadForm = NewLoadForm(initial, m.cursorMode)
	m.setScreen(editor.ScreenLoading)
	events.Load.Prompt()
	return textinput.Blink
}

func (m *Model) handleLoadingKey(msg tea.KeyMsg) tea.Cmd {
	if m.loadForm == nil {
		m.loadForm = NewLoadForm("", m.cursorMode)
	}
	cmd, done, cancel := m.loadForm.Update(msg)
	if cancel {
		m.loadForm = nil
		m.errMsg = ""
		m.setScreen(editor.ScreenMain)
		events.Load.Cancel()
		return cmd
	}
	if !done {
		return cmd
	}
	path := m.loadForm.Value()
	if err := m.loadFile(path); err != nil {
		return cmd
	}
	m.loadForm = nil
	m.setScreen(editor.ScreenMain)
	return cmd
}

// LoadFile merges the pairs in path into the editor, as if the user had
// entered the path in the load prompt. Failures are shown in the status line
// and returned.
func (m *Model) LoadFile(path string) error {
	return m.loadFile(path)
}

func (m *Model) loadFile(path string) error {
	m.clearMessages()
	before := m.state.Len()
	if err := m.state.LoadFromFile(path); err != nil {
		m.errMsg = err.Error()
		events.Load.Error(path, err)
		logging.Error(err)
		return err
	}
	m.state.AdvanceLoadPhase()
	m.lastLoadPath = path
	events.Load.Success(path, before, m.state.Len())
	events.Load.Phase(m.state.LoadPhase.String())
	if m.list.Filter != "" {
		m.list.StopFilter()
	}
	m.refreshList()
	if m.verbose {
		m.setInfo(fmt.Sprintf("Loaded %s (%d pairs)", path, m.state.Len()))
	}
	return nil
}
