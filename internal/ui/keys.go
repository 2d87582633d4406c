package ui

import (
	"fmt"
	"unicode"

	"github.com/atomicstack/kvedit/internal/editor"
	"github.com/atomicstack/kvedit/internal/logging"
	"github.com/atomicstack/kvedit/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Type == tea.KeyCtrlC {
		return m.quit(false)
	}
	switch m.state.Screen {
	case editor.ScreenEditing:
		return m.handleEditingKey(key)
	case editor.ScreenLoading:
		return m.handleLoadingKey(key)
	case editor.ScreenExiting:
		return m.handleExitingKey(key)
	default:
		return m.handleMainKey(key)
	}
}

func (m *Model) handleMainKey(msg tea.KeyMsg) tea.Cmd {
	if m.list.Filtering {
		if handled := m.handleFilterInput(msg); handled {
			return nil
		}
	}
	switch msg.String() {
	case "e":
		m.clearMessages()
		m.setScreen(editor.ScreenEditing)
		m.state.BeginOrAdvanceEdit()
		m.inputCursorDirty = true
		events.Editor.Begin(m.state.EditField.String())
	case "l":
		m.clearMessages()
		return m.startLoadForm()
	case "q":
		m.clearMessages()
		m.setScreen(editor.ScreenExiting)
		events.Exit.Prompt()
	case "/":
		if m.list.StartFilter() {
			m.inputCursorDirty = true
			events.Filter.Start()
		}
	case "y":
		m.copyJSON()
	case "esc":
		if m.list.Filter != "" {
			m.list.StopFilter()
			m.list.EnsureCursorVisible(m.maxVisibleItems())
			events.Filter.Cleared()
		}
	case "up", "k":
		m.moveCursor(m.list.MoveCursorUp)
	case "down", "j":
		m.moveCursor(m.list.MoveCursorDown)
	case "pgup":
		m.moveCursor(func() bool { return m.list.MoveCursorPageUp(m.maxVisibleItems()) })
	case "pgdown":
		m.moveCursor(func() bool { return m.list.MoveCursorPageDown(m.maxVisibleItems()) })
	case "home", "g":
		m.moveCursor(m.list.MoveCursorHome)
	case "end", "G":
		m.moveCursor(m.list.MoveCursorEnd)
	}
	return nil
}

func (m *Model) moveCursor(move func() bool) {
	if !move() {
		return
	}
	m.list.EnsureCursorVisible(m.maxVisibleItems())
	events.UI.Cursor(m.list.Cursor)
}

func (m *Model) handleEditingKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+u" {
		if m.state.ClearInput() {
			m.inputCursorDirty = true
		}
		return nil
	}
	switch msg.Type {
	case tea.KeyEnter:
		if m.state.EditField == editor.EditValue {
			m.commitPair()
			return nil
		}
		m.advanceEdit()
	case tea.KeyTab:
		m.advanceEdit()
	case tea.KeyEsc:
		field := m.state.EditField
		m.state.CancelEdit()
		m.setScreen(editor.ScreenMain)
		events.Editor.Cancel(field.String(), events.EditReasonEscape)
	case tea.KeyBackspace, tea.KeyCtrlH:
		if m.state.DeleteInputRune() {
			m.inputCursorDirty = true
		}
	case tea.KeySpace:
		if m.state.AppendInput(" ") {
			m.inputCursorDirty = true
		}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		if text := printable(msg.Runes); m.state.AppendInput(text) {
			m.inputCursorDirty = true
		}
	}
	return nil
}

func (m *Model) advanceEdit() {
	begin := m.state.EditField == editor.EditNone
	m.state.BeginOrAdvanceEdit()
	m.inputCursorDirty = true
	if begin {
		events.Editor.Begin(m.state.EditField.String())
		return
	}
	events.Editor.Advance(m.state.EditField.String())
}

func (m *Model) commitPair() {
	key := m.state.KeyBuffer
	m.state.CommitPair()
	events.Editor.Commit(key, m.state.Len())
	m.setScreen(editor.ScreenMain)
	if m.list.Filter != "" {
		m.list.StopFilter()
	}
	m.list.SetPairs(m.state.Pairs)
	m.list.SelectKey(key)
	m.list.EnsureCursorVisible(m.maxVisibleItems())
	if m.verbose {
		m.setInfo(fmt.Sprintf("Saved %q", key))
	}
}

func (m *Model) handleExitingKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y":
		return m.quit(true)
	case "n", "q":
		return m.quit(false)
	case "esc":
		m.setScreen(editor.ScreenMain)
		events.Exit.Cancel()
	}
	return nil
}

func (m *Model) quit(printJSON bool) tea.Cmd {
	m.printOnExit = printJSON
	events.Exit.Confirm(printJSON)
	return tea.Quit
}

func (m *Model) copyJSON() {
	m.clearMessages()
	out, err := m.state.Serialize()
	events.Editor.Serialize(len(out), err)
	if err != nil {
		m.errMsg = err.Error()
		logging.Error(err)
		return
	}
	if err := m.writeClipboard(out); err != nil {
		err = fmt.Errorf("copy to clipboard: %w", err)
		m.errMsg = err.Error()
		events.Clipboard.Error(err)
		logging.Error(err)
		return
	}
	events.Clipboard.Copy(len(out))
	if m.verbose {
		m.setInfo(fmt.Sprintf("Copied %d pairs to clipboard", m.state.Len()))
	}
}

// printable drops control characters, such as newlines from a paste.
func printable(runes []rune) string {
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		if unicode.IsControl(r) {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
