package ui

import (
	"github.com/atomicstack/kvedit/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const filterPlaceholder = "(type to filter)"

// handleFilterInput applies key presses to the listing filter while it has
// focus. Keys it does not consume fall through to the listing handlers.
func (m *Model) handleFilterInput(msg tea.KeyMsg) bool {
	l := m.list
	before := l.FilterCursorPos()
	switch msg.String() {
	case "ctrl+u":
		if l.Filter == "" {
			return true
		}
		l.SetFilter("", 0)
		events.Filter.Cleared()
		m.afterFilterChange(before)
		return true
	case "ctrl+w":
		if l.DeleteFilterWordBackward() {
			events.Filter.WordBackspace(l.Filter)
			m.afterFilterChange(before)
		}
		return true
	}
	switch msg.Type {
	case tea.KeyEnter:
		l.Filtering = false
		return true
	case tea.KeyEsc:
		l.StopFilter()
		events.Filter.Cleared()
		m.afterFilterChange(before)
		return true
	case tea.KeyBackspace, tea.KeyCtrlH:
		if l.DeleteFilterRuneBackward() {
			events.Filter.Backspace(l.Filter)
			m.afterFilterChange(before)
		}
		return true
	case tea.KeyLeft:
		if l.MoveFilterCursorRuneBackward() {
			events.Filter.Cursor(l.FilterCursor)
			m.inputCursorDirty = true
		}
		return true
	case tea.KeyRight:
		if l.MoveFilterCursorRuneForward() {
			events.Filter.Cursor(l.FilterCursor)
			m.inputCursorDirty = true
		}
		return true
	case tea.KeySpace:
		m.appendToFilter(" ", before)
		return true
	case tea.KeyRunes:
		if msg.Alt {
			return false
		}
		m.appendToFilter(printable(msg.Runes), before)
		return true
	}
	return false
}

func (m *Model) appendToFilter(text string, before int) {
	if !m.list.InsertFilterText(text) {
		return
	}
	events.Filter.Append(m.list.Filter)
	m.afterFilterChange(before)
}

func (m *Model) afterFilterChange(before int) {
	if before != m.list.FilterCursorPos() {
		m.inputCursorDirty = true
	}
	m.clearMessages()
	m.list.EnsureCursorVisible(m.maxVisibleItems())
}

// filterPrompt renders the filter line with the caret at the cursor position.
func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	prompt := "/ "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := m.list.Filter
	if text == "" {
		if !m.list.Filtering {
			return ""
		}
		runes := []rune(filterPlaceholder)
		caret := m.renderCaret(string(runes[0]), styles.FilterPlaceholder)
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	if !m.list.Filtering {
		return prompt + render(styles.Filter, text)
	}
	runes := []rune(text)
	pos := m.list.FilterCursorPos()
	head := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	var tail string
	if pos < len(runes) {
		caretRune = string(runes[pos])
		tail = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + head + m.renderCaret(caretRune, styles.Filter) + tail
}

// renderCaret draws char under the shared input cursor.
func (m *Model) renderCaret(char string, text *lipgloss.Style) string {
	if char == "" {
		char = " "
	}
	m.inputCursor.SetChar(char)
	base := lipgloss.NewStyle()
	if text != nil {
		base = text.Copy()
	}
	base = base.Inline(true)
	if m.inputCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		return base.Inherit(styles.Cursor.Copy().Inline(true)).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
