package ui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/atomicstack/kvedit/internal/editor"
	"github.com/atomicstack/kvedit/internal/format/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	pairSeparator    = " : "
	selectedPrefix   = "> "
	unselectedPrefix = "  "
	exitQuestion     = "Would you like to output the buffer as json? (y/n)"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

var footerHints = map[editor.Screen]string{
	editor.ScreenMain:    "e new pair  l load  / filter  ↑/↓ move  y copy json  q quit",
	editor.ScreenEditing: "tab switch field  enter next/save  backspace delete  esc cancel",
	editor.ScreenLoading: "enter load  ctrl+u clear  esc cancel",
	editor.ScreenExiting: "y print json and quit  n quit  esc back",
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.title, style: styles.Title})
	lines = append(lines, m.pairLines()...)
	lines = append(lines, m.panelLines()...)
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{}, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: footerHints[m.state.Screen], style: styles.Footer})
	}
	bottom := m.bottomLines()
	lines = limitHeight(lines, m.height-len(bottom), m.width)
	lines = applyWidth(lines, m.width)
	lines = append(lines, applyWidth(bottom, m.width)...)
	return renderLines(lines)
}

func (m *Model) pairLines() []styledLine {
	if len(m.list.Items) == 0 {
		msg := "(no pairs)"
		if m.list.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", m.list.Filter)
		}
		return []styledLine{{text: msg, style: styles.Empty}}
	}
	m.list.EnsureCursorVisible(m.maxVisibleItems())
	items, start := m.list.Window(m.maxVisibleItems())
	rows := make([][]string, len(items))
	values := make([]string, len(items))
	for i, p := range items {
		values[i] = displayText(p.Value)
		rows[i] = []string{displayKey(p.Key), values[i]}
	}
	formatted := table.Format(rows, nil, pairSeparator)
	lines := make([]styledLine, len(items))
	for i, text := range formatted {
		prefix := unselectedPrefix
		style := styles.Value
		keyStyle := styles.Key
		if start+i == m.list.Cursor && m.state.Screen == editor.ScreenMain {
			prefix = selectedPrefix
			style = styles.SelectedRow
			keyStyle = styles.SelectedRow
		}
		text = prefix + text
		valueRunes := len([]rune(pairSeparator + values[i]))
		lines[i] = styledLine{
			text:          text,
			style:         style,
			prefixStyle:   keyStyle,
			highlightFrom: len([]rune(text)) - valueRunes,
		}
	}
	return lines
}

func displayKey(key string) string {
	if key == "" {
		return `""`
	}
	return displayText(key)
}

// displayText keeps a pair on one terminal row by spelling out control
// characters, so newlines and escape sequences never reach the terminal.
func displayText(text string) string {
	if strings.IndexFunc(text, unicode.IsControl) < 0 {
		return text
	}
	var b strings.Builder
	for _, r := range text {
		if !unicode.IsControl(r) {
			b.WriteRune(r)
			continue
		}
		quoted := strconv.QuoteRune(r)
		b.WriteString(quoted[1 : len(quoted)-1])
	}
	return b.String()
}

// panelLines renders the screen-specific block below the listing.
func (m *Model) panelLines() []styledLine {
	switch m.state.Screen {
	case editor.ScreenEditing:
		return []styledLine{
			{},
			{text: "Enter a new key-value pair", style: styles.PanelTitle},
			{text: m.fieldLine("Key:   ", m.state.KeyBuffer, editor.EditKey), raw: true},
			{text: m.fieldLine("Value: ", m.state.ValueBuffer, editor.EditValue), raw: true},
		}
	case editor.ScreenLoading:
		if m.loadForm == nil {
			return nil
		}
		return []styledLine{
			{},
			{text: m.loadForm.Title(), style: styles.PanelTitle},
			{text: m.loadForm.InputView(), raw: true},
			{text: m.loadForm.Help(), style: styles.Footer},
		}
	case editor.ScreenExiting:
		return []styledLine{
			{},
			{text: exitQuestion, style: styles.PanelTitle},
		}
	}
	return nil
}

func (m *Model) fieldLine(label, value string, field editor.EditField) string {
	if m.state.EditField != field {
		return styles.InactiveField.Render(label) + styles.Value.Render(value)
	}
	return styles.ActiveField.Render(label) + styles.Value.Render(value) + m.renderCaret(" ", styles.Value)
}

// bottomLines returns the status line and, when active, the filter prompt.
func (m *Model) bottomLines() []styledLine {
	lines := []styledLine{m.statusLine()}
	if prompt := m.filterPrompt(); prompt != "" {
		lines = append(lines, styledLine{text: prompt, raw: true})
	}
	return lines
}

func (m *Model) statusLine() styledLine {
	if m.errMsg != "" {
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	mode := " " + strings.ToUpper(m.state.Screen.String()) + " "
	if styles.Mode != nil {
		mode = styles.Mode.Render(mode)
	}
	return styledLine{text: mode + " " + styles.Footer.Render(m.statusDetail()), raw: true}
}

func (m *Model) statusDetail() string {
	parts := make([]string, 0, 3)
	switch m.state.EditField {
	case editor.EditKey:
		parts = append(parts, "editing key")
	case editor.EditValue:
		parts = append(parts, "editing value")
	}
	count := fmt.Sprintf("%d pairs", m.state.Len())
	if m.list.Filter != "" {
		count = fmt.Sprintf("%d of %d pairs", len(m.list.Items), m.state.Len())
	}
	parts = append(parts, count)
	if m.state.LoadPhase == editor.LoadDone {
		parts = append(parts, "loaded")
	}
	return strings.Join(parts, " · ")
}

// maxVisibleItems returns the number of listing rows that fit, or -1 when the
// height is unconstrained.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 1 + len(m.panelLines()) + len(m.bottomLines())
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return ansi.Truncate(text, 1, "")
	}
	return ansi.Truncate(text, width, "…")
}
