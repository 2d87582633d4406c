package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/kvedit/internal/editor"
	"github.com/atomicstack/kvedit/internal/logging/events"
	"github.com/atomicstack/kvedit/internal/theme"
	uistate "github.com/atomicstack/kvedit/internal/ui/state"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultTitle = "kvedit"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Title      string
}

// Model implements the Bubble Tea model for the editor.
type Model struct {
	state    *editor.State
	list     *uistate.List
	loadForm *LoadForm

	lastLoadPath string
	title        string
	errMsg       string
	infoMsg      string
	infoExpire   time.Time
	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool
	showFooter   bool
	verbose      bool
	printOnExit  bool

	inputCursor      cursor.Model
	inputCursorDirty bool
	cursorMode       cursor.Mode

	writeClipboard func(string) error

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps state in a UI model. state must not be nil.
func NewModel(state *editor.State, opts Options) *Model {
	m := &Model{
		state:          state,
		list:           uistate.NewList(state.Pairs),
		title:          opts.Title,
		showFooter:     opts.ShowFooter,
		verbose:        opts.Verbose,
		cursorMode:     cursor.CursorBlink,
		writeClipboard: clipboard.WriteAll,
	}
	if m.title == "" {
		m.title = defaultTitle
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	c.SetChar(" ")
	m.inputCursor = c
	m.registerHandlers()
	return m
}

// State exposes the editor state driven by the model.
func (m *Model) State() *editor.State {
	return m.state
}

// PrintOnExit reports whether the user asked for the pairs to be written
// out when the program ends.
func (m *Model) PrintOnExit() bool {
	return m.printOnExit
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.inputCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateInputCursor(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	} else if m.loadForm != nil {
		// cursor blinks and other internal input messages
		if cmd := m.loadForm.Forward(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) updateInputCursor(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.inputCursor, cmd = m.inputCursor.Update(msg)
	return cmd
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.inputCursorDirty {
		m.inputCursorDirty = false
		m.inputCursor.Blink = false
		if cmd := m.inputCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// setCursorMode switches the caret of the edit buffers, the filter, and any
// open load prompt.
func (m *Model) setCursorMode(mode cursor.Mode) tea.Cmd {
	m.cursorMode = mode
	if m.loadForm != nil {
		m.loadForm.SetCursorMode(mode)
	}
	return m.inputCursor.SetMode(mode)
}

func (m *Model) setScreen(next editor.Screen) {
	prev := m.state.Screen
	if prev == next {
		return
	}
	m.state.Screen = next
	events.UI.Screen(prev.String(), next.String())
}

func (m *Model) refreshList() {
	m.list.SetPairs(m.state.Pairs)
	m.list.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.list.EnsureCursorVisible(m.maxVisibleItems())
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func (m *Model) clearMessages() {
	m.errMsg = ""
	m.forceClearInfo()
}
