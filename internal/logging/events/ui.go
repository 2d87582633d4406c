package events

import "github.com/atomicstack/kvedit/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ClipboardTracer struct{}

var (
	UI        = UITracer{}
	Filter    = FilterTracer{}
	Clipboard = ClipboardTracer{}
)

func (UITracer) Screen(from, to string) {
	logging.Trace("screen.change", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) Cursor(cursor int) {
	logging.Trace("list.cursor", map[string]interface{}{"cursor": cursor})
}

func (FilterTracer) Start() {
	logging.Trace("filter.start", nil)
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) WordBackspace(filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (ClipboardTracer) Copy(bytes int) {
	logging.Trace("clipboard.copy", map[string]interface{}{"bytes": bytes})
}

func (ClipboardTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("clipboard.error", map[string]interface{}{"error": err.Error()})
}
