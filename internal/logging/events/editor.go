package events

import "github.com/atomicstack/kvedit/internal/logging"

type EditorTracer struct{}

type LoadTracer struct{}

type editReason string

const (
	EditReasonEscape editReason = "escape"
)

var (
	Editor = EditorTracer{}
	Load   = LoadTracer{}
)

func (EditorTracer) Begin(field string) {
	logging.Trace("editor.edit.begin", map[string]interface{}{"field": field})
}

func (EditorTracer) Advance(field string) {
	logging.Trace("editor.edit.advance", map[string]interface{}{"field": field})
}

func (EditorTracer) Cancel(field string, reason editReason) {
	logging.Trace("editor.edit.cancel", map[string]interface{}{"field": field, "reason": string(reason)})
}

func (EditorTracer) Commit(key string, pairs int) {
	logging.Trace("editor.commit", map[string]interface{}{"key": key, "pairs": pairs})
}

func (EditorTracer) Serialize(bytes int, err error) {
	payload := map[string]interface{}{"bytes": bytes}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("editor.serialize", payload)
}

func (LoadTracer) Prompt() {
	logging.Trace("editor.load.prompt", nil)
}

func (LoadTracer) Success(path string, before, after int) {
	logging.Trace("editor.load", map[string]interface{}{"path": path, "before": before, "after": after})
}

func (LoadTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("editor.load.error", map[string]interface{}{"path": path, "error": err.Error()})
}

func (LoadTracer) Phase(phase string) {
	logging.Trace("editor.load.phase", map[string]interface{}{"phase": phase})
}

func (LoadTracer) Cancel() {
	logging.Trace("editor.load.cancel", nil)
}
