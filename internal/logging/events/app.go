package events

import "github.com/atomicstack/kvedit/internal/logging"

type AppTracer struct{}

type ExitTracer struct{}

var (
	App  = AppTracer{}
	Exit = ExitTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(pairs int, printJSON bool) {
	logging.Trace("app.stop", map[string]interface{}{"pairs": pairs, "print": printJSON})
}

func (ExitTracer) Prompt() {
	logging.Trace("exit.prompt", nil)
}

func (ExitTracer) Confirm(printJSON bool) {
	logging.Trace("exit.confirm", map[string]interface{}{"print": printJSON})
}

func (ExitTracer) Cancel() {
	logging.Trace("exit.cancel", nil)
}
