package events

import "github.com/atomicstack/git-popup-control/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Action = ActionTracer{}
)

func (UITracer) ViewSwitch(view string) {
	logging.Trace("ui.view-switch", map[string]interface{}{"view": view})
}

func (UITracer) Cursor(view string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"view": view, "cursor": cursor})
}

func (UITracer) Mode(view, mode string) {
	logging.Trace("ui.mode", map[string]interface{}{"view": view, "mode": mode})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared(view string) {
	logging.Trace("filter.clear", map[string]interface{}{"view": view})
}

func (FilterTracer) Append(view, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"view": view, "filter": filter})
}