package events

import "github.com/atomicstack/git-popup-control/internal/logging"

type ListTracer struct{}

type BusTracer struct{}

var (
	List = ListTracer{}
	Bus  = BusTracer{}
)

func (ListTracer) Refresh(view string, generation uint64) {
	logging.Trace("list.refresh", map[string]interface{}{"view": view, "generation": generation})
}

func (ListTracer) StaleFetch(view string, generation, latest uint64) {
	logging.Trace("list.fetch-stale", map[string]interface{}{
		"view":       view,
		"generation": generation,
		"latest":     latest,
	})
}

func (ListTracer) Loaded(view string, count int) {
	logging.Trace("list.loaded", map[string]interface{}{"view": view, "count": count})
}

func (ListTracer) Stage(view, key string, staged bool) {
	logging.Trace("list.stage", map[string]interface{}{"view": view, "key": key, "staged": staged})
}

func (ListTracer) BatchResult(view string, succeeded, notAttempted int, failed string) {
	logging.Trace("list.batch-result", map[string]interface{}{
		"view":         view,
		"succeeded":    succeeded,
		"notAttempted": notAttempted,
		"failed":       failed,
	})
}

func (BusTracer) Queue(op, view, label string) {
	logging.Trace("bus.queue", map[string]interface{}{"op": op, "view": view, "label": label})
}

func (BusTracer) Result(op, view, msgType string) {
	logging.Trace("bus.result", map[string]interface{}{"op": op, "view": view, "msg": msgType})
}
