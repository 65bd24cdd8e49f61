package list

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/atomicstack/git-popup-control/internal/logging/events"
)

// Bus wraps backend invocations into Bubble Tea commands that post exactly one
// completion message each. The Bubble Tea runtime delivers those messages to
// the single consumer in arrival order; background work never mutates State
// directly.
type Bus struct {
	view string
}

// NewBus initialises a bus for the named view.
func NewBus(view string) *Bus {
	return &Bus{view: view}
}

// Fetch runs the data source asynchronously and reports the tagged result.
func (b *Bus) Fetch(generation uint64, source DataSource) tea.Cmd {
	op := uuid.NewString()
	events.Bus.Queue(op, b.view, fmt.Sprintf("fetch gen=%d", generation))
	return func() tea.Msg {
		items, err := source.FetchItems(context.Background())
		events.Bus.Result(op, b.view, fmt.Sprintf("%T", FetchCompleted{}))
		return FetchCompleted{View: b.view, Generation: generation, Items: items, Err: err}
	}
}

// Mutation runs a single backend mutation asynchronously.
func (b *Bus) Mutation(loading Op, label string, fn func(context.Context) error) tea.Cmd {
	op := uuid.NewString()
	events.Bus.Queue(op, b.view, fmt.Sprintf("%s %s", loading, label))
	return func() tea.Msg {
		err := fn(context.Background())
		events.Bus.Result(op, b.view, fmt.Sprintf("%T", MutationCompleted{}))
		return MutationCompleted{View: b.view, Op: loading, Label: label, Err: err}
	}
}

// BulkDelete deletes the given items one at a time, in order, awaiting each
// before starting the next. It stops at the first failure and classifies every
// key as succeeded, failed, or not attempted.
func (b *Bus) BulkDelete(items []Item, handler ActionHandler) tea.Cmd {
	if orderer, ok := handler.(BatchOrderer); ok {
		items = orderer.BatchOrder(items)
	}
	op := uuid.NewString()
	events.Bus.Queue(op, b.view, fmt.Sprintf("bulk-delete n=%d", len(items)))
	return func() tea.Msg {
		ctx := context.Background()
		var res BatchResult
		for i, item := range items {
			if err := handler.Delete(ctx, item); err != nil {
				res.FailedKey = item.Key()
				res.FailedReason = err
				for _, rest := range items[i+1:] {
					res.NotAttempted = append(res.NotAttempted, rest.Key())
				}
				break
			}
			res.Succeeded = append(res.Succeeded, item.Key())
		}
		events.Bus.Result(op, b.view, fmt.Sprintf("%T", BatchCompleted{}))
		return BatchCompleted{View: b.view, Result: res}
	}
}
