package list

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/git-popup-control/internal/logging/events"
)

// Mode is the controller's interaction mode. Exactly one mode is active at a
// time; completion messages never change it.
type Mode int

const (
	// ModeNormal routes keys to navigation and the view's keybindings.
	ModeNormal Mode = iota
	// ModeInput routes keys to the active text input.
	ModeInput
	// ModeConfirmDelete awaits a yes/no answer for a staged bulk delete.
	ModeConfirmDelete
)

func (m Mode) String() string {
	switch m {
	case ModeInput:
		return "input"
	case ModeConfirmDelete:
		return "confirm-delete"
	default:
		return "normal"
	}
}

// Controller drives one list view: it owns the mode machine, routes keys,
// starts asynchronous work through the bus, and folds completion messages
// back into the state. All methods run on the update-loop goroutine.
type Controller struct {
	view    string
	state   *State
	source  DataSource
	handler ActionHandler
	inputs  InputHandler
	bus     *Bus

	mode     Mode
	input    *Input
	pageSize int

	errMsg  string
	infoMsg string
}

// NewController wires a controller for the named view. inputs may be nil when
// the view has no validated text entry.
func NewController(view string, source DataSource, handler ActionHandler, inputs InputHandler) *Controller {
	return &Controller{
		view:    view,
		state:   NewState(),
		source:  source,
		handler: handler,
		inputs:  inputs,
		bus:     NewBus(view),
	}
}

func (c *Controller) View() string { return c.view }

func (c *Controller) State() *State { return c.state }

func (c *Controller) Mode() Mode { return c.mode }

func (c *Controller) Input() *Input { return c.input }

func (c *Controller) ErrMsg() string { return c.errMsg }

func (c *Controller) InfoMsg() string { return c.infoMsg }

// SetPageSize records the visible row count used for page movement.
func (c *Controller) SetPageSize(rows int) { c.pageSize = rows }

// Bindings returns the view's active keybindings for the current selection.
func (c *Controller) Bindings() []Keybinding {
	var sel *Wrapper
	if w, ok := c.state.Selected(); ok {
		sel = &w
	}
	return c.handler.Keybindings(sel, c.state.HasStaged())
}

// Refresh starts a new fetch and returns the command that runs it. Older
// in-flight fetches keep running; their results are discarded on arrival.
func (c *Controller) Refresh() tea.Cmd {
	gen := c.state.BeginFetch()
	events.List.Refresh(c.view, gen)
	return c.bus.Fetch(gen, c.source)
}

// HandleKey routes one key press according to the current mode. The returned
// command, if any, must be handed to the Bubble Tea runtime.
func (c *Controller) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch c.mode {
	case ModeInput:
		return c.handleInputKey(msg)
	case ModeConfirmDelete:
		return c.handleConfirmKey(msg)
	default:
		return c.handleNormalKey(msg)
	}
}

func (c *Controller) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	value, submitted, canceled, cmd := c.input.Update(msg)
	if canceled {
		c.setMode(ModeNormal)
		c.input = nil
		return nil
	}
	if !submitted {
		return cmd
	}
	kind := c.input.Kind()
	c.setMode(ModeNormal)
	c.input = nil
	if kind == KindFilter {
		c.state.SetFilter(value)
		if value == "" {
			events.Filter.Cleared(c.view)
		} else {
			events.Filter.Append(c.view, value)
		}
		return nil
	}
	c.state.SetLoading(OpSubmit)
	return c.bus.Mutation(OpSubmit, value, func(ctx context.Context) error {
		return c.handler.Submit(ctx, kind, value)
	})
}

func (c *Controller) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y", "enter":
		// A fetch may race the confirmation (watcher refresh); keep the
		// prompt open until it settles rather than stomp its loading tag.
		if c.state.Busy() {
			return nil
		}
		items := c.state.StagedItems()
		c.setMode(ModeNormal)
		if len(items) == 0 {
			return nil
		}
		c.state.SetLoading(OpDelete)
		return c.bus.BulkDelete(items, c.handler)
	case "n", "N", "esc", "q":
		c.setMode(ModeNormal)
	}
	return nil
}

func (c *Controller) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	c.errMsg = ""
	c.infoMsg = ""

	// Navigation is never blocked, busy or not.
	switch key {
	case "up", "k":
		c.moveTrace(c.state.MoveCursor(-1))
		return nil
	case "down", "j":
		c.moveTrace(c.state.MoveCursor(1))
		return nil
	case "pgup":
		c.moveTrace(c.state.MoveCursorPageUp(c.pageSize))
		return nil
	case "pgdown":
		c.moveTrace(c.state.MoveCursorPageDown(c.pageSize))
		return nil
	case "home":
		c.moveTrace(c.state.MoveCursorHome())
		return nil
	case "end":
		c.moveTrace(c.state.MoveCursorEnd())
		return nil
	case "/":
		c.input = NewInput(KindFilter, c.state.Filter(), nil)
		c.setMode(ModeInput)
		return nil
	case "ctrl+r":
		if c.state.Busy() {
			return nil
		}
		return c.Refresh()
	case "enter":
		// Enter aliases the view's primary action.
		for _, binding := range c.Bindings() {
			if binding.Command == CmdPrimary {
				return c.dispatch(binding)
			}
		}
		return nil
	case "esc":
		if c.state.Filter() != "" {
			c.state.SetFilter("")
			events.Filter.Cleared(c.view)
		}
		return nil
	}

	for _, binding := range c.Bindings() {
		if binding.Key == key {
			return c.dispatch(binding)
		}
	}
	return nil
}

func (c *Controller) dispatch(b Keybinding) tea.Cmd {
	switch b.Command {
	case CmdPrimary:
		sel, ok := c.state.Selected()
		if !ok || c.state.Busy() {
			return nil
		}
		item := sel.Item
		c.state.SetLoading(Op(b.Arg))
		return c.bus.Mutation(Op(b.Arg), item.Key(), func(ctx context.Context) error {
			return c.handler.PrimaryAction(ctx, item)
		})

	case CmdToggleStage:
		sel, ok := c.state.Selected()
		if !ok {
			return nil
		}
		if !c.handler.CanDelete(sel.Item) {
			c.errMsg = fmt.Sprintf("%s cannot be deleted", sel.Key())
			return nil
		}
		if key, changed := c.state.ToggleStageSelected(); changed {
			events.List.Stage(c.view, key, c.state.IsStaged(key))
		}
		return nil

	case CmdUnstage:
		sel, ok := c.state.Selected()
		if !ok || c.state.Busy() {
			return nil
		}
		if c.state.IsStaged(sel.Key()) {
			c.state.Unstage(sel.Key())
			events.List.Stage(c.view, sel.Key(), false)
		}
		return nil

	case CmdBulkDelete:
		if c.state.Busy() {
			return nil
		}
		if !c.state.HasStaged() {
			c.infoMsg = "nothing staged"
			return nil
		}
		c.setMode(ModeConfirmDelete)
		return nil

	case CmdStartInput:
		if c.state.Busy() {
			return nil
		}
		c.input = NewInput(b.Arg, "", c.inputs)
		c.setMode(ModeInput)
		return nil

	case CmdMutate:
		sel, ok := c.state.Selected()
		if !ok || c.state.Busy() {
			return nil
		}
		item := sel.Item
		name := b.Arg
		c.state.SetLoading(Op(name))
		return c.bus.Mutation(Op(name), item.Key(), func(ctx context.Context) error {
			return c.handler.Mutate(ctx, name, item)
		})

	case CmdRefresh:
		if c.state.Busy() {
			return nil
		}
		return c.Refresh()
	}
	return nil
}

// Apply folds a completion message into the state. It reports whether the
// message belonged to this controller and the follow-up command, if any.
func (c *Controller) Apply(msg tea.Msg) (tea.Cmd, bool) {
	switch m := msg.(type) {
	case FetchCompleted:
		if m.View != c.view {
			return nil, false
		}
		if m.Generation < c.state.Generation() {
			// A newer fetch is already in flight; its completion clears the
			// loading flag.
			events.List.StaleFetch(c.view, m.Generation, c.state.Generation())
			return nil, true
		}
		// Only a fetch tag is ours to clear; a mutation that is still in
		// flight keeps the controller busy.
		if c.state.Loading() == OpFetch {
			c.state.SetLoading(OpNone)
		}
		if m.Err != nil {
			c.errMsg = m.Err.Error()
			events.Action.Error(m.Err)
			return nil, true
		}
		c.state.SetItems(m.Items)
		events.List.Loaded(c.view, c.state.Len())
		return nil, true

	case MutationCompleted:
		if m.View != c.view {
			return nil, false
		}
		c.state.SetLoading(OpNone)
		if m.Err != nil {
			c.errMsg = m.Err.Error()
			events.Action.Error(m.Err)
			return nil, true
		}
		c.infoMsg = fmt.Sprintf("%s %s", m.Op, m.Label)
		events.Action.Success(c.infoMsg)
		return c.Refresh(), true

	case BatchCompleted:
		if m.View != c.view {
			return nil, false
		}
		c.state.SetLoading(OpNone)
		for _, key := range m.Result.Succeeded {
			c.state.Unstage(key)
		}
		events.List.BatchResult(c.view, len(m.Result.Succeeded), len(m.Result.NotAttempted), m.Result.FailedKey)
		if m.Result.Failed() {
			c.errMsg = fmt.Sprintf("deleted %d, failed on %s: %v (%d not attempted)",
				len(m.Result.Succeeded), m.Result.FailedKey, m.Result.FailedReason, len(m.Result.NotAttempted))
			events.Action.Error(m.Result.FailedReason)
		} else {
			c.infoMsg = fmt.Sprintf("deleted %d item(s)", len(m.Result.Succeeded))
			events.Action.Success(c.infoMsg)
		}
		return c.Refresh(), true
	}
	return nil, false
}

func (c *Controller) setMode(mode Mode) {
	if c.mode == mode {
		return
	}
	c.mode = mode
	events.UI.Mode(c.view, mode.String())
}

func (c *Controller) moveTrace(moved bool) {
	if moved {
		events.UI.Cursor(c.view, c.state.Cursor())
	}
}
