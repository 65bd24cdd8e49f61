package list

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// KindFilter is the input kind handled by the controller itself: submissions
// update the list filter instead of being dispatched to the domain handler.
const KindFilter = "filter"

// Input owns the text buffer and edit cursor for one text-entry sub-mode.
// Validation is delegated to the view's InputHandler; without one, all input
// is accepted unchanged.
type Input struct {
	kind    string
	title   string
	input   textinput.Model
	handler InputHandler
	err     string
}

// NewInput builds a focused input for the given kind, pre-filled with initial.
func NewInput(kind, initial string, handler InputHandler) *Input {
	ti := textinput.New()
	ti.CharLimit = 128
	title := kind
	placeholder := ""
	if kind == KindFilter {
		title = "Filter"
		placeholder = "(fuzzy match)"
	} else if handler != nil {
		title, placeholder = handler.Prompt(kind)
	}
	ti.Placeholder = placeholder
	ti.Focus()
	if initial != "" {
		ti.SetValue(initial)
	}
	return &Input{
		kind:    kind,
		title:   title,
		input:   ti,
		handler: handler,
	}
}

func (f *Input) Kind() string  { return f.kind }
func (f *Input) Title() string { return f.title }
func (f *Input) Err() string   { return f.err }
func (f *Input) View() string  { return f.input.View() }

// Value returns the trimmed buffer contents.
func (f *Input) Value() string { return strings.TrimSpace(f.input.Value()) }

// Update consumes one message. On a valid submission it returns the accepted
// domain value with submitted=true; a rejected submission shows the message
// inline and keeps the input open. Esc cancels, discarding the buffer.
func (f *Input) Update(msg tea.Msg) (value string, submitted, canceled bool, cmd tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+u":
			if f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
				f.err = ""
			}
			return "", false, false, nil
		}
		switch key.Type {
		case tea.KeyEsc:
			return "", false, true, nil
		case tea.KeyEnter:
			text := f.Value()
			if f.kind == KindFilter {
				// Empty filter submissions clear the filter.
				return text, true, false, nil
			}
			if f.handler == nil {
				return text, true, false, nil
			}
			accepted, err := f.handler.Validate(f.kind, text)
			if err != nil {
				f.err = err.Error()
				return "", false, false, nil
			}
			f.err = ""
			return accepted, true, false, nil
		}
	}
	updated, cmd := f.input.Update(msg)
	f.input = updated
	return "", false, false, cmd
}
