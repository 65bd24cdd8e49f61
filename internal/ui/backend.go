package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/git-popup-control/internal/backend"
	"github.com/atomicstack/git-popup-control/internal/list"
	"github.com/atomicstack/git-popup-control/internal/views/branches"
	"github.com/atomicstack/git-popup-control/internal/views/stashes"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

// handleBackendEventMsg re-fetches the view affected by a repository change
// hint. The fetch generation guard makes redundant hints harmless.
func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmds := []tea.Cmd{waitForBackendEvent(m.backend)}
	if eventMsg.event.Err != nil {
		m.backendLastErr = eventMsg.event.Err.Error()
		return tea.Batch(cmds...)
	}
	m.backendLastErr = ""
	view := branches.ViewName
	if eventMsg.event.Kind == backend.KindStash {
		view = stashes.ViewName
	}
	if c := m.controllerFor(view); c != nil && !c.State().Busy() {
		cmds = append(cmds, c.Refresh())
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	// Watcher stopped; no more hints will arrive.
	return nil
}

func (m *Model) controllerFor(view string) *list.Controller {
	for _, c := range m.controllers {
		if c.View() == view {
			return c
		}
	}
	return nil
}
