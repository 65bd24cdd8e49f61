package ui

import (
	"reflect"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/git-popup-control/internal/backend"
	"github.com/atomicstack/git-popup-control/internal/git"
	"github.com/atomicstack/git-popup-control/internal/list"
	"github.com/atomicstack/git-popup-control/internal/logging/events"
	"github.com/atomicstack/git-popup-control/internal/theme"
	"github.com/atomicstack/git-popup-control/internal/views/branches"
	"github.com/atomicstack/git-popup-control/internal/views/stashes"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the git popup. It hosts one list
// controller per view and routes keys to whichever is active.
type Model struct {
	controllers []*list.Controller
	active      int

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	backend        *backend.Watcher
	backendLastErr string

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI with branch and stash controllers over the
// given repository.
func NewModel(repo *git.Repo, width, height int, showFooter bool, watcher *backend.Watcher) *Model {
	m := &Model{
		controllers: []*list.Controller{
			list.NewController(branches.ViewName, branches.Source{Repo: repo}, branches.Handler{Repo: repo}, branches.Validator{Repo: repo}),
			list.NewController(stashes.ViewName, stashes.Source{Repo: repo}, stashes.Handler{Repo: repo}, stashes.Validator{}),
		},
		backend:    watcher,
		showFooter: showFooter,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.syncPageSizes()
	m.registerHandlers()
	return m
}

func (m *Model) activeController() *list.Controller {
	return m.controllers[m.active]
}

// Init starts the initial fetch for every view and begins draining backend
// change hints.
func (m *Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.controllers)+1)
	for _, c := range m.controllers {
		cmds = append(cmds, c.Refresh())
	}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):             m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):      m.handleWindowSizeMsg,
		reflect.TypeOf(list.FetchCompleted{}):    m.handleListMsg,
		reflect.TypeOf(list.MutationCompleted{}): m.handleListMsg,
		reflect.TypeOf(list.BatchCompleted{}):    m.handleListMsg,
		reflect.TypeOf(backendEventMsg{}):        m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):         m.handleBackendDoneMsg,
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

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.String() == "ctrl+c" {
		return tea.Quit
	}
	active := m.activeController()
	if active.Mode() == list.ModeNormal {
		switch key.String() {
		case "q":
			return tea.Quit
		case "esc":
			if active.State().Filter() == "" {
				return tea.Quit
			}
		case "tab":
			m.switchView(1)
			return nil
		case "shift+tab":
			m.switchView(-1)
			return nil
		}
	}
	return active.HandleKey(key)
}

func (m *Model) switchView(delta int) {
	n := len(m.controllers)
	m.active = (m.active + delta + n) % n
	events.UI.ViewSwitch(m.activeController().View())
}

// handleListMsg delivers a completion message to the controller that owns it.
// Completion messages never change the active view or its mode.
func (m *Model) handleListMsg(msg tea.Msg) tea.Cmd {
	for _, c := range m.controllers {
		if cmd, handled := c.Apply(msg); handled {
			return cmd
		}
	}
	return nil
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
	m.syncPageSizes()
	return nil
}

func (m *Model) syncPageSizes() {
	rows := m.maxVisibleItems()
	for _, c := range m.controllers {
		c.SetPageSize(rows)
	}
}
