package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/git-popup-control/internal/backend"
	"github.com/atomicstack/git-popup-control/internal/git"
	"github.com/atomicstack/git-popup-control/internal/logging"
	"github.com/atomicstack/git-popup-control/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	RepoPath   string
	Width      int
	Height     int
	ShowFooter bool
	Watch      bool
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	repo, err := git.Discover(cfg.RepoPath)
	if err != nil {
		return fmt.Errorf("discover repository: %w", err)
	}

	var watcher *backend.Watcher
	if cfg.Watch {
		watcher, err = backend.NewWatcher(repo.GitDir())
		if err != nil {
			// The popup works without live refresh; log and continue.
			logging.Error(fmt.Errorf("watch %s: %w", repo.GitDir(), err))
			watcher = nil
		} else {
			defer watcher.Stop()
		}
	}

	model := ui.NewModel(repo, cfg.Width, cfg.Height, cfg.ShowFooter, watcher)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
