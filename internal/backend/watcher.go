package backend

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Kind represents the slice of repository state an event refers to.
type Kind int

const (
	KindRefs Kind = iota
	KindStash
)

// Event reports that repository state of the given kind may have changed, or
// that the underlying filesystem watch failed.
type Event struct {
	Kind Kind
	Err  error
}

// Watcher observes the repository's .git directory and publishes change hints.
// It watches refs/heads for branch updates and the stash reflog for stash
// updates; HEAD covers checkouts and detached moves. Events are hints only;
// consumers re-list via git to get authoritative state.
type Watcher struct {
	gitDir string

	ctx    context.Context
	cancel context.CancelFunc

	fs     *fsnotify.Watcher
	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching the given .git directory.
func NewWatcher(gitDir string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Ref updates land as renames of lock files inside these directories.
	// refs/heads may not exist in a fresh repo (packed refs); ignore misses.
	_ = fs.Add(gitDir)
	_ = fs.Add(filepath.Join(gitDir, "refs", "heads"))
	_ = fs.Add(filepath.Join(gitDir, "logs", "refs"))

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		gitDir: gitDir,
		ctx:    ctx,
		cancel: cancel,
		fs:     fs,
		events: make(chan Event, 16),
	}
	w.wg.Add(1)
	go w.loop()
	go func() {
		w.wg.Wait()
		close(w.events)
	}()
	return w, nil
}

// Events returns the change-hint channel. It is closed after Stop.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher and releases the filesystem watches.
func (w *Watcher) Stop() {
	w.cancel()
	w.fs.Close()
}

// Wait blocks until the watch goroutine has exited and the events channel is
// closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	// Checkouts touch many files at once; the throttle collapses the burst
	// into a single hint per kind.
	throttle := newThrottle(250 * time.Millisecond)

	emit := func(evt Event) bool {
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	for {
		select {
		case <-w.ctx.Done():
			return
		case fsEvt, ok := <-w.fs.Events:
			if !ok {
				return
			}
			kind, relevant := classifyPath(w.gitDir, fsEvt.Name)
			if !relevant {
				continue
			}
			throttle.wait()
			if !emit(Event{Kind: kind}) {
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			if err == nil {
				continue
			}
			if !emit(Event{Kind: KindRefs, Err: err}) {
				return
			}
		}
	}
}

// classifyPath maps a changed path under .git to an event kind. Lock files
// are churn from in-progress operations and are skipped; the final rename
// onto the real path still fires.
func classifyPath(gitDir, path string) (Kind, bool) {
	rel, err := filepath.Rel(gitDir, path)
	if err != nil {
		return KindRefs, false
	}
	rel = filepath.ToSlash(rel)
	if strings.HasSuffix(rel, ".lock") {
		return KindRefs, false
	}
	switch {
	case strings.Contains(rel, "stash"):
		return KindStash, true
	case rel == "HEAD" || rel == "packed-refs" || strings.HasPrefix(rel, "refs/heads"):
		return KindRefs, true
	case strings.HasPrefix(rel, "logs/refs"):
		return KindRefs, true
	}
	return KindRefs, false
}
