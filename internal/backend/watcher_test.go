package backend

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestClassifyPath(t *testing.T) {
	gitDir := filepath.Join("repo", ".git")
	cases := []struct {
		rel      string
		kind     Kind
		relevant bool
	}{
		{"HEAD", KindRefs, true},
		{"packed-refs", KindRefs, true},
		{filepath.Join("refs", "heads", "main"), KindRefs, true},
		{filepath.Join("logs", "refs", "heads", "main"), KindRefs, true},
		{filepath.Join("refs", "stash"), KindStash, true},
		{filepath.Join("logs", "refs", "stash"), KindStash, true},
		{filepath.Join("refs", "heads", "main.lock"), KindRefs, false},
		{"index", KindRefs, false},
		{filepath.Join("objects", "ab", "cdef"), KindRefs, false},
		{"COMMIT_EDITMSG", KindRefs, false},
	}
	for _, tc := range cases {
		kind, relevant := classifyPath(gitDir, filepath.Join(gitDir, tc.rel))
		if relevant != tc.relevant {
			t.Fatalf("classifyPath(%q): relevant=%v, want %v", tc.rel, relevant, tc.relevant)
		}
		if relevant && kind != tc.kind {
			t.Fatalf("classifyPath(%q): kind=%v, want %v", tc.rel, kind, tc.kind)
		}
	}
}

func TestWatcherEmitsOnRefChange(t *testing.T) {
	gitDir := t.TempDir()
	w, err := NewWatcher(gitDir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer func() {
		w.Stop()
		w.Wait()
	}()

	writeFile(t, filepath.Join(gitDir, "HEAD"), "ref: refs/heads/main\n")

	select {
	case evt := <-w.Events():
		if evt.Err != nil {
			t.Fatalf("unexpected watcher error: %v", evt.Err)
		}
		if evt.Kind != KindRefs {
			t.Fatalf("expected refs hint, got %v", evt.Kind)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for change hint")
	}
}

func TestThrottleEnforcesMinimumInterval(t *testing.T) {
	th := newThrottle(30 * time.Millisecond)
	start := time.Now()
	th.wait()
	th.wait()
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Fatalf("expected second wait to be delayed, elapsed %v", elapsed)
	}
	zero := newThrottle(0)
	zero.wait() // must not block
}
