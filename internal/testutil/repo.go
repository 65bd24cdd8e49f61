package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// RequireGit skips the test when no git binary is available.
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available in PATH")
	}
}

// Repo is a throwaway git repository rooted in a test temp directory.
type Repo struct {
	t   *testing.T
	Dir string
}

// NewRepo initialises a repository with one commit on main.
func NewRepo(t *testing.T) *Repo {
	t.Helper()
	RequireGit(t)
	r := &Repo{t: t, Dir: t.TempDir()}
	r.Git("init", "-b", "main")
	r.Git("config", "user.name", "test")
	r.Git("config", "user.email", "test@example.invalid")
	r.Git("config", "commit.gpgsign", "false")
	r.WriteFile("README", "hello\n")
	r.Git("add", ".")
	r.Git("commit", "-m", "initial commit")
	return r
}

// Git runs a git command in the repository and fails the test on error.
func (r *Repo) Git(args ...string) string {
	r.t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		r.t.Fatalf("git %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return string(out)
}

// WriteFile creates or replaces a file relative to the repository root.
func (r *Repo) WriteFile(name, contents string) {
	r.t.Helper()
	path := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		r.t.Fatalf("mkdir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		r.t.Fatalf("write %s: %v", name, err)
	}
}

// Commit writes the file and commits it.
func (r *Repo) Commit(name, contents, message string) {
	r.t.Helper()
	r.WriteFile(name, contents)
	r.Git("add", ".")
	r.Git("commit", "-m", message)
}

// Branch creates a branch at HEAD without checking it out.
func (r *Repo) Branch(name string) {
	r.t.Helper()
	r.Git("branch", name)
}

// Stash dirties the working tree and stashes it under the given message.
func (r *Repo) Stash(message string) {
	r.t.Helper()
	r.WriteFile("stashed-"+strings.ReplaceAll(message, " ", "-"), message+"\n")
	r.Git("add", ".")
	r.Git("stash", "push", "-m", message)
}
