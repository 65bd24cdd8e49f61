package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/atomicstack/git-popup-control/internal/logging/events"
)

// Kind classifies a failed git invocation so callers can decide how to react
// without parsing stderr themselves.
type Kind int

const (
	KindCommand Kind = iota
	KindNotRepository
	KindNotFound
	KindConflict
)

// Error carries the verbatim stderr of a failed git command plus a coarse
// classification. The stderr text is surfaced to the user unchanged.
type Error struct {
	Kind   Kind
	Op     string
	Stderr string
	Err    error
}

func (e *Error) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = "git command failed"
	}
	return fmt.Sprintf("git %s: %s", e.Op, msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Repo issues git commands against a single working tree. Mutating calls are
// expected to be serialized by the caller; reads may run concurrently.
type Repo struct {
	dir    string
	gitDir string
}

// Discover resolves the repository containing dir. An empty dir means the
// current working directory. The resolved .git directory handles worktrees,
// where .git is a file pointing elsewhere.
func Discover(dir string) (*Repo, error) {
	if dir == "" {
		dir = "."
	}
	probe := &Repo{dir: dir}
	top, err := probe.run(context.Background(), "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, err
	}
	gitDir, err := probe.run(context.Background(), "rev-parse", "--absolute-git-dir")
	if err != nil {
		return nil, err
	}
	return &Repo{
		dir:    strings.TrimSpace(top),
		gitDir: strings.TrimSpace(gitDir),
	}, nil
}

// Dir returns the repository's top-level working tree path.
func (r *Repo) Dir() string { return r.dir }

// GitDir returns the path watched for ref changes.
func (r *Repo) GitDir() string { return r.gitDir }

func (r *Repo) run(ctx context.Context, args ...string) (string, error) {
	events.Git.Command(args)
	full := append([]string{"-C", r.dir}, args...)
	cmd := exec.CommandContext(ctx, "git", full...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		gerr := &Error{
			Kind:   classify(stderr.String()),
			Op:     args[0],
			Stderr: stderr.String(),
			Err:    err,
		}
		events.Git.Failure(args, gerr.Error())
		return "", gerr
	}
	return stdout.String(), nil
}

func classify(stderr string) Kind {
	lower := strings.ToLower(stderr)
	switch {
	case strings.Contains(lower, "not a git repository"):
		return KindNotRepository
	case strings.Contains(lower, "did not match any"),
		strings.Contains(lower, "no such"),
		strings.Contains(lower, "unknown revision"),
		strings.Contains(lower, "not found"):
		return KindNotFound
	case strings.Contains(lower, "conflict"),
		strings.Contains(lower, "would be overwritten"),
		strings.Contains(lower, "not fully merged"),
		strings.Contains(lower, "uncommitted changes"):
		return KindConflict
	default:
		return KindCommand
	}
}
