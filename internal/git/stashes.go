package git

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// Stash describes one entry of the stash reflog. Ref is the stable handle
// (stash@{N}) used for apply/pop/drop; Index mirrors N for display.
type Stash struct {
	Index   int
	Ref     string
	Message string
	Branch  string
	Created time.Time
}

const stashFormat = "%gd%00%ct%00%s"

// ListStashes returns the stash stack, newest first, matching git's own
// ordering.
func (r *Repo) ListStashes(ctx context.Context) ([]Stash, error) {
	out, err := r.run(ctx, "stash", "list", "--format="+stashFormat)
	if err != nil {
		return nil, err
	}
	return parseStashLines(out), nil
}

func parseStashLines(out string) []Stash {
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	stashes := make([]Stash, 0, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\x00")
		if len(fields) < 3 {
			continue
		}
		s := Stash{Index: i, Ref: fields[0]}
		if n, ok := stashRefIndex(fields[0]); ok {
			s.Index = n
		}
		if secs, err := strconv.ParseInt(fields[1], 10, 64); err == nil {
			s.Created = time.Unix(secs, 0)
		}
		s.Branch, s.Message = splitStashSubject(fields[2])
		stashes = append(stashes, s)
	}
	return stashes
}

func stashRefIndex(ref string) (int, bool) {
	open := strings.IndexByte(ref, '{')
	close := strings.IndexByte(ref, '}')
	if open < 0 || close <= open+1 {
		return 0, false
	}
	n, err := strconv.Atoi(ref[open+1 : close])
	if err != nil {
		return 0, false
	}
	return n, true
}

// splitStashSubject recovers the branch hint from the subjects git writes:
// "WIP on main: abc123 msg" and "On main: msg".
func splitStashSubject(subject string) (branch, message string) {
	rest := subject
	switch {
	case strings.HasPrefix(rest, "WIP on "):
		rest = rest[len("WIP on "):]
	case strings.HasPrefix(rest, "On "):
		rest = rest[len("On "):]
	default:
		return "", subject
	}
	idx := strings.Index(rest, ": ")
	if idx < 0 {
		return "", subject
	}
	return rest[:idx], rest[idx+2:]
}

// ApplyStash applies the stash without removing it from the stack.
func (r *Repo) ApplyStash(ctx context.Context, ref string) error {
	_, err := r.run(ctx, "stash", "apply", ref)
	return err
}

// PopStash applies the stash and drops it on success.
func (r *Repo) PopStash(ctx context.Context, ref string) error {
	_, err := r.run(ctx, "stash", "pop", ref)
	return err
}

// DropStash removes the stash from the stack.
func (r *Repo) DropStash(ctx context.Context, ref string) error {
	_, err := r.run(ctx, "stash", "drop", ref)
	return err
}

// CreateStash stashes the working tree under the given message. Returns false
// without error when there was nothing to stash.
func (r *Repo) CreateStash(ctx context.Context, message string) (bool, error) {
	out, err := r.run(ctx, "stash", "push", "-m", message)
	if err != nil {
		return false, err
	}
	if strings.Contains(out, "No local changes to save") {
		return false, nil
	}
	return true, nil
}
