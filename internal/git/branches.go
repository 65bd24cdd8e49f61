package git

import (
	"context"
	"strings"
)

// RemoteBranch names the upstream a local branch tracks. Gone marks upstreams
// that no longer exist on the remote.
type RemoteBranch struct {
	Name string
	Gone bool
}

// Branch describes one local branch as reported by for-each-ref.
type Branch struct {
	Name     string
	SHA      string
	Head     bool
	Upstream *RemoteBranch
	Subject  string
}

const branchFormat = "%(HEAD)%00%(refname:short)%00%(objectname:short)%00%(upstream:short)%00%(upstream:track)%00%(subject)"

// ListBranches returns all local branches in ref order. The HEAD branch is
// flagged rather than filtered so callers can guard destructive operations.
func (r *Repo) ListBranches(ctx context.Context) ([]Branch, error) {
	out, err := r.run(ctx, "for-each-ref", "refs/heads", "--format="+branchFormat)
	if err != nil {
		return nil, err
	}
	return parseBranchLines(out), nil
}

func parseBranchLines(out string) []Branch {
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	branches := make([]Branch, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\x00")
		if len(fields) < 6 {
			continue
		}
		b := Branch{
			Name:    fields[1],
			SHA:     fields[2],
			Head:    fields[0] == "*",
			Subject: fields[5],
		}
		if fields[3] != "" {
			b.Upstream = &RemoteBranch{
				Name: fields[3],
				Gone: strings.Contains(fields[4], "gone"),
			}
		}
		branches = append(branches, b)
	}
	return branches
}

// Checkout switches the working tree to the named branch.
func (r *Repo) Checkout(ctx context.Context, name string) error {
	_, err := r.run(ctx, "checkout", name)
	return err
}

// CreateBranch creates a branch off from (HEAD when empty) and checks it out.
func (r *Repo) CreateBranch(ctx context.Context, name, from string) error {
	args := []string{"checkout", "-b", name}
	if from != "" {
		args = append(args, from)
	}
	_, err := r.run(ctx, args...)
	return err
}

// DeleteBranch force-deletes a single local branch.
func (r *Repo) DeleteBranch(ctx context.Context, name string) error {
	_, err := r.run(ctx, "branch", "-D", name)
	return err
}

// BranchExists reports whether a local branch with the given name exists.
func (r *Repo) BranchExists(ctx context.Context, name string) bool {
	_, err := r.run(ctx, "rev-parse", "--verify", "--quiet", "refs/heads/"+name)
	return err == nil
}

// CheckRefFormat reports whether name is acceptable to git as a branch name.
func (r *Repo) CheckRefFormat(ctx context.Context, name string) bool {
	_, err := r.run(ctx, "check-ref-format", "--branch", name)
	return err == nil
}
