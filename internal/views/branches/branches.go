package branches

import (
	"context"
	"fmt"
	"strings"

	"github.com/atomicstack/git-popup-control/internal/format/table"
	"github.com/atomicstack/git-popup-control/internal/git"
	"github.com/atomicstack/git-popup-control/internal/list"
)

// ViewName identifies the branch view on the message bus.
const ViewName = "branches"

// KindCreate is the input kind for new-branch entry.
const KindCreate = "create-branch"

// Item is one local branch with its pre-rendered display row.
type Item struct {
	Branch git.Branch
	label  string
}

func (i Item) Key() string   { return i.Branch.Name }
func (i Item) Title() string { return i.label }

// Source fetches the branch list from the repository.
type Source struct {
	Repo *git.Repo
}

// FetchItems lists local branches and renders the aligned display rows for
// the whole batch at once.
func (s Source) FetchItems(ctx context.Context) ([]list.Item, error) {
	branches, err := s.Repo.ListBranches(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(branches))
	for i, b := range branches {
		marker := " "
		if b.Head {
			marker = "*"
		}
		upstream := ""
		if b.Upstream != nil {
			upstream = b.Upstream.Name
			if b.Upstream.Gone {
				upstream += " (gone)"
			}
		}
		rows[i] = []string{marker, b.Name, b.SHA, upstream, b.Subject}
	}
	lines := table.Format(rows, []table.Alignment{
		table.AlignLeft, table.AlignLeft, table.AlignLeft, table.AlignLeft, table.AlignLeft,
	})
	items := make([]list.Item, len(branches))
	for i, b := range branches {
		items[i] = Item{Branch: b, label: lines[i]}
	}
	return items, nil
}

// Handler implements the branch view's actions.
type Handler struct {
	Repo *git.Repo
}

// PrimaryAction checks out the selected branch. Checking out the branch that
// is already HEAD is a no-op.
func (h Handler) PrimaryAction(ctx context.Context, item list.Item) error {
	if b, ok := item.(Item); ok && b.Branch.Head {
		return nil
	}
	return h.Repo.Checkout(ctx, item.Key())
}

// Delete force-deletes one branch.
func (h Handler) Delete(ctx context.Context, item list.Item) error {
	return h.Repo.DeleteBranch(ctx, item.Key())
}

// Mutate has no secondary operations on branches.
func (h Handler) Mutate(ctx context.Context, name string, item list.Item) error {
	return fmt.Errorf("branches: unknown operation %q", name)
}

// Submit creates and checks out a new branch off HEAD.
func (h Handler) Submit(ctx context.Context, kind, value string) error {
	if kind != KindCreate {
		return fmt.Errorf("branches: unknown input kind %q", kind)
	}
	return h.Repo.CreateBranch(ctx, value, "")
}

// CanDelete protects the checked-out branch.
func (h Handler) CanDelete(item list.Item) bool {
	if b, ok := item.(Item); ok {
		return !b.Branch.Head
	}
	return true
}

// Keybindings returns the branch bindings for the current context.
func (h Handler) Keybindings(selected *list.Wrapper, hasStaged bool) []list.Keybinding {
	bindings := []list.Keybinding{
		{Key: "C", Label: "create", Command: list.CmdStartInput, Arg: KindCreate},
	}
	if selected != nil {
		bindings = append(bindings,
			list.Keybinding{Key: "c", Label: "checkout", Command: list.CmdPrimary, Arg: "checkout"},
			list.Keybinding{Key: "d", Label: "stage delete", Command: list.CmdToggleStage},
			list.Keybinding{Key: "D", Label: "unstage", Command: list.CmdUnstage},
		)
	}
	if hasStaged {
		bindings = append(bindings,
			list.Keybinding{Key: "ctrl+d", Label: "delete staged", Command: list.CmdBulkDelete})
	}
	return bindings
}

// Validator rejects branch names git would refuse, before any subprocess runs,
// then defers the full ruleset to check-ref-format.
type Validator struct {
	Repo *git.Repo
}

// Validate normalizes and checks a prospective branch name.
func (v Validator) Validate(kind, text string) (string, error) {
	name := strings.TrimSpace(text)
	if name == "" {
		return "", fmt.Errorf("branch name is empty")
	}
	if strings.ContainsAny(name, " \t~^:?*[\\") {
		return "", fmt.Errorf("invalid character in branch name")
	}
	if strings.Contains(name, "..") || strings.HasPrefix(name, "-") ||
		strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") ||
		strings.HasSuffix(name, ".lock") {
		return "", fmt.Errorf("invalid branch name %q", name)
	}
	if v.Repo != nil {
		ctx := context.Background()
		if !v.Repo.CheckRefFormat(ctx, name) {
			return "", fmt.Errorf("git rejects branch name %q", name)
		}
		if v.Repo.BranchExists(ctx, name) {
			return "", fmt.Errorf("branch %q already exists", name)
		}
	}
	return name, nil
}

// Prompt titles the new-branch input.
func (v Validator) Prompt(kind string) (title, placeholder string) {
	return "New branch", "branch name"
}
