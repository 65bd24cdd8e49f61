package stashes

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/atomicstack/git-popup-control/internal/format/table"
	"github.com/atomicstack/git-popup-control/internal/git"
	"github.com/atomicstack/git-popup-control/internal/list"
)

// ViewName identifies the stash view on the message bus.
const ViewName = "stashes"

// KindNew is the input kind for new-stash entry.
const KindNew = "new-stash"

// Item is one stash entry with its pre-rendered display row. The ref
// (stash@{N}) is the key: indexes shift when entries are dropped, so keys are
// only meaningful against the snapshot they were listed from.
type Item struct {
	Stash git.Stash
	label string
}

func (i Item) Key() string   { return i.Stash.Ref }
func (i Item) Title() string { return i.label }

// Source fetches the stash stack from the repository.
type Source struct {
	Repo *git.Repo
}

// FetchItems lists stashes newest-first and renders the aligned display rows.
func (s Source) FetchItems(ctx context.Context) ([]list.Item, error) {
	stashes, err := s.Repo.ListStashes(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(stashes))
	for i, st := range stashes {
		age := ""
		if !st.Created.IsZero() {
			age = humanize.Time(st.Created)
		}
		rows[i] = []string{st.Ref, age, st.Branch, st.Message}
	}
	lines := table.Format(rows, []table.Alignment{
		table.AlignLeft, table.AlignRight, table.AlignLeft, table.AlignLeft,
	})
	items := make([]list.Item, len(stashes))
	for i, st := range stashes {
		items[i] = Item{Stash: st, label: lines[i]}
	}
	return items, nil
}

// Handler implements the stash view's actions.
type Handler struct {
	Repo *git.Repo
}

// PrimaryAction applies the selected stash, keeping it on the stack.
func (h Handler) PrimaryAction(ctx context.Context, item list.Item) error {
	return h.Repo.ApplyStash(ctx, item.Key())
}

// Delete drops one stash entry.
func (h Handler) Delete(ctx context.Context, item list.Item) error {
	return h.Repo.DropStash(ctx, item.Key())
}

// Mutate supports "pop": apply then drop on success.
func (h Handler) Mutate(ctx context.Context, name string, item list.Item) error {
	if name != "pop" {
		return fmt.Errorf("stashes: unknown operation %q", name)
	}
	return h.Repo.PopStash(ctx, item.Key())
}

// Submit stashes the working tree under the entered message.
func (h Handler) Submit(ctx context.Context, kind, value string) error {
	if kind != KindNew {
		return fmt.Errorf("stashes: unknown input kind %q", kind)
	}
	saved, err := h.Repo.CreateStash(ctx, value)
	if err != nil {
		return err
	}
	if !saved {
		return fmt.Errorf("no local changes to save")
	}
	return nil
}

// CanDelete always allows staging; any stash may be dropped.
func (h Handler) CanDelete(item list.Item) bool { return true }

// BatchOrder drops staged stashes bottom-up. stash@{N} refs are positional:
// dropping a lower index renumbers every entry after it, so a batch running
// in list order would drop the wrong entries.
func (h Handler) BatchOrder(items []list.Item) []list.Item {
	ordered := make([]list.Item, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, aok := ordered[i].(Item)
		b, bok := ordered[j].(Item)
		if !aok || !bok {
			return false
		}
		return a.Stash.Index > b.Stash.Index
	})
	return ordered
}

// Keybindings returns the stash bindings for the current context.
func (h Handler) Keybindings(selected *list.Wrapper, hasStaged bool) []list.Keybinding {
	bindings := []list.Keybinding{
		{Key: "s", Label: "new stash", Command: list.CmdStartInput, Arg: KindNew},
	}
	if selected != nil {
		bindings = append(bindings,
			list.Keybinding{Key: "a", Label: "apply", Command: list.CmdPrimary, Arg: "apply"},
			list.Keybinding{Key: "p", Label: "pop", Command: list.CmdMutate, Arg: "pop"},
			list.Keybinding{Key: "d", Label: "stage drop", Command: list.CmdToggleStage},
			list.Keybinding{Key: "D", Label: "unstage", Command: list.CmdUnstage},
		)
	}
	if hasStaged {
		bindings = append(bindings,
			list.Keybinding{Key: "ctrl+d", Label: "drop staged", Command: list.CmdBulkDelete})
	}
	return bindings
}

// Validator requires a non-empty stash message.
type Validator struct{}

// Validate trims and checks the stash message.
func (Validator) Validate(kind, text string) (string, error) {
	msg := strings.TrimSpace(text)
	if msg == "" {
		return "", fmt.Errorf("stash message is empty")
	}
	return msg, nil
}

// Prompt titles the new-stash input.
func (Validator) Prompt(kind string) (title, placeholder string) {
	return "New stash", "stash message"
}
