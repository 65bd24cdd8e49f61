package stashes

import (
	"context"
	"strings"
	"testing"

	"github.com/atomicstack/git-popup-control/internal/git"
	"github.com/atomicstack/git-popup-control/internal/list"
	"github.com/atomicstack/git-popup-control/internal/testutil"
)

func TestKeybindingsGating(t *testing.T) {
	h := Handler{}

	none := bindingKeys(h.Keybindings(nil, false))
	if len(none) != 1 || none[0] != "s" {
		t.Fatalf("expected only new-stash without a selection, got %v", none)
	}

	sel := &list.Wrapper{Item: Item{Stash: git.Stash{Ref: "stash@{0}"}}}
	withSel := bindingKeys(h.Keybindings(sel, false))
	for _, want := range []string{"s", "a", "p", "d", "D"} {
		if !contains(withSel, want) {
			t.Fatalf("expected binding %q with a selection, got %v", want, withSel)
		}
	}

	staged := bindingKeys(h.Keybindings(sel, true))
	if !contains(staged, "ctrl+d") {
		t.Fatalf("expected bulk drop with staged items, got %v", staged)
	}
}

func TestMutateOnlySupportsPop(t *testing.T) {
	h := Handler{}
	item := Item{Stash: git.Stash{Ref: "stash@{0}"}}
	if err := h.Mutate(context.Background(), "squash", item); err == nil {
		t.Fatalf("expected unknown mutation rejected")
	}
}

func TestBatchOrderDropsBottomUp(t *testing.T) {
	h := Handler{}
	items := []list.Item{
		Item{Stash: git.Stash{Index: 0, Ref: "stash@{0}"}},
		Item{Stash: git.Stash{Index: 1, Ref: "stash@{1}"}},
		Item{Stash: git.Stash{Index: 2, Ref: "stash@{2}"}},
	}
	ordered := h.BatchOrder(items)
	want := []string{"stash@{2}", "stash@{1}", "stash@{0}"}
	for i, ref := range want {
		if ordered[i].Key() != ref {
			t.Fatalf("expected highest index first, got %q at %d", ordered[i].Key(), i)
		}
	}
	if items[0].Key() != "stash@{0}" {
		t.Fatalf("expected the staged slice untouched, got %q first", items[0].Key())
	}
}

func TestValidatorRequiresMessage(t *testing.T) {
	v := Validator{}
	if _, err := v.Validate(KindNew, "   "); err == nil {
		t.Fatalf("expected empty message rejected")
	}
	got, err := v.Validate(KindNew, "  wip thing  ")
	if err != nil || got != "wip thing" {
		t.Fatalf("expected trimmed accept, got %q (%v)", got, err)
	}
}

func TestSubmitReportsCleanTree(t *testing.T) {
	fixture := testutil.NewRepo(t)
	repo, err := git.Discover(fixture.Dir)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	h := Handler{Repo: repo}
	err = h.Submit(context.Background(), KindNew, "nothing to save")
	if err == nil || !strings.Contains(err.Error(), "no local changes") {
		t.Fatalf("expected clean-tree submission to report, got %v", err)
	}
}

func TestFetchItemsRendersRefAndMessage(t *testing.T) {
	fixture := testutil.NewRepo(t)
	fixture.Stash("first change")
	fixture.Stash("second change")
	repo, err := git.Discover(fixture.Dir)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}

	items, err := Source{Repo: repo}.FetchItems(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 stashes, got %d", len(items))
	}
	newest := items[0].(Item)
	if newest.Key() != "stash@{0}" {
		t.Fatalf("expected newest first, got %q", newest.Key())
	}
	if !strings.Contains(newest.Title(), "second change") {
		t.Fatalf("expected message in row, got %q", newest.Title())
	}
	if !strings.Contains(newest.Title(), "ago") && !strings.Contains(newest.Title(), "now") {
		t.Fatalf("expected humanized age in row, got %q", newest.Title())
	}
}

func bindingKeys(bindings []list.Keybinding) []string {
	keys := make([]string, len(bindings))
	for i, b := range bindings {
		keys[i] = b.Key
	}
	return keys
}

func contains(keys []string, want string) bool {
	for _, k := range keys {
		if k == want {
			return true
		}
	}
	return false
}
