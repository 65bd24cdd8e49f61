package list

import "testing"

func hintKeys(hints []Hint) []string {
	keys := make([]string, len(hints))
	for i, h := range hints {
		keys[i] = h.Key
	}
	return keys
}

func TestFooterHintsNormalModeIncludesBindings(t *testing.T) {
	bindings := []Keybinding{
		{Key: "c", Label: "checkout"},
		{Key: "d", Label: "stage delete"},
	}
	hints := FooterHints(ModeNormal, false, bindings)
	keys := hintKeys(hints)
	want := []string{"↑/↓", "/", "c", "d", "tab", "q"}
	if len(keys) != len(want) {
		t.Fatalf("expected keys %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected keys %v, got %v", want, keys)
		}
	}
}

func TestFooterHintsHideBindingsWhileBusy(t *testing.T) {
	bindings := []Keybinding{{Key: "c", Label: "checkout"}}
	hints := FooterHints(ModeNormal, true, bindings)
	for _, h := range hints {
		if h.Key == "c" {
			t.Fatalf("expected domain bindings hidden while busy")
		}
	}
}

func TestFooterHintsInputMode(t *testing.T) {
	hints := FooterHints(ModeInput, false, nil)
	if len(hints) != 2 || hints[0].Key != "enter" || hints[1].Key != "esc" {
		t.Fatalf("unexpected input-mode hints: %v", hints)
	}
}

func TestFooterHintsConfirmMode(t *testing.T) {
	hints := FooterHints(ModeConfirmDelete, false, nil)
	if len(hints) != 2 || hints[0].Key != "y" || hints[1].Key != "n" {
		t.Fatalf("unexpected confirm-mode hints: %v", hints)
	}
}
