package list

// Item is a domain entity managed by the generic list: a branch or a stash.
// Implementations are immutable snapshots; a refresh replaces them wholesale.
type Item interface {
	// Key returns the stable identity used for staging and batch reporting.
	Key() string
	// Title returns the display label rendered for the item.
	Title() string
}

// Wrapper pairs an Item with UI-only decoration. Wrappers are owned by State
// and discarded, never patched, when a newer fetch result arrives.
type Wrapper struct {
	Item   Item
	Staged bool
}

// Key is a convenience accessor for the wrapped item's identity.
func (w Wrapper) Key() string { return w.Item.Key() }
