package list

import "context"

// DataSource fetches the current item sequence from the backend. Fetches run
// as independent asynchronous tasks; completion order is not guaranteed to
// match start order.
type DataSource interface {
	FetchItems(ctx context.Context) ([]Item, error)
}

// ActionHandler supplies the domain mutations and keybindings for one view.
// Branch and stash behavior are independent implementers of this interface,
// never layered on each other.
type ActionHandler interface {
	// PrimaryAction performs the view's main operation on the selected item
	// (checkout a branch, apply a stash).
	PrimaryAction(ctx context.Context, item Item) error
	// Delete removes a single item (delete branch, drop stash). Bulk deletes
	// call this once per staged key, awaiting each before the next.
	Delete(ctx context.Context, item Item) error
	// Mutate performs a named secondary operation (stash pop). Handlers with
	// no secondary operations return an error for every name.
	Mutate(ctx context.Context, name string, item Item) error
	// Submit handles an accepted input value (create branch, new stash).
	Submit(ctx context.Context, kind, value string) error
	// CanDelete reports whether the item may be staged or deleted at all
	// (the HEAD branch may not).
	CanDelete(item Item) bool
	// Keybindings returns the active bindings given the current selection and
	// staging context. The footer renders them in order.
	Keybindings(selected *Wrapper, hasStaged bool) []Keybinding
}

// BatchOrderer optionally reorders a staged batch before sequential deletion.
// Views whose keys are positional and shift as earlier entries are removed
// delete from the bottom of the list up; without it the batch runs in list
// order.
type BatchOrderer interface {
	BatchOrder(items []Item) []Item
}

// InputHandler optionally validates text-entry submissions. A nil handler
// accepts all input unchanged.
type InputHandler interface {
	// Validate returns the normalized domain value, or an error whose message
	// is shown inline while the input stays open.
	Validate(kind, text string) (string, error)
	// Prompt returns the title and placeholder for the given input kind.
	Prompt(kind string) (title, placeholder string)
}

// Command tells the controller what a keybinding triggers.
type Command int

const (
	CmdNone Command = iota
	// CmdPrimary dispatches ActionHandler.PrimaryAction; Arg is the loading
	// tag ("checkout", "apply").
	CmdPrimary
	// CmdToggleStage flips the staged flag of the selected item.
	CmdToggleStage
	// CmdUnstage removes the selected item from the staged set.
	CmdUnstage
	// CmdBulkDelete opens the bulk-delete confirmation when items are staged.
	CmdBulkDelete
	// CmdStartInput enters text-entry mode; Arg is the input kind.
	CmdStartInput
	// CmdMutate dispatches ActionHandler.Mutate; Arg is the mutation name,
	// doubling as the loading tag.
	CmdMutate
	// CmdRefresh re-fetches the list.
	CmdRefresh
)

// Keybinding maps a key to a controller command with a display label.
type Keybinding struct {
	Key     string
	Label   string
	Command Command
	Arg     string
}
