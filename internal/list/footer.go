package list

// Hint is one key/label pair rendered in the footer.
type Hint struct {
	Key   string
	Label string
}

// FooterHints derives the footer contents from the interaction mode and the
// view's active keybindings. Pure function; rendering is the caller's job.
func FooterHints(mode Mode, busy bool, bindings []Keybinding) []Hint {
	switch mode {
	case ModeInput:
		return []Hint{
			{Key: "enter", Label: "accept"},
			{Key: "esc", Label: "cancel"},
		}
	case ModeConfirmDelete:
		return []Hint{
			{Key: "y", Label: "confirm delete"},
			{Key: "n", Label: "cancel"},
		}
	}
	hints := []Hint{
		{Key: "↑/↓", Label: "move"},
		{Key: "/", Label: "filter"},
	}
	if !busy {
		for _, b := range bindings {
			hints = append(hints, Hint{Key: b.Key, Label: b.Label})
		}
	}
	hints = append(hints,
		Hint{Key: "tab", Label: "switch view"},
		Hint{Key: "q", Label: "quit"},
	)
	return hints
}
