package list

// Op names the asynchronous operation currently in flight for a list, or
// OpNone when the list is idle. Domain handlers supply their own tags
// ("checkout", "apply", ...) through their keybindings.
type Op string

const (
	OpNone   Op = ""
	OpFetch  Op = "fetch"
	OpDelete Op = "delete"
	OpSubmit Op = "create"
)

// NoSelection is the cursor sentinel used when the list is empty.
const NoSelection = -1

// State owns one list view's item sequence, cursor, staged-key set, and
// in-flight-operation flag. It is mutated exclusively from the single consumer
// step of the Bubble Tea update loop; background tasks never touch it.
type State struct {
	full       []Wrapper
	items      []Wrapper
	filter     string
	cursor     int
	staged     map[string]struct{}
	loading    Op
	generation uint64
}

// NewState returns an empty list state with the cursor at the empty sentinel.
func NewState() *State {
	return &State{
		cursor: NoSelection,
		staged: make(map[string]struct{}),
	}
}

// SetItems replaces the item sequence wholesale, re-intersects the staged set
// with the new keys, reapplies the filter, and clamps the cursor into the new
// bounds (or the empty sentinel).
func (s *State) SetItems(items []Item) {
	s.full = make([]Wrapper, 0, len(items))
	valid := make(map[string]struct{}, len(items))
	for _, item := range items {
		valid[item.Key()] = struct{}{}
		s.full = append(s.full, Wrapper{Item: item})
	}
	for key := range s.staged {
		if _, ok := valid[key]; !ok {
			delete(s.staged, key)
		}
	}
	s.applyStaged()
	s.applyFilter()
}

// applyStaged materializes the staged flag onto the canonical wrappers.
func (s *State) applyStaged() {
	for i := range s.full {
		_, ok := s.staged[s.full[i].Key()]
		s.full[i].Staged = ok
	}
}

func (s *State) applyFilter() {
	s.items = FilterWrappers(s.full, s.filter)
	s.clampCursor()
}

func (s *State) clampCursor() {
	if len(s.items) == 0 {
		s.cursor = NoSelection
		return
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor >= len(s.items) {
		s.cursor = len(s.items) - 1
	}
}

// Items returns the displayed (filtered) sequence.
func (s *State) Items() []Wrapper { return s.items }

// Len returns the displayed item count.
func (s *State) Len() int { return len(s.items) }

// Cursor returns the current cursor index, or NoSelection when empty.
func (s *State) Cursor() int { return s.cursor }

// Selected returns the wrapper under the cursor.
func (s *State) Selected() (Wrapper, bool) {
	if s.cursor < 0 || s.cursor >= len(s.items) {
		return Wrapper{}, false
	}
	return s.items[s.cursor], true
}

// Filter returns the active filter query.
func (s *State) Filter() string { return s.filter }

// SetFilter replaces the filter query and re-derives the displayed sequence.
func (s *State) SetFilter(query string) {
	s.filter = query
	s.applyFilter()
}

// ToggleStageSelected flips the staged flag of the item under the cursor.
// No-op on an empty list or while an operation is in flight.
func (s *State) ToggleStageSelected() (string, bool) {
	if s.Busy() {
		return "", false
	}
	sel, ok := s.Selected()
	if !ok {
		return "", false
	}
	key := sel.Key()
	if _, staged := s.staged[key]; staged {
		delete(s.staged, key)
	} else {
		s.staged[key] = struct{}{}
	}
	s.applyStaged()
	s.applyFilter()
	return key, true
}

// Unstage removes a single key from the staged set.
func (s *State) Unstage(key string) {
	delete(s.staged, key)
	s.applyStaged()
	s.applyFilter()
}

// StagedItems returns the staged items in original list order, independent of
// the active filter.
func (s *State) StagedItems() []Item {
	if len(s.staged) == 0 {
		return nil
	}
	out := make([]Item, 0, len(s.staged))
	for _, w := range s.full {
		if _, ok := s.staged[w.Key()]; ok {
			out = append(out, w.Item)
		}
	}
	return out
}

// StagedKeys returns the staged keys in original list order.
func (s *State) StagedKeys() []string {
	items := s.StagedItems()
	keys := make([]string, len(items))
	for i, item := range items {
		keys[i] = item.Key()
	}
	return keys
}

// HasStaged reports whether any item is staged for deletion.
func (s *State) HasStaged() bool { return len(s.staged) > 0 }

// IsStaged reports whether the given key is staged.
func (s *State) IsStaged(key string) bool {
	_, ok := s.staged[key]
	return ok
}

// Loading returns the in-flight operation tag.
func (s *State) Loading() Op { return s.loading }

// SetLoading records the in-flight operation tag.
func (s *State) SetLoading(op Op) { s.loading = op }

// Busy reports whether a state-mutating operation is in flight. Read-only
// navigation stays allowed regardless.
func (s *State) Busy() bool { return s.loading != OpNone }

// BeginFetch increments the fetch generation, marks the list as fetching, and
// returns the generation tag for the new request.
func (s *State) BeginFetch() uint64 {
	s.generation++
	s.loading = OpFetch
	return s.generation
}

// Generation returns the latest started fetch generation.
func (s *State) Generation() uint64 { return s.generation }
