package list

// MoveCursor moves the cursor by delta, clamping at both ends. No wraparound.
// Never blocked by an in-flight operation; no-op on an empty list.
func (s *State) MoveCursor(delta int) bool {
	if len(s.items) == 0 {
		s.cursor = NoSelection
		return false
	}
	old := s.cursor
	if s.cursor < 0 {
		s.cursor = 0
	}
	s.cursor += delta
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor >= len(s.items) {
		s.cursor = len(s.items) - 1
	}
	return s.cursor != old
}

// MoveCursorHome moves the cursor to the first item.
func (s *State) MoveCursorHome() bool {
	if len(s.items) == 0 {
		s.cursor = NoSelection
		return false
	}
	old := s.cursor
	s.cursor = 0
	return old != s.cursor
}

// MoveCursorEnd moves the cursor to the last item.
func (s *State) MoveCursorEnd() bool {
	n := len(s.items)
	if n == 0 {
		s.cursor = NoSelection
		return false
	}
	old := s.cursor
	s.cursor = n - 1
	return old != s.cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (s *State) MoveCursorPageUp(maxVisible int) bool {
	return s.MoveCursor(-s.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (s *State) MoveCursorPageDown(maxVisible int) bool {
	return s.MoveCursor(s.pageSize(maxVisible))
}

func (s *State) pageSize(maxVisible int) int {
	total := len(s.items)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}
