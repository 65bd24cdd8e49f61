package list

import "testing"

func TestMoveCursorClampsWithoutWraparound(t *testing.T) {
	s := NewState()
	s.SetItems(makeItems("a", "b", "c"))

	if s.MoveCursor(-1) {
		t.Fatalf("expected no movement above first item")
	}
	if s.Cursor() != 0 {
		t.Fatalf("expected cursor pinned at 0, got %d", s.Cursor())
	}

	s.MoveCursorEnd()
	if s.MoveCursor(1) {
		t.Fatalf("expected no movement past last item")
	}
	if s.Cursor() != 2 {
		t.Fatalf("expected cursor pinned at end, got %d", s.Cursor())
	}
}

func TestMoveCursorOnEmptyList(t *testing.T) {
	s := NewState()
	if s.MoveCursor(1) || s.Cursor() != NoSelection {
		t.Fatalf("expected empty sentinel, got %d", s.Cursor())
	}
	if s.MoveCursorHome() || s.MoveCursorEnd() {
		t.Fatalf("expected home/end no-ops on empty list")
	}
}

func TestMoveCursorPaging(t *testing.T) {
	s := NewState()
	s.SetItems(makeItems("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"))

	if !s.MoveCursorPageDown(5) || s.Cursor() != 5 {
		t.Fatalf("expected cursor at 5, got %d", s.Cursor())
	}
	if !s.MoveCursorPageDown(5) || s.Cursor() != 10 {
		t.Fatalf("expected cursor at 10, got %d", s.Cursor())
	}
	if !s.MoveCursorPageDown(5) || s.Cursor() != 11 {
		t.Fatalf("expected cursor clamped to end, got %d", s.Cursor())
	}
	if s.MoveCursorPageDown(5) {
		t.Fatalf("expected no movement past end")
	}
	if !s.MoveCursorPageUp(5) || s.Cursor() != 6 {
		t.Fatalf("expected cursor at 6, got %d", s.Cursor())
	}

	// Unknown page size jumps by the full list length.
	s.MoveCursorHome()
	if !s.MoveCursorPageDown(0) || s.Cursor() != 11 {
		t.Fatalf("expected jump to end with unknown page size, got %d", s.Cursor())
	}
}

func TestNavigationAllowedWhileBusy(t *testing.T) {
	s := NewState()
	s.SetItems(makeItems("a", "b"))
	s.SetLoading(OpDelete)
	if !s.MoveCursor(1) || s.Cursor() != 1 {
		t.Fatalf("expected cursor movement while busy, got %d", s.Cursor())
	}
}
