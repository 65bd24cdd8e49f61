package list

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type upperInputs struct{}

func (upperInputs) Validate(kind, text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", errors.New("value is empty")
	}
	return strings.ToUpper(trimmed), nil
}

func (upperInputs) Prompt(kind string) (string, string) {
	return "Value", "type here"
}

func typeText(f *Input, text string) {
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestInputValidationErrorKeepsInputOpen(t *testing.T) {
	f := NewInput("thing", "", upperInputs{})
	typeText(f, "   ")
	_, submitted, canceled, _ := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if submitted || canceled {
		t.Fatalf("expected rejected submission to keep the input open")
	}
	if f.Err() != "value is empty" {
		t.Fatalf("expected inline error, got %q", f.Err())
	}
}

func TestInputValidationNormalizesValue(t *testing.T) {
	f := NewInput("thing", "", upperInputs{})
	typeText(f, "abc")
	value, submitted, _, _ := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !submitted || value != "ABC" {
		t.Fatalf("expected normalized submission, got %q (submitted=%v)", value, submitted)
	}
	if f.Err() != "" {
		t.Fatalf("expected error cleared on success, got %q", f.Err())
	}
}

func TestInputEscCancels(t *testing.T) {
	f := NewInput("thing", "", upperInputs{})
	typeText(f, "abc")
	_, submitted, canceled, _ := f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if submitted || !canceled {
		t.Fatalf("expected cancel, got submitted=%v canceled=%v", submitted, canceled)
	}
}

func TestInputCtrlUClearsBuffer(t *testing.T) {
	f := NewInput("thing", "seed", upperInputs{})
	f.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if f.Value() != "" {
		t.Fatalf("expected buffer cleared, got %q", f.Value())
	}
}

func TestInputFilterKindAcceptsEmpty(t *testing.T) {
	f := NewInput(KindFilter, "old", nil)
	f.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	value, submitted, _, _ := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !submitted || value != "" {
		t.Fatalf("expected empty filter submission to clear, got %q", value)
	}
	if f.Title() != "Filter" {
		t.Fatalf("expected built-in filter title, got %q", f.Title())
	}
}

func TestInputPromptFromHandler(t *testing.T) {
	f := NewInput("thing", "", upperInputs{})
	if f.Title() != "Value" {
		t.Fatalf("expected handler-provided title, got %q", f.Title())
	}
}
