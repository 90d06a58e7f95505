package models

import (
	"errors"
	"fmt"
	"testing"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Distinct(t *testing.T) {
	if errors.Is(ErrNotFound, ErrAlreadyExists) {
		t.Error("ErrNotFound should not match ErrAlreadyExists")
	}
}

func TestErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("task %w", ErrNotFound)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("wrapped error should match ErrNotFound")
	}
	if wrapped.Error() != "task not found" {
		t.Errorf("Expected 'task not found', got '%s'", wrapped.Error())
	}
}

func TestErrors_Invalid(t *testing.T) {
	errEmpty := Invalid("title cannot be empty")
	if !errors.Is(errEmpty, ErrInvalid) {
		t.Error("Invalid() should match ErrInvalid")
	}
	if !errors.Is(fmt.Errorf("create: %w", errEmpty), errEmpty) {
		t.Error("wrapped validation error should match itself")
	}
	if errors.Is(errEmpty, ErrNotFound) {
		t.Error("validation error should not match ErrNotFound")
	}
	if errEmpty.Error() != "title cannot be empty" {
		t.Errorf("Unexpected message %q", errEmpty.Error())
	}
}

// ============================================================================
// Status / Priority Tests
// ============================================================================

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{"TODO", StatusTodo, false},
		{"IN_PROGRESS", StatusInProgress, false},
		{"DONE", StatusDone, false},
		{"todo", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStatus(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{"LOW", PriorityLow, false},
		{"MEDIUM", PriorityMedium, false},
		{"HIGH", PriorityHigh, false},
		{"urgent", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePriority(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePriority(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePriority(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if !DefaultStatus.Valid() {
		t.Error("DefaultStatus should be valid")
	}
	if !DefaultPriority.Valid() {
		t.Error("DefaultPriority should be valid")
	}
}

// ============================================================================
// Struct Tests
// ============================================================================

func TestTask_HasLabel(t *testing.T) {
	task := &Task{
		Title:  "Buy milk",
		Labels: []*Label{{Name: "urgent", Color: "#FF0000"}, {Name: "home", Color: "#00FF00"}},
	}

	if !task.HasLabel("urgent") {
		t.Error("Expected task to have label 'urgent'")
	}
	if task.HasLabel("work") {
		t.Error("Expected task not to have label 'work'")
	}

	names := task.LabelNames()
	if len(names) != 2 || names[0] != "urgent" || names[1] != "home" {
		t.Errorf("Unexpected label names: %v", names)
	}
}
