package models

import (
	"time"

	"github.com/thenoetrevino/todolist/internal/types"
)

// Task represents a single to-do item owned by a task list
type Task struct {
	ID          types.TaskID
	Title       string
	Description string
	DueDate     *time.Time // nil when the task has no due date
	Status      Status
	Priority    Priority
	UpdatedAt   time.Time
	TaskList    *TaskList
	Labels      []*Label
}

// HasLabel reports whether a label with the given name is attached to the task
func (t *Task) HasLabel(name string) bool {
	for _, l := range t.Labels {
		if l.Name == name {
			return true
		}
	}
	return false
}

// LabelNames returns the names of the attached labels in order
func (t *Task) LabelNames() []string {
	names := make([]string, 0, len(t.Labels))
	for _, l := range t.Labels {
		names = append(names, l.Name)
	}
	return names
}
