package models

import (
	"time"

	"github.com/thenoetrevino/todolist/internal/types"
)

// TaskList is a named collection that groups tasks.
// Every task belongs to exactly one task list.
type TaskList struct {
	ID        types.TaskListID
	Name      string
	CreatedAt time.Time
}
