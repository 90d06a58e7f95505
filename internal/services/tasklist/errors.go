package tasklist

import (
	"fmt"

	"github.com/thenoetrevino/todolist/internal/models"
)

// Task list errors
var (
	ErrEmptyName         = models.Invalid("task list name cannot be empty")
	ErrNameTooLong       = models.Invalid("task list name cannot exceed 100 characters")
	ErrInvalidTaskListID = models.Invalid("invalid task list ID")

	ErrTaskListNotFound = fmt.Errorf("task list %w", models.ErrNotFound)
)

// MaxNameLength is the longest accepted task list name
const MaxNameLength = 100
