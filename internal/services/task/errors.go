package task

import (
	"fmt"

	"github.com/thenoetrevino/todolist/internal/models"
)

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle        = models.Invalid("task title cannot be empty")
	ErrTitleTooLong      = models.Invalid("task title cannot exceed 255 characters")
	ErrInvalidTaskID     = models.Invalid("invalid task ID")
	ErrInvalidTaskListID = models.Invalid("invalid task list ID")
	ErrEmptyLabelName    = models.Invalid("label name cannot be empty")

	// Business logic errors
	ErrTaskNotFound    = fmt.Errorf("task %w", models.ErrNotFound)
	ErrLabelNotFound   = fmt.Errorf("label %w", models.ErrNotFound)
	ErrTaskTitleExists = fmt.Errorf("task title %w", models.ErrAlreadyExists)
)

// MaxTitleLength is the longest accepted task title
const MaxTitleLength = 255
