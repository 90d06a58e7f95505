package label

import (
	"fmt"

	"github.com/thenoetrevino/todolist/internal/models"
)

// Label-related errors
var (
	// Validation errors
	ErrEmptyName    = models.Invalid("name cannot be empty")
	ErrNameTooLong  = models.Invalid("name cannot exceed 50 characters")
	ErrInvalidColor = models.Invalid("invalid color format (must be hex color like #FFFFFF)")

	// Business logic errors
	ErrLabelNameExists  = fmt.Errorf("label name %w", models.ErrAlreadyExists)
	ErrLabelColorExists = fmt.Errorf("label color %w", models.ErrAlreadyExists)
)

// MaxNameLength is the longest accepted label name
const MaxNameLength = 50
