package models

import (
	"time"

	"github.com/thenoetrevino/todolist/internal/types"
)

// Label represents a tag that can be applied to tasks.
// Both the name and the color are unique across all labels.
type Label struct {
	ID        types.LabelID
	Name      string
	Color     string // Hex color code (e.g., "#7D56F4")
	CreatedAt time.Time
}
