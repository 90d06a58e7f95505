package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/thenoetrevino/todolist/internal/models"
	labelservice "github.com/thenoetrevino/todolist/internal/services/label"
	taskservice "github.com/thenoetrevino/todolist/internal/services/task"
	tasklistservice "github.com/thenoetrevino/todolist/internal/services/tasklist"
)

// DateLayout is the short due date form accepted next to RFC 3339
const DateLayout = "2006-01-02"

// ParseID parses a positive integer ID given on the command line
func ParseID(what, s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, &ExitCodeError{
			Code: ExitUsage,
			Err:  fmt.Errorf("%s must be a positive integer, got %q", what, s),
		}
	}
	return id, nil
}

// ParseStatus accepts TODO, IN_PROGRESS and DONE in any case, with - or _
func ParseStatus(s string) (models.Status, error) {
	return models.ParseStatus(normalizeEnum(s))
}

// ParsePriority accepts LOW, MEDIUM and HIGH in any case
func ParsePriority(s string) (models.Priority, error) {
	return models.ParsePriority(normalizeEnum(s))
}

func normalizeEnum(s string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_")
}

// ParseDueDate accepts an RFC 3339 timestamp or a YYYY-MM-DD date.
// An empty string means no due date.
func ParseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: due date %q must be RFC 3339 or %s", ErrMalformedInput, s, DateLayout)
	}
	return &t, nil
}

// ReadDescription returns value, or all of stdin when value is "-"
func ReadDescription(value string, stdin io.Reader) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read stdin: %v", ErrMalformedInput, err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// SplitNames splits a comma separated list, dropping blanks
func SplitNames(values []string) []string {
	names := make([]string, 0, len(values))
	for _, v := range values {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

// Suggestion returns a hint for resolving err, or ""
func Suggestion(err error) string {
	switch {
	case errors.Is(err, taskservice.ErrLabelNotFound):
		return "Use 'todolist label list' to see available labels or 'todolist label create' to add one"
	case errors.Is(err, taskservice.ErrTaskNotFound):
		return "Use 'todolist task list' to see available tasks"
	case errors.Is(err, tasklistservice.ErrTaskListNotFound):
		return "Use 'todolist list list' to see available task lists or 'todolist list create' to add one"
	case errors.Is(err, labelservice.ErrInvalidColor):
		return "Colors are hex values like #FF0000"
	case errors.Is(err, models.ErrInvalid) && strings.Contains(err.Error(), "status"):
		return "Valid statuses are: todo, in-progress, done"
	case errors.Is(err, models.ErrInvalid) && strings.Contains(err.Error(), "priority"):
		return "Valid priorities are: low, medium, high"
	}
	return ""
}
