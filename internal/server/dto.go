package server

import (
	"strings"
	"time"

	"github.com/thenoetrevino/todolist/internal/models"
	labelservice "github.com/thenoetrevino/todolist/internal/services/label"
	taskservice "github.com/thenoetrevino/todolist/internal/services/task"
	"github.com/thenoetrevino/todolist/internal/types"
)

// TaskRequest is the body of POST /task and PUT /task/:id
type TaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Status      string     `json:"status,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	TaskListID  int        `json:"taskListId"`
	Labels      []string   `json:"labels,omitempty"`
}

// TaskResponse is the JSON representation of a task
type TaskResponse struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	DueDate     *time.Time      `json:"dueDate"`
	Status      string          `json:"status"`
	Priority    string          `json:"priority"`
	UpdatedAt   *time.Time      `json:"updatedAt"`
	TaskList    TaskListSummary `json:"taskList"`
	Labels      []LabelDTO      `json:"labels"`
}

// TaskListSummary identifies the owning task list of a task
type TaskListSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// LabelDTO is both the body of POST /task/labels and the label projection
// returned to clients
type LabelDTO struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// AddLabelRequest is the body variant of the add-label route
type AddLabelRequest struct {
	Name string `json:"name"`
}

// TaskListRequest is the body of POST /task-lists
type TaskListRequest struct {
	Name string `json:"name"`
}

// TaskListResponse is the JSON representation of a task list
type TaskListResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ============================================================================
// VALIDATION
// ============================================================================

var (
	errTitleRequired     = models.Invalid("title is required")
	errTitleTooLong      = models.Invalid("title cannot exceed 255 characters")
	errTaskListRequired  = models.Invalid("taskListId must be a positive integer")
	errLabelNameRequired = models.Invalid("label name is required")
	errLabelNameTooLong  = models.Invalid("label name cannot exceed 50 characters")
	errLabelColorInvalid = models.Invalid("color must be a hex color like #FF0000")
	errListNameRequired  = models.Invalid("name is required")
)

// Validate checks the request shape. requireList is false for updates,
// which never move a task between lists.
func (r *TaskRequest) Validate(requireList bool) error {
	if strings.TrimSpace(r.Title) == "" {
		return errTitleRequired
	}
	if len(r.Title) > taskservice.MaxTitleLength {
		return errTitleTooLong
	}
	if requireList && r.TaskListID <= 0 {
		return errTaskListRequired
	}
	if r.Status != "" {
		if _, err := models.ParseStatus(r.Status); err != nil {
			return err
		}
	}
	if r.Priority != "" {
		if _, err := models.ParsePriority(r.Priority); err != nil {
			return err
		}
	}
	for _, name := range r.Labels {
		if err := validateLabelName(name); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks a label create body
func (l *LabelDTO) Validate() error {
	if err := validateLabelName(l.Name); err != nil {
		return err
	}
	if !labelservice.ValidColor(l.Color) {
		return errLabelColorInvalid
	}
	return nil
}

// Validate checks a task list create body
func (r *TaskListRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errListNameRequired
	}
	return nil
}

func validateLabelName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errLabelNameRequired
	}
	if len(name) > labelservice.MaxNameLength {
		return errLabelNameTooLong
	}
	return nil
}

// ============================================================================
// MAPPING
// ============================================================================

func (r *TaskRequest) toCreate() taskservice.CreateTaskRequest {
	return taskservice.CreateTaskRequest{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Status:      models.Status(r.Status),
		Priority:    models.Priority(r.Priority),
		TaskListID:  types.TaskListID(r.TaskListID),
		LabelNames:  r.Labels,
	}
}

func (r *TaskRequest) toUpdate(id types.TaskID) taskservice.UpdateTaskRequest {
	return taskservice.UpdateTaskRequest{
		TaskID:      id,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Status:      models.Status(r.Status),
		Priority:    models.Priority(r.Priority),
		LabelNames:  r.Labels,
	}
}

func newTaskResponse(t *models.Task) TaskResponse {
	resp := TaskResponse{
		ID:          int(t.ID),
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		Labels:      newLabelDTOs(t.Labels),
	}
	if !t.UpdatedAt.IsZero() {
		updated := t.UpdatedAt
		resp.UpdatedAt = &updated
	}
	if t.TaskList != nil {
		resp.TaskList = TaskListSummary{ID: int(t.TaskList.ID), Name: t.TaskList.Name}
	}
	return resp
}

func newTaskResponses(tasks []*models.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, newTaskResponse(t))
	}
	return out
}

func newLabelDTOs(labels []*models.Label) []LabelDTO {
	out := make([]LabelDTO, 0, len(labels))
	for _, l := range labels {
		out = append(out, LabelDTO{Name: l.Name, Color: l.Color})
	}
	return out
}

func newTaskListResponse(l *models.TaskList) TaskListResponse {
	return TaskListResponse{ID: int(l.ID), Name: l.Name, CreatedAt: l.CreatedAt}
}

func newTaskListResponses(lists []*models.TaskList) []TaskListResponse {
	out := make([]TaskListResponse, 0, len(lists))
	for _, l := range lists {
		out = append(out, newTaskListResponse(l))
	}
	return out
}
