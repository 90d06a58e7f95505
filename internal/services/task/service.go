package task

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/todolist/internal/converters"
	"github.com/thenoetrevino/todolist/internal/database"
	"github.com/thenoetrevino/todolist/internal/models"
	"github.com/thenoetrevino/todolist/internal/types"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetAllTasks(ctx context.Context) ([]*models.Task, error)
	GetTaskByID(ctx context.Context, taskID types.TaskID) (*models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) error
	DeleteTask(ctx context.Context, taskID types.TaskID) error

	// Label management
	AddLabelToTask(ctx context.Context, taskID types.TaskID, labelName string) error
	RemoveLabelFromTask(ctx context.Context, taskID types.TaskID, labelName string) error
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Title       string
	Description string
	DueDate     *time.Time
	Status      models.Status   // Optional: empty means DefaultStatus
	Priority    models.Priority // Optional: empty means DefaultPriority
	TaskListID  types.TaskListID
	LabelNames  []string
}

// UpdateTaskRequest replaces every mutable field of a task.
// The owning task list cannot be changed.
type UpdateTaskRequest struct {
	TaskID      types.TaskID
	Title       string
	Description string
	DueDate     *time.Time
	Status      models.Status   // Optional: empty means DefaultStatus
	Priority    models.Priority // Optional: empty means DefaultPriority
	LabelNames  []string
}

// service implements Service interface
type service struct {
	tasks  database.TaskStore
	labels database.LabelStore
	lists  database.TaskListStore
	now    func() time.Time
}

// NewService creates a new task service. A nil clock defaults to time.Now.
func NewService(tasks database.TaskStore, labels database.LabelStore, lists database.TaskListStore, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		tasks:  tasks,
		labels: labels,
		lists:  lists,
		now:    now,
	}
}

// GetAllTasks returns every task in store order
func (s *service) GetAllTasks(ctx context.Context) ([]*models.Task, error) {
	records, err := s.tasks.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return converters.TasksToModels(records), nil
}

// GetTaskByID retrieves a single task
func (s *service) GetTaskByID(ctx context.Context, taskID types.TaskID) (*models.Task, error) {
	if taskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	rec, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return converters.TaskToModel(rec), nil
}

// CreateTask handles task creation with validation and business rules
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	// Validate request
	if err := s.validateCreateTask(req); err != nil {
		return nil, err
	}

	// Fast path for a readable error; the unique index is the real guard
	if err := s.ensureTitleFree(ctx, req.Title); err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      statusOrDefault(req.Status),
		Priority:    priorityOrDefault(req.Priority),
		UpdatedAt:   s.now().UTC(),
		TaskList:    &models.TaskList{ID: req.TaskListID},
		Labels:      labelRefs(req.LabelNames),
	}

	rec, err := converters.TaskToRecord(ctx, s.lists, s.labels, task)
	if err != nil {
		return nil, err
	}

	saved, err := s.tasks.Save(ctx, rec)
	if err != nil {
		return nil, translateSaveError(err)
	}

	return converters.TaskToModel(saved), nil
}

// UpdateTask replaces the fields and label set of an existing task
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) error {
	if err := s.validateUpdateTask(req); err != nil {
		return err
	}

	current, err := s.findTask(ctx, req.TaskID)
	if err != nil {
		return err
	}
	existing := converters.TaskToModel(current)

	task := &models.Task{
		ID:          existing.ID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      statusOrDefault(req.Status),
		Priority:    priorityOrDefault(req.Priority),
		UpdatedAt:   s.nextUpdatedAt(existing.UpdatedAt),
		TaskList:    existing.TaskList,
		Labels:      labelRefs(req.LabelNames),
	}

	rec, err := converters.TaskToRecord(ctx, s.lists, s.labels, task)
	if err != nil {
		return err
	}

	if _, err := s.tasks.Save(ctx, rec); err != nil {
		return translateSaveError(err)
	}
	return nil
}

// DeleteTask removes a task. A missing task is not an error.
func (s *service) DeleteTask(ctx context.Context, taskID types.TaskID) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}
	return s.tasks.DeleteByID(ctx, int64(taskID))
}

// AddLabelToTask attaches a label by name. Attaching a label twice is a no-op.
func (s *service) AddLabelToTask(ctx context.Context, taskID types.TaskID, labelName string) error {
	rec, label, err := s.resolveTaskAndLabel(ctx, taskID, labelName)
	if err != nil {
		return err
	}

	for _, l := range rec.Labels {
		if l.ID == label.ID {
			return nil
		}
	}

	rec.Labels = append(rec.Labels, label)
	rec.UpdatedAt = database.TimePtrToNull(ptr(s.nextUpdatedAt(database.NullTimeToTime(rec.UpdatedAt))))
	if _, err := s.tasks.Save(ctx, rec); err != nil {
		return translateSaveError(err)
	}
	return nil
}

// RemoveLabelFromTask detaches a label by name. Removing a label that is not
// attached is a no-op.
func (s *service) RemoveLabelFromTask(ctx context.Context, taskID types.TaskID, labelName string) error {
	rec, label, err := s.resolveTaskAndLabel(ctx, taskID, labelName)
	if err != nil {
		return err
	}

	kept := make([]database.LabelRecord, 0, len(rec.Labels))
	for _, l := range rec.Labels {
		if l.ID != label.ID {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(rec.Labels) {
		return nil
	}

	rec.Labels = kept
	rec.UpdatedAt = database.TimePtrToNull(ptr(s.nextUpdatedAt(database.NullTimeToTime(rec.UpdatedAt))))
	if _, err := s.tasks.Save(ctx, rec); err != nil {
		return translateSaveError(err)
	}
	return nil
}

// ============================================================================
// HELPERS
// ============================================================================

func (s *service) validateCreateTask(req CreateTaskRequest) error {
	if err := validateTitle(req.Title); err != nil {
		return err
	}
	if req.TaskListID <= 0 {
		return ErrInvalidTaskListID
	}
	return validateEnums(req.Status, req.Priority)
}

func (s *service) validateUpdateTask(req UpdateTaskRequest) error {
	if req.TaskID <= 0 {
		return ErrInvalidTaskID
	}
	if err := validateTitle(req.Title); err != nil {
		return err
	}
	return validateEnums(req.Status, req.Priority)
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateEnums(status models.Status, priority models.Priority) error {
	if status != "" {
		if _, err := models.ParseStatus(string(status)); err != nil {
			return err
		}
	}
	if priority != "" {
		if _, err := models.ParsePriority(string(priority)); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) ensureTitleFree(ctx context.Context, title string) error {
	_, err := s.tasks.FindByTitle(ctx, title)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %q", ErrTaskTitleExists, title)
	case errors.Is(err, models.ErrNotFound):
		return nil
	default:
		return err
	}
}

func (s *service) findTask(ctx context.Context, taskID types.TaskID) (database.TaskRecord, error) {
	rec, err := s.tasks.FindByID(ctx, int64(taskID))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return database.TaskRecord{}, fmt.Errorf("%w: %d", ErrTaskNotFound, taskID)
		}
		return database.TaskRecord{}, err
	}
	return rec, nil
}

func (s *service) resolveTaskAndLabel(ctx context.Context, taskID types.TaskID, labelName string) (database.TaskRecord, database.LabelRecord, error) {
	if taskID <= 0 {
		return database.TaskRecord{}, database.LabelRecord{}, ErrInvalidTaskID
	}
	if strings.TrimSpace(labelName) == "" {
		return database.TaskRecord{}, database.LabelRecord{}, ErrEmptyLabelName
	}

	rec, err := s.findTask(ctx, taskID)
	if err != nil {
		return database.TaskRecord{}, database.LabelRecord{}, err
	}

	label, err := s.labels.FindByName(ctx, labelName)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return database.TaskRecord{}, database.LabelRecord{}, fmt.Errorf("%w: %q", ErrLabelNotFound, labelName)
		}
		return database.TaskRecord{}, database.LabelRecord{}, err
	}
	return rec, label, nil
}

// nextUpdatedAt returns the current time, nudged forward when the clock has
// not moved past the previous value so updated-at strictly increases.
func (s *service) nextUpdatedAt(prev time.Time) time.Time {
	now := s.now().UTC()
	if !now.After(prev) {
		now = prev.Add(time.Microsecond)
	}
	return now
}

// translateSaveError maps a unique index violation on the title to ErrTaskTitleExists
func translateSaveError(err error) error {
	var constraintErr *database.ConstraintError
	if errors.As(err, &constraintErr) && constraintErr.Column == "title" {
		return fmt.Errorf("%w: %v", ErrTaskTitleExists, err)
	}
	return err
}

func statusOrDefault(s models.Status) models.Status {
	if s == "" {
		return models.DefaultStatus
	}
	return s
}

func priorityOrDefault(p models.Priority) models.Priority {
	if p == "" {
		return models.DefaultPriority
	}
	return p
}

func labelRefs(names []string) []*models.Label {
	labels := make([]*models.Label, 0, len(names))
	for _, name := range names {
		labels = append(labels, &models.Label{Name: name})
	}
	return labels
}

func ptr[T any](v T) *T {
	return &v
}
