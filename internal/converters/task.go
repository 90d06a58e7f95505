// Package converters translates between persisted records and domain models.
//
// Reads are pure: a TaskRecord already carries its task list and labels.
// Writes resolve references through lookups:
//
//	// record -> domain
//	task := converters.TaskToModel(rec)
//
//	// domain -> record, resolving the list by id and labels by name
//	rec, err := converters.TaskToRecord(ctx, repo.TaskLists, repo.Labels, task)
//
// A reference that does not resolve is reported with models.ErrNotFound;
// labels are never created implicitly. Nothing is cached between calls.
package converters

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/todolist/internal/database"
	"github.com/thenoetrevino/todolist/internal/models"
	"github.com/thenoetrevino/todolist/internal/types"
)

// TaskListFinder resolves task list records by id
type TaskListFinder interface {
	FindByID(ctx context.Context, id int64) (database.TaskListRecord, error)
}

// LabelFinder resolves label records by name
type LabelFinder interface {
	FindByName(ctx context.Context, name string) (database.LabelRecord, error)
}

// TaskToModel converts a database.TaskRecord to models.Task.
//
// Handles NULL values for optional fields:
// - description (sql.NullString)
// - due_date, updated_at (sql.NullTime)
func TaskToModel(t database.TaskRecord) *models.Task {
	return &models.Task{
		ID:          types.TaskID(t.ID),
		Title:       t.Title,
		Description: database.NullStringToString(t.Description),
		DueDate:     database.NullTimeToPtr(t.DueDate),
		Status:      models.Status(t.Status),
		Priority:    models.Priority(t.Priority),
		UpdatedAt:   database.NullTimeToTime(t.UpdatedAt),
		TaskList:    TaskListToModel(t.TaskList),
		Labels:      LabelsToModels(t.Labels),
	}
}

// TasksToModels converts a slice of task records
func TasksToModels(tasks []database.TaskRecord) []*models.Task {
	result := make([]*models.Task, len(tasks))
	for i, t := range tasks {
		result[i] = TaskToModel(t)
	}
	return result
}

// TaskToRecord converts a models.Task to a database.TaskRecord.
//
// The owning task list is looked up by task.TaskList.ID and every label by
// name. A missing task list or label fails with models.ErrNotFound.
func TaskToRecord(ctx context.Context, lists TaskListFinder, labels LabelFinder, task *models.Task) (database.TaskRecord, error) {
	if task.TaskList == nil {
		return database.TaskRecord{}, fmt.Errorf("task list %w", models.ErrNotFound)
	}

	list, err := lists.FindByID(ctx, int64(task.TaskList.ID))
	if err != nil {
		return database.TaskRecord{}, err
	}

	rec := database.TaskRecord{
		ID:          int64(task.ID),
		Title:       task.Title,
		Description: database.StringToNull(task.Description),
		DueDate:     database.TimePtrToNull(task.DueDate),
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		TaskListID:  list.ID,
		TaskList:    list,
		Labels:      make([]database.LabelRecord, 0, len(task.Labels)),
	}
	if !task.UpdatedAt.IsZero() {
		rec.UpdatedAt = database.TimePtrToNull(&task.UpdatedAt)
	}

	for _, l := range task.Labels {
		labelRec, err := labels.FindByName(ctx, l.Name)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return database.TaskRecord{}, fmt.Errorf("label %q %w", l.Name, models.ErrNotFound)
			}
			return database.TaskRecord{}, err
		}
		rec.Labels = append(rec.Labels, labelRec)
	}

	return rec, nil
}
