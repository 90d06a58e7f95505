package database

import (
	"database/sql"
	"time"
)

// TaskListRecord is the persisted shape of a task list
type TaskListRecord struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// LabelRecord is the persisted shape of a label
type LabelRecord struct {
	ID        int64
	Name      string
	Color     string
	CreatedAt time.Time
}

// TaskRecord is the persisted shape of a task.
//
// TaskList and Labels are populated on every read. Save only looks at
// TaskListID and the label IDs, and replaces the stored label set.
type TaskRecord struct {
	ID          int64
	Title       string
	Description sql.NullString
	DueDate     sql.NullTime
	Status      string
	Priority    string
	UpdatedAt   sql.NullTime
	TaskListID  int64
	TaskList    TaskListRecord
	Labels      []LabelRecord
}

// LabelIDs returns the ids of the labels in the record
func (r *TaskRecord) LabelIDs() []int64 {
	ids := make([]int64, 0, len(r.Labels))
	for _, l := range r.Labels {
		ids = append(ids, l.ID)
	}
	return ids
}
