package database

import (
	"context"
	"database/sql"
	"fmt"
)

// TaskRepo handles pure data access for tasks and their label associations.
// No business logic, no validation - just database operations.
type TaskRepo struct {
	db *sql.DB
}

// NewTaskRepo creates a new task repository
func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

const taskSelect = `
	SELECT t.id, t.title, t.description, t.due_date, t.status, t.priority,
	       t.updated_at, t.task_list_id, l.id, l.name, l.created_at
	FROM tasks t
	INNER JOIN task_lists l ON l.id = t.task_list_id`

// ============================================================================
// READS
// ============================================================================

// FindByID retrieves a task with its task list and labels
func (r *TaskRepo) FindByID(ctx context.Context, id int64) (TaskRecord, error) {
	return findTask(ctx, r.db, id)
}

// FindByTitle retrieves a task by its unique title
func (r *TaskRepo) FindByTitle(ctx context.Context, title string) (TaskRecord, error) {
	rec, err := scanTask(r.db.QueryRowContext(ctx, taskSelect+` WHERE t.title = ?`, title))
	if err != nil {
		return TaskRecord{}, fmt.Errorf("task %q: %w", title, translateError(err))
	}
	labels, err := labelsForTasks(ctx, r.db, &rec.ID)
	if err != nil {
		return TaskRecord{}, err
	}
	rec.Labels = labels[rec.ID]
	return rec, nil
}

// FindAll retrieves every task in id order with task lists and labels
func (r *TaskRepo) FindAll(ctx context.Context) ([]TaskRecord, error) {
	rows, err := r.db.QueryContext(ctx, taskSelect+` ORDER BY t.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := []TaskRecord{}
	for rows.Next() {
		rec, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	// Release the connection before the second query; the pool holds one.
	_ = rows.Close()

	labels, err := labelsForTasks(ctx, r.db, nil)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		tasks[i].Labels = labels[tasks[i].ID]
	}
	return tasks, nil
}

// ============================================================================
// WRITES
// ============================================================================

// Save inserts the task when its ID is zero and updates it otherwise, then
// replaces its label set with rec.Labels. Everything happens in one
// transaction and the stored record is returned.
func (r *TaskRepo) Save(ctx context.Context, rec TaskRecord) (TaskRecord, error) {
	var saved TaskRecord
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		id, err := upsertTask(ctx, tx, rec)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM task_labels WHERE task_id = ?`, id); err != nil {
			return fmt.Errorf("failed to clear labels of task %d: %w", id, err)
		}
		for _, labelID := range rec.LabelIDs() {
			if _, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO task_labels (task_id, label_id) VALUES (?, ?)`,
				id, labelID,
			); err != nil {
				return fmt.Errorf("failed to add label %d to task %d: %w", labelID, id, translateError(err))
			}
		}

		saved, err = findTask(ctx, tx, id)
		return err
	})
	if err != nil {
		return TaskRecord{}, err
	}
	return saved, nil
}

// DeleteByID removes a task. Deleting a missing task is not an error.
func (r *TaskRepo) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return nil
}

// ============================================================================
// HELPERS
// ============================================================================

func upsertTask(ctx context.Context, tx *sql.Tx, rec TaskRecord) (int64, error) {
	if rec.ID == 0 {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (title, description, due_date, status, priority, updated_at, task_list_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			rec.Title, rec.Description, rec.DueDate, rec.Status, rec.Priority, rec.UpdatedAt, rec.TaskListID,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to create task: %w", translateError(err))
		}
		id, err := result.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("failed to read task id: %w", err)
		}
		return id, nil
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE tasks
		 SET title = ?, description = ?, due_date = ?, status = ?, priority = ?, updated_at = ?, task_list_id = ?
		 WHERE id = ?`,
		rec.Title, rec.Description, rec.DueDate, rec.Status, rec.Priority, rec.UpdatedAt, rec.TaskListID, rec.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update task %d: %w", rec.ID, translateError(err))
	}
	if err := requireAffected(result, "task", rec.ID); err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func findTask(ctx context.Context, q querier, id int64) (TaskRecord, error) {
	rec, err := scanTask(q.QueryRowContext(ctx, taskSelect+` WHERE t.id = ?`, id))
	if err != nil {
		return TaskRecord{}, fmt.Errorf("task %d: %w", id, translateError(err))
	}
	labels, err := labelsForTasks(ctx, q, &id)
	if err != nil {
		return TaskRecord{}, err
	}
	rec.Labels = labels[id]
	return rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (TaskRecord, error) {
	var rec TaskRecord
	err := row.Scan(
		&rec.ID, &rec.Title, &rec.Description, &rec.DueDate, &rec.Status, &rec.Priority,
		&rec.UpdatedAt, &rec.TaskListID, &rec.TaskList.ID, &rec.TaskList.Name, &rec.TaskList.CreatedAt,
	)
	if err != nil {
		return TaskRecord{}, err
	}
	rec.TaskList.CreatedAt = rec.TaskList.CreatedAt.UTC()
	rec.Labels = []LabelRecord{}
	return rec, nil
}

// labelsForTasks loads label associations keyed by task id. A nil taskID
// loads the associations of every task.
func labelsForTasks(ctx context.Context, q querier, taskID *int64) (map[int64][]LabelRecord, error) {
	query := `
		SELECT tl.task_id, l.id, l.name, l.color, l.created_at
		FROM task_labels tl
		INNER JOIN labels l ON l.id = tl.label_id`
	var args []any
	if taskID != nil {
		query += ` WHERE tl.task_id = ?`
		args = append(args, *taskID)
	}
	query += ` ORDER BY tl.task_id, l.name`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get task labels: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make(map[int64][]LabelRecord)
	for rows.Next() {
		var owner int64
		var l LabelRecord
		if err := rows.Scan(&owner, &l.ID, &l.Name, &l.Color, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task label: %w", err)
		}
		l.CreatedAt = l.CreatedAt.UTC()
		result[owner] = append(result[owner], l)
	}
	return result, rows.Err()
}
