package database

import (
	"context"
	"database/sql"
	"fmt"
)

// LabelRepo handles pure data access for labels.
// No business logic, no validation - just database operations.
type LabelRepo struct {
	db *sql.DB
}

// NewLabelRepo creates a new label repository
func NewLabelRepo(db *sql.DB) *LabelRepo {
	return &LabelRepo{db: db}
}

const labelColumns = `id, name, color, created_at`

// Save inserts the label when its ID is zero and updates it otherwise.
// The returned record carries the assigned ID.
func (r *LabelRepo) Save(ctx context.Context, rec LabelRecord) (LabelRecord, error) {
	rec.CreatedAt = rec.CreatedAt.UTC()

	if rec.ID == 0 {
		result, err := r.db.ExecContext(ctx,
			`INSERT INTO labels (name, color, created_at) VALUES (?, ?, ?)`,
			rec.Name, rec.Color, rec.CreatedAt,
		)
		if err != nil {
			return LabelRecord{}, fmt.Errorf("failed to create label: %w", translateError(err))
		}
		id, err := result.LastInsertId()
		if err != nil {
			return LabelRecord{}, fmt.Errorf("failed to read label id: %w", err)
		}
		rec.ID = id
		return rec, nil
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE labels SET name = ?, color = ? WHERE id = ?`,
		rec.Name, rec.Color, rec.ID,
	)
	if err != nil {
		return LabelRecord{}, fmt.Errorf("failed to update label %d: %w", rec.ID, translateError(err))
	}
	if err := requireAffected(result, "label", rec.ID); err != nil {
		return LabelRecord{}, err
	}
	return rec, nil
}

// FindByID retrieves a label by ID
func (r *LabelRepo) FindByID(ctx context.Context, id int64) (LabelRecord, error) {
	return scanLabel(r.db.QueryRowContext(ctx,
		`SELECT `+labelColumns+` FROM labels WHERE id = ?`, id,
	), fmt.Sprintf("label %d", id))
}

// FindByName retrieves a label by its unique name
func (r *LabelRepo) FindByName(ctx context.Context, name string) (LabelRecord, error) {
	return findLabelByName(ctx, r.db, name)
}

// FindByColor retrieves a label by its unique color
func (r *LabelRepo) FindByColor(ctx context.Context, color string) (LabelRecord, error) {
	return scanLabel(r.db.QueryRowContext(ctx,
		`SELECT `+labelColumns+` FROM labels WHERE color = ?`, color,
	), fmt.Sprintf("label with color %q", color))
}

// FindAll retrieves all labels in insertion order
func (r *LabelRepo) FindAll(ctx context.Context) ([]LabelRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+labelColumns+` FROM labels ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get labels: %w", err)
	}
	defer func() { _ = rows.Close() }()

	labels := []LabelRecord{}
	for rows.Next() {
		var rec LabelRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Color, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan label: %w", err)
		}
		rec.CreatedAt = rec.CreatedAt.UTC()
		labels = append(labels, rec)
	}
	return labels, rows.Err()
}

func findLabelByName(ctx context.Context, q querier, name string) (LabelRecord, error) {
	return scanLabel(q.QueryRowContext(ctx,
		`SELECT `+labelColumns+` FROM labels WHERE name = ?`, name,
	), fmt.Sprintf("label %q", name))
}

func scanLabel(row *sql.Row, what string) (LabelRecord, error) {
	var rec LabelRecord
	if err := row.Scan(&rec.ID, &rec.Name, &rec.Color, &rec.CreatedAt); err != nil {
		return LabelRecord{}, fmt.Errorf("%s: %w", what, translateError(err))
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	return rec, nil
}

// requireAffected turns an UPDATE that touched nothing into models.ErrNotFound
func requireAffected(result sql.Result, entity string, id int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, translateError(sql.ErrNoRows))
	}
	return nil
}
