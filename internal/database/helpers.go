package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/thenoetrevino/todolist/internal/models"
)

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ConstraintError reports the unique column that rejected a write.
// It matches models.ErrAlreadyExists with errors.Is.
type ConstraintError struct {
	Table  string
	Column string
	err    error
}

func (e *ConstraintError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("unique constraint violated: %v", e.err)
	}
	return fmt.Sprintf("%s.%s %s", e.Table, e.Column, models.ErrAlreadyExists)
}

// Unwrap exposes the taxonomy error
func (e *ConstraintError) Unwrap() error {
	return models.ErrAlreadyExists
}

// translateError maps driver errors onto the models error taxonomy.
// Errors it does not recognize are returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}

	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		table, column := uniqueColumn(sqliteErr.Error())
		return &ConstraintError{Table: table, Column: column, err: err}
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return fmt.Errorf("referenced row %w", models.ErrNotFound)
	case sqlite3.SQLITE_CONSTRAINT:
		// primary code only, fall back to the message
		msg := sqliteErr.Error()
		switch {
		case strings.Contains(msg, "UNIQUE constraint failed"):
			table, column := uniqueColumn(msg)
			return &ConstraintError{Table: table, Column: column, err: err}
		case strings.Contains(msg, "FOREIGN KEY constraint failed"):
			return fmt.Errorf("referenced row %w", models.ErrNotFound)
		}
	}
	return err
}

// uniqueColumn extracts "table.column" from an SQLite message such as
// "UNIQUE constraint failed: labels.color (2067)".
func uniqueColumn(msg string) (table, column string) {
	const marker = "constraint failed: "
	idx := strings.LastIndex(msg, marker)
	if idx < 0 {
		return "", ""
	}
	rest := msg[idx+len(marker):]
	if end := strings.IndexAny(rest, " ,("); end >= 0 {
		rest = rest[:end]
	}
	table, column, ok := strings.Cut(rest, ".")
	if !ok {
		return "", ""
	}
	return table, column
}

// StringToNull converts an empty string to a NULL value
func StringToNull(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// NullStringToString converts sql.NullString to string.
// Returns empty string if the value is not valid.
func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// NullTimeToPtr converts sql.NullTime to *time.Time.
// Returns nil if the value is not valid.
func NullTimeToPtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		t := nt.Time.UTC()
		return &t
	}
	return nil
}

// NullTimeToTime converts sql.NullTime to time.Time.
// Returns zero time if the value is not valid.
func NullTimeToTime(nt sql.NullTime) time.Time {
	if nt.Valid {
		return nt.Time.UTC()
	}
	return time.Time{}
}

// TimePtrToNull converts *time.Time to sql.NullTime
func TimePtrToNull(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
