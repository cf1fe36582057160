// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package task persists to-do items in a single SQLite table and exposes
// the CRUD operations the task subcommands are built on. Writes are
// serialized through one sql.DB handle with one transaction per operation.
package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Krisha434/dockit/pkg/types"
)

// ErrNotFound is returned when an operation names a task id that does not
// exist. The store is left unchanged.
var ErrNotFound = errors.New("task not found")

// ErrInvalidPriority is returned when a priority is not Low, Medium, or High.
var ErrInvalidPriority = errors.New("priority must be one of: Low, Medium, High")

// Store manages the tasks SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the tasks database named by cfg, creating the
// schema if it does not exist. An empty DBPath defaults to dockit.db.
func Open(cfg types.TaskStoreConfig) (*Store, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = "dockit.db"
	}
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		priority TEXT CHECK(priority IN ('Low', 'Medium', 'High')) NOT NULL,
		due_date TEXT,
		completed INTEGER DEFAULT 0,
		created_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Add inserts a new task and returns its assigned id. An empty priority
// defaults to Medium.
func (s *Store) Add(ctx context.Context, title, description string, prio types.Priority, due string) (int64, error) {
	if title == "" {
		return 0, fmt.Errorf("title is required")
	}
	if prio == "" {
		prio = types.PriorityMedium
	}
	if !prio.Valid() {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidPriority, prio)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, priority, due_date, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		title, description, string(prio), due, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading new task id: %w", err)
	}
	return id, nil
}

// List returns all tasks ordered by creation time, oldest first. Ids are
// assigned in insertion order, so ordering by id is chronological even when
// stored timestamps have fractional seconds of differing widths.
func (s *Store) List(ctx context.Context) ([]types.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, description, priority, due_date, completed, created_at
		 FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	var tasks []types.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Get returns a single task by id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id int64) (types.Task, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, description, priority, due_date, completed, created_at
		 FROM tasks WHERE id = ?`, id)

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return t, err
}

// UpdateFields names the task fields an update may change. Nil fields are
// left untouched.
type UpdateFields struct {
	Title       *string
	Description *string
	Priority    *types.Priority
	DueDate     *string
	Completed   *bool
}

// Update applies the non-nil fields to the task with the given id inside
// a single transaction. A missing id returns ErrNotFound without mutating
// the store.
func (s *Store) Update(ctx context.Context, id int64, fields UpdateFields) error {
	if fields.Priority != nil && !fields.Priority.Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidPriority, *fields.Priority)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	cur, err := txGet(ctx, tx, id)
	if err != nil {
		return err
	}

	if fields.Title != nil {
		cur.Title = *fields.Title
	}
	if fields.Description != nil {
		cur.Description = *fields.Description
	}
	if fields.Priority != nil {
		cur.Priority = *fields.Priority
	}
	if fields.DueDate != nil {
		cur.DueDate = *fields.DueDate
	}
	if fields.Completed != nil {
		cur.Completed = *fields.Completed
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, priority = ?, due_date = ?, completed = ?
		 WHERE id = ?`,
		cur.Title, cur.Description, string(cur.Priority), cur.DueDate, boolInt(cur.Completed), id,
	)
	if err != nil {
		return fmt.Errorf("updating task %d: %w", id, err)
	}
	return tx.Commit()
}

// Complete marks the task done. A missing id returns ErrNotFound.
func (s *Store) Complete(ctx context.Context, id int64) error {
	done := true
	return s.Update(ctx, id, UpdateFields{Completed: &done})
}

// Delete removes the task with the given id, or returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete of task %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (types.Task, error) {
	var (
		t         types.Task
		desc, due sql.NullString
		completed int
		created   string
		prio      string
	)
	if err := s.Scan(&t.ID, &t.Title, &desc, &prio, &due, &completed, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Task{}, err
		}
		return types.Task{}, fmt.Errorf("scanning task row: %w", err)
	}

	t.Description = desc.String
	t.DueDate = due.String
	t.Priority = types.Priority(prio)
	t.Completed = completed != 0
	if ts, err := time.Parse(time.RFC3339Nano, created); err == nil {
		t.CreatedAt = ts
	}
	return t, nil
}

func txGet(ctx context.Context, tx *sql.Tx, id int64) (types.Task, error) {
	row := tx.QueryRowContext(ctx,
		`SELECT id, title, description, priority, due_date, completed, created_at
		 FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return t, err
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
