// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Valid reports whether p is one of the three recognized levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a persisted to-do item. The store owns the record; ID is
// assigned by the database on insert.
type Task struct {
	ID          int64     `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Priority    Priority  `json:"priority" yaml:"priority"`
	DueDate     string    `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	Completed   bool      `json:"completed" yaml:"completed"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// IndexedDocument is the metadata row for a document held in the search
// index. Content and the embedding vector live in the database; only the
// fields listed here are returned to callers.
type IndexedDocument struct {
	ID       int64  `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Category string `json:"category" yaml:"category"`
	Filename string `json:"filename" yaml:"filename"`
	AddedAt  string `json:"added_at" yaml:"added_at"`
}
