// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package task

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Krisha434/dockit/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(types.TaskStoreConfig{DBPath: filepath.Join(t.TempDir(), "tasks.db")})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustAdd(t *testing.T, store *Store, title string) int64 {
	t.Helper()
	id, err := store.Add(context.Background(), title, "desc for "+title, types.PriorityMedium, "2026-09-01")
	if err != nil {
		t.Fatal(err)
	}
	return id
}

// --- schema ---

func TestOpenCreatesSchema(t *testing.T) {
	store := testStore(t)

	var count int
	err := store.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'tasks'`,
	).Scan(&count)
	if err != nil {
		t.Fatal(err)
	}
	if count == 0 {
		t.Error("tasks table does not exist")
	}
}

// --- add / list round trip ---

func TestAddThenListRoundTrip(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	id, err := store.Add(ctx, "Write report", "quarterly numbers", types.PriorityHigh, "2026-09-15")
	if err != nil {
		t.Fatal(err)
	}
	if id <= 0 {
		t.Fatalf("expected positive id, got %d", id)
	}

	tasks, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}

	got := tasks[0]
	if got.ID != id {
		t.Errorf("id: expected %d, got %d", id, got.ID)
	}
	if got.Title != "Write report" {
		t.Errorf("title: expected %q, got %q", "Write report", got.Title)
	}
	if got.Description != "quarterly numbers" {
		t.Errorf("description: expected %q, got %q", "quarterly numbers", got.Description)
	}
	if got.Priority != types.PriorityHigh {
		t.Errorf("priority: expected %q, got %q", types.PriorityHigh, got.Priority)
	}
	if got.DueDate != "2026-09-15" {
		t.Errorf("due date: expected %q, got %q", "2026-09-15", got.DueDate)
	}
	if got.Completed {
		t.Error("new task should not be completed")
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at not recorded")
	}
}

func TestListOrderedByCreation(t *testing.T) {
	store := testStore(t)

	first := mustAdd(t, store, "first")
	second := mustAdd(t, store, "second")
	third := mustAdd(t, store, "third")

	tasks, err := store.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	for i, want := range []int64{first, second, third} {
		if tasks[i].ID != want {
			t.Errorf("position %d: expected id %d, got %d", i, want, tasks[i].ID)
		}
	}
}

// Stored timestamps are RFC 3339 with variable-width fractional seconds,
// so their text ordering can disagree with chronological order ("...00.5Z"
// sorts after "...00.55Z"). List must still return insertion order.
func TestListOrderSurvivesFractionalSecondTimestamps(t *testing.T) {
	store := testStore(t)

	for _, row := range []struct{ title, created string }{
		{"first", "2026-08-26T12:00:00.5Z"},
		{"second", "2026-08-26T12:00:00.55Z"},
	} {
		_, err := store.db.Exec(
			`INSERT INTO tasks (title, description, priority, due_date, created_at)
			 VALUES (?, '', 'Medium', '', ?)`, row.title, row.created)
		if err != nil {
			t.Fatal(err)
		}
	}

	tasks, err := store.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "first" || tasks[1].Title != "second" {
		t.Errorf("list not in creation order: got [%s, %s]", tasks[0].Title, tasks[1].Title)
	}
}

func TestAddRejectsInvalidPriority(t *testing.T) {
	store := testStore(t)

	_, err := store.Add(context.Background(), "t", "", types.Priority("Urgent"), "")
	if !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestAddDefaultsPriorityToMedium(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	id, err := store.Add(ctx, "t", "", "", "")
	if err != nil {
		t.Fatal(err)
	}
	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Priority != types.PriorityMedium {
		t.Errorf("expected Medium, got %q", got.Priority)
	}
}

// --- update ---

func TestUpdatePartialFields(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	id := mustAdd(t, store, "original")

	newTitle := "renamed"
	done := true
	err := store.Update(ctx, id, UpdateFields{Title: &newTitle, Completed: &done})
	if err != nil {
		t.Fatal(err)
	}

	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "renamed" {
		t.Errorf("title: expected %q, got %q", "renamed", got.Title)
	}
	if !got.Completed {
		t.Error("expected completed")
	}
	// Untouched fields survive.
	if got.Description != "desc for original" {
		t.Errorf("description changed unexpectedly: %q", got.Description)
	}
	if got.DueDate != "2026-09-01" {
		t.Errorf("due date changed unexpectedly: %q", got.DueDate)
	}
}

func TestUpdateMissingIDLeavesStoreUnchanged(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	id := mustAdd(t, store, "keep")

	newTitle := "changed"
	err := store.Update(ctx, id+100, UpdateFields{Title: &newTitle})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "keep" {
		t.Errorf("existing task mutated: %q", got.Title)
	}
}

func TestUpdateRejectsInvalidPriority(t *testing.T) {
	store := testStore(t)
	id := mustAdd(t, store, "t")

	bad := types.Priority("urgent")
	err := store.Update(context.Background(), id, UpdateFields{Priority: &bad})
	if !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
}

// --- complete / delete ---

func TestComplete(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	id := mustAdd(t, store, "t")

	if err := store.Complete(ctx, id); err != nil {
		t.Fatal(err)
	}
	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Completed {
		t.Error("expected completed")
	}
}

func TestCompleteMissingID(t *testing.T) {
	store := testStore(t)
	if err := store.Complete(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRemovesFromList(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	keep := mustAdd(t, store, "keep")
	drop := mustAdd(t, store, "drop")

	if err := store.Delete(ctx, drop); err != nil {
		t.Fatal(err)
	}

	tasks, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].ID != keep {
		t.Errorf("wrong task deleted: remaining id %d", tasks[0].ID)
	}

	if _, err := store.Get(ctx, drop); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDeleteMissingID(t *testing.T) {
	store := testStore(t)
	if err := store.Delete(context.Background(), 7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetMissingID(t *testing.T) {
	store := testStore(t)
	if _, err := store.Get(context.Background(), 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
