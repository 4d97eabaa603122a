package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "todobot-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	return repo
}

func addTask(t *testing.T, repo *SQLiteRepository, owner, scope, text string) int64 {
	t.Helper()
	id, err := repo.CreateTask(context.Background(), Task{
		Owner:     owner,
		Scope:     scope,
		Text:      text,
		Status:    "open",
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create task %q: %v", text, err)
	}
	return id
}

func TestCreateAndListRoundTrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	id := addTask(t, repo, "owner-a", "today", "buy milk")
	if id == 0 {
		t.Fatal("expected non-zero id")
	}

	got, err := repo.GetTask(ctx, "owner-a", id)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.Text != "buy milk" || got.Scope != "today" || got.Status != "open" {
		t.Fatalf("unexpected task: %#v", got)
	}

	tasks, err := repo.ListTasks(ctx, TaskListFilter{Owner: "owner-a", Scope: "today", Status: "open"})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != id {
		t.Fatalf("unexpected list: %#v", tasks)
	}
}

func TestListOrdersByIDDescending(t *testing.T) {
	repo := setupRepo(t)
	first := addTask(t, repo, "owner-a", "week", "first")
	second := addTask(t, repo, "owner-a", "week", "second")
	third := addTask(t, repo, "owner-a", "today", "third")

	tasks, err := repo.ListTasks(context.Background(), TaskListFilter{Owner: "owner-a", Status: "open"})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != third || tasks[1].ID != second || tasks[2].ID != first {
		t.Fatalf("unexpected order: %#v", tasks)
	}
}

func TestListNeverCrossesOwners(t *testing.T) {
	repo := setupRepo(t)
	addTask(t, repo, "owner-a", "today", "buy milk")
	addTask(t, repo, "owner-b", "today", "buy milk")

	tasks, err := repo.ListTasks(context.Background(), TaskListFilter{Owner: "owner-a", Status: "open"})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	for _, task := range tasks {
		if task.Owner != "owner-a" {
			t.Fatalf("leaked task from another owner: %#v", task)
		}
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task for owner-a, got %d", len(tasks))
	}
}

func TestListEmptyIsNotAnError(t *testing.T) {
	repo := setupRepo(t)
	tasks, err := repo.ListTasks(context.Background(), TaskListFilter{Owner: "nobody", Status: "open"})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected empty list, got %#v", tasks)
	}
}

func TestCompleteByIDIsSingleShot(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	id := addTask(t, repo, "owner-a", "today", "buy milk")

	count, err := repo.CompleteTaskByID(ctx, "owner-a", id)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row, got %d", count)
	}

	// Already done: the conditional update must report zero, not re-apply.
	count, err = repo.CompleteTaskByID(ctx, "owner-a", id)
	if err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 rows on second complete, got %d", count)
	}

	open, err := repo.ListTasks(ctx, TaskListFilter{Owner: "owner-a", Status: "open"})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(open) != 0 {
		t.Fatalf("completed task still listed as open: %#v", open)
	}
}

func TestCompleteByIDChecksOwner(t *testing.T) {
	repo := setupRepo(t)
	id := addTask(t, repo, "owner-a", "today", "buy milk")

	count, err := repo.CompleteTaskByID(context.Background(), "owner-b", id)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if count != 0 {
		t.Fatalf("cross-owner complete applied %d rows", count)
	}
}

func TestCompleteMatchingPicksLowestID(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	first := addTask(t, repo, "owner-a", "today", "buy milk")
	addTask(t, repo, "owner-a", "week", "buy milk powder")

	count, err := repo.CompleteTaskMatching(ctx, "owner-a", "MILK")
	if err != nil {
		t.Fatalf("complete matching: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row, got %d", count)
	}

	done, err := repo.GetTask(ctx, "owner-a", first)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if done.Status != "done" {
		t.Fatalf("expected lowest-id task completed, got %#v", done)
	}
}

func TestCompleteMatchingSkipsDoneTasks(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	first := addTask(t, repo, "owner-a", "today", "buy milk")
	second := addTask(t, repo, "owner-a", "week", "buy milk powder")

	if _, err := repo.CompleteTaskByID(ctx, "owner-a", first); err != nil {
		t.Fatalf("complete first: %v", err)
	}

	count, err := repo.CompleteTaskMatching(ctx, "owner-a", "milk")
	if err != nil {
		t.Fatalf("complete matching: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row, got %d", count)
	}
	remaining, err := repo.GetTask(ctx, "owner-a", second)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if remaining.Status != "done" {
		t.Fatalf("expected second task completed, got %#v", remaining)
	}
}

func TestDeleteMatchingRemovesRow(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	id := addTask(t, repo, "owner-a", "today", "call the dentist")

	count, err := repo.DeleteTaskMatching(ctx, "owner-a", "dentist")
	if err != nil {
		t.Fatalf("delete matching: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row, got %d", count)
	}
	if _, err := repo.GetTask(ctx, "owner-a", id); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestNoMatchReportsZeroAndLeavesStoreUnchanged(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	addTask(t, repo, "owner-a", "today", "buy milk")

	before, err := repo.CountTasks(ctx, "owner-a")
	if err != nil {
		t.Fatalf("count tasks: %v", err)
	}

	if count, err := repo.DeleteTaskMatching(ctx, "owner-a", "nonexistent"); err != nil || count != 0 {
		t.Fatalf("delete matching = (%d, %v), want (0, nil)", count, err)
	}
	if count, err := repo.DeleteTaskByID(ctx, "owner-a", 9999); err != nil || count != 0 {
		t.Fatalf("delete by id = (%d, %v), want (0, nil)", count, err)
	}
	if count, err := repo.CompleteTaskByID(ctx, "owner-a", 9999); err != nil || count != 0 {
		t.Fatalf("complete by id = (%d, %v), want (0, nil)", count, err)
	}

	after, err := repo.CountTasks(ctx, "owner-a")
	if err != nil {
		t.Fatalf("count tasks: %v", err)
	}
	if after != before {
		t.Fatalf("row count changed: %d -> %d", before, after)
	}
}

func TestIDsAreNeverReused(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	first := addTask(t, repo, "owner-a", "today", "buy milk")
	if _, err := repo.DeleteTaskByID(ctx, "owner-a", first); err != nil {
		t.Fatalf("delete: %v", err)
	}
	second := addTask(t, repo, "owner-a", "today", "buy bread")
	if second <= first {
		t.Fatalf("id %d reused or not increasing after %d", second, first)
	}
}
