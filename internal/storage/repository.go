package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Repository owns durable task state. Every operation is scoped to a single
// owner; tasks are never visible across owners. The mutating Complete/Delete
// variants are single conditional statements, so a concurrent double submit
// resolves to exactly one applied mutation (the loser reports zero rows).
type Repository interface {
	CreateTask(ctx context.Context, in Task) (int64, error)
	GetTask(ctx context.Context, owner string, id int64) (Task, error)
	ListTasks(ctx context.Context, filter TaskListFilter) ([]Task, error)
	CountTasks(ctx context.Context, owner string) (int64, error)

	CompleteTaskByID(ctx context.Context, owner string, id int64) (int64, error)
	CompleteTaskMatching(ctx context.Context, owner, fragment string) (int64, error)
	DeleteTaskByID(ctx context.Context, owner string, id int64) (int64, error)
	DeleteTaskMatching(ctx context.Context, owner, fragment string) (int64, error)
}
