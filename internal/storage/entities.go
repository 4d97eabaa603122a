package storage

import "time"

type Task struct {
	ID        int64
	Owner     string
	Scope     string
	Text      string
	Status    string
	CreatedAt time.Time
}

// TaskListFilter narrows ListTasks. Owner is mandatory; empty Scope or Status
// means "any".
type TaskListFilter struct {
	Owner  string
	Scope  string
	Status string
	Limit  int
	Offset int
}
