// Package tasks carries the task-facing logic between the parser and the
// store: validation on add, reference resolution for complete/delete, and
// dispatch of parsed commands.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/todobot/internal/model"
	"github.com/sandeepkv93/todobot/internal/storage"
)

var (
	ErrEmptyText      = errors.New("tasks: task text is empty")
	ErrEmptyOwner     = errors.New("tasks: owner is empty")
	ErrEmptyReference = errors.New("tasks: reference is empty")
)

type Service struct {
	repo storage.Repository
	now  func() time.Time
}

func NewService(repo storage.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Add(ctx context.Context, owner string, scope model.Scope, text string) (model.Task, error) {
	task := model.Task{
		Owner:     strings.TrimSpace(owner),
		Scope:     scope,
		Text:      strings.TrimSpace(text),
		Status:    model.StatusOpen,
		CreatedAt: s.now().UTC(),
	}
	if task.Owner == "" {
		return model.Task{}, ErrEmptyOwner
	}
	if task.Text == "" {
		return model.Task{}, ErrEmptyText
	}
	if err := task.Validate(); err != nil {
		return model.Task{}, err
	}
	id, err := s.repo.CreateTask(ctx, toRecord(task))
	if err != nil {
		return model.Task{}, fmt.Errorf("create task: %w", err)
	}
	task.ID = id
	return task, nil
}

// List returns the owner's open tasks, most recently created first. An
// unset scope means all scopes.
func (s *Service) List(ctx context.Context, owner string, scope model.Scope) ([]model.Task, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, ErrEmptyOwner
	}
	records, err := s.repo.ListTasks(ctx, storage.TaskListFilter{
		Owner:  owner,
		Scope:  string(scope),
		Status: string(model.StatusOpen),
	})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	out := make([]model.Task, 0, len(records))
	for _, rec := range records {
		out = append(out, fromRecord(rec))
	}
	return out, nil
}

// Complete resolves reference against the owner's tasks and marks at most one
// of them done. A zero count means nothing matched; it is not an error.
func (s *Service) Complete(ctx context.Context, owner, reference string) (int64, error) {
	ref := strings.TrimSpace(reference)
	if ref == "" {
		return 0, ErrEmptyReference
	}
	if id, ok := numericReference(ref); ok {
		count, err := s.repo.CompleteTaskByID(ctx, owner, id)
		if err != nil {
			return 0, fmt.Errorf("complete task %d: %w", id, err)
		}
		return count, nil
	}
	count, err := s.repo.CompleteTaskMatching(ctx, owner, ref)
	if err != nil {
		return 0, fmt.Errorf("complete task matching %q: %w", ref, err)
	}
	return count, nil
}

// Delete resolves reference the same way Complete does and removes at most
// one task record.
func (s *Service) Delete(ctx context.Context, owner, reference string) (int64, error) {
	ref := strings.TrimSpace(reference)
	if ref == "" {
		return 0, ErrEmptyReference
	}
	if id, ok := numericReference(ref); ok {
		count, err := s.repo.DeleteTaskByID(ctx, owner, id)
		if err != nil {
			return 0, fmt.Errorf("delete task %d: %w", id, err)
		}
		return count, nil
	}
	count, err := s.repo.DeleteTaskMatching(ctx, owner, ref)
	if err != nil {
		return 0, fmt.Errorf("delete task matching %q: %w", ref, err)
	}
	return count, nil
}

// numericReference reports whether ref consists only of decimal digits, in
// which case it is an exact task id rather than a text fragment.
func numericReference(ref string) (int64, bool) {
	for _, r := range ref {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(ref, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func toRecord(t model.Task) storage.Task {
	return storage.Task{
		ID:        t.ID,
		Owner:     t.Owner,
		Scope:     string(t.Scope),
		Text:      t.Text,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
	}
}

func fromRecord(rec storage.Task) model.Task {
	return model.Task{
		ID:        rec.ID,
		Owner:     rec.Owner,
		Scope:     model.Scope(rec.Scope),
		Text:      rec.Text,
		Status:    model.Status(rec.Status),
		CreatedAt: rec.CreatedAt,
	}
}
