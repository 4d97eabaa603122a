package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidScope  = errors.New("model: invalid task scope")
	ErrInvalidStatus = errors.New("model: invalid task status")
)

type Scope string

const (
	ScopeNone  Scope = ""
	ScopeToday Scope = "today"
	ScopeWeek  Scope = "week"
	ScopeMonth Scope = "month"
)

func (s Scope) IsValid() bool {
	switch s {
	case ScopeNone, ScopeToday, ScopeWeek, ScopeMonth:
		return true
	default:
		return false
	}
}

// IsSet reports whether the scope names a concrete time bucket.
func (s Scope) IsSet() bool {
	return s != ScopeNone
}

type Status string

const (
	StatusOpen Status = "open"
	StatusDone Status = "done"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusDone:
		return true
	default:
		return false
	}
}

// Task is one to-do item belonging to one owner. IDs are assigned by the
// store and never reused. Owner, Scope and Text are immutable after creation;
// Status only ever moves open -> done.
type Task struct {
	ID        int64
	Owner     string
	Scope     Scope
	Text      string
	Status    Status
	CreatedAt time.Time
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Owner) == "" {
		return errors.New("model: task owner is required")
	}
	if strings.TrimSpace(t.Text) == "" {
		return errors.New("model: task text is required")
	}
	if !t.Scope.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidScope, t.Scope)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	return nil
}
