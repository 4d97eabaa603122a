package model

import (
	"errors"
	"testing"
	"time"
)

func validTask() Task {
	return Task{
		ID:        1,
		Owner:     "15551230001",
		Scope:     ScopeToday,
		Text:      "buy milk",
		Status:    StatusOpen,
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestValidateAcceptsWellFormedTask(t *testing.T) {
	if err := validTask().Validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
}

func TestValidateAcceptsUnscopedTask(t *testing.T) {
	task := validTask()
	task.Scope = ScopeNone
	if err := task.Validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
}

func TestValidateRejectsBadFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Task)
		want   error
	}{
		{"empty owner", func(task *Task) { task.Owner = "  " }, nil},
		{"empty text", func(task *Task) { task.Text = "\t" }, nil},
		{"bad scope", func(task *Task) { task.Scope = "someday" }, ErrInvalidScope},
		{"bad status", func(task *Task) { task.Status = "pending" }, ErrInvalidStatus},
		{"zero created_at", func(task *Task) { task.CreatedAt = time.Time{} }, nil},
	}

	for _, tc := range cases {
		task := validTask()
		tc.mutate(&task)
		err := task.Validate()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if tc.want != nil && !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestScopeAndStatusValidity(t *testing.T) {
	for _, s := range []Scope{ScopeNone, ScopeToday, ScopeWeek, ScopeMonth} {
		if !s.IsValid() {
			t.Fatalf("scope %q should be valid", s)
		}
	}
	if Scope("tomorrow").IsValid() {
		t.Fatal("scope \"tomorrow\" should be invalid")
	}
	if ScopeNone.IsSet() {
		t.Fatal("none scope should not be set")
	}
	if !ScopeWeek.IsSet() {
		t.Fatal("week scope should be set")
	}
	if !StatusOpen.IsValid() || !StatusDone.IsValid() || Status("archived").IsValid() {
		t.Fatal("status validity mismatch")
	}
}
