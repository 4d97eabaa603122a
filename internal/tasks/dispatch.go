package tasks

import (
	"context"
	"fmt"

	"github.com/sandeepkv93/todobot/internal/model"
	"github.com/sandeepkv93/todobot/internal/nlu"
)

type OutcomeKind string

const (
	OutcomeAdded     OutcomeKind = "added"
	OutcomeListed    OutcomeKind = "listed"
	OutcomeCompleted OutcomeKind = "completed"
	OutcomeDeleted   OutcomeKind = "deleted"
	OutcomeHelp      OutcomeKind = "help"
	OutcomeUnknown   OutcomeKind = "unknown"
)

// Outcome is the structured result of one dispatched command. It carries
// plain data only; rendering a user-facing string is the formatter's job.
type Outcome struct {
	Kind    OutcomeKind
	Task    model.Task
	Tasks   []model.Task
	Count   int64
	Scope   model.Scope
	Payload string
}

// Dispatch executes a parsed command against one owner's tasks. Unknown
// intents and unresolved references come back as outcomes, not errors; only
// storage failures surface as errors.
func (s *Service) Dispatch(ctx context.Context, owner string, cmd nlu.Command) (Outcome, error) {
	switch cmd.Intent {
	case nlu.IntentAdd:
		task, err := s.Add(ctx, owner, cmd.Scope, cmd.Payload)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Kind: OutcomeAdded, Task: task, Scope: cmd.Scope}, nil
	case nlu.IntentList:
		items, err := s.List(ctx, owner, cmd.Scope)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Kind: OutcomeListed, Tasks: items, Scope: cmd.Scope}, nil
	case nlu.IntentComplete:
		count, err := s.Complete(ctx, owner, cmd.Payload)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Kind: OutcomeCompleted, Count: count, Payload: cmd.Payload}, nil
	case nlu.IntentDelete:
		count, err := s.Delete(ctx, owner, cmd.Payload)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Kind: OutcomeDeleted, Count: count, Payload: cmd.Payload}, nil
	case nlu.IntentHelp:
		return Outcome{Kind: OutcomeHelp}, nil
	case nlu.IntentUnknown:
		return Outcome{Kind: OutcomeUnknown, Payload: cmd.Payload}, nil
	default:
		return Outcome{}, fmt.Errorf("tasks: unsupported intent %q", cmd.Intent)
	}
}
