// Package nlu maps short freeform chat messages onto structured commands.
//
// Matching is an ordered, first-match-wins walk over a small closed grammar:
// the rule order below is part of the contract, since ambiguous inputs
// ("remove milk from week") resolve differently under a different order.
package nlu

import (
	"regexp"
	"strings"

	"github.com/sandeepkv93/todobot/internal/model"
)

type Intent string

const (
	IntentAdd      Intent = "add"
	IntentList     Intent = "list"
	IntentComplete Intent = "complete"
	IntentDelete   Intent = "delete"
	IntentHelp     Intent = "help"
	IntentUnknown  Intent = "unknown"
)

// Command is the structured form of one chat message. Payload is derived from
// the lower-cased input; original casing is not preserved.
type Command struct {
	Intent  Intent
	Scope   model.Scope
	Payload string
}

const scopePhrase = `today|this week|week|weekly|this month|month|monthly`

var (
	addScopedRe = regexp.MustCompile(`^(?:add|append|put|create|new)\s+(.+?)\s+(?:to\s+)?(?:my\s+)?(` + scopePhrase + `)`)
	addBareRe   = regexp.MustCompile(`^(?:add|append|put|create|new)\s+(.+)$`)
	listRe      = regexp.MustCompile(`^(?:show|list|view|see)(?:\s+my)?\s+(` + scopePhrase + `)?`)
	completeRe  = regexp.MustCompile(`^(?:complete|done|finish|tick|mark)\s+(.+)$`)
	deleteRe    = regexp.MustCompile(`^(?:delete|del|remove|drop|cancel)\s+(.+)$`)
)

// rules are evaluated in order; the first one that matches wins.
var rules = []func(string) (Command, bool){
	matchAdd,
	matchList,
	matchComplete,
	matchDelete,
	matchBareScope,
	matchBareList,
	matchGreeting,
}

// Parse is a pure function: it trims and lower-cases the input, then walks
// the rule list. Unmatched input is not an error and comes back as
// IntentUnknown with the lowered text as payload.
func Parse(text string) Command {
	t := strings.ToLower(strings.TrimSpace(text))
	for _, match := range rules {
		if cmd, ok := match(t); ok {
			return cmd
		}
	}
	return Command{Intent: IntentUnknown, Payload: t}
}

func matchAdd(t string) (Command, bool) {
	if m := addScopedRe.FindStringSubmatch(t); m != nil {
		scope := NormalizeScope(strings.TrimPrefix(m[2], "this "))
		return Command{Intent: IntentAdd, Scope: scope, Payload: m[1]}, true
	}
	if m := addBareRe.FindStringSubmatch(t); m != nil {
		return Command{Intent: IntentAdd, Payload: m[1]}, true
	}
	return Command{}, false
}

func matchList(t string) (Command, bool) {
	m := listRe.FindStringSubmatch(t)
	if m == nil {
		return Command{}, false
	}
	scope := NormalizeScope(strings.TrimPrefix(m[1], "this "))
	return Command{Intent: IntentList, Scope: scope}, true
}

func matchComplete(t string) (Command, bool) {
	if m := completeRe.FindStringSubmatch(t); m != nil {
		return Command{Intent: IntentComplete, Payload: m[1]}, true
	}
	return Command{}, false
}

func matchDelete(t string) (Command, bool) {
	if m := deleteRe.FindStringSubmatch(t); m != nil {
		return Command{Intent: IntentDelete, Payload: m[1]}, true
	}
	return Command{}, false
}

func matchBareScope(t string) (Command, bool) {
	switch t {
	case "today", "week", "weekly", "month", "monthly":
		return Command{Intent: IntentList, Scope: NormalizeScope(t)}, true
	default:
		return Command{}, false
	}
}

func matchBareList(t string) (Command, bool) {
	switch t {
	case "list", "show", "tasks":
		return Command{Intent: IntentList}, true
	default:
		return Command{}, false
	}
}

func matchGreeting(t string) (Command, bool) {
	switch t {
	case "help", "hi", "hello":
		return Command{Intent: IntentHelp}, true
	default:
		return Command{}, false
	}
}
