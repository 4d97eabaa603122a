// Package reply renders structured task outcomes as plain user-facing text.
// It is deliberately thin: the transports decide how to decorate or deliver
// the string.
package reply

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/todobot/internal/tasks"
)

// HelpText lists the supported message shapes. The console renders it as
// markdown; chat transports send it verbatim.
const HelpText = `Try:
- add buy milk to today
- show today
- complete buy milk
- delete 3 (by id)`

func Format(out tasks.Outcome) string {
	switch out.Kind {
	case tasks.OutcomeAdded:
		if out.Task.Scope.IsSet() {
			return fmt.Sprintf("Added (#%d) to %s: %q", out.Task.ID, out.Task.Scope, out.Task.Text)
		}
		return fmt.Sprintf("Added (#%d): %q", out.Task.ID, out.Task.Text)
	case tasks.OutcomeListed:
		if len(out.Tasks) == 0 {
			scope := "all"
			if out.Scope.IsSet() {
				scope = string(out.Scope)
			}
			return fmt.Sprintf("(empty) No open tasks in %s.", scope)
		}
		lines := make([]string, 0, len(out.Tasks)+1)
		lines = append(lines, "Your tasks:")
		for _, task := range out.Tasks {
			scope := string(task.Scope)
			if scope == "" {
				scope = "-"
			}
			lines = append(lines, fmt.Sprintf("- #%d [%s] %s", task.ID, scope, task.Text))
		}
		return strings.Join(lines, "\n")
	case tasks.OutcomeCompleted:
		if out.Count > 0 {
			return "Marked done."
		}
		return "Couldn't find that task."
	case tasks.OutcomeDeleted:
		if out.Count > 0 {
			return "Deleted."
		}
		return "Couldn't find that task."
	case tasks.OutcomeHelp:
		return HelpText
	default:
		return `Sorry, I didn't get that. Type "help" for examples.`
	}
}
