package nlu

import (
	"strings"

	"github.com/sandeepkv93/todobot/internal/model"
)

// NormalizeScope canonicalizes a free-text time-scope token. Synonyms fold
// into the closed scope set; anything unrecognized is dropped to ScopeNone
// rather than treated as an error.
func NormalizeScope(raw string) model.Scope {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "today":
		return model.ScopeToday
	case "week", "weekly":
		return model.ScopeWeek
	case "month", "monthly":
		return model.ScopeMonth
	default:
		return model.ScopeNone
	}
}
