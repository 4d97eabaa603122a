package httpapi

import (
	"time"

	"github.com/sandeepkv93/todobot/internal/model"
)

// WebhookRequest is the generic inbound chat message: who said what.
// Provider-specific envelopes and signatures are the adapter caller's
// problem, not this service's.
type WebhookRequest struct {
	From string `json:"from"`
	Text string `json:"text"`
}

type WebhookResponse struct {
	Status string `json:"status"`
	Reply  string `json:"reply"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type TaskJSON struct {
	ID        int64     `json:"id"`
	Owner     string    `json:"owner"`
	Scope     string    `json:"scope,omitempty"`
	Text      string    `json:"text"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func taskJSON(t model.Task) TaskJSON {
	return TaskJSON{
		ID:        t.ID,
		Owner:     t.Owner,
		Scope:     string(t.Scope),
		Text:      t.Text,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
	}
}

type addTaskArgs struct {
	Owner string `json:"owner"`
	Scope string `json:"scope"`
	Text  string `json:"text"`
}

type addTaskResult struct {
	Task TaskJSON `json:"task"`
}

type listTasksArgs struct {
	Owner string `json:"owner"`
	Scope string `json:"scope"`
}

type listTasksResult struct {
	Tasks []TaskJSON `json:"tasks"`
	Count int        `json:"count"`
}

type completeTaskArgs struct {
	Owner     string `json:"owner"`
	Reference string `json:"reference"`
}

type completeTaskResult struct {
	Completed int64 `json:"completed"`
}

type deleteTaskResult struct {
	Deleted int64 `json:"deleted"`
}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Schema      any    `json:"schema"`
}
