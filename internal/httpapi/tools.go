package httpapi

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/sandeepkv93/todobot/internal/nlu"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

// tool is one structured operation callers can invoke without going through
// the chat parser. Arguments are validated against the embedded JSON schema
// before the handler runs.
type tool struct {
	name        string
	description string
	rawSchema   json.RawMessage
	schema      *jsonschema.Schema
}

var toolDescriptions = map[string]string{
	"add_task":      "Create a task for an owner, optionally scoped to today, week or month.",
	"list_tasks":    "List an owner's open tasks, newest first, optionally filtered by scope.",
	"complete_task": "Mark one task done, referenced by numeric id or a text fragment.",
	"delete_task":   "Remove one task, referenced by numeric id or a text fragment.",
}

var toolOrder = []string{"add_task", "list_tasks", "complete_task", "delete_task"}

func loadTools() ([]*tool, error) {
	compiler := jsonschema.NewCompiler()
	out := make([]*tool, 0, len(toolOrder))
	for _, name := range toolOrder {
		raw, err := schemaFiles.ReadFile("schemas/" + name + ".json")
		if err != nil {
			return nil, fmt.Errorf("read schema for %s: %w", name, err)
		}
		if err := compiler.AddResource(name+".json", bytes.NewReader(raw)); err != nil {
			return nil, fmt.Errorf("add schema for %s: %w", name, err)
		}
		compiled, err := compiler.Compile(name + ".json")
		if err != nil {
			return nil, fmt.Errorf("compile schema for %s: %w", name, err)
		}
		out = append(out, &tool{
			name:        name,
			description: toolDescriptions[name],
			rawSchema:   json.RawMessage(raw),
			schema:      compiled,
		})
	}
	return out, nil
}

func (s *Server) findTool(name string) *tool {
	for _, t := range s.tools {
		if t.name == name {
			return t
		}
	}
	return nil
}

func (s *Server) handleListTools(c *fiber.Ctx) error {
	infos := make([]toolInfo, 0, len(s.tools))
	for _, t := range s.tools {
		var schema any
		if err := json.Unmarshal(t.rawSchema, &schema); err != nil {
			s.log.Error("tool schema unreadable", "tool", t.name, "err", err)
			return internalError(c)
		}
		infos = append(infos, toolInfo{Name: t.name, Description: t.description, Schema: schema})
	}
	return c.JSON(infos)
}

func (s *Server) handleToolCall(c *fiber.Ctx) error {
	name := c.Params("name")
	t := s.findTool(name)
	if t == nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "unknown_tool",
			Message: fmt.Sprintf("No such tool: %s", name),
		})
	}

	body := c.Body()
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Request body is not valid JSON",
		})
	}
	if err := t.schema.Validate(decoded); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
	}

	switch name {
	case "add_task":
		return s.toolAddTask(c, body)
	case "list_tasks":
		return s.toolListTasks(c, body)
	case "complete_task":
		return s.toolCompleteTask(c, body)
	case "delete_task":
		return s.toolDeleteTask(c, body)
	default:
		return internalError(c)
	}
}

func (s *Server) toolAddTask(c *fiber.Ctx, body []byte) error {
	var args addTaskArgs
	if err := json.Unmarshal(body, &args); err != nil {
		return internalError(c)
	}
	task, err := s.svc.Add(c.UserContext(), args.Owner, nlu.NormalizeScope(args.Scope), args.Text)
	if err != nil {
		s.log.Error("add_task failed", "err", err)
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(addTaskResult{Task: taskJSON(task)})
}

func (s *Server) toolListTasks(c *fiber.Ctx, body []byte) error {
	var args listTasksArgs
	if err := json.Unmarshal(body, &args); err != nil {
		return internalError(c)
	}
	items, err := s.svc.List(c.UserContext(), args.Owner, nlu.NormalizeScope(args.Scope))
	if err != nil {
		s.log.Error("list_tasks failed", "err", err)
		return internalError(c)
	}
	out := make([]TaskJSON, 0, len(items))
	for _, item := range items {
		out = append(out, taskJSON(item))
	}
	return c.JSON(listTasksResult{Tasks: out, Count: len(out)})
}

func (s *Server) toolCompleteTask(c *fiber.Ctx, body []byte) error {
	var args completeTaskArgs
	if err := json.Unmarshal(body, &args); err != nil {
		return internalError(c)
	}
	count, err := s.svc.Complete(c.UserContext(), args.Owner, args.Reference)
	if err != nil {
		s.log.Error("complete_task failed", "err", err)
		return internalError(c)
	}
	return c.JSON(completeTaskResult{Completed: count})
}

func (s *Server) toolDeleteTask(c *fiber.Ctx, body []byte) error {
	var args completeTaskArgs
	if err := json.Unmarshal(body, &args); err != nil {
		return internalError(c)
	}
	count, err := s.svc.Delete(c.UserContext(), args.Owner, args.Reference)
	if err != nil {
		s.log.Error("delete_task failed", "err", err)
		return internalError(c)
	}
	return c.JSON(deleteTaskResult{Deleted: count})
}
