package tools

import (
	"context"
	"fmt"

	"todo-assistant/internal/agent"
	"todo-assistant/internal/todo"
)

// ListTasksTool returns the user's tasks, optionally filtered by status.
type ListTasksTool struct {
	uc todo.UseCase
}

// NewListTasksTool creates a new list tasks tool.
func NewListTasksTool(uc todo.UseCase) agent.Tool {
	return &ListTasksTool{uc: uc}
}

func (t *ListTasksTool) Name() string {
	return "list_tasks"
}

func (t *ListTasksTool) Description() string {
	return "List the user's tasks. Filter by status: all, pending, or completed."
}

func (t *ListTasksTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"user_id": userIDSchema(),
			"filter": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"all", "pending", "completed"},
				"description": "Status filter (default all)",
			},
		},
		"required": []string{"user_id"},
	}
}

func (t *ListTasksTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sc, err := scopeFromParams(params)
	if err != nil {
		return nil, err
	}

	filter := todo.FilterAll
	if f, ok := params["filter"].(string); ok && f != "" {
		filter = todo.Filter(f)
		if !filter.Valid() {
			return nil, fmt.Errorf("unknown filter %q", f)
		}
	}

	output, err := t.uc.List(ctx, sc, todo.ListTasksInput{Filter: filter})
	if err != nil {
		return nil, fmt.Errorf("list tasks failed: %w", err)
	}

	tasks := make([]map[string]interface{}, 0, len(output.Tasks))
	for _, task := range output.Tasks {
		tasks = append(tasks, formatTask(task))
	}

	return map[string]interface{}{
		"total": output.Total,
		"tasks": tasks,
	}, nil
}
