package tools

import (
	"context"
	"fmt"

	"todo-assistant/internal/agent"
	"todo-assistant/internal/todo"
)

// GetTaskTool fetches one task by ID.
type GetTaskTool struct {
	uc todo.UseCase
}

// NewGetTaskTool creates a new get task tool.
func NewGetTaskTool(uc todo.UseCase) agent.Tool {
	return &GetTaskTool{uc: uc}
}

func (t *GetTaskTool) Name() string {
	return "get_task"
}

func (t *GetTaskTool) Description() string {
	return "Get a single task by its numeric ID."
}

func (t *GetTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"user_id": userIDSchema(),
			"task_id": taskIDSchema(),
		},
		"required": []string{"user_id", "task_id"},
	}
}

func (t *GetTaskTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sc, err := scopeFromParams(params)
	if err != nil {
		return nil, err
	}
	id, err := taskIDFromParams(params)
	if err != nil {
		return nil, err
	}

	output, err := t.uc.Detail(ctx, sc, id)
	if err != nil {
		return nil, fmt.Errorf("get task failed: %w", err)
	}

	return formatTask(output.Task), nil
}
