package tools

import (
	"context"
	"fmt"

	"todo-assistant/internal/agent"
	"todo-assistant/internal/todo"
)

// DeleteTaskTool removes a task permanently.
type DeleteTaskTool struct {
	uc todo.UseCase
}

// NewDeleteTaskTool creates a new delete task tool.
func NewDeleteTaskTool(uc todo.UseCase) agent.Tool {
	return &DeleteTaskTool{uc: uc}
}

func (t *DeleteTaskTool) Name() string {
	return "delete_task"
}

func (t *DeleteTaskTool) Description() string {
	return "Delete a task by its numeric ID. This cannot be undone."
}

func (t *DeleteTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"user_id": userIDSchema(),
			"task_id": taskIDSchema(),
		},
		"required": []string{"user_id", "task_id"},
	}
}

func (t *DeleteTaskTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sc, err := scopeFromParams(params)
	if err != nil {
		return nil, err
	}
	id, err := taskIDFromParams(params)
	if err != nil {
		return nil, err
	}

	if err := t.uc.Delete(ctx, sc, id); err != nil {
		return nil, fmt.Errorf("delete task failed: %w", err)
	}

	return map[string]interface{}{
		"deleted": true,
		"task_id": id,
	}, nil
}
