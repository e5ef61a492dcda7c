package tools

import (
	"context"
	"fmt"

	"todo-assistant/internal/agent"
	"todo-assistant/internal/todo"
)

// CompleteTaskTool marks a task as done.
type CompleteTaskTool struct {
	uc todo.UseCase
}

// NewCompleteTaskTool creates a new complete task tool.
func NewCompleteTaskTool(uc todo.UseCase) agent.Tool {
	return &CompleteTaskTool{uc: uc}
}

func (t *CompleteTaskTool) Name() string {
	return "complete_task"
}

func (t *CompleteTaskTool) Description() string {
	return "Mark a task as completed by its numeric ID."
}

func (t *CompleteTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"user_id": userIDSchema(),
			"task_id": taskIDSchema(),
		},
		"required": []string{"user_id", "task_id"},
	}
}

func (t *CompleteTaskTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sc, err := scopeFromParams(params)
	if err != nil {
		return nil, err
	}
	id, err := taskIDFromParams(params)
	if err != nil {
		return nil, err
	}

	output, err := t.uc.Complete(ctx, sc, id)
	if err != nil {
		return nil, fmt.Errorf("complete task failed: %w", err)
	}

	return formatTask(output.Task), nil
}
