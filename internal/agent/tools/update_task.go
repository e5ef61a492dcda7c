package tools

import (
	"context"
	"fmt"

	"todo-assistant/internal/agent"
	"todo-assistant/internal/todo"
)

// UpdateTaskTool changes a task's title or description.
type UpdateTaskTool struct {
	uc todo.UseCase
}

// NewUpdateTaskTool creates a new update task tool.
func NewUpdateTaskTool(uc todo.UseCase) agent.Tool {
	return &UpdateTaskTool{uc: uc}
}

func (t *UpdateTaskTool) Name() string {
	return "update_task"
}

func (t *UpdateTaskTool) Description() string {
	return "Update a task's title and/or description. Omitted fields keep their current value."
}

func (t *UpdateTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"user_id": userIDSchema(),
			"task_id": taskIDSchema(),
			"title": map[string]interface{}{
				"type":        "string",
				"description": "New task title",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "New task description",
			},
		},
		"required": []string{"user_id", "task_id"},
	}
}

func (t *UpdateTaskTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sc, err := scopeFromParams(params)
	if err != nil {
		return nil, err
	}
	id, err := taskIDFromParams(params)
	if err != nil {
		return nil, err
	}

	title, _ := params["title"].(string)
	description, _ := params["description"].(string)
	if title == "" && description == "" {
		return nil, fmt.Errorf("at least one of title or description is required")
	}

	output, err := t.uc.Update(ctx, sc, todo.UpdateTaskInput{
		ID:          id,
		Title:       title,
		Description: description,
	})
	if err != nil {
		return nil, fmt.Errorf("update task failed: %w", err)
	}

	return formatTask(output.Task), nil
}
