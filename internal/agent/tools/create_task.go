package tools

import (
	"context"
	"fmt"

	"todo-assistant/internal/agent"
	"todo-assistant/internal/todo"
)

// CreateTaskTool adds a task to the user's list.
type CreateTaskTool struct {
	uc todo.UseCase
}

// NewCreateTaskTool creates a new create task tool.
func NewCreateTaskTool(uc todo.UseCase) agent.Tool {
	return &CreateTaskTool{uc: uc}
}

func (t *CreateTaskTool) Name() string {
	return "create_task"
}

func (t *CreateTaskTool) Description() string {
	return "Create a new task on the user's todo list. Returns the created task with its assigned ID."
}

func (t *CreateTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"user_id": userIDSchema(),
			"title": map[string]interface{}{
				"type":        "string",
				"description": "Short task title",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "Optional longer description",
			},
		},
		"required": []string{"user_id", "title"},
	}
}

func (t *CreateTaskTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sc, err := scopeFromParams(params)
	if err != nil {
		return nil, err
	}

	title, ok := params["title"].(string)
	if !ok || title == "" {
		return nil, fmt.Errorf("title parameter is required")
	}
	description, _ := params["description"].(string)

	output, err := t.uc.Create(ctx, sc, todo.CreateTaskInput{
		Title:       title,
		Description: description,
	})
	if err != nil {
		return nil, fmt.Errorf("create task failed: %w", err)
	}

	return formatTask(output.Task), nil
}
