package tools

import (
	"fmt"

	"todo-assistant/internal/model"
	"todo-assistant/internal/todo"
)

// scopeFromParams builds the per-user scope from the mandatory user_id
// parameter. Every tool is user-scoped; a missing user_id is an error, not
// a fallback to some shared scope.
func scopeFromParams(params map[string]interface{}) (model.Scope, error) {
	userID, ok := params["user_id"].(string)
	if !ok || userID == "" {
		return model.Scope{}, fmt.Errorf("user_id parameter is required")
	}
	return model.Scope{UserID: userID}, nil
}

// taskIDFromParams extracts the task_id parameter. JSON numbers decode as
// float64.
func taskIDFromParams(params map[string]interface{}) (int64, error) {
	switch v := params["task_id"].(type) {
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	}
	return 0, fmt.Errorf("task_id parameter is required")
}

// formatTask shapes a task for LLM consumption.
func formatTask(t todo.Task) map[string]interface{} {
	return map[string]interface{}{
		"id":          t.ID,
		"title":       t.Title,
		"description": t.Description,
		"completed":   t.Completed,
		"created_at":  t.CreatedAt,
		"updated_at":  t.UpdatedAt,
	}
}

// userIDSchema is the shared user_id parameter schema.
func userIDSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "ID of the user whose tasks are operated on",
	}
}

// taskIDSchema is the shared task_id parameter schema.
func taskIDSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Numeric ID of the task",
	}
}
