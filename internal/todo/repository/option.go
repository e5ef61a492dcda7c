package repository

import "todo-assistant/internal/todo"

// CreateTaskOptions holds parameters for inserting a new task.
type CreateTaskOptions struct {
	UserID      string
	Title       string
	Description string
}

// GetOneTaskOptions holds filter parameters for fetching a single task.
type GetOneTaskOptions struct {
	UserID string
	ID     int64
}

// ListTasksOptions holds filter parameters for listing tasks.
// Tasks are returned ordered by ID ascending.
type ListTasksOptions struct {
	UserID string
	Filter todo.Filter
}

// UpdateTaskOptions holds parameters for updating an existing task.
// Completed is a pointer so "no change" and "set false" are distinct.
type UpdateTaskOptions struct {
	UserID      string
	ID          int64
	Title       string
	Description string
	Completed   *bool
}
