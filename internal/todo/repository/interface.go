package repository

import (
	"context"

	"todo-assistant/internal/todo"
)

// Repository is the task store adapter contract. Implementations own task
// persistence and nothing else; business rules live in the usecase layer.
// All methods are scoped by user ID and must never expose another user's
// tasks. A missing task is reported as todo.ErrTaskNotFound, a backend
// outage as todo.ErrStoreUnavailable.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (todo.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (todo.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]todo.Task, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (todo.Task, error)
	DeleteTask(ctx context.Context, userID string, id int64) error
}
