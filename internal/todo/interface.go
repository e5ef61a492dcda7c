package todo

import (
	"context"

	"todo-assistant/internal/model"
)

// UseCase defines the business logic interface for the task domain.
// Every operation is scoped to the calling user; no call ever touches
// another user's tasks.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateTaskInput) (CreateTaskOutput, error)
	List(ctx context.Context, sc model.Scope, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (DetailTaskOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateTaskInput) (UpdateTaskOutput, error)
	Delete(ctx context.Context, sc model.Scope, id int64) error
	Complete(ctx context.Context, sc model.Scope, id int64) (CompleteTaskOutput, error)
}
