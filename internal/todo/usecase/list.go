package usecase

import (
	"context"

	"todo-assistant/internal/model"
	"todo-assistant/internal/todo"
	repo "todo-assistant/internal/todo/repository"
)

// List returns the user's tasks matching the filter, ordered by ID.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input todo.ListTasksInput) (todo.ListTasksOutput, error) {
	filter := input.Filter
	if filter == "" {
		filter = todo.FilterAll
	}
	if !filter.Valid() {
		return todo.ListTasksOutput{}, todo.ErrInvalidFilter
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID: sc.UserID,
		Filter: filter,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return todo.ListTasksOutput{}, err
	}

	return todo.ListTasksOutput{Tasks: tasks, Total: total}, nil
}
