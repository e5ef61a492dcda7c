package usecase

import (
	"context"
	"strings"

	"todo-assistant/internal/model"
	"todo-assistant/internal/todo"
	repo "todo-assistant/internal/todo/repository"
)

// Create creates a new task for the calling user.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input todo.CreateTaskInput) (todo.CreateTaskOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return todo.CreateTaskOutput{}, todo.ErrEmptyTitle
	}

	task, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:      sc.UserID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return todo.CreateTaskOutput{}, err
	}

	return todo.CreateTaskOutput{Task: task}, nil
}
