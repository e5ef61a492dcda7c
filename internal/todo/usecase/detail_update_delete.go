package usecase

import (
	"context"
	"errors"

	"todo-assistant/internal/model"
	"todo-assistant/internal/todo"
	repo "todo-assistant/internal/todo/repository"
)

// Detail retrieves a single task by ID. Returns ErrTaskNotFound when the
// user owns no task with that ID.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (todo.DetailTaskOutput, error) {
	task, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{UserID: sc.UserID, ID: id})
	if err != nil {
		if !errors.Is(err, todo.ErrTaskNotFound) {
			uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		}
		return todo.DetailTaskOutput{}, err
	}
	return todo.DetailTaskOutput{Task: task}, nil
}

// Update modifies an existing task. Empty fields keep their current value.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input todo.UpdateTaskInput) (todo.UpdateTaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{UserID: sc.UserID, ID: input.ID})
	if err != nil {
		if !errors.Is(err, todo.ErrTaskNotFound) {
			uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		}
		return todo.UpdateTaskOutput{}, err
	}

	task, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		UserID:      sc.UserID,
		ID:          input.ID,
		Title:       coalesce(input.Title, existing.Title),
		Description: coalesce(input.Description, existing.Description),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return todo.UpdateTaskOutput{}, err
	}
	return todo.UpdateTaskOutput{Task: task}, nil
}

// Delete removes a task by ID. Hard delete, no tombstone.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	if err := uc.repo.DeleteTask(ctx, sc.UserID, id); err != nil {
		if !errors.Is(err, todo.ErrTaskNotFound) {
			uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		}
		return err
	}
	return nil
}

// Complete marks a task as done.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, id int64) (todo.CompleteTaskOutput, error) {
	completed := true
	task, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		UserID:    sc.UserID,
		ID:        id,
		Completed: &completed,
	})
	if err != nil {
		if !errors.Is(err, todo.ErrTaskNotFound) {
			uc.l.Errorf(ctx, "uc.Complete UpdateTask: %v", err)
		}
		return todo.CompleteTaskOutput{}, err
	}
	return todo.CompleteTaskOutput{Task: task}, nil
}
