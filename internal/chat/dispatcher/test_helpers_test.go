package dispatcher

import (
	"context"

	"todo-assistant/internal/model"
	"todo-assistant/internal/todo"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockTaskUC counts mutating calls and delegates to configurable funcs.
type mockTaskUC struct {
	mutations int
	reads     int

	createFunc   func(todo.CreateTaskInput) (todo.CreateTaskOutput, error)
	listFunc     func(todo.ListTasksInput) (todo.ListTasksOutput, error)
	detailFunc   func(int64) (todo.DetailTaskOutput, error)
	updateFunc   func(todo.UpdateTaskInput) (todo.UpdateTaskOutput, error)
	deleteFunc   func(int64) error
	completeFunc func(int64) (todo.CompleteTaskOutput, error)
}

func (m *mockTaskUC) Create(ctx context.Context, sc model.Scope, input todo.CreateTaskInput) (todo.CreateTaskOutput, error) {
	m.mutations++
	if m.createFunc != nil {
		return m.createFunc(input)
	}
	return todo.CreateTaskOutput{Task: todo.Task{ID: 1, Title: input.Title}}, nil
}

func (m *mockTaskUC) List(ctx context.Context, sc model.Scope, input todo.ListTasksInput) (todo.ListTasksOutput, error) {
	m.reads++
	if m.listFunc != nil {
		return m.listFunc(input)
	}
	return todo.ListTasksOutput{}, nil
}

func (m *mockTaskUC) Detail(ctx context.Context, sc model.Scope, id int64) (todo.DetailTaskOutput, error) {
	m.reads++
	if m.detailFunc != nil {
		return m.detailFunc(id)
	}
	return todo.DetailTaskOutput{Task: todo.Task{ID: id, Title: "existing"}}, nil
}

func (m *mockTaskUC) Update(ctx context.Context, sc model.Scope, input todo.UpdateTaskInput) (todo.UpdateTaskOutput, error) {
	m.mutations++
	if m.updateFunc != nil {
		return m.updateFunc(input)
	}
	return todo.UpdateTaskOutput{Task: todo.Task{ID: input.ID, Title: input.Title}}, nil
}

func (m *mockTaskUC) Delete(ctx context.Context, sc model.Scope, id int64) error {
	m.mutations++
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

func (m *mockTaskUC) Complete(ctx context.Context, sc model.Scope, id int64) (todo.CompleteTaskOutput, error) {
	m.mutations++
	if m.completeFunc != nil {
		return m.completeFunc(id)
	}
	return todo.CompleteTaskOutput{Task: todo.Task{ID: id, Title: "existing", Completed: true}}, nil
}
