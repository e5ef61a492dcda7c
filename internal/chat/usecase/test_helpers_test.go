package usecase

import (
	"context"

	"todo-assistant/internal/chat"
	"todo-assistant/internal/chat/composer"
	"todo-assistant/internal/chat/dispatcher"
	"todo-assistant/internal/chat/resolver"
	"todo-assistant/internal/chat/router"
	convMemory "todo-assistant/internal/conversation/memory"
	todoMemory "todo-assistant/internal/todo/repository/memory"
	todoUC "todo-assistant/internal/todo/usecase"
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

// testEngine wires a full rule-only pipeline over in-memory stores.
type testEngine struct {
	engine    chat.UseCase
	taskStore *todoMemory.Store
	convLog   *convMemory.Log
}

func newTestEngine() *testEngine {
	logger := &mockLogger{}
	taskStore := todoMemory.New()
	taskUseCase := todoUC.New(taskStore, logger)
	convLog := convMemory.New()

	engine := New(
		convLog,
		taskUseCase,
		resolver.New(),
		router.New(nil, nil, logger),
		dispatcher.New(taskUseCase, logger),
		composer.New(),
		10,
		logger,
	)

	return &testEngine{engine: engine, taskStore: taskStore, convLog: convLog}
}
