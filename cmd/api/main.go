package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo-assistant/config"
	_ "todo-assistant/docs" // Swagger docs
	"todo-assistant/internal/agent"
	"todo-assistant/internal/agent/tools"
	"todo-assistant/internal/chat/composer"
	"todo-assistant/internal/chat/dispatcher"
	"todo-assistant/internal/chat/resolver"
	"todo-assistant/internal/chat/router"
	chatUC "todo-assistant/internal/chat/usecase"
	convMemory "todo-assistant/internal/conversation/memory"
	"todo-assistant/internal/httpserver"
	todoMemory "todo-assistant/internal/todo/repository/memory"
	todoUC "todo-assistant/internal/todo/usecase"
	"todo-assistant/pkg/llmprovider"
	"todo-assistant/pkg/log"
)

// @title       Todo Assistant API
// @description Conversational todo management: natural-language chat turns dispatched to task operations.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Todo Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	taskRepo := todoMemory.New()
	taskUseCase := todoUC.New(taskRepo, logger)
	convLog := convMemory.New()

	// 4. LLM providers (optional: the rule layer answers without them)
	var llm router.LLM
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "LLM providers unavailable, running rule-only: %v", err)
	} else {
		manager := llmprovider.NewManager(providers, managerConfig(cfg), logger)
		llm = manager
		logger.Infof(ctx, "LLM providers initialized: %d", len(providers))
	}

	// 5. Agent tools
	registry := agent.NewToolRegistry()
	registry.Register(tools.NewCreateTaskTool(taskUseCase))
	registry.Register(tools.NewListTasksTool(taskUseCase))
	registry.Register(tools.NewGetTaskTool(taskUseCase))
	registry.Register(tools.NewUpdateTaskTool(taskUseCase))
	registry.Register(tools.NewCompleteTaskTool(taskUseCase))
	registry.Register(tools.NewDeleteTaskTool(taskUseCase))

	// 6. Turn engine
	engine := chatUC.New(
		convLog,
		taskUseCase,
		resolver.New(),
		router.New(router.DefaultSynonyms(), llm, logger),
		dispatcher.New(taskUseCase, logger),
		composer.New(),
		cfg.Chat.HistoryLimit,
		logger,
	)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ChatUseCase:     engine,
		ConversationLog: convLog,
		ToolRegistry:    registry,
		RateLimitPerMin: cfg.Chat.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// managerConfig translates duration strings from config into the manager's
// typed config, falling back to safe values on parse errors.
func managerConfig(cfg *config.Config) *llmprovider.Config {
	return &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, 500*time.Millisecond),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 30*time.Second),
	}
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
