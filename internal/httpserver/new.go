package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"todo-assistant/internal/agent"
	"todo-assistant/internal/chat"
	"todo-assistant/internal/conversation"
	"todo-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	chatUC          chat.UseCase
	convLog         conversation.Log
	registry        *agent.ToolRegistry
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ChatUseCase     chat.UseCase
	ConversationLog conversation.Log
	ToolRegistry    *agent.ToolRegistry
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		chatUC:          cfg.ChatUseCase,
		convLog:         cfg.ConversationLog,
		registry:        cfg.ToolRegistry,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat usecase is required")
	}
	if srv.convLog == nil {
		return errors.New("conversation log is required")
	}
	if srv.registry == nil {
		return errors.New("tool registry is required")
	}
	return nil
}
