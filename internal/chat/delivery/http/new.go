package http

import (
	"todo-assistant/internal/agent"
	"todo-assistant/internal/chat"
	"todo-assistant/internal/conversation"
	"todo-assistant/pkg/log"
)

type handler struct {
	l        log.Logger
	uc       chat.UseCase
	conv     conversation.Log
	registry *agent.ToolRegistry
}

// New creates the HTTP handler for the chat surface.
func New(l log.Logger, uc chat.UseCase, conv conversation.Log, registry *agent.ToolRegistry) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		conv:     conv,
		registry: registry,
	}
}
