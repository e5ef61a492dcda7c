package http

import (
	"github.com/gin-gonic/gin"

	"todo-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Every route
// requires a caller identity; chat turns are additionally rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.Identify(), mw.RateLimit(), h.Chat)

	conversations := rg.Group("/conversations", mw.Identify())
	{
		conversations.GET("/:id/messages", h.Messages)
	}

	tools := rg.Group("/tools", mw.Identify())
	{
		tools.GET("", h.ListTools)
		tools.POST("/:name", h.ExecuteTool)
	}
}
