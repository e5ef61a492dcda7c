package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"todo-assistant/internal/model"
	"todo-assistant/pkg/response"
)

const (
	headerUserID   = "X-User-ID"
	headerUsername = "X-Username"

	scopeKey = "scope"
)

// Identify extracts the caller identity from request headers and stores the
// scope in the gin context. Requests without a user ID are rejected.
func (m Middleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(headerUserID))
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID:   userID,
			Username: strings.TrimSpace(c.GetHeader(headerUsername)),
		})
		c.Next()
	}
}

// ScopeFrom returns the scope stored by Identify.
func ScopeFrom(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
