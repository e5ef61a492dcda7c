package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"todo-assistant/internal/chat"
	"todo-assistant/internal/conversation"
	"todo-assistant/internal/middleware"
	"todo-assistant/pkg/response"
)

// Chat godoc
// @Summary     Process one chat turn
// @Description Accepts a natural-language message, performs at most one task operation, and returns the assistant reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string  true "Caller user ID"
// @Param       body      body   chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFrom(c)

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ProcessTurn(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessTurn: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// Messages godoc
// @Summary     Read conversation messages
// @Description Returns the messages of one conversation, oldest first.
// @Tags        Chat
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Conversation ID"
// @Param       limit     query  int    false "Max messages to return (default all)"
// @Success     200 {object} messagesResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversations/{id}/messages [GET]
func (h *handler) Messages(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFrom(c)

	id := c.Param("id")
	limit := 0
	if v, ok := c.GetQuery("limit"); ok {
		// Invalid values fall back to unbounded rather than erroring.
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	if _, err := h.conv.Get(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "conv.Get: %v", err)
		h.mapError(c, err)
		return
	}

	msgs, err := h.conv.ReadRecent(ctx, sc, id, limit)
	if err != nil {
		h.l.Errorf(ctx, "conv.ReadRecent: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newMessagesResp(id, msgs))
}

// ListTools godoc
// @Summary     List agent tools
// @Description Returns the registered tools with their JSON-schema parameters.
// @Tags        Tools
// @Produce     json
// @Success     200 {object} toolsResp
// @Router      /api/v1/tools [GET]
func (h *handler) ListTools(c *gin.Context) {
	tools := h.registry.List()
	out := toolsResp{Tools: make([]toolResp, 0, len(tools))}
	for _, t := range tools {
		out.Tools = append(out.Tools, toolResp{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.Parameters(),
		})
	}
	response.OK(c, out)
}

// ExecuteTool godoc
// @Summary     Execute an agent tool directly
// @Description Runs one registered tool with the given parameters, bypassing the conversational layer. The caller identity overrides any user_id in the body.
// @Tags        Tools
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       name      path   string true "Tool name"
// @Param       body      body   object false "Tool parameters"
// @Success     200 {object} toolResultResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tools/{name} [POST]
func (h *handler) ExecuteTool(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFrom(c)

	name := c.Param("name")
	tool, ok := h.registry.Get(name)
	if !ok {
		response.NotFound(c, errUnknownTool)
		return
	}

	params, err := h.processToolReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	// Identity comes from the authenticated scope, never the body.
	params["user_id"] = sc.UserID

	result, err := tool.Execute(ctx, params)
	if err != nil {
		h.l.Errorf(ctx, "tool.Execute %s: %v", name, err)
		h.mapError(c, err)
		return
	}

	response.OK(c, toolResultResp{Tool: name, Result: result})
}

// mapError translates domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyUtterance):
		response.Error(c, err, nil)
	case errors.Is(err, conversation.ErrConversationNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
