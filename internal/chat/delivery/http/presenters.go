package http

import (
	"strings"
	"time"

	"todo-assistant/internal/chat"
	"todo-assistant/internal/conversation"
)

// --- Request DTOs ---

type chatReq struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message" binding:"required"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return errEmptyMessage
	}
	return nil
}

func (r chatReq) toInput() chat.TurnInput {
	return chat.TurnInput{
		ConversationID: strings.TrimSpace(r.ConversationID),
		Utterance:      r.Message,
	}
}

// --- Response DTOs ---

type chatResp struct {
	ConversationID string `json:"conversation_id"`
	Reply          string `json:"reply"`
	Outcome        string `json:"outcome"`
	Action         string `json:"action,omitempty"`
}

func (h *handler) newChatResp(out chat.TurnOutput) chatResp {
	return chatResp{
		ConversationID: out.ConversationID,
		Reply:          out.Reply,
		Outcome:        string(out.Outcome.Kind),
		Action:         string(out.Outcome.Action),
	}
}

type messageResp struct {
	ID        int64     `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type messagesResp struct {
	ConversationID string        `json:"conversation_id"`
	Messages       []messageResp `json:"messages"`
}

func (h *handler) newMessagesResp(convID string, msgs []conversation.Message) messagesResp {
	out := make([]messageResp, len(msgs))
	for i, m := range msgs {
		out[i] = messageResp{
			ID:        m.ID,
			Role:      string(m.Role),
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		}
	}
	return messagesResp{ConversationID: convID, Messages: out}
}

type toolResp struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

type toolsResp struct {
	Tools []toolResp `json:"tools"`
}

type toolResultResp struct {
	Tool   string      `json:"tool"`
	Result interface{} `json:"result"`
}
