package conversation

import (
	"context"

	"todo-assistant/internal/model"
)

// Log is the conversation log contract. Append is atomic and is the only
// serialization point between concurrent turns of the same conversation:
// a read issued after an append completes reflects that append.
type Log interface {
	// EnsureConversation returns the user's most recently active
	// conversation, creating one when none exists.
	EnsureConversation(ctx context.Context, sc model.Scope) (Conversation, error)

	// Get returns the conversation by ID, scoped to the user.
	Get(ctx context.Context, sc model.Scope, conversationID string) (Conversation, error)

	// Append adds one message at the end of the conversation and returns
	// it with its assigned ID.
	Append(ctx context.Context, sc model.Scope, conversationID string, role Role, content string) (Message, error)

	// ReadRecent returns the last `limit` messages, oldest first.
	// limit <= 0 means no bound.
	ReadRecent(ctx context.Context, sc model.Scope, conversationID string, limit int) ([]Message, error)
}
