package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"todo-assistant/internal/conversation"
	"todo-assistant/internal/model"
)

// Log is an in-memory append-only conversation store. A single mutex makes
// Append atomic; message IDs increase monotonically per conversation so the
// order is total and immutable.
type Log struct {
	mu            sync.Mutex
	conversations map[string]conversation.Conversation // by conversation ID
	byUser        map[string][]string                  // user ID -> conversation IDs, oldest first
	messages      map[string][]conversation.Message    // conversation ID -> ordered messages
	seq           map[string]int64

	failing bool
}

var _ conversation.Log = (*Log)(nil)

// New creates an empty in-memory conversation log.
func New() *Log {
	return &Log{
		conversations: make(map[string]conversation.Conversation),
		byUser:        make(map[string][]string),
		messages:      make(map[string][]conversation.Message),
		seq:           make(map[string]int64),
	}
}

// SetFailing toggles simulated storage outage.
func (l *Log) SetFailing(failing bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failing = failing
}

func (l *Log) EnsureConversation(ctx context.Context, sc model.Scope) (conversation.Conversation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.failing {
		return conversation.Conversation{}, conversation.ErrStorageUnavailable
	}

	ids := l.byUser[sc.UserID]
	if len(ids) > 0 {
		// Most recently created conversation is the open one.
		return l.conversations[ids[len(ids)-1]], nil
	}

	now := time.Now()
	conv := conversation.Conversation{
		ID:           uuid.NewString(),
		UserID:       sc.UserID,
		CreatedAt:    now,
		LastActiveAt: now,
	}
	l.conversations[conv.ID] = conv
	l.byUser[sc.UserID] = append(l.byUser[sc.UserID], conv.ID)
	return conv, nil
}

func (l *Log) Get(ctx context.Context, sc model.Scope, conversationID string) (conversation.Conversation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.failing {
		return conversation.Conversation{}, conversation.ErrStorageUnavailable
	}

	conv, ok := l.conversations[conversationID]
	if !ok || conv.UserID != sc.UserID {
		return conversation.Conversation{}, conversation.ErrConversationNotFound
	}
	return conv, nil
}

func (l *Log) Append(ctx context.Context, sc model.Scope, conversationID string, role conversation.Role, content string) (conversation.Message, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.failing {
		return conversation.Message{}, conversation.ErrStorageUnavailable
	}

	conv, ok := l.conversations[conversationID]
	if !ok || conv.UserID != sc.UserID {
		return conversation.Message{}, conversation.ErrConversationNotFound
	}

	l.seq[conversationID]++
	msg := conversation.Message{
		ID:             l.seq[conversationID],
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
		CreatedAt:      time.Now(),
	}
	l.messages[conversationID] = append(l.messages[conversationID], msg)

	conv.LastActiveAt = msg.CreatedAt
	l.conversations[conversationID] = conv

	return msg, nil
}

func (l *Log) ReadRecent(ctx context.Context, sc model.Scope, conversationID string, limit int) ([]conversation.Message, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.failing {
		return nil, conversation.ErrStorageUnavailable
	}

	conv, ok := l.conversations[conversationID]
	if !ok || conv.UserID != sc.UserID {
		return nil, conversation.ErrConversationNotFound
	}

	msgs := l.messages[conversationID]
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}

	out := make([]conversation.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}
