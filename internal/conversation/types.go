package conversation

import "time"

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Conversation groups an ordered sequence of messages for one user.
type Conversation struct {
	ID           string
	UserID       string
	CreatedAt    time.Time
	LastActiveAt time.Time
}

// Message is one turn entry. Order within a conversation is total and
// immutable once appended: IDs increase monotonically per conversation.
type Message struct {
	ID             int64
	ConversationID string
	Role           Role
	Content        string
	CreatedAt      time.Time
}

// ToolRecord is the structured content of a tool-role message. It records
// which operation ran and which task it touched, so later turns can resolve
// references like "that task" without re-deriving state.
type ToolRecord struct {
	Action  string  `json:"action"`
	TaskID  int64   `json:"task_id,omitempty"`
	Title   string  `json:"title,omitempty"`
	TaskIDs []int64 `json:"task_ids,omitempty"` // for list results, in display order
}
