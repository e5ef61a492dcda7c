package conversation

import "errors"

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrStorageUnavailable   = errors.New("conversation storage unavailable")
)
