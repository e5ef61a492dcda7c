package todo

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyTitle       = errors.New("task title is empty")
	ErrInvalidFilter    = errors.New("invalid task filter")
	ErrStoreUnavailable = errors.New("task store unavailable")
)
