package http

import "errors"

var (
	errEmptyMessage = errors.New("message must not be empty")
	errUnknownTool  = errors.New("unknown tool")
)
