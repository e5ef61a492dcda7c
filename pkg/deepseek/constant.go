package deepseek

import "time"

const (
	// DefaultModel is used when Config.Model is empty.
	DefaultModel = "deepseek-chat"

	// DefaultBaseURL is the DeepSeek OpenAI-compatible endpoint.
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultTimeout bounds a single API call.
	DefaultTimeout = 30 * time.Second
)
