package gemini

import "time"

const (
	// DefaultModel is used when Config.Model is empty.
	DefaultModel = "gemini-1.5-flash"

	// DefaultBaseURL is the Generative Language API endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout bounds a single API call.
	DefaultTimeout = 30 * time.Second
)
