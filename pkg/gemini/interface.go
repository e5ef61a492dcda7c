package gemini

import "context"

// IGemini is the Gemini API client surface. Implementations are safe for
// concurrent use.
type IGemini interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model reports the configured model name.
	Model() string
}

// New validates the config and returns a ready client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
