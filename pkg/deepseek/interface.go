package deepseek

import "context"

// IDeepSeek is the DeepSeek API client surface. Implementations are safe
// for concurrent use.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model reports the configured model name.
	Model() string
}

// New validates the config and returns a ready client.
func New(cfg Config) (IDeepSeek, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newDeepSeekImpl(cfg), nil
}
