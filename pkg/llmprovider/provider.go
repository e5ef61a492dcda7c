package llmprovider

import "context"

// Provider is a single LLM backend behind the vendor-neutral request and
// response types below. Adapters in this package wrap the concrete clients.
type Provider interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name identifies the backend ("gemini", "deepseek").
	Name() string

	// Model is the concrete model the backend will run.
	Model() string
}

// Request is a vendor-neutral generation request.
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Tools             []Tool
	Temperature       float64
	MaxTokens         int
}

// Message is one conversation entry. Role is "user", "assistant", or
// "system".
type Message struct {
	Role  string
	Parts []Part
}

// Part holds text, a function call the model wants made, or the result of
// one. Exactly one field is normally set.
type Part struct {
	Text             string
	FunctionCall     *FunctionCall
	FunctionResponse *FunctionResponse
}

// Tool is a function declaration offered to the model. Parameters is a
// JSON Schema object.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]interface{}
}

// FunctionCall is a model-requested invocation.
type FunctionCall struct {
	Name string
	Args map[string]interface{}
}

// FunctionResponse carries an invocation result back to the model.
type FunctionResponse struct {
	Name     string
	Response interface{}
}

// Response is a vendor-neutral generation result.
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption for the call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text concatenates all text parts of the response content.
func (r *Response) Text() string {
	var out string
	for _, p := range r.Content.Parts {
		if p.Text == "" {
			continue
		}
		if out != "" {
			out += "\n"
		}
		out += p.Text
	}
	return out
}
