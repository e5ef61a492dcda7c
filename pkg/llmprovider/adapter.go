package llmprovider

import (
	"context"

	"todo-assistant/pkg/deepseek"
	"todo-assistant/pkg/gemini"
)

// GeminiAdapter exposes pkg/gemini as a Provider.
type GeminiAdapter struct {
	client gemini.IGemini
}

func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) Name() string  { return "gemini" }
func (a *GeminiAdapter) Model() string { return a.client.Model() }

func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	out := &gemini.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		c := toGeminiContent(*req.SystemInstruction)
		out.SystemInstruction = &c
	}
	for _, msg := range req.Messages {
		out.Messages = append(out.Messages, toGeminiContent(msg))
	}
	for _, t := range req.Tools {
		out.Tools = append(out.Tools, gemini.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		})
	}

	resp, err := a.client.GenerateContent(ctx, out)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      fromGeminiContent(resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func toGeminiContent(msg Message) gemini.Content {
	c := gemini.Content{Role: msg.Role}
	for _, p := range msg.Parts {
		gp := gemini.Part{Text: p.Text}
		if p.FunctionCall != nil {
			gp.FunctionCall = &gemini.FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		if p.FunctionResponse != nil {
			gp.FunctionResponse = &gemini.FunctionResponse{Name: p.FunctionResponse.Name, Response: p.FunctionResponse.Response}
		}
		c.Parts = append(c.Parts, gp)
	}
	return c
}

func fromGeminiContent(c gemini.Content) Message {
	msg := Message{Role: c.Role}
	for _, p := range c.Parts {
		part := Part{Text: p.Text}
		if p.FunctionCall != nil {
			part.FunctionCall = &FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		if p.FunctionResponse != nil {
			part.FunctionResponse = &FunctionResponse{Name: p.FunctionResponse.Name, Response: p.FunctionResponse.Response}
		}
		msg.Parts = append(msg.Parts, part)
	}
	return msg
}

// DeepSeekAdapter exposes pkg/deepseek as a Provider.
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

func (a *DeepSeekAdapter) Name() string  { return "deepseek" }
func (a *DeepSeekAdapter) Model() string { return a.client.Model() }

func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	out := &deepseek.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		c := toDeepSeekContent(*req.SystemInstruction)
		out.SystemInstruction = &c
	}
	for _, msg := range req.Messages {
		out.Messages = append(out.Messages, toDeepSeekContent(msg))
	}
	for _, t := range req.Tools {
		out.Tools = append(out.Tools, deepseek.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		})
	}

	resp, err := a.client.GenerateContent(ctx, out)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      fromDeepSeekContent(resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func toDeepSeekContent(msg Message) deepseek.Content {
	c := deepseek.Content{Role: msg.Role}
	for _, p := range msg.Parts {
		dp := deepseek.Part{Text: p.Text}
		if p.FunctionCall != nil {
			dp.FunctionCall = &deepseek.FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		if p.FunctionResponse != nil {
			dp.FunctionResponse = &deepseek.FunctionResponse{Name: p.FunctionResponse.Name, Response: p.FunctionResponse.Response}
		}
		c.Parts = append(c.Parts, dp)
	}
	return c
}

func fromDeepSeekContent(c deepseek.Content) Message {
	msg := Message{Role: c.Role}
	for _, p := range c.Parts {
		part := Part{Text: p.Text}
		if p.FunctionCall != nil {
			part.FunctionCall = &FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		if p.FunctionResponse != nil {
			part.FunctionResponse = &FunctionResponse{Name: p.FunctionResponse.Name, Response: p.FunctionResponse.Response}
		}
		msg.Parts = append(msg.Parts, part)
	}
	return msg
}
