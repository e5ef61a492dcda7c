package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newGeminiImpl creates a new Gemini implementation
func newGeminiImpl(cfg Config) *geminiImpl {
	return &geminiImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// --- Generative Language API wire format ---

type wireRequest struct {
	SystemInstruction *wireContent    `json:"system_instruction,omitempty"`
	Contents          []wireContent   `json:"contents"`
	Tools             []wireTool      `json:"tools,omitempty"`
	GenerationConfig  *wireGenConfig  `json:"generationConfig,omitempty"`
}

type wireContent struct {
	Role  string     `json:"role,omitempty"`
	Parts []wirePart `json:"parts"`
}

type wirePart struct {
	Text             string            `json:"text,omitempty"`
	FunctionCall     *FunctionCall     `json:"functionCall,omitempty"`
	FunctionResponse *FunctionResponse `json:"functionResponse,omitempty"`
}

type wireTool struct {
	FunctionDeclarations []wireFunctionDecl `json:"functionDeclarations,omitempty"`
}

type wireFunctionDecl struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters,omitempty"`
}

type wireGenConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type wireResponse struct {
	Candidates []struct {
		Content wireContent `json:"content"`
	} `json:"candidates"`
	UsageMetadata *struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

// GenerateContent sends a generation request to Gemini API
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	wireReq := g.transformRequest(req)

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini: API error %d: %s", resp.StatusCode, string(raw))
	}

	var wireResp wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}

	return g.transformResponse(&wireResp), nil
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

func (g *geminiImpl) transformRequest(req *Request) *wireRequest {
	wireReq := &wireRequest{}

	if req.SystemInstruction != nil {
		c := toWireContent(*req.SystemInstruction)
		c.Role = "" // system instruction carries no role on the wire
		wireReq.SystemInstruction = &c
	}

	for _, msg := range req.Messages {
		wireReq.Contents = append(wireReq.Contents, toWireContent(msg))
	}

	if len(req.Tools) > 0 {
		decls := make([]wireFunctionDecl, len(req.Tools))
		for i, t := range req.Tools {
			decls[i] = wireFunctionDecl{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			}
		}
		wireReq.Tools = []wireTool{{FunctionDeclarations: decls}}
	}

	if req.Temperature != 0 || req.MaxTokens != 0 {
		wireReq.GenerationConfig = &wireGenConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	return wireReq
}

func (g *geminiImpl) transformResponse(resp *wireResponse) *Response {
	out := &Response{Usage: &Usage{}}

	if len(resp.Candidates) > 0 {
		wc := resp.Candidates[0].Content
		content := Content{Role: wc.Role}
		for _, p := range wc.Parts {
			content.Parts = append(content.Parts, Part{
				Text:             p.Text,
				FunctionCall:     p.FunctionCall,
				FunctionResponse: p.FunctionResponse,
			})
		}
		out.Content = content
	}

	if resp.UsageMetadata != nil {
		out.Usage = &Usage{
			InputTokens:  resp.UsageMetadata.PromptTokenCount,
			OutputTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  resp.UsageMetadata.TotalTokenCount,
		}
	}

	return out
}

func toWireContent(c Content) wireContent {
	wc := wireContent{Role: c.Role}
	for _, p := range c.Parts {
		wc.Parts = append(wc.Parts, wirePart{
			Text:             p.Text,
			FunctionCall:     p.FunctionCall,
			FunctionResponse: p.FunctionResponse,
		})
	}
	return wc
}
