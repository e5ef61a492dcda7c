package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"todo-assistant/internal/chat"
	"todo-assistant/internal/conversation"
	"todo-assistant/internal/todo"
	"todo-assistant/pkg/llmprovider"
)

// llmOutput is the JSON contract the model is asked to honor.
type llmOutput struct {
	Intent      string `json:"intent"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Reference   string `json:"reference"`
	Filter      string `json:"filter"`
	Reason      string `json:"reason"`
	Reply       string `json:"reply"`
	Confidence  int    `json:"confidence"`
}

// Classify determines the user's intent. The rule layer decides utterances
// with an explicit action verb; everything else goes to the LLM. The only
// error returned is a classification timeout/outage; malformed model
// output is folded into clarify, never surfaced as an error.
func (c *Classifier) Classify(ctx context.Context, utterance string, analysis chat.Analysis, history []conversation.Message, tasks []todo.Task) (chat.ResolvedIntent, error) {
	if intent, ok := c.classifyByRules(utterance, analysis); ok {
		c.l.Infof(ctx, "%s: rules settled intent=%s", LogPrefixClassify, intent.Intent)
		return intent, nil
	}

	if c.llm == nil {
		return chat.ResolvedIntent{
			Intent: chat.IntentClarify,
			Reason: "no task action recognized",
		}, nil
	}

	resp, err := c.llm.GenerateContent(ctx, c.buildRequest(utterance, history, tasks))
	if err != nil {
		if errors.Is(err, llmprovider.ErrProviderTimeout) || errors.Is(err, context.DeadlineExceeded) {
			return chat.ResolvedIntent{}, fmt.Errorf("%w: %v", chat.ErrClassificationTimeout, err)
		}
		return chat.ResolvedIntent{}, fmt.Errorf("classification failed: %w", err)
	}

	out, err := parseOutput(resp.Text())
	if err != nil {
		c.l.Warnf(ctx, "%s: %v, falling back to clarify", LogPrefixClassify, err)
		return chat.ResolvedIntent{
			Intent: chat.IntentClarify,
			Reason: "could not understand the request",
		}, nil
	}

	c.l.Infof(ctx, "%s: llm intent=%s confidence=%d", LogPrefixClassify, out.Intent, out.Confidence)
	return c.toResolvedIntent(out), nil
}

// buildRequest assembles the classification prompt with bounded history.
func (c *Classifier) buildRequest(utterance string, history []conversation.Message, tasks []todo.Task) *llmprovider.Request {
	var sb strings.Builder

	if len(history) > 0 {
		sb.WriteString(PromptHistoryPrefix)
		for _, msg := range history {
			if msg.Role == conversation.RoleTool {
				continue
			}
			fmt.Fprintf(&sb, "%s: %s\n", msg.Role, msg.Content)
		}
		sb.WriteString("\n")
	}

	if len(tasks) > 0 {
		sb.WriteString("Current tasks:\n")
		for _, t := range tasks {
			state := "pending"
			if t.Completed {
				state = "completed"
			}
			fmt.Fprintf(&sb, "%d. %s (%s)\n", t.ID, t.Title, state)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Message: %q", utterance)

	return &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: PromptClassifySystem}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: sb.String()}}},
		},
		Temperature: ClassifyTemperature,
		MaxTokens:   ClassifyMaxTokens,
	}
}

// fenceRe strips markdown code fences LLMs wrap around JSON.
var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// parseOutput decodes the model's JSON. Fences are stripped first; output
// that still fails to decode is run through jsonrepair before giving up.
func parseOutput(text string) (llmOutput, error) {
	cleaned := sanitizeJSONResponse(text)

	var out llmOutput
	if err := json.Unmarshal([]byte(cleaned), &out); err == nil {
		return out, validateOutput(out)
	}

	repaired, err := jsonrepair.JSONRepair(cleaned)
	if err != nil {
		return llmOutput{}, fmt.Errorf("%w: %v", chat.ErrClassificationMalformed, err)
	}
	if err := json.Unmarshal([]byte(repaired), &out); err != nil {
		return llmOutput{}, fmt.Errorf("%w: %v", chat.ErrClassificationMalformed, err)
	}
	return out, validateOutput(out)
}

func validateOutput(out llmOutput) error {
	switch out.Intent {
	case "create", "list", "complete", "delete", "update", "clarify", "chat", "reject":
		return nil
	}
	return fmt.Errorf("%w: unknown intent %q", chat.ErrClassificationMalformed, out.Intent)
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if m := fenceRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexAny(text, "{[")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndexAny(text, "}]")
	if end == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}

// toResolvedIntent maps validated LLM output to the engine's intent type.
func (c *Classifier) toResolvedIntent(out llmOutput) chat.ResolvedIntent {
	intent := chat.ResolvedIntent{
		Intent:      chat.Intent(out.Intent),
		Title:       strings.TrimSpace(out.Title),
		Description: strings.TrimSpace(out.Description),
		Reason:      strings.TrimSpace(out.Reason),
		Reply:       strings.TrimSpace(out.Reply),
	}

	switch out.Filter {
	case "pending":
		intent.Filter = todo.FilterPending
	case "completed":
		intent.Filter = todo.FilterCompleted
	default:
		intent.Filter = todo.FilterAll
	}

	if ref := strings.TrimSpace(out.Reference); ref != "" {
		// Raw reference: the engine resolves it before dispatch.
		intent.Ref = chat.TaskRef{Raw: ref, Unresolved: &chat.Unresolved{Reason: chat.UnresolvedNoMatch}}
	}

	// Guard required slots even when the model claims a command.
	if intent.Intent == chat.IntentCreate && intent.Title == "" {
		return chat.ResolvedIntent{Intent: chat.IntentClarify, Reason: "missing task title"}
	}
	if intent.Intent.NeedsRef() && intent.Ref.Raw == "" {
		return chat.ResolvedIntent{Intent: chat.IntentClarify, Reason: "missing task reference"}
	}
	if intent.Intent == chat.IntentChat && intent.Reply == "" {
		intent.Reply = "I'm here to help you manage your todo list. You can ask me to add, list, complete, update, or delete tasks."
	}

	return intent
}
