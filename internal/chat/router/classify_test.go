package router

import (
	"context"
	"errors"
	"strings"
	"testing"

	"todo-assistant/internal/chat"
	"todo-assistant/internal/conversation"
	"todo-assistant/internal/todo"
	"todo-assistant/pkg/llmprovider"
)

func TestClassifyLLMPath(t *testing.T) {
	ctx := context.Background()

	t.Run("clean JSON", func(t *testing.T) {
		llm := &mockLLM{text: `{"intent":"create","title":"buy oat milk","confidence":90}`}
		c := New(nil, llm, &mockLogger{})

		intent, err := c.Classify(ctx, "i would love some oat milk at some point", chat.Analysis{}, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intent.Intent != chat.IntentCreate || intent.Title != "buy oat milk" {
			t.Errorf("expected create 'buy oat milk', got %+v", intent)
		}
	})

	t.Run("fenced JSON", func(t *testing.T) {
		llm := &mockLLM{text: "```json\n{\"intent\":\"list\",\"filter\":\"pending\"}\n```"}
		c := New(nil, llm, &mockLogger{})

		intent, err := c.Classify(ctx, "anything left for me today?", chat.Analysis{}, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intent.Intent != chat.IntentList || intent.Filter != todo.FilterPending {
			t.Errorf("expected pending list, got %+v", intent)
		}
	})

	t.Run("JSON with surrounding prose", func(t *testing.T) {
		llm := &mockLLM{text: `Sure! Here is the classification: {"intent":"chat","reply":"Hello!"} Hope that helps.`}
		c := New(nil, llm, &mockLogger{})

		intent, err := c.Classify(ctx, "hey", chat.Analysis{}, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intent.Intent != chat.IntentChat || intent.Reply != "Hello!" {
			t.Errorf("expected chat reply, got %+v", intent)
		}
	})

	t.Run("repairable JSON", func(t *testing.T) {
		// Trailing comma and single quotes: jsonrepair territory.
		llm := &mockLLM{text: `{'intent': 'complete', 'reference': 'the report task',}`}
		c := New(nil, llm, &mockLogger{})

		intent, err := c.Classify(ctx, "wrap up the report thing", chat.Analysis{}, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intent.Intent != chat.IntentComplete {
			t.Fatalf("expected complete, got %s", intent.Intent)
		}
		if intent.Ref.Raw != "the report task" || intent.Ref.Resolved() {
			t.Errorf("expected raw unresolved reference, got %+v", intent.Ref)
		}
	})

	t.Run("garbage becomes clarify", func(t *testing.T) {
		llm := &mockLLM{text: "I am sorry, I cannot help with that."}
		c := New(nil, llm, &mockLogger{})

		intent, err := c.Classify(ctx, "blorp", chat.Analysis{}, nil, nil)
		if err != nil {
			t.Fatalf("malformed output must not surface as an error, got %v", err)
		}
		if intent.Intent != chat.IntentClarify {
			t.Errorf("expected clarify, got %+v", intent)
		}
	})

	t.Run("unknown intent becomes clarify", func(t *testing.T) {
		llm := &mockLLM{text: `{"intent":"self_destruct"}`}
		c := New(nil, llm, &mockLogger{})

		intent, err := c.Classify(ctx, "do the thing", chat.Analysis{}, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intent.Intent != chat.IntentClarify {
			t.Errorf("expected clarify, got %+v", intent)
		}
	})

	t.Run("timeout surfaces as classification timeout", func(t *testing.T) {
		llm := &mockLLM{err: llmprovider.ErrProviderTimeout}
		c := New(nil, llm, &mockLogger{})

		_, err := c.Classify(ctx, "hmm, what should we do", chat.Analysis{}, nil, nil)
		if !errors.Is(err, chat.ErrClassificationTimeout) {
			t.Errorf("expected ErrClassificationTimeout, got %v", err)
		}
	})

	t.Run("nil LLM clarifies", func(t *testing.T) {
		c := New(nil, nil, &mockLogger{})
		intent, err := c.Classify(ctx, "mysterious mumbling", chat.Analysis{}, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intent.Intent != chat.IntentClarify {
			t.Errorf("expected clarify in rule-only mode, got %+v", intent)
		}
	})
}

func TestClassifySlotGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("create without title", func(t *testing.T) {
		llm := &mockLLM{text: `{"intent":"create"}`}
		c := New(nil, llm, &mockLogger{})
		intent, _ := c.Classify(ctx, "put something on there maybe", chat.Analysis{}, nil, nil)
		if intent.Intent != chat.IntentClarify || intent.Reason != "missing task title" {
			t.Errorf("expected missing-title clarify, got %+v", intent)
		}
	})

	t.Run("delete without reference", func(t *testing.T) {
		llm := &mockLLM{text: `{"intent":"delete"}`}
		c := New(nil, llm, &mockLogger{})
		intent, _ := c.Classify(ctx, "please take something off somehow", chat.Analysis{}, nil, nil)
		if intent.Intent != chat.IntentClarify || intent.Reason != "missing task reference" {
			t.Errorf("expected missing-reference clarify, got %+v", intent)
		}
	})

	t.Run("chat gets a default reply", func(t *testing.T) {
		llm := &mockLLM{text: `{"intent":"chat"}`}
		c := New(nil, llm, &mockLogger{})
		intent, _ := c.Classify(ctx, "who are you?", chat.Analysis{}, nil, nil)
		if intent.Intent != chat.IntentChat || intent.Reply == "" {
			t.Errorf("expected default chat reply, got %+v", intent)
		}
	})
}

func TestBuildRequestPrompt(t *testing.T) {
	ctx := context.Background()
	llm := &mockLLM{text: `{"intent":"chat","reply":"hi"}`}
	c := New(nil, llm, &mockLogger{})

	history := []conversation.Message{
		{Role: conversation.RoleUser, Content: "add a task to call mom"},
		{Role: conversation.RoleTool, Content: `{"action":"create","task_id":1}`},
		{Role: conversation.RoleAssistant, Content: "I've added 'call mom' to your todo list."},
	}
	tasks := []todo.Task{{ID: 1, Title: "call mom"}}

	if _, err := c.Classify(ctx, "soooo what else", chat.Analysis{}, history, tasks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if llm.lastReq == nil {
		t.Fatalf("expected a request to reach the LLM")
	}

	prompt := llm.lastReq.Messages[0].Parts[0].Text
	if !strings.Contains(prompt, "call mom") {
		t.Errorf("expected history in the prompt")
	}
	if strings.Contains(prompt, `"action":"create"`) {
		t.Errorf("tool records must not leak into the prompt")
	}
	if !strings.Contains(prompt, "1. call mom (pending)") {
		t.Errorf("expected task snapshot in the prompt, got:\n%s", prompt)
	}
	if llm.lastReq.SystemInstruction == nil {
		t.Errorf("expected a system instruction")
	}
}
