package composer

import (
	"strings"
	"testing"

	"todo-assistant/internal/chat"
	"todo-assistant/internal/todo"
)

func TestComposeSuccess(t *testing.T) {
	c := New()

	t.Run("create", func(t *testing.T) {
		got := c.Compose(chat.Outcome{
			Kind:   chat.OutcomeSuccess,
			Action: chat.IntentCreate,
			Task:   todo.Task{ID: 1, Title: "buy groceries"},
		})
		want := "I've added 'buy groceries' to your todo list."
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("complete", func(t *testing.T) {
		got := c.Compose(chat.Outcome{
			Kind:   chat.OutcomeSuccess,
			Action: chat.IntentComplete,
			Task:   todo.Task{ID: 1, Title: "buy groceries", Completed: true},
		})
		want := "I've marked 'buy groceries' as completed."
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("delete", func(t *testing.T) {
		got := c.Compose(chat.Outcome{
			Kind:   chat.OutcomeSuccess,
			Action: chat.IntentDelete,
			Task:   todo.Task{ID: 1, Title: "old chore"},
		})
		if !strings.Contains(got, "'old chore'") || !strings.Contains(got, "deleted") {
			t.Errorf("unexpected delete reply: %q", got)
		}
	})

	t.Run("rename mentions both titles", func(t *testing.T) {
		before := todo.Task{ID: 1, Title: "call mom"}
		got := c.Compose(chat.Outcome{
			Kind:   chat.OutcomeSuccess,
			Action: chat.IntentUpdate,
			Task:   todo.Task{ID: 1, Title: "call dad"},
			Before: &before,
		})
		if !strings.Contains(got, "'call mom'") || !strings.Contains(got, "'call dad'") {
			t.Errorf("expected both titles in rename reply, got %q", got)
		}
	})

	t.Run("update without title change", func(t *testing.T) {
		before := todo.Task{ID: 1, Title: "groceries"}
		got := c.Compose(chat.Outcome{
			Kind:   chat.OutcomeSuccess,
			Action: chat.IntentUpdate,
			Task:   todo.Task{ID: 1, Title: "groceries", Description: "organic"},
			Before: &before,
		})
		want := "I've updated 'groceries'."
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}

func TestComposeList(t *testing.T) {
	c := New()

	t.Run("numbered by task ID with state marks", func(t *testing.T) {
		got := c.Compose(chat.Outcome{
			Kind:   chat.OutcomeSuccess,
			Action: chat.IntentList,
			Filter: todo.FilterAll,
			Tasks: []todo.Task{
				{ID: 1, Title: "buy milk"},
				{ID: 3, Title: "call mom", Completed: true},
			},
		})
		if !strings.Contains(got, "1. [ ] buy milk") {
			t.Errorf("expected pending entry, got %q", got)
		}
		if !strings.Contains(got, "3. [x] call mom") {
			t.Errorf("expected completed entry, got %q", got)
		}
	})

	t.Run("description shown in parentheses", func(t *testing.T) {
		got := c.Compose(chat.Outcome{
			Kind:   chat.OutcomeSuccess,
			Action: chat.IntentList,
			Tasks:  []todo.Task{{ID: 1, Title: "groceries", Description: "organic items"}},
		})
		if !strings.Contains(got, "(organic items)") {
			t.Errorf("expected description, got %q", got)
		}
	})

	t.Run("empty states per filter", func(t *testing.T) {
		cases := []struct {
			filter todo.Filter
			want   string
		}{
			{todo.FilterAll, "Your todo list is empty"},
			{todo.FilterPending, "no pending tasks"},
			{todo.FilterCompleted, "haven't completed"},
		}
		for _, tc := range cases {
			got := c.Compose(chat.Outcome{Kind: chat.OutcomeSuccess, Action: chat.IntentList, Filter: tc.filter})
			if !strings.Contains(got, tc.want) {
				t.Errorf("filter %s: expected %q in %q", tc.filter, tc.want, got)
			}
		}
	})
}

func TestComposeFailures(t *testing.T) {
	c := New()

	t.Run("not found quotes the reference", func(t *testing.T) {
		got := c.Compose(chat.Outcome{Kind: chat.OutcomeNotFound, Reference: "dentist"})
		if !strings.Contains(got, `"dentist"`) {
			t.Errorf("expected quoted reference, got %q", got)
		}
	})

	t.Run("ambiguous lists candidates and asks", func(t *testing.T) {
		got := c.Compose(chat.Outcome{
			Kind:      chat.OutcomeAmbiguous,
			Reference: "call mom",
			Candidates: []chat.Candidate{
				{TaskID: 1, Title: "call mom today"},
				{TaskID: 2, Title: "call mom tomorrow"},
			},
		})
		if !strings.Contains(got, "1. call mom today") || !strings.Contains(got, "2. call mom tomorrow") {
			t.Errorf("expected numbered candidates, got %q", got)
		}
		if !strings.Contains(got, "Which one") {
			t.Errorf("expected a disambiguation question, got %q", got)
		}
	})

	t.Run("clarify names the missing slot", func(t *testing.T) {
		got := c.Compose(chat.Outcome{Kind: chat.OutcomeClarify, Reason: "missing task title"})
		if !strings.Contains(got, "What would you like the task to say?") {
			t.Errorf("unexpected clarify reply: %q", got)
		}
	})

	t.Run("tool failure includes the error ID", func(t *testing.T) {
		got := c.Compose(chat.Outcome{Kind: chat.OutcomeToolFailure, CorrelationID: "abc-123"})
		if !strings.Contains(got, "abc-123") {
			t.Errorf("expected correlation ID, got %q", got)
		}
	})

	t.Run("reject explains scope", func(t *testing.T) {
		got := c.Compose(chat.Outcome{Kind: chat.OutcomeReject})
		if !strings.Contains(got, "todo list") {
			t.Errorf("expected scope statement, got %q", got)
		}
	})

	t.Run("chat passthrough", func(t *testing.T) {
		got := c.Compose(chat.Outcome{Kind: chat.OutcomeChat, Reply: "Hello!"})
		if got != "Hello!" {
			t.Errorf("expected passthrough, got %q", got)
		}
	})
}
