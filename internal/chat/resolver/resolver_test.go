package resolver

import (
	"encoding/json"
	"testing"

	"todo-assistant/internal/chat"
	"todo-assistant/internal/conversation"
	"todo-assistant/internal/todo"
)

func taskList(titles ...string) []todo.Task {
	tasks := make([]todo.Task, len(titles))
	for i, title := range titles {
		tasks[i] = todo.Task{ID: int64(i + 1), UserID: "alice", Title: title}
	}
	return tasks
}

func toolMessage(t *testing.T, rec conversation.ToolRecord) conversation.Message {
	t.Helper()
	payload, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal tool record: %v", err)
	}
	return conversation.Message{Role: conversation.RoleTool, Content: string(payload)}
}

func TestAnalyzeNumeric(t *testing.T) {
	r := New()
	tasks := taskList("buy milk", "call mom")

	cases := []struct {
		utterance string
		wantID    int64
	}{
		{"mark task 1 as complete", 1},
		{"delete task #2", 2},
		{"complete todo 2 please", 2},
		{"finish #1", 1},
	}
	for _, tc := range cases {
		t.Run(tc.utterance, func(t *testing.T) {
			analysis := r.Analyze(tc.utterance, nil, tasks)
			ref, ok := analysis.FirstRef()
			if !ok {
				t.Fatalf("expected a mention")
			}
			if !ref.Resolved() || ref.TaskID != tc.wantID {
				t.Errorf("expected task %d, got %+v", tc.wantID, ref)
			}
		})
	}
}

func TestAnalyzeNumericUnknownID(t *testing.T) {
	r := New()
	analysis := r.Analyze("complete task 7", nil, taskList("only one"))
	ref, ok := analysis.FirstRef()
	if !ok {
		t.Fatalf("expected a mention")
	}
	if ref.Resolved() {
		t.Fatalf("expected unresolved ref, got task %d", ref.TaskID)
	}
	if ref.Unresolved.Reason != chat.UnresolvedNoMatch {
		t.Errorf("expected no_match, got %s", ref.Unresolved.Reason)
	}
}

func TestNumericPositionalFallback(t *testing.T) {
	r := New()
	// Tasks have IDs 5 and 9; a prior listing showed them in that order.
	tasks := []todo.Task{
		{ID: 5, Title: "pay rent"},
		{ID: 9, Title: "water plants"},
	}
	history := []conversation.Message{
		toolMessage(t, conversation.ToolRecord{Action: "list", TaskIDs: []int64{5, 9}}),
	}

	ref := r.ResolvePhrase("task 2", history, tasks)
	if !ref.Resolved() || ref.TaskID != 9 {
		t.Errorf("expected positional fallback to task 9, got %+v", ref)
	}
}

func TestOrdinals(t *testing.T) {
	r := New()
	tasks := taskList("a", "b", "c")
	history := []conversation.Message{
		toolMessage(t, conversation.ToolRecord{Action: "list", TaskIDs: []int64{1, 2, 3}}),
	}

	t.Run("second", func(t *testing.T) {
		analysis := r.Analyze("complete the second one", history, tasks)
		ref, ok := analysis.FirstRef()
		if !ok || !ref.Resolved() || ref.TaskID != 2 {
			t.Errorf("expected task 2, got %+v", ref)
		}
	})

	t.Run("last", func(t *testing.T) {
		analysis := r.Analyze("delete the last one", history, tasks)
		ref, ok := analysis.FirstRef()
		if !ok || !ref.Resolved() || ref.TaskID != 3 {
			t.Errorf("expected task 3, got %+v", ref)
		}
	})

	t.Run("ordinal without listing uses snapshot order", func(t *testing.T) {
		analysis := r.Analyze("complete the first task", nil, tasks)
		ref, ok := analysis.FirstRef()
		if !ok || !ref.Resolved() || ref.TaskID != 1 {
			t.Errorf("expected task 1, got %+v", ref)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		ref := r.ResolvePhrase("the tenth one", history, tasks)
		if ref.Resolved() {
			t.Errorf("expected unresolved, got task %d", ref.TaskID)
		}
	})

	// The mention carries the user's own words, never a paraphrase; they
	// get quoted back in not-found replies.
	t.Run("mention quotes the utterance", func(t *testing.T) {
		analysis := r.Analyze("please finish the second task now", history, tasks)
		if len(analysis.Mentions) != 1 {
			t.Fatalf("expected one mention, got %d", len(analysis.Mentions))
		}
		m := analysis.Mentions[0]
		if m.Phrase != "the second task" {
			t.Errorf("expected span 'the second task', got %q", m.Phrase)
		}
		if m.Ref.Raw != "the second task" {
			t.Errorf("expected raw 'the second task', got %q", m.Ref.Raw)
		}
	})
}

func TestAnaphora(t *testing.T) {
	r := New()
	tasks := taskList("buy milk", "call mom")

	t.Run("points to last touched task", func(t *testing.T) {
		history := []conversation.Message{
			toolMessage(t, conversation.ToolRecord{Action: "create", TaskID: 2, Title: "call mom"}),
		}
		analysis := r.Analyze("mark that as done", history, tasks)
		ref, ok := analysis.FirstRef()
		if !ok || !ref.Resolved() || ref.TaskID != 2 {
			t.Errorf("expected task 2, got %+v", ref)
		}
	})

	t.Run("newest single-task turn wins", func(t *testing.T) {
		history := []conversation.Message{
			toolMessage(t, conversation.ToolRecord{Action: "create", TaskID: 1, Title: "buy milk"}),
			toolMessage(t, conversation.ToolRecord{Action: "create", TaskID: 2, Title: "call mom"}),
		}
		ref := r.ResolvePhrase("it", history, tasks)
		if !ref.Resolved() || ref.TaskID != 2 {
			t.Errorf("expected task 2, got %+v", ref)
		}
	})

	t.Run("listing turns are skipped", func(t *testing.T) {
		history := []conversation.Message{
			toolMessage(t, conversation.ToolRecord{Action: "create", TaskID: 1, Title: "buy milk"}),
			toolMessage(t, conversation.ToolRecord{Action: "list", TaskIDs: []int64{1, 2}}),
		}
		ref := r.ResolvePhrase("that", history, tasks)
		if !ref.Resolved() || ref.TaskID != 1 {
			t.Errorf("expected task 1, got %+v", ref)
		}
	})

	t.Run("no recent reference", func(t *testing.T) {
		ref := r.ResolvePhrase("that", nil, tasks)
		if ref.Resolved() {
			t.Fatalf("expected unresolved")
		}
		if ref.Unresolved.Reason != chat.UnresolvedNoRecentReference {
			t.Errorf("expected no_recent_reference, got %s", ref.Unresolved.Reason)
		}
	})
}

func TestDescriptive(t *testing.T) {
	r := New()

	t.Run("unique match", func(t *testing.T) {
		tasks := taskList("buy groceries", "call mom")
		analysis := r.Analyze("delete the groceries task", nil, tasks)
		ref, ok := analysis.FirstRef()
		if !ok || !ref.Resolved() || ref.TaskID != 1 {
			t.Errorf("expected task 1, got %+v", ref)
		}
	})

	t.Run("tie surfaces candidates", func(t *testing.T) {
		tasks := taskList("call mom today", "call mom tomorrow")
		analysis := r.Analyze("delete the call mom task", nil, tasks)
		ref, ok := analysis.FirstRef()
		if !ok {
			t.Fatalf("expected a mention")
		}
		if ref.Resolved() {
			t.Fatalf("expected ambiguous, resolver guessed task %d", ref.TaskID)
		}
		if ref.Unresolved.Reason != chat.UnresolvedAmbiguous {
			t.Fatalf("expected ambiguous, got %s", ref.Unresolved.Reason)
		}
		if len(ref.Unresolved.Candidates) != 2 {
			t.Errorf("expected 2 candidates, got %d", len(ref.Unresolved.Candidates))
		}
	})

	t.Run("no match", func(t *testing.T) {
		tasks := taskList("buy milk")
		ref := r.ResolvePhrase("dentist appointment", nil, tasks)
		if ref.Resolved() {
			t.Fatalf("expected unresolved")
		}
		if ref.Unresolved.Reason != chat.UnresolvedNoMatch {
			t.Errorf("expected no_match, got %s", ref.Unresolved.Reason)
		}
	})

	t.Run("closer title wins over partial overlap", func(t *testing.T) {
		tasks := taskList("buy groceries", "buy birthday gift")
		ref := r.ResolvePhrase("buy groceries", nil, tasks)
		if !ref.Resolved() || ref.TaskID != 1 {
			t.Errorf("expected exact title to win, got %+v", ref)
		}
	})
}

func TestResolveIsDeterministic(t *testing.T) {
	r := New()
	tasks := taskList("call mom", "call dad")
	history := []conversation.Message{
		toolMessage(t, conversation.ToolRecord{Action: "create", TaskID: 2, Title: "call dad"}),
	}

	first := r.ResolvePhrase("the call task", history, tasks)
	for i := 0; i < 5; i++ {
		again := r.ResolvePhrase("the call task", history, tasks)
		if first.Resolved() != again.Resolved() {
			t.Fatalf("resolution flapped between runs")
		}
		if !first.Resolved() && len(first.Unresolved.Candidates) != len(again.Unresolved.Candidates) {
			t.Fatalf("candidate set changed between runs")
		}
	}
}

func TestAnalyzeNoMention(t *testing.T) {
	r := New()
	analysis := r.Analyze("add a task to buy groceries", nil, nil)
	if len(analysis.Mentions) != 0 {
		t.Errorf("expected no mentions in a plain create, got %+v", analysis.Mentions)
	}
}
