package router

import (
	"testing"

	"todo-assistant/internal/chat"
	"todo-assistant/internal/todo"
)

func TestFirstMatch(t *testing.T) {
	table := DefaultSynonyms()

	cases := []struct {
		utterance string
		intent    chat.Intent
		phrase    string
	}{
		{"add a task to buy groceries", chat.IntentCreate, "add"},
		{"remind me to water the plants", chat.IntentCreate, "remind me to"},
		{"show my tasks", chat.IntentList, "show"},
		{"what are my pending tasks", chat.IntentList, "what are my"},
		{"mark as done task 2", chat.IntentComplete, "mark as done"},
		{"complete task 1", chat.IntentComplete, "complete"},
		{"get rid of the milk task", chat.IntentDelete, "get rid of"},
		{"delete task 3", chat.IntentDelete, "delete"},
		{"rename task 1 to call dad", chat.IntentUpdate, "rename"},
	}

	for _, tc := range cases {
		t.Run(tc.utterance, func(t *testing.T) {
			match, ok := table.firstMatch(tc.utterance)
			if !ok {
				t.Fatalf("expected a match")
			}
			if match.intent != tc.intent {
				t.Errorf("expected intent %s, got %s", tc.intent, match.intent)
			}
			if match.phrase != tc.phrase {
				t.Errorf("expected phrase %q, got %q", tc.phrase, match.phrase)
			}
		})
	}

	t.Run("no match", func(t *testing.T) {
		if _, ok := table.firstMatch("hello there"); ok {
			t.Errorf("expected no match for small talk")
		}
	})

	t.Run("longer phrase wins at same position", func(t *testing.T) {
		match, ok := table.firstMatch("mark as complete the report task")
		if !ok || match.phrase != "mark as complete" {
			t.Errorf("expected 'mark as complete', got %+v", match)
		}
	})

	t.Run("whole words only", func(t *testing.T) {
		// "display" must not trigger on "list" inside it... and it is
		// itself a list synonym, so pick a word with an embedded verb.
		if match, ok := table.firstMatch("madden is a game"); ok {
			t.Errorf("expected no match inside words, got %+v", match)
		}
	})
}

func TestClassifyByRulesCreate(t *testing.T) {
	c := New(nil, nil, &mockLogger{})

	t.Run("strips task prefix", func(t *testing.T) {
		intent, ok := c.classifyByRules("Add a task to buy groceries", chat.Analysis{})
		if !ok {
			t.Fatalf("expected rules to settle")
		}
		if intent.Intent != chat.IntentCreate {
			t.Fatalf("expected create, got %s", intent.Intent)
		}
		if intent.Title != "buy groceries" {
			t.Errorf("expected title 'buy groceries', got %q", intent.Title)
		}
	})

	t.Run("plain add", func(t *testing.T) {
		intent, _ := c.classifyByRules("add call mom", chat.Analysis{})
		if intent.Title != "call mom" {
			t.Errorf("expected title 'call mom', got %q", intent.Title)
		}
	})

	t.Run("remind me to", func(t *testing.T) {
		intent, _ := c.classifyByRules("remind me to water the plants", chat.Analysis{})
		if intent.Intent != chat.IntentCreate || intent.Title != "water the plants" {
			t.Errorf("expected create 'water the plants', got %+v", intent)
		}
	})

	t.Run("missing title asks for it", func(t *testing.T) {
		intent, ok := c.classifyByRules("add a task", chat.Analysis{})
		if !ok || intent.Intent != chat.IntentClarify {
			t.Errorf("expected clarify, got %+v", intent)
		}
		if intent.Reason != "missing task title" {
			t.Errorf("expected missing title reason, got %q", intent.Reason)
		}
	})
}

func TestClassifyByRulesList(t *testing.T) {
	c := New(nil, nil, &mockLogger{})

	cases := []struct {
		utterance string
		filter    todo.Filter
	}{
		{"show my tasks", todo.FilterAll},
		{"list my pending tasks", todo.FilterPending},
		{"show my completed tasks", todo.FilterCompleted},
		{"what are my remaining tasks", todo.FilterPending},
	}
	for _, tc := range cases {
		t.Run(tc.utterance, func(t *testing.T) {
			intent, ok := c.classifyByRules(tc.utterance, chat.Analysis{})
			if !ok || intent.Intent != chat.IntentList {
				t.Fatalf("expected list, got %+v", intent)
			}
			if intent.Filter != tc.filter {
				t.Errorf("expected filter %s, got %s", tc.filter, intent.Filter)
			}
		})
	}
}

func TestClassifyByRulesMutations(t *testing.T) {
	c := New(nil, nil, &mockLogger{})

	t.Run("uses resolver analysis", func(t *testing.T) {
		analysis := chat.Analysis{Mentions: []chat.Mention{{
			Phrase: "task 1",
			Ref:    chat.TaskRef{Raw: "task 1", TaskID: 1},
		}}}
		intent, ok := c.classifyByRules("Mark task 1 as complete", analysis)
		if !ok || intent.Intent != chat.IntentComplete {
			t.Fatalf("expected complete, got %+v", intent)
		}
		if !intent.Ref.Resolved() || intent.Ref.TaskID != 1 {
			t.Errorf("expected resolved ref to task 1, got %+v", intent.Ref)
		}
	})

	t.Run("no mention leaves raw tail", func(t *testing.T) {
		intent, ok := c.classifyByRules("delete dentist appointment", chat.Analysis{})
		if !ok || intent.Intent != chat.IntentDelete {
			t.Fatalf("expected delete, got %+v", intent)
		}
		if intent.Ref.Resolved() {
			t.Errorf("expected unresolved raw ref")
		}
		if intent.Ref.Raw != "dentist appointment" {
			t.Errorf("expected raw 'dentist appointment', got %q", intent.Ref.Raw)
		}
	})

	t.Run("bare verb clarifies", func(t *testing.T) {
		intent, ok := c.classifyByRules("delete", chat.Analysis{})
		if !ok || intent.Intent != chat.IntentClarify {
			t.Errorf("expected clarify, got %+v", intent)
		}
	})

	t.Run("narration is not a command", func(t *testing.T) {
		if _, ok := c.classifyByRules("I finished the report", chat.Analysis{}); ok {
			t.Errorf("expected narration to fall through to the LLM layer")
		}
		if _, ok := c.classifyByRules("I've done the shopping", chat.Analysis{}); ok {
			t.Errorf("expected narration to fall through to the LLM layer")
		}
	})
}

func TestClassifyByRulesUpdate(t *testing.T) {
	c := New(nil, nil, &mockLogger{})

	t.Run("to include extends the description", func(t *testing.T) {
		analysis := chat.Analysis{Mentions: []chat.Mention{{
			Phrase: "that",
			Ref:    chat.TaskRef{Raw: "that", TaskID: 3},
		}}}
		intent, ok := c.classifyByRules("Update that to include organic items", analysis)
		if !ok || intent.Intent != chat.IntentUpdate {
			t.Fatalf("expected update, got %+v", intent)
		}
		if intent.Description != "organic items" {
			t.Errorf("expected description 'organic items', got %q", intent.Description)
		}
		if intent.Ref.TaskID != 3 {
			t.Errorf("expected ref to task 3, got %+v", intent.Ref)
		}
	})

	t.Run("rename sets the title", func(t *testing.T) {
		analysis := chat.Analysis{Mentions: []chat.Mention{{
			Phrase: "task 1",
			Ref:    chat.TaskRef{Raw: "task 1", TaskID: 1},
		}}}
		intent, _ := c.classifyByRules("rename task 1 to call dad", analysis)
		if intent.Intent != chat.IntentUpdate || intent.Title != "call dad" {
			t.Errorf("expected title 'call dad', got %+v", intent)
		}
	})

	t.Run("no new content clarifies", func(t *testing.T) {
		analysis := chat.Analysis{Mentions: []chat.Mention{{
			Phrase: "task 1",
			Ref:    chat.TaskRef{Raw: "task 1", TaskID: 1},
		}}}
		intent, _ := c.classifyByRules("update task 1", analysis)
		if intent.Intent != chat.IntentClarify {
			t.Errorf("expected clarify, got %+v", intent)
		}
	})
}

func TestClassifyByRulesEmpty(t *testing.T) {
	c := New(nil, nil, &mockLogger{})
	intent, ok := c.classifyByRules("   ", chat.Analysis{})
	if !ok || intent.Intent != chat.IntentClarify {
		t.Errorf("expected clarify on empty input, got %+v", intent)
	}
}

// Every complete/delete synonym routes to its intent with the reference
// bound; no phrase in the table silently falls through to the LLM layer.
func TestClassifyByRulesSynonymSweep(t *testing.T) {
	c := New(nil, nil, &mockLogger{})
	table := DefaultSynonyms()
	analysis := chat.Analysis{Mentions: []chat.Mention{{
		Phrase: "task 4",
		Ref:    chat.TaskRef{Raw: "task 4", TaskID: 4},
	}}}

	for _, want := range []chat.Intent{chat.IntentComplete, chat.IntentDelete} {
		for _, phrase := range table[want] {
			utterance := phrase + " task 4"
			intent, ok := c.classifyByRules(utterance, analysis)
			if !ok {
				t.Errorf("%q fell through to the LLM layer", utterance)
				continue
			}
			if intent.Intent != want {
				t.Errorf("%q classified as %s, want %s", utterance, intent.Intent, want)
			}
			if intent.Ref.TaskID != 4 {
				t.Errorf("%q did not bind the reference: %+v", utterance, intent.Ref)
			}
		}
	}
}
