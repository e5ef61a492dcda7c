package router

import (
	"regexp"
	"strings"

	"todo-assistant/internal/chat"
	"todo-assistant/internal/todo"
)

// narrationRe matches first-person past-tense statements ("I finished the
// report", "I'm done with it"). These are information, not commands: a
// mutating action requires an imperative or second-person framing.
var narrationRe = regexp.MustCompile(`(?i)^\s*i(?:'ve|'m|\s+(?:have|am|just))?\s+(?:just\s+)?(?:\w+ed|done|finished)\b`)

// createTailRe strips create-verb prefixes down to the task title:
// "add a task to buy groceries" -> "buy groceries".
var createTailRe = regexp.MustCompile(`(?i)^(?:a\s+|another\s+|the\s+)?(?:new\s+)?(?:task|todo|item|reminder)?\s*(?:to|for|:)?\s*`)

// classifyByRules is the deterministic layer. ok=false means the rules
// could not settle the utterance and the LLM layer should decide.
func (c *Classifier) classifyByRules(utterance string, analysis chat.Analysis) (chat.ResolvedIntent, bool) {
	trimmed := strings.TrimSpace(utterance)
	if trimmed == "" {
		return chat.ResolvedIntent{
			Intent: chat.IntentClarify,
			Reason: "empty message",
		}, true
	}

	// Past-tense narration is never an implicit command.
	if narrationRe.MatchString(trimmed) {
		return chat.ResolvedIntent{}, false
	}

	match, ok := c.synonyms.firstMatch(trimmed)
	if !ok {
		return chat.ResolvedIntent{}, false
	}

	switch match.intent {
	case chat.IntentCreate:
		return c.ruleCreate(trimmed, match), true
	case chat.IntentList:
		return c.ruleList(trimmed), true
	case chat.IntentComplete, chat.IntentDelete:
		return c.ruleMutation(match.intent, trimmed, match, analysis), true
	case chat.IntentUpdate:
		return c.ruleUpdate(trimmed, match, analysis), true
	}

	return chat.ResolvedIntent{}, false
}

// ruleCreate extracts the title from everything after the create verb.
func (c *Classifier) ruleCreate(utterance string, match matchEntry) chat.ResolvedIntent {
	tail := tailAfter(utterance, match.phrase)
	title := strings.TrimSpace(createTailRe.ReplaceAllString(tail, ""))
	title = strings.Trim(title, `"'`)

	if title == "" {
		return chat.ResolvedIntent{
			Intent: chat.IntentClarify,
			Reason: "missing task title",
		}
	}

	return chat.ResolvedIntent{
		Intent: chat.IntentCreate,
		Title:  title,
	}
}

// ruleList picks the status filter from filter adjectives.
func (c *Classifier) ruleList(utterance string) chat.ResolvedIntent {
	lower := strings.ToLower(utterance)
	filter := todo.FilterAll
	switch {
	case containsAny(lower, "pending", "incomplete", "unfinished", "open", "remaining"):
		filter = todo.FilterPending
	case containsAny(lower, "completed", "done", "finished"):
		filter = todo.FilterCompleted
	}
	return chat.ResolvedIntent{
		Intent: chat.IntentList,
		Filter: filter,
	}
}

// ruleMutation binds complete/delete to the resolved reference.
func (c *Classifier) ruleMutation(intent chat.Intent, utterance string, match matchEntry, analysis chat.Analysis) chat.ResolvedIntent {
	ref, ok := analysis.FirstRef()
	if !ok {
		// No mention detected anywhere in the utterance: the remainder
		// after the verb is the only candidate phrase.
		tail := strings.TrimSpace(tailAfter(utterance, match.phrase))
		if tail == "" {
			return chat.ResolvedIntent{
				Intent: chat.IntentClarify,
				Reason: "missing task reference",
			}
		}
		// The engine resolves raw references through the resolver; an
		// unresolved marker keeps dispatch from guessing.
		ref = chat.TaskRef{Raw: tail, Unresolved: &chat.Unresolved{Reason: chat.UnresolvedNoMatch}}
	}

	return chat.ResolvedIntent{
		Intent: intent,
		Ref:    ref,
	}
}

var includeRe = regexp.MustCompile(`(?i)\bto\s+include\s+(.+)$`)
var renameToRe = regexp.MustCompile(`(?i)\bto\s+(?:say\s+|be\s+)?(.+)$`)

// ruleUpdate binds the reference and extracts the new title or description.
// "update that to include organic items" -> description; "rename X to Y" -> title.
func (c *Classifier) ruleUpdate(utterance string, match matchEntry, analysis chat.Analysis) chat.ResolvedIntent {
	out := chat.ResolvedIntent{Intent: chat.IntentUpdate}

	if ref, ok := analysis.FirstRef(); ok {
		out.Ref = ref
	}

	if m := includeRe.FindStringSubmatch(utterance); m != nil {
		out.Description = strings.TrimSpace(m[1])
	} else if m := renameToRe.FindStringSubmatch(utterance); m != nil {
		out.Title = strings.Trim(strings.TrimSpace(m[1]), `"'`)
	}

	if out.Ref.Raw == "" && out.Ref.TaskID == 0 {
		tail := strings.TrimSpace(tailAfter(utterance, match.phrase))
		// Strip the new-value clause so only the reference phrase is left.
		if idx := strings.Index(strings.ToLower(tail), " to "); idx > 0 {
			tail = strings.TrimSpace(tail[:idx])
		}
		if tail == "" {
			return chat.ResolvedIntent{
				Intent: chat.IntentClarify,
				Reason: "missing task reference",
			}
		}
		out.Ref = chat.TaskRef{Raw: tail, Unresolved: &chat.Unresolved{Reason: chat.UnresolvedNoMatch}}
	}

	if out.Title == "" && out.Description == "" {
		return chat.ResolvedIntent{
			Intent: chat.IntentClarify,
			Reason: "missing new task content",
		}
	}

	return out
}

// tailAfter returns the utterance text following the matched phrase.
func tailAfter(utterance, phrase string) string {
	lower := strings.ToLower(utterance)
	idx := strings.Index(lower, phrase)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(utterance[idx+len(phrase):])
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
