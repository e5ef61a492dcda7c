package resolver

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"todo-assistant/internal/chat"
	"todo-assistant/internal/conversation"
	"todo-assistant/internal/todo"
)

// Resolver maps mention phrases to concrete task IDs using the conversation
// history and a snapshot of the user's tasks. It is pure: same inputs, same
// output, no I/O.
type Resolver struct{}

// New creates a reference resolver.
func New() *Resolver {
	return &Resolver{}
}

var (
	numericRe     = regexp.MustCompile(`(?i)\b(?:task|todo)\s*#?(\d+)\b|#(\d+)\b`)
	descriptiveRe = regexp.MustCompile(`(?i)\bthe\s+(.+?)\s+(?:task|todo|one|item)\b`)
	anaphoraRe    = regexp.MustCompile(`(?i)\b(?:that|this|it)\b(?:\s+(?:task|todo|one|item))?`)
	bareNumberRe  = regexp.MustCompile(`^\s*#?(\d+)\s*$`)
)

var ordinals = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
}

// stopwords are dropped before descriptive matching.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "my": true, "that": true,
	"this": true, "one": true, "task": true, "todo": true, "item": true,
	"to": true, "please": true, "for": true, "about": true,
}

// Analyze detects mention phrases in the utterance and resolves each
// against history and the task snapshot. At most one mention is detected
// per utterance (multi-intent composition is out of scope).
func (r *Resolver) Analyze(utterance string, history []conversation.Message, tasks []todo.Task) chat.Analysis {
	var analysis chat.Analysis

	if m := numericRe.FindStringSubmatch(utterance); m != nil {
		phrase := numericRe.FindString(utterance)
		analysis.Mentions = append(analysis.Mentions, chat.Mention{
			Phrase: phrase,
			Ref:    r.ResolvePhrase(phrase, history, tasks),
		})
		return analysis
	}

	if phrase, ok := detectOrdinal(utterance); ok {
		analysis.Mentions = append(analysis.Mentions, chat.Mention{
			Phrase: phrase,
			Ref:    r.ResolvePhrase(phrase, history, tasks),
		})
		return analysis
	}

	if m := descriptiveRe.FindStringSubmatch(utterance); m != nil {
		phrase := strings.TrimSpace(m[1])
		if !isPronounOnly(phrase) {
			analysis.Mentions = append(analysis.Mentions, chat.Mention{
				Phrase: phrase,
				Ref:    r.ResolvePhrase(phrase, history, tasks),
			})
			return analysis
		}
	}

	if phrase := anaphoraRe.FindString(utterance); phrase != "" {
		analysis.Mentions = append(analysis.Mentions, chat.Mention{
			Phrase: phrase,
			Ref:    r.ResolvePhrase(phrase, history, tasks),
		})
	}

	return analysis
}

// ResolvePhrase resolves a single mention phrase. Resolution order:
// direct/positional number, ordinal, anaphora, descriptive title match.
// Ties at the top similarity score return ambiguous, never a guess.
func (r *Resolver) ResolvePhrase(phrase string, history []conversation.Message, tasks []todo.Task) chat.TaskRef {
	ref := chat.TaskRef{Raw: strings.TrimSpace(phrase)}
	if ref.Raw == "" {
		ref.Unresolved = &chat.Unresolved{Reason: chat.UnresolvedNoMatch}
		return ref
	}

	// Direct numeric reference: "task 1", "#2", "3"
	if n, ok := extractNumber(phrase); ok {
		if taskByID(tasks, n) != nil {
			ref.TaskID = n
			return ref
		}
		// Positional against the most recent listing in this conversation.
		if listing := lastListing(history); len(listing) > 0 {
			if n >= 1 && int(n) <= len(listing) {
				if taskByID(tasks, listing[n-1]) != nil {
					ref.TaskID = listing[n-1]
					return ref
				}
			}
		}
		ref.Unresolved = &chat.Unresolved{Reason: chat.UnresolvedNoMatch}
		return ref
	}

	// Ordinal reference: "the first one", "the last one"
	if pos, ok := extractOrdinal(phrase); ok {
		ids := lastListing(history)
		if len(ids) == 0 {
			ids = snapshotIDs(tasks)
		}
		if len(ids) > 0 {
			if pos == -1 { // "last"
				pos = len(ids)
			}
			if pos >= 1 && pos <= len(ids) && taskByID(tasks, ids[pos-1]) != nil {
				ref.TaskID = ids[pos-1]
				return ref
			}
		}
		ref.Unresolved = &chat.Unresolved{Reason: chat.UnresolvedNoMatch}
		return ref
	}

	// Anaphora: "that" and "it" refer to the single task touched by the most recent
	// prior turn that touched exactly one task.
	if isPronounOnly(phrase) {
		if id, ok := lastSingleTask(history); ok && taskByID(tasks, id) != nil {
			ref.TaskID = id
			return ref
		}
		ref.Unresolved = &chat.Unresolved{Reason: chat.UnresolvedNoRecentReference}
		return ref
	}

	// Descriptive: fuzzy match against titles.
	return r.resolveDescriptive(ref, tasks)
}

// resolveDescriptive scores each task title against the mention tokens.
// Ambiguity is never silently broken: top-score ties are surfaced.
func (r *Resolver) resolveDescriptive(ref chat.TaskRef, tasks []todo.Task) chat.TaskRef {
	tokens := contentTokens(ref.Raw)
	if len(tokens) == 0 {
		ref.Unresolved = &chat.Unresolved{Reason: chat.UnresolvedNoMatch}
		return ref
	}

	best := 0
	var candidates []chat.Candidate
	for _, t := range tasks {
		score := similarity(tokens, ref.Raw, t.Title)
		if score == 0 {
			continue
		}
		if score > best {
			best = score
			candidates = []chat.Candidate{{TaskID: t.ID, Title: t.Title}}
		} else if score == best {
			candidates = append(candidates, chat.Candidate{TaskID: t.ID, Title: t.Title})
		}
	}

	switch len(candidates) {
	case 0:
		ref.Unresolved = &chat.Unresolved{Reason: chat.UnresolvedNoMatch}
	case 1:
		ref.TaskID = candidates[0].TaskID
	default:
		ref.Unresolved = &chat.Unresolved{
			Reason:     chat.UnresolvedAmbiguous,
			Candidates: candidates,
		}
	}
	return ref
}

// similarity scores a title against mention tokens: one point per shared
// token, plus a bonus when one normalized string contains the other.
func similarity(tokens []string, phrase, title string) int {
	titleTokens := contentTokens(title)
	titleSet := make(map[string]bool, len(titleTokens))
	for _, tok := range titleTokens {
		titleSet[tok] = true
	}

	score := 0
	for _, tok := range tokens {
		if titleSet[tok] {
			score++
		}
	}

	normPhrase := strings.Join(tokens, " ")
	normTitle := strings.Join(titleTokens, " ")
	if normPhrase != "" && normTitle != "" &&
		(strings.Contains(normTitle, normPhrase) || strings.Contains(normPhrase, normTitle)) {
		score += 2
	}

	return score
}

// contentTokens lowercases, strips punctuation, and drops stopwords.
func contentTokens(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
	var out []string
	for _, f := range fields {
		if !stopwords[f] {
			out = append(out, f)
		}
	}
	return out
}

func extractNumber(phrase string) (int64, bool) {
	if m := numericRe.FindStringSubmatch(phrase); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		return n, err == nil
	}
	if m := bareNumberRe.FindStringSubmatch(phrase); m != nil {
		n, err := strconv.ParseInt(m[1], 10, 64)
		return n, err == nil
	}
	return 0, false
}

func extractOrdinal(phrase string) (int, bool) {
	for _, tok := range strings.Fields(strings.ToLower(phrase)) {
		tok = strings.Trim(tok, ".,!?")
		if pos, ok := ordinals[tok]; ok {
			return pos, true
		}
		if tok == "last" {
			return -1, true
		}
	}
	return 0, false
}

// detectOrdinal finds an ordinal mention and returns the exact span from
// the utterance, so replies quote the user's own words.
func detectOrdinal(utterance string) (string, bool) {
	lower := strings.ToLower(utterance)

	words := make([]string, 0, len(ordinals)+1)
	for word := range ordinals {
		words = append(words, word)
	}
	words = append(words, "last")
	sort.Strings(words)

	for _, word := range words {
		for _, noun := range []string{" one", " task", " todo"} {
			idx := strings.Index(lower, word+noun)
			if idx < 0 {
				continue
			}
			start := idx
			if strings.HasSuffix(lower[:idx], "the ") {
				start -= len("the ")
			}
			return utterance[start : idx+len(word)+len(noun)], true
		}
	}
	return "", false
}

func isPronounOnly(phrase string) bool {
	for _, tok := range strings.Fields(strings.ToLower(phrase)) {
		switch strings.Trim(tok, ".,!?") {
		case "that", "this", "it", "task", "todo", "one", "item", "the":
		default:
			return false
		}
	}
	return true
}

func taskByID(tasks []todo.Task, id int64) *todo.Task {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}

func snapshotIDs(tasks []todo.Task) []int64 {
	ids := make([]int64, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

// lastListing returns the task IDs shown by the most recent listing turn,
// in display order, by replaying tool-role records from newest to oldest.
func lastListing(history []conversation.Message) []int64 {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role != conversation.RoleTool {
			continue
		}
		var rec conversation.ToolRecord
		if err := json.Unmarshal([]byte(history[i].Content), &rec); err != nil {
			continue
		}
		if len(rec.TaskIDs) > 0 {
			return rec.TaskIDs
		}
	}
	return nil
}

// lastSingleTask returns the task touched by the most recent prior turn
// that touched exactly one task. Turns that listed several tasks are
// skipped, not treated as referents.
func lastSingleTask(history []conversation.Message) (int64, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role != conversation.RoleTool {
			continue
		}
		var rec conversation.ToolRecord
		if err := json.Unmarshal([]byte(history[i].Content), &rec); err != nil {
			continue
		}
		if rec.TaskID != 0 {
			return rec.TaskID, true
		}
	}
	return 0, false
}
