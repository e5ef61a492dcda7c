package router

import (
	"sort"
	"strings"

	"todo-assistant/internal/chat"
)

// SynonymTable maps canonical actions to the surface phrases that trigger
// them. It is the single source of truth for action equivalence: the rule
// layer, the LLM prompt, and the tests all derive from it.
type SynonymTable map[chat.Intent][]string

// DefaultSynonyms covers the phrasing the assistant understands out of the
// box. Multi-word entries are matched before single words.
func DefaultSynonyms() SynonymTable {
	return SynonymTable{
		chat.IntentCreate: {
			"add", "create", "new task", "make a task", "remember to",
			"remind me to", "note down", "put down",
		},
		chat.IntentList: {
			"list", "show", "view", "display", "see my",
			"what are my", "what do i have", "what's on my",
		},
		chat.IntentComplete: {
			"complete", "finish", "done with", "mark as done",
			"mark as complete", "mark as completed", "check off",
			"tick off", "mark", "close out",
		},
		chat.IntentDelete: {
			"delete", "remove", "get rid of", "drop", "erase",
			"cancel", "scrap", "throw away",
		},
		chat.IntentUpdate: {
			"update", "change", "modify", "edit", "rename", "revise",
		},
	}
}

// matchEntry is one phrase occurrence in an utterance.
type matchEntry struct {
	intent chat.Intent
	phrase string
	pos    int
}

// firstMatch finds the earliest synonym occurrence in the utterance.
// When two phrases start at the same position the longer one wins, so
// "mark as done" beats "mark".
func (t SynonymTable) firstMatch(utterance string) (matchEntry, bool) {
	lower := " " + strings.ToLower(utterance) + " "

	var matches []matchEntry
	for intent, phrases := range t {
		for _, phrase := range phrases {
			idx := indexWord(lower, phrase)
			if idx < 0 {
				continue
			}
			matches = append(matches, matchEntry{intent: intent, phrase: phrase, pos: idx})
		}
	}
	if len(matches) == 0 {
		return matchEntry{}, false
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].pos != matches[j].pos {
			return matches[i].pos < matches[j].pos
		}
		return len(matches[i].phrase) > len(matches[j].phrase)
	})
	return matches[0], true
}

// indexWord finds phrase as a whole-word occurrence in lower (which is
// padded with spaces). Returns -1 when absent.
func indexWord(lower, phrase string) int {
	needle := " " + phrase + " "
	if idx := strings.Index(lower, needle); idx >= 0 {
		return idx
	}
	// Allow trailing punctuation after the phrase.
	for _, punct := range []string{".", ",", "!", "?"} {
		if idx := strings.Index(lower, " "+phrase+punct); idx >= 0 {
			return idx
		}
	}
	return -1
}
