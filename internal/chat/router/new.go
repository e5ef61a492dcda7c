package router

import (
	"context"

	"todo-assistant/internal/chat"
	"todo-assistant/internal/conversation"
	"todo-assistant/internal/todo"
	"todo-assistant/pkg/llmprovider"
	"todo-assistant/pkg/log"
)

// LLM is the classification capability the router consumes. Satisfied by
// *llmprovider.Manager; treated as unreliable: malformed output becomes a
// clarify, never a crash.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Router is the interface for intent classification.
type Router interface {
	Classify(ctx context.Context, utterance string, analysis chat.Analysis, history []conversation.Message, tasks []todo.Task) (chat.ResolvedIntent, error)
}

// Classifier turns an utterance plus resolved references into a structured
// intent. A deterministic rule layer runs first; utterances the rules
// cannot settle go to the LLM.
type Classifier struct {
	synonyms SynonymTable
	llm      LLM // nil: rule-only mode, unknown utterances clarify
	l        log.Logger
}

var _ Router = (*Classifier)(nil)

// New creates a Classifier with the given synonym table and optional LLM.
func New(synonyms SynonymTable, llm LLM, l log.Logger) *Classifier {
	if synonyms == nil {
		synonyms = DefaultSynonyms()
	}
	return &Classifier{
		synonyms: synonyms,
		llm:      llm,
		l:        l,
	}
}
