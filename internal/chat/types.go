package chat

import "todo-assistant/internal/todo"

// Intent is the canonical action extracted from an utterance.
type Intent string

const (
	IntentCreate   Intent = "create"
	IntentList     Intent = "list"
	IntentComplete Intent = "complete"
	IntentDelete   Intent = "delete"
	IntentUpdate   Intent = "update"
	IntentClarify  Intent = "clarify"
	IntentReject   Intent = "reject"

	// IntentChat is the none-of-the-above branch: greetings, questions
	// about the assistant, small talk. Answered conversationally, never
	// dispatched to the task store.
	IntentChat Intent = "chat"
)

// Mutating reports whether the intent performs a task mutation.
func (i Intent) Mutating() bool {
	switch i {
	case IntentCreate, IntentComplete, IntentDelete, IntentUpdate:
		return true
	}
	return false
}

// NeedsRef reports whether the intent requires a task reference.
func (i Intent) NeedsRef() bool {
	switch i {
	case IntentComplete, IntentDelete, IntentUpdate:
		return true
	}
	return false
}

// UnresolvedReason explains why a mention could not be resolved.
type UnresolvedReason string

const (
	UnresolvedNoMatch           UnresolvedReason = "no_match"
	UnresolvedAmbiguous         UnresolvedReason = "ambiguous"
	UnresolvedNoRecentReference UnresolvedReason = "no_recent_reference"
)

// Candidate is one possible referent for an ambiguous mention.
type Candidate struct {
	TaskID int64
	Title  string
}

// TaskRef is a reference to a task: either a concrete ID or an unresolved
// mention with the reason resolution failed.
type TaskRef struct {
	Raw        string // the mention phrase as uttered
	TaskID     int64  // resolved ID; 0 when unresolved
	Unresolved *Unresolved
}

// Resolved reports whether the reference points at a concrete task.
func (r TaskRef) Resolved() bool {
	return r.TaskID != 0 && r.Unresolved == nil
}

// Unresolved carries the failure mode of reference resolution.
type Unresolved struct {
	Reason     UnresolvedReason
	Candidates []Candidate // populated for ambiguous
}

// Mention is a detected reference phrase with its resolution.
type Mention struct {
	Phrase string
	Ref    TaskRef
}

// Analysis is the resolver's reading of one utterance against history and
// the current task snapshot.
type Analysis struct {
	Mentions []Mention
}

// FirstRef returns the first detected mention's reference, if any.
func (a Analysis) FirstRef() (TaskRef, bool) {
	if len(a.Mentions) == 0 {
		return TaskRef{}, false
	}
	return a.Mentions[0].Ref, true
}

// ResolvedIntent is the structured, validated representation of what the
// user wants done. Transient: built per turn, never persisted.
type ResolvedIntent struct {
	Intent      Intent
	Title       string
	Description string
	Filter      todo.Filter
	Ref         TaskRef
	Reason      string // clarify/reject: the specific missing slot or refusal reason
	Reply       string // chat: the conversational answer
}

// OutcomeKind discriminates dispatch results.
type OutcomeKind string

const (
	OutcomeSuccess     OutcomeKind = "success"
	OutcomeNotFound    OutcomeKind = "not_found"
	OutcomeAmbiguous   OutcomeKind = "ambiguous"
	OutcomeClarify     OutcomeKind = "clarify"
	OutcomeReject      OutcomeKind = "reject"
	OutcomeToolFailure OutcomeKind = "tool_failure"
	OutcomeChat        OutcomeKind = "chat"
)

// Outcome is the packaged result of dispatching one resolved intent.
type Outcome struct {
	Kind          OutcomeKind
	Action        Intent
	Task          todo.Task  // affected task, after state
	Before        *todo.Task // before state for mutations on existing tasks
	Tasks         []todo.Task
	Filter        todo.Filter
	Candidates    []Candidate
	Reference     string // raw mention, for not-found wording
	Reason        string // clarify/reject reason
	Reply         string // chat reply passthrough
	CorrelationID string // tool failure support identifier
}

// TurnInput is one inbound utterance.
type TurnInput struct {
	ConversationID string // empty: reuse or create the user's open conversation
	Utterance      string
}

// TurnOutput is the completed turn: reply text plus the logged messages.
type TurnOutput struct {
	ConversationID string
	Reply          string
	Outcome        Outcome
}
