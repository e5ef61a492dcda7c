package composer

import (
	"fmt"
	"strings"

	"todo-assistant/internal/chat"
	"todo-assistant/internal/todo"
)

// Composer renders an outcome into user-facing reply text. Templates are
// deterministic; the only free-form text is the chat passthrough reply.
type Composer struct{}

// New creates a Composer.
func New() *Composer {
	return &Composer{}
}

// Compose renders the reply for one outcome.
func (c *Composer) Compose(outcome chat.Outcome) string {
	switch outcome.Kind {
	case chat.OutcomeSuccess:
		return c.composeSuccess(outcome)
	case chat.OutcomeNotFound:
		return c.composeNotFound(outcome)
	case chat.OutcomeAmbiguous:
		return c.composeAmbiguous(outcome)
	case chat.OutcomeClarify:
		return c.composeClarify(outcome)
	case chat.OutcomeReject:
		return "I can only help with managing your todo list. I can add, list, update, complete, or delete tasks for you."
	case chat.OutcomeToolFailure:
		return fmt.Sprintf("Sorry, something went wrong while handling that. Please try again in a moment. (error ID: %s)", outcome.CorrelationID)
	case chat.OutcomeChat:
		if outcome.Reply != "" {
			return outcome.Reply
		}
		return "I'm your todo assistant. Ask me to add, list, update, complete, or delete tasks."
	}
	return "Sorry, I'm not sure how to respond to that."
}

func (c *Composer) composeSuccess(outcome chat.Outcome) string {
	switch outcome.Action {
	case chat.IntentCreate:
		return fmt.Sprintf("I've added '%s' to your todo list.", outcome.Task.Title)
	case chat.IntentComplete:
		return fmt.Sprintf("I've marked '%s' as completed.", outcome.Task.Title)
	case chat.IntentDelete:
		return fmt.Sprintf("I've deleted '%s' from your todo list.", outcome.Task.Title)
	case chat.IntentUpdate:
		return c.composeUpdate(outcome)
	case chat.IntentList:
		return c.composeList(outcome)
	}
	return "Done."
}

func (c *Composer) composeUpdate(outcome chat.Outcome) string {
	if outcome.Before != nil && outcome.Before.Title != outcome.Task.Title {
		return fmt.Sprintf("I've renamed '%s' to '%s'.", outcome.Before.Title, outcome.Task.Title)
	}
	return fmt.Sprintf("I've updated '%s'.", outcome.Task.Title)
}

func (c *Composer) composeList(outcome chat.Outcome) string {
	if len(outcome.Tasks) == 0 {
		switch outcome.Filter {
		case todo.FilterPending:
			return "You have no pending tasks. Nice work!"
		case todo.FilterCompleted:
			return "You haven't completed any tasks yet."
		}
		return "Your todo list is empty. Ask me to add something!"
	}

	var b strings.Builder
	switch outcome.Filter {
	case todo.FilterPending:
		b.WriteString("Here are your pending tasks:\n")
	case todo.FilterCompleted:
		b.WriteString("Here are your completed tasks:\n")
	default:
		b.WriteString("Here are your tasks:\n")
	}
	for _, t := range outcome.Tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Fprintf(&b, "%d. [%s] %s", t.ID, mark, t.Title)
		if t.Description != "" {
			fmt.Fprintf(&b, " (%s)", t.Description)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (c *Composer) composeNotFound(outcome chat.Outcome) string {
	if outcome.Reference != "" {
		return fmt.Sprintf("I couldn't find a task matching \"%s\". Say \"list my tasks\" to see what's on your list.", outcome.Reference)
	}
	return "I couldn't find that task. Say \"list my tasks\" to see what's on your list."
}

func (c *Composer) composeAmbiguous(outcome chat.Outcome) string {
	var b strings.Builder
	if outcome.Reference != "" {
		fmt.Fprintf(&b, "I found more than one task matching \"%s\":\n", outcome.Reference)
	} else {
		b.WriteString("I found more than one matching task:\n")
	}
	for _, cand := range outcome.Candidates {
		fmt.Fprintf(&b, "%d. %s\n", cand.TaskID, cand.Title)
	}
	b.WriteString("Which one did you mean? You can reply with the task number.")
	return b.String()
}

func (c *Composer) composeClarify(outcome chat.Outcome) string {
	switch outcome.Reason {
	case "missing task title":
		return "What would you like the task to say?"
	case "missing task reference":
		return "Which task do you mean? You can say the task number or its name."
	case "missing new task content":
		return "What would you like to change it to?"
	}
	if outcome.Reason != "" {
		return fmt.Sprintf("I need a bit more detail: %s. Could you rephrase?", outcome.Reason)
	}
	return "I'm not sure what you'd like me to do. Could you rephrase?"
}
