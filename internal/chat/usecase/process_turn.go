package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"

	"todo-assistant/internal/chat"
	"todo-assistant/internal/conversation"
	"todo-assistant/internal/model"
	"todo-assistant/internal/todo"
)

// ProcessTurn handles one utterance: log it, read context, resolve and
// classify, dispatch at most one task operation, compose the reply, and log
// the reply. Failures past the user-message append become reply text, not
// errors, so the conversation never ends without an assistant message.
func (uc *implUseCase) ProcessTurn(ctx context.Context, sc model.Scope, input chat.TurnInput) (chat.TurnOutput, error) {
	utterance := strings.TrimSpace(input.Utterance)
	if utterance == "" {
		return chat.TurnOutput{}, chat.ErrEmptyUtterance
	}

	conv, err := uc.conversationFor(ctx, sc, input.ConversationID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProcessTurn conversation: %v", err)
		return chat.TurnOutput{}, err
	}

	// The inbound message is logged before any processing so the log
	// reflects what the user said even when the turn fails later.
	if _, err := uc.conv.Append(ctx, sc, conv.ID, conversation.RoleUser, utterance); err != nil {
		uc.l.Errorf(ctx, "uc.ProcessTurn append user: %v", err)
		return chat.TurnOutput{}, err
	}

	outcome := uc.runTurn(ctx, sc, conv.ID, utterance)
	reply := uc.composer.Compose(outcome)

	if _, err := uc.conv.Append(ctx, sc, conv.ID, conversation.RoleAssistant, reply); err != nil {
		uc.l.Errorf(ctx, "uc.ProcessTurn append assistant: %v", err)
		return chat.TurnOutput{}, err
	}

	return chat.TurnOutput{
		ConversationID: conv.ID,
		Reply:          reply,
		Outcome:        outcome,
	}, nil
}

// runTurn performs resolution, classification, and dispatch. It always
// returns an outcome; infrastructure failures come back as tool-failure
// outcomes with a correlation ID.
func (uc *implUseCase) runTurn(ctx context.Context, sc model.Scope, convID, utterance string) chat.Outcome {
	history, err := uc.readHistory(ctx, sc, convID)
	if err != nil {
		return uc.infraFailure(ctx, "read history", err)
	}
	history = priorHistory(history, utterance)

	tasks, err := uc.snapshotTasks(ctx, sc)
	if err != nil {
		return uc.infraFailure(ctx, "task snapshot", err)
	}

	analysis := uc.resolver.Analyze(utterance, history, tasks)

	intent, err := uc.router.Classify(ctx, utterance, analysis, history, tasks)
	if err != nil {
		return uc.infraFailure(ctx, "classify", err)
	}

	// References the classifier left raw go through the resolver before
	// dispatch; dispatch never sees a guessed ID.
	if intent.Intent.NeedsRef() && !intent.Ref.Resolved() && intent.Ref.Raw != "" {
		intent.Ref = uc.resolver.ResolvePhrase(intent.Ref.Raw, history, tasks)
	}

	switch intent.Intent {
	case chat.IntentChat:
		return chat.Outcome{Kind: chat.OutcomeChat, Action: chat.IntentChat, Reply: intent.Reply}
	case chat.IntentClarify:
		return chat.Outcome{Kind: chat.OutcomeClarify, Action: chat.IntentClarify, Reason: intent.Reason}
	case chat.IntentReject:
		return chat.Outcome{Kind: chat.OutcomeReject, Action: chat.IntentReject, Reason: intent.Reason}
	}

	outcome, err := uc.dispatcher.Dispatch(ctx, sc, intent)
	if err != nil {
		// Dispatch errors are defects, not user conditions. They still must
		// not leave the turn without a reply.
		return uc.infraFailure(ctx, "dispatch", err)
	}

	if outcome.Kind == chat.OutcomeSuccess {
		uc.appendToolRecord(ctx, sc, convID, outcome)
	}

	return outcome
}

// conversationFor returns the addressed conversation, or the user's most
// recently active one (created if needed) when no ID was given.
func (uc *implUseCase) conversationFor(ctx context.Context, sc model.Scope, id string) (conversation.Conversation, error) {
	if id != "" {
		return uc.conv.Get(ctx, sc, id)
	}
	return uc.conv.EnsureConversation(ctx, sc)
}

// readHistory loads recent turns. Reads are idempotent, so one retry on a
// storage outage is allowed.
func (uc *implUseCase) readHistory(ctx context.Context, sc model.Scope, convID string) ([]conversation.Message, error) {
	history, err := uc.conv.ReadRecent(ctx, sc, convID, uc.historyLimit)
	if errors.Is(err, conversation.ErrStorageUnavailable) {
		history, err = uc.conv.ReadRecent(ctx, sc, convID, uc.historyLimit)
	}
	return history, err
}

func (uc *implUseCase) snapshotTasks(ctx context.Context, sc model.Scope) ([]todo.Task, error) {
	out, err := uc.tasks.List(ctx, sc, todo.ListTasksInput{Filter: todo.FilterAll})
	if errors.Is(err, todo.ErrStoreUnavailable) {
		out, err = uc.tasks.List(ctx, sc, todo.ListTasksInput{Filter: todo.FilterAll})
	}
	if err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

// appendToolRecord logs which task the turn touched so later turns can
// resolve "that task" and positional references. A failed record append is
// logged and skipped: the operation already succeeded and the user gets
// their reply either way.
func (uc *implUseCase) appendToolRecord(ctx context.Context, sc model.Scope, convID string, outcome chat.Outcome) {
	rec := conversation.ToolRecord{Action: string(outcome.Action)}
	if outcome.Action == chat.IntentList {
		for _, t := range outcome.Tasks {
			rec.TaskIDs = append(rec.TaskIDs, t.ID)
		}
	} else {
		rec.TaskID = outcome.Task.ID
		rec.Title = outcome.Task.Title
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProcessTurn marshal tool record: %v", err)
		return
	}
	if _, err := uc.conv.Append(ctx, sc, convID, conversation.RoleTool, string(payload)); err != nil {
		uc.l.Warnf(ctx, "uc.ProcessTurn append tool record: %v", err)
	}
}

// infraFailure packages an infrastructure error as a reply-able outcome.
func (uc *implUseCase) infraFailure(ctx context.Context, stage string, err error) chat.Outcome {
	id := uuid.NewString()
	uc.l.Errorf(ctx, "uc.ProcessTurn %s failed (correlation_id=%s): %v", stage, id, err)
	return chat.Outcome{
		Kind:          chat.OutcomeToolFailure,
		CorrelationID: id,
	}
}

// priorHistory drops the just-appended copy of the current utterance so
// resolution and classification see only prior turns.
func priorHistory(history []conversation.Message, utterance string) []conversation.Message {
	if n := len(history); n > 0 &&
		history[n-1].Role == conversation.RoleUser &&
		history[n-1].Content == utterance {
		return history[:n-1]
	}
	return history
}
