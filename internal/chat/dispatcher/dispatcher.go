package dispatcher

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"todo-assistant/internal/chat"
	"todo-assistant/internal/model"
	"todo-assistant/internal/todo"
	"todo-assistant/pkg/log"
)

// Dispatcher validates a resolved intent and performs at most one operative
// task-store call for it. Clarify, reject, and chat intents never reach the
// store; handing one to Dispatch is a programming defect and fails loudly.
type Dispatcher struct {
	tasks todo.UseCase
	l     log.Logger
}

// New creates a Dispatcher over the task usecase.
func New(tasks todo.UseCase, l log.Logger) *Dispatcher {
	return &Dispatcher{tasks: tasks, l: l}
}

// Dispatch executes one resolved intent. All anticipated failures come back
// as outcomes; the returned error is reserved for invariant violations.
func (d *Dispatcher) Dispatch(ctx context.Context, sc model.Scope, intent chat.ResolvedIntent) (chat.Outcome, error) {
	switch intent.Intent {
	case chat.IntentClarify, chat.IntentReject, chat.IntentChat:
		return chat.Outcome{}, chat.ErrUnvalidatedDispatch
	}

	// Unresolved references never touch storage.
	if intent.Intent.NeedsRef() && !intent.Ref.Resolved() {
		return unresolvedOutcome(intent), nil
	}

	// A turn cancelled before the store call is issued must not issue it.
	if err := ctx.Err(); err != nil {
		return d.failure(ctx, intent, err), nil
	}

	switch intent.Intent {
	case chat.IntentCreate:
		return d.dispatchCreate(ctx, sc, intent)
	case chat.IntentList:
		return d.dispatchList(ctx, sc, intent)
	case chat.IntentComplete:
		return d.dispatchComplete(ctx, sc, intent)
	case chat.IntentDelete:
		return d.dispatchDelete(ctx, sc, intent)
	case chat.IntentUpdate:
		return d.dispatchUpdate(ctx, sc, intent)
	}

	return chat.Outcome{}, chat.ErrIntentUnrecognized
}

func (d *Dispatcher) dispatchCreate(ctx context.Context, sc model.Scope, intent chat.ResolvedIntent) (chat.Outcome, error) {
	out, err := d.tasks.Create(ctx, sc, todo.CreateTaskInput{
		Title:       intent.Title,
		Description: intent.Description,
	})
	if errors.Is(err, todo.ErrEmptyTitle) {
		return chat.Outcome{
			Kind:   chat.OutcomeClarify,
			Action: intent.Intent,
			Reason: "missing task title",
		}, nil
	}
	if err != nil {
		return d.failure(ctx, intent, err), nil
	}
	return chat.Outcome{
		Kind:   chat.OutcomeSuccess,
		Action: chat.IntentCreate,
		Task:   out.Task,
	}, nil
}

// dispatchList is idempotent, so a single retry on store outage is allowed.
func (d *Dispatcher) dispatchList(ctx context.Context, sc model.Scope, intent chat.ResolvedIntent) (chat.Outcome, error) {
	out, err := d.tasks.List(ctx, sc, todo.ListTasksInput{Filter: intent.Filter})
	if errors.Is(err, todo.ErrStoreUnavailable) {
		out, err = d.tasks.List(ctx, sc, todo.ListTasksInput{Filter: intent.Filter})
	}
	if err != nil {
		return d.failure(ctx, intent, err), nil
	}
	return chat.Outcome{
		Kind:   chat.OutcomeSuccess,
		Action: chat.IntentList,
		Tasks:  out.Tasks,
		Filter: intent.Filter,
	}, nil
}

func (d *Dispatcher) dispatchComplete(ctx context.Context, sc model.Scope, intent chat.ResolvedIntent) (chat.Outcome, error) {
	before, outcome, err := d.revalidate(ctx, sc, intent)
	if outcome != nil || err != nil {
		return deref(outcome), err
	}

	out, err := d.tasks.Complete(ctx, sc, intent.Ref.TaskID)
	if errors.Is(err, todo.ErrTaskNotFound) {
		return notFoundOutcome(intent), nil
	}
	if err != nil {
		return d.failure(ctx, intent, err), nil
	}
	return chat.Outcome{
		Kind:   chat.OutcomeSuccess,
		Action: chat.IntentComplete,
		Task:   out.Task,
		Before: before,
	}, nil
}

func (d *Dispatcher) dispatchDelete(ctx context.Context, sc model.Scope, intent chat.ResolvedIntent) (chat.Outcome, error) {
	before, outcome, err := d.revalidate(ctx, sc, intent)
	if outcome != nil || err != nil {
		return deref(outcome), err
	}

	err = d.tasks.Delete(ctx, sc, intent.Ref.TaskID)
	if errors.Is(err, todo.ErrTaskNotFound) {
		return notFoundOutcome(intent), nil
	}
	if err != nil {
		return d.failure(ctx, intent, err), nil
	}
	return chat.Outcome{
		Kind:   chat.OutcomeSuccess,
		Action: chat.IntentDelete,
		Task:   *before,
		Before: before,
	}, nil
}

func (d *Dispatcher) dispatchUpdate(ctx context.Context, sc model.Scope, intent chat.ResolvedIntent) (chat.Outcome, error) {
	before, outcome, err := d.revalidate(ctx, sc, intent)
	if outcome != nil || err != nil {
		return deref(outcome), err
	}

	input := todo.UpdateTaskInput{
		ID:          intent.Ref.TaskID,
		Title:       intent.Title,
		Description: mergeDescription(before.Description, intent.Description),
	}

	out, err := d.tasks.Update(ctx, sc, input)
	if errors.Is(err, todo.ErrTaskNotFound) {
		return notFoundOutcome(intent), nil
	}
	if err != nil {
		return d.failure(ctx, intent, err), nil
	}
	return chat.Outcome{
		Kind:   chat.OutcomeSuccess,
		Action: chat.IntentUpdate,
		Task:   out.Task,
		Before: before,
	}, nil
}

// revalidate re-checks existence against a snapshot fetched immediately
// before the operative call (read-validate-then-mutate; optimistic). The
// read is idempotent and retried once on store outage.
func (d *Dispatcher) revalidate(ctx context.Context, sc model.Scope, intent chat.ResolvedIntent) (*todo.Task, *chat.Outcome, error) {
	detail, err := d.tasks.Detail(ctx, sc, intent.Ref.TaskID)
	if errors.Is(err, todo.ErrStoreUnavailable) {
		detail, err = d.tasks.Detail(ctx, sc, intent.Ref.TaskID)
	}
	if errors.Is(err, todo.ErrTaskNotFound) {
		o := notFoundOutcome(intent)
		return nil, &o, nil
	}
	if err != nil {
		o := d.failure(ctx, intent, err)
		return nil, &o, nil
	}

	// Revalidation done; do not issue the mutation after cancellation.
	if err := ctx.Err(); err != nil {
		o := d.failure(ctx, intent, err)
		return nil, &o, nil
	}

	before := detail.Task
	return &before, nil, nil
}

// failure packages an unexpected error with a correlation ID for support.
func (d *Dispatcher) failure(ctx context.Context, intent chat.ResolvedIntent, err error) chat.Outcome {
	id := uuid.NewString()
	d.l.Errorf(ctx, "dispatcher: %s failed (correlation_id=%s): %v", intent.Intent, id, err)
	return chat.Outcome{
		Kind:          chat.OutcomeToolFailure,
		Action:        intent.Intent,
		CorrelationID: id,
	}
}

func unresolvedOutcome(intent chat.ResolvedIntent) chat.Outcome {
	u := intent.Ref.Unresolved
	if u != nil && u.Reason == chat.UnresolvedAmbiguous {
		return chat.Outcome{
			Kind:       chat.OutcomeAmbiguous,
			Action:     intent.Intent,
			Candidates: u.Candidates,
			Reference:  intent.Ref.Raw,
		}
	}
	return notFoundOutcome(intent)
}

func notFoundOutcome(intent chat.ResolvedIntent) chat.Outcome {
	return chat.Outcome{
		Kind:      chat.OutcomeNotFound,
		Action:    intent.Intent,
		Reference: intent.Ref.Raw,
	}
}

func mergeDescription(existing, addition string) string {
	if addition == "" {
		return ""
	}
	if existing == "" {
		return addition
	}
	return existing + "; " + addition
}

func deref(o *chat.Outcome) chat.Outcome {
	if o == nil {
		return chat.Outcome{}
	}
	return *o
}
