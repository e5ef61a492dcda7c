package chat

import (
	"context"

	"todo-assistant/internal/model"
)

// UseCase is the turn engine: one call processes one utterance end to end
// and always leaves the conversation log consistent with the task store.
type UseCase interface {
	ProcessTurn(ctx context.Context, sc model.Scope, input TurnInput) (TurnOutput, error)
}
