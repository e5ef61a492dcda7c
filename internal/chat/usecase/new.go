package usecase

import (
	"context"

	"todo-assistant/internal/chat"
	"todo-assistant/internal/chat/resolver"
	"todo-assistant/internal/chat/router"
	"todo-assistant/internal/conversation"
	"todo-assistant/internal/model"
	"todo-assistant/internal/todo"
	"todo-assistant/pkg/log"
)

// Dispatcher executes one validated intent against the task store.
type Dispatcher interface {
	Dispatch(ctx context.Context, sc model.Scope, intent chat.ResolvedIntent) (chat.Outcome, error)
}

// Composer renders an outcome into reply text.
type Composer interface {
	Compose(outcome chat.Outcome) string
}

type implUseCase struct {
	conv         conversation.Log
	tasks        todo.UseCase
	resolver     *resolver.Resolver
	router       router.Router
	dispatcher   Dispatcher
	composer     Composer
	historyLimit int
	l            log.Logger
}

// New creates the turn engine.
func New(
	conv conversation.Log,
	tasks todo.UseCase,
	res *resolver.Resolver,
	rt router.Router,
	disp Dispatcher,
	comp Composer,
	historyLimit int,
	l log.Logger,
) chat.UseCase {
	if historyLimit <= 0 {
		historyLimit = 10
	}
	return &implUseCase{
		conv:         conv,
		tasks:        tasks,
		resolver:     res,
		router:       rt,
		dispatcher:   disp,
		composer:     comp,
		historyLimit: historyLimit,
		l:            l,
	}
}
