package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"todo-assistant/internal/todo"
	"todo-assistant/internal/todo/repository"
)

// Store is an in-memory implementation of the task repository contract.
// Tasks are held in per-user maps guarded by a single mutex; IDs are
// per-user sequences starting at 1. Safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	tasks map[string]map[int64]todo.Task
	seq   map[string]int64

	// failing, when set, makes every call report ErrStoreUnavailable.
	// Used by tests to exercise the storage failure branch.
	failing bool
}

var _ repository.Repository = (*Store)(nil)

// New creates an empty in-memory task store.
func New() *Store {
	return &Store{
		tasks: make(map[string]map[int64]todo.Task),
		seq:   make(map[string]int64),
	}
}

// SetFailing toggles simulated store outage.
func (s *Store) SetFailing(failing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = failing
}

func (s *Store) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (todo.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failing {
		return todo.Task{}, todo.ErrStoreUnavailable
	}

	if s.tasks[opt.UserID] == nil {
		s.tasks[opt.UserID] = make(map[int64]todo.Task)
	}

	s.seq[opt.UserID]++
	now := time.Now()
	task := todo.Task{
		ID:          s.seq[opt.UserID],
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.tasks[opt.UserID][task.ID] = task

	return task, nil
}

func (s *Store) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (todo.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failing {
		return todo.Task{}, todo.ErrStoreUnavailable
	}

	task, ok := s.tasks[opt.UserID][opt.ID]
	if !ok {
		return todo.Task{}, todo.ErrTaskNotFound
	}
	return task, nil
}

func (s *Store) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]todo.Task, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failing {
		return nil, 0, todo.ErrStoreUnavailable
	}

	var out []todo.Task
	for _, task := range s.tasks[opt.UserID] {
		switch opt.Filter {
		case todo.FilterPending:
			if task.Completed {
				continue
			}
		case todo.FilterCompleted:
			if !task.Completed {
				continue
			}
		}
		out = append(out, task)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, len(out), nil
}

func (s *Store) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (todo.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failing {
		return todo.Task{}, todo.ErrStoreUnavailable
	}

	task, ok := s.tasks[opt.UserID][opt.ID]
	if !ok {
		return todo.Task{}, todo.ErrTaskNotFound
	}

	if opt.Title != "" {
		task.Title = opt.Title
	}
	if opt.Description != "" {
		task.Description = opt.Description
	}
	if opt.Completed != nil {
		task.Completed = *opt.Completed
	}
	task.UpdatedAt = time.Now()

	s.tasks[opt.UserID][opt.ID] = task
	return task, nil
}

func (s *Store) DeleteTask(ctx context.Context, userID string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failing {
		return todo.ErrStoreUnavailable
	}

	if _, ok := s.tasks[userID][id]; !ok {
		return todo.ErrTaskNotFound
	}
	delete(s.tasks[userID], id)
	return nil
}
