package todo

import "time"

// Task is the core domain entity managed by this module.
// IDs are small per-user sequential integers so users can refer to
// "task 1" in conversation.
type Task struct {
	ID          int64
	UserID      string
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter selects a subset of a user's tasks.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

// Valid reports whether the filter is one of the known values.
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterPending, FilterCompleted:
		return true
	}
	return false
}

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Title       string
	Description string
}

type ListTasksInput struct {
	Filter Filter
}

type UpdateTaskInput struct {
	ID          int64
	Title       string
	Description string
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task Task
}

type ListTasksOutput struct {
	Tasks []Task
	Total int
}

type DetailTaskOutput struct {
	Task Task
}

type UpdateTaskOutput struct {
	Task Task
}

type CompleteTaskOutput struct {
	Task Task
}
