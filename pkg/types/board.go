package types

import "errors"

// Board defines the interface for backend-agnostic board storage.
// Callers attach to a backend, obtain the task table, and detach when done.
type Board interface {
	// Tasks returns the TaskTable for the attached backend.
	// Returns ErrBoardDetached if the board is not attached.
	Tasks() (TaskTable, error)

	// Attach connects the Board to the backend described by config.
	// Creates the DataDir if it does not exist.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, operations on the task table return ErrBoardDetached.
	Detach() error
}

// TaskTable provides ordered task storage. Every mutating operation leaves
// each category's position sequence dense: the positions of the n tasks in a
// category are exactly 0..n-1, with no gaps or duplicates.
type TaskTable interface {
	// Append creates a task at the end of the given category and returns it
	// with its assigned ID and position.
	Append(category Category, title string, description *string) (*Task, error)

	// Get retrieves a task by ID. Returns ErrNotFound if no task exists.
	Get(id string) (*Task, error)

	// Reposition moves a task to the given category and zero-based position,
	// shifting neighbors as needed. Moving a task onto its current slot is a
	// no-op. Returns ErrNotFound for an unknown ID and ErrInvalidPosition
	// when the target position is outside 0..size-after-move.
	Reposition(id string, category Category, position int) (*Task, error)

	// UpdateContent edits title and/or description, leaving category and
	// position untouched. Returns ErrNotFound for an unknown ID.
	UpdateContent(id string, update ContentUpdate) (*Task, error)

	// Remove deletes a task and closes the gap it leaves in its category.
	// Returns ErrNotFound for an unknown ID.
	Remove(id string) error

	// List returns all tasks ordered by category (in fixed board order) and
	// position ascending. Passing categories restricts the result to those
	// columns. Every call re-reads current state; the result is never nil.
	List(categories ...Category) ([]*Task, error)
}

// Board lifecycle errors.
var (
	ErrBoardDetached   = errors.New("board is detached")
	ErrAlreadyAttached = errors.New("board is already attached")
)
