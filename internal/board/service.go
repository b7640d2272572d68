// Package board provides the service layer consumed by the CLI: a thin,
// validated facade over the task table. All ordering logic lives in the
// storage backend; this package only checks arguments and forwards calls.
package board

import (
	"fmt"

	"github.com/mesh-intelligence/pinboard/pkg/types"
)

// Service translates validated user requests into task table operations.
type Service struct {
	board types.Board
}

// NewService creates a Service over an attached Board.
func NewService(b types.Board) *Service {
	return &Service{board: b}
}

// CreateTask appends a task to the end of the given category.
// An empty category defaults to todo.
func (s *Service) CreateTask(category types.Category, title string, description *string) (*types.Task, error) {
	if category == "" {
		category = types.CategoryTodo
	}
	if !category.Valid() {
		return nil, types.ErrInvalidCategory
	}
	if title == "" {
		return nil, types.ErrInvalidTitle
	}

	tasks, err := s.board.Tasks()
	if err != nil {
		return nil, err
	}
	task, err := tasks.Append(category, title, description)
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	return task, nil
}

// GetTask retrieves a task by ID.
func (s *Service) GetTask(id string) (*types.Task, error) {
	tasks, err := s.board.Tasks()
	if err != nil {
		return nil, err
	}
	return tasks.Get(id)
}

// ListTasks returns all tasks in board order, optionally restricted to the
// given categories.
func (s *Service) ListTasks(categories ...types.Category) ([]*types.Task, error) {
	for _, c := range categories {
		if !c.Valid() {
			return nil, types.ErrInvalidCategory
		}
	}

	tasks, err := s.board.Tasks()
	if err != nil {
		return nil, err
	}
	return tasks.List(categories...)
}

// MoveTask moves a task to the given category and position.
func (s *Service) MoveTask(id string, category types.Category, position int) (*types.Task, error) {
	if !category.Valid() {
		return nil, types.ErrInvalidCategory
	}
	if position < 0 {
		return nil, types.ErrInvalidPosition
	}

	tasks, err := s.board.Tasks()
	if err != nil {
		return nil, err
	}
	task, err := tasks.Reposition(id, category, position)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTask edits a task's title and/or description.
func (s *Service) UpdateTask(id string, update types.ContentUpdate) (*types.Task, error) {
	if update.Empty() {
		return nil, types.ErrEmptyUpdate
	}

	tasks, err := s.board.Tasks()
	if err != nil {
		return nil, err
	}
	return tasks.UpdateContent(id, update)
}

// DeleteTask removes a task from the board.
func (s *Service) DeleteTask(id string) error {
	tasks, err := s.board.Tasks()
	if err != nil {
		return err
	}
	return tasks.Remove(id)
}
