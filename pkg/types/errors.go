package types

import "errors"

// Task table operation errors.
var (
	ErrNotFound  = errors.New("task not found")
	ErrInvalidID = errors.New("invalid task ID")
)

// Validation errors. These are returned before any store mutation.
var (
	ErrInvalidTitle    = errors.New("title must not be empty")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidPosition = errors.New("position out of range")
	ErrEmptyUpdate     = errors.New("update changes nothing")
)
