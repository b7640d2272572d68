package types

import "time"

// Task represents one item on the board.
type Task struct {
	TaskID      string    `json:"task_id"`     // UUID v7, generated on creation.
	Title       string    `json:"title"`       // Human-readable title (required, non-empty).
	Description *string   `json:"description"` // Optional free text; nil when unset.
	Category    Category  `json:"category"`    // Board column the task belongs to.
	Position    int       `json:"position"`    // Zero-based rank within the category.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of creation.
	UpdatedAt   time.Time `json:"updated_at"`  // Timestamp of last direct modification.
}

// ContentUpdate describes a content-only edit to a task. Nil fields are left
// unchanged. ClearDescription resets the description to unset; it wins over
// Description when both are given.
type ContentUpdate struct {
	Title            *string
	Description      *string
	ClearDescription bool
}

// Empty reports whether the update changes nothing.
func (u ContentUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && !u.ClearDescription
}
