// This file implements the tasks table accessor: the position engine that
// assigns, shifts, and compacts per-category positions. Invariant: at any
// point between operations, the positions of the n tasks in a category are
// exactly 0..n-1.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/pinboard/pkg/types"
)

// Compile-time interface check: tasksTable must implement TaskTable.
var _ types.TaskTable = (*tasksTable)(nil)

// tasksTable implements the TaskTable interface. Each mutating operation
// runs its read-shift-write sequence in one transaction via Backend.runTx.
type tasksTable struct {
	backend *Backend
}

const taskColumns = "task_id, title, description, category, position, created_at, updated_at"

// Append creates a task at the end of the given category. The new position is
// the current size of the category, which equals max(position)+1 while the
// density invariant holds.
func (tt *tasksTable) Append(category types.Category, title string, description *string) (*types.Task, error) {
	if !category.Valid() {
		return nil, types.ErrInvalidCategory
	}
	if title == "" {
		return nil, types.ErrInvalidTitle
	}

	now := time.Now().UTC()
	task := &types.Task{
		TaskID:      generateUUID(),
		Title:       title,
		Description: cloneDescription(description),
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := tt.backend.runTx(func(tx *sql.Tx) error {
		var next int
		err := tx.QueryRow(
			"SELECT COALESCE(MAX(position) + 1, 0) FROM tasks WHERE category = ?",
			category.String(),
		).Scan(&next)
		if err != nil {
			return fmt.Errorf("reading next position: %w", err)
		}
		task.Position = next

		_, err = tx.Exec(
			"INSERT INTO tasks ("+taskColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
			task.TaskID, task.Title, descriptionArg(task.Description),
			task.Category.String(), task.Position,
			formatTime(task.CreatedAt), formatTime(task.UpdatedAt),
		)
		if err != nil {
			return fmt.Errorf("inserting task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Get retrieves a task by ID.
func (tt *tasksTable) Get(id string) (*types.Task, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	db, err := tt.backend.handle()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow("SELECT "+taskColumns+" FROM tasks WHERE task_id = ?", id)
	task, err := hydrateTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting task %s: %w", id, err)
	}
	return task, nil
}

// Reposition moves a task to the given category and position. Neighbor rows
// shift first to close the vacated gap and open the target slot; the moved
// row is written last so no two rows ever collide on a position inside the
// transaction. Shifted neighbors keep their updated_at; only the moved task
// gets a timestamp bump.
func (tt *tasksTable) Reposition(id string, category types.Category, position int) (*types.Task, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	if !category.Valid() {
		return nil, types.ErrInvalidCategory
	}
	if position < 0 {
		return nil, types.ErrInvalidPosition
	}

	var task *types.Task
	err := tt.backend.runTx(func(tx *sql.Tx) error {
		row := tx.QueryRow("SELECT "+taskColumns+" FROM tasks WHERE task_id = ?", id)
		current, err := hydrateTask(row)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return types.ErrNotFound
			}
			return fmt.Errorf("reading task %s: %w", id, err)
		}

		oldCategory := current.Category
		oldPosition := current.Position

		// The valid target range is bounded by the category size after the
		// move: unchanged for a same-category reorder, grown by one for a
		// cross-category move.
		var targetSize int
		err = tx.QueryRow(
			"SELECT COUNT(*) FROM tasks WHERE category = ?", category.String(),
		).Scan(&targetSize)
		if err != nil {
			return fmt.Errorf("counting tasks in %s: %w", category, err)
		}
		if oldCategory != category {
			targetSize++
		}
		if position >= targetSize {
			return types.ErrInvalidPosition
		}

		if oldCategory == category && oldPosition == position {
			// No-op: nothing moves, no timestamps change.
			task = current
			return nil
		}

		if oldCategory != category {
			// Close the gap left behind in the old category.
			_, err = tx.Exec(
				"UPDATE tasks SET position = position - 1 WHERE category = ? AND position > ?",
				oldCategory.String(), oldPosition,
			)
			if err != nil {
				return fmt.Errorf("compacting %s: %w", oldCategory, err)
			}
			// Open a slot in the new category.
			_, err = tx.Exec(
				"UPDATE tasks SET position = position + 1 WHERE category = ? AND position >= ?",
				category.String(), position,
			)
			if err != nil {
				return fmt.Errorf("expanding %s: %w", category, err)
			}
		} else if position > oldPosition {
			// Moving down: rows in (old, target] shift up one slot.
			_, err = tx.Exec(
				"UPDATE tasks SET position = position - 1 WHERE category = ? AND position > ? AND position <= ?",
				category.String(), oldPosition, position,
			)
			if err != nil {
				return fmt.Errorf("shifting %s down: %w", category, err)
			}
		} else {
			// Moving up: rows in [target, old) shift down one slot.
			_, err = tx.Exec(
				"UPDATE tasks SET position = position + 1 WHERE category = ? AND position >= ? AND position < ?",
				category.String(), position, oldPosition,
			)
			if err != nil {
				return fmt.Errorf("shifting %s up: %w", category, err)
			}
		}

		now := time.Now().UTC()
		_, err = tx.Exec(
			"UPDATE tasks SET category = ?, position = ?, updated_at = ? WHERE task_id = ?",
			category.String(), position, formatTime(now), id,
		)
		if err != nil {
			return fmt.Errorf("moving task %s: %w", id, err)
		}

		current.Category = category
		current.Position = position
		current.UpdatedAt = now
		task = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateContent edits title and/or description in place. Category and
// position are untouched.
func (tt *tasksTable) UpdateContent(id string, update types.ContentUpdate) (*types.Task, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	if update.Empty() {
		return nil, types.ErrEmptyUpdate
	}
	if update.Title != nil && *update.Title == "" {
		return nil, types.ErrInvalidTitle
	}

	var task *types.Task
	err := tt.backend.runTx(func(tx *sql.Tx) error {
		row := tx.QueryRow("SELECT "+taskColumns+" FROM tasks WHERE task_id = ?", id)
		current, err := hydrateTask(row)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return types.ErrNotFound
			}
			return fmt.Errorf("reading task %s: %w", id, err)
		}

		if update.Title != nil {
			current.Title = *update.Title
		}
		if update.ClearDescription {
			current.Description = nil
		} else if update.Description != nil {
			current.Description = cloneDescription(update.Description)
		}
		current.UpdatedAt = time.Now().UTC()

		_, err = tx.Exec(
			"UPDATE tasks SET title = ?, description = ?, updated_at = ? WHERE task_id = ?",
			current.Title, descriptionArg(current.Description), formatTime(current.UpdatedAt), id,
		)
		if err != nil {
			return fmt.Errorf("updating task %s: %w", id, err)
		}

		task = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Remove deletes a task and compacts the vacated category.
func (tt *tasksTable) Remove(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	return tt.backend.runTx(func(tx *sql.Tx) error {
		var category string
		var position int
		err := tx.QueryRow(
			"SELECT category, position FROM tasks WHERE task_id = ?", id,
		).Scan(&category, &position)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return types.ErrNotFound
			}
			return fmt.Errorf("reading task %s: %w", id, err)
		}

		if _, err := tx.Exec("DELETE FROM tasks WHERE task_id = ?", id); err != nil {
			return fmt.Errorf("deleting task %s: %w", id, err)
		}

		// Close the gap left by the deleted row.
		_, err = tx.Exec(
			"UPDATE tasks SET position = position - 1 WHERE category = ? AND position > ?",
			category, position,
		)
		if err != nil {
			return fmt.Errorf("compacting %s: %w", category, err)
		}
		return nil
	})
}

// List returns all tasks grouped by category in fixed board order and
// ordered by position within each category. Each call re-reads current state.
func (tt *tasksTable) List(categories ...types.Category) ([]*types.Task, error) {
	db, err := tt.backend.handle()
	if err != nil {
		return nil, err
	}

	query := "SELECT " + taskColumns + " FROM tasks"
	var args []any
	if len(categories) > 0 {
		placeholders := make([]string, len(categories))
		for i, c := range categories {
			if !c.Valid() {
				return nil, types.ErrInvalidCategory
			}
			placeholders[i] = "?"
			args = append(args, c.String())
		}
		query += " WHERE category IN (" + strings.Join(placeholders, ", ") + ")"
	}
	query += " ORDER BY " + categoryOrderSQL() + ", position ASC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	results := []*types.Task{}
	for rows.Next() {
		task, err := hydrateTask(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating task: %w", err)
		}
		results = append(results, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return results, nil
}

// categoryOrderSQL builds a CASE expression ranking categories in fixed
// board order for ORDER BY. Unknown values sort last.
func categoryOrderSQL() string {
	var sb strings.Builder
	sb.WriteString("CASE category")
	for _, c := range types.Categories() {
		fmt.Fprintf(&sb, " WHEN '%s' THEN %d", c, c.Ordinal())
	}
	sb.WriteString(" ELSE 99 END")
	return sb.String()
}

// rowScanner abstracts over *sql.Row and *sql.Rows for hydration.
type rowScanner interface {
	Scan(dest ...any) error
}

// hydrateTask converts one row into a *types.Task.
func hydrateTask(row rowScanner) (*types.Task, error) {
	var t types.Task
	var description sql.NullString
	var category, createdAt, updatedAt string
	if err := row.Scan(&t.TaskID, &t.Title, &description, &category, &t.Position, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if description.Valid {
		d := description.String
		t.Description = &d
	}
	t.Category = types.Category(category)

	var err error
	t.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	t.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &t, nil
}

// formatTime renders a timestamp for storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// descriptionArg converts an optional description into a SQL argument,
// mapping nil to NULL.
func descriptionArg(d *string) any {
	if d == nil {
		return nil
	}
	return *d
}

// cloneDescription copies an optional description so callers cannot mutate
// stored state through the returned task.
func cloneDescription(d *string) *string {
	if d == nil {
		return nil
	}
	cp := *d
	return &cp
}
