package render

import (
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/pinboard/pkg/types"
)

// task builds a minimal task for rendering tests.
func task(category types.Category, position int, title string, description string) *types.Task {
	t := &types.Task{
		TaskID:    "00000000-0000-0000-0000-000000000000",
		Title:     title,
		Category:  category,
		Position:  position,
		CreatedAt: time.Unix(0, 0).UTC(),
		UpdatedAt: time.Unix(0, 0).UTC(),
	}
	if description != "" {
		t.Description = &description
	}
	return t
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "To Do", Label(types.CategoryTodo))
	assert.Equal(t, "In Progress", Label(types.CategoryInProgress))
	assert.Equal(t, "Done", Label(types.CategoryDone))
	assert.Equal(t, "archive", Label(types.Category("archive")))
}

func TestBoard_Full(t *testing.T) {
	tasks := []*types.Task{
		task(types.CategoryTodo, 0, "Write spec", "needs outline"),
		task(types.CategoryTodo, 1, "Review PR", ""),
		task(types.CategoryInProgress, 0, "Implement engine", ""),
	}

	g := goldie.New(t)
	g.Assert(t, "full_board", []byte(Board(tasks)))
}

func TestBoard_Empty(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "empty_board", []byte(Board(nil)))
}

func TestColumn_PositionsInOrder(t *testing.T) {
	out := Column(types.CategoryDone, []*types.Task{
		task(types.CategoryDone, 0, "First", ""),
		task(types.CategoryDone, 1, "Second", ""),
	})

	assert.Contains(t, out, "Done (2)")
	assert.Contains(t, out, "0. First")
	assert.Contains(t, out, "1. Second")
}
