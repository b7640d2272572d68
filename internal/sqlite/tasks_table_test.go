// Tests for the position engine: append placement, reposition shifts,
// remove compaction, content edits, and list ordering.
package sqlite

import (
	"errors"
	"testing"

	"github.com/mesh-intelligence/pinboard/pkg/types"
)

// mustAppend creates a task or fails the test.
func mustAppend(t *testing.T, tasks types.TaskTable, category types.Category, title string) *types.Task {
	t.Helper()
	task, err := tasks.Append(category, title, nil)
	if err != nil {
		t.Fatalf("Append(%s, %q) failed: %v", category, title, err)
	}
	return task
}

// titlesIn returns the titles of tasks in the given category, in position order.
func titlesIn(t *testing.T, tasks types.TaskTable, category types.Category) []string {
	t.Helper()
	list, err := tasks.List(category)
	if err != nil {
		t.Fatalf("List(%s) failed: %v", category, err)
	}
	titles := make([]string, len(list))
	for i, task := range list {
		if task.Position != i {
			t.Fatalf("category %s: task %q at position %d, want %d", category, task.Title, task.Position, i)
		}
		titles[i] = task.Title
	}
	return titles
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTasks_AppendPlacement(t *testing.T) {
	b := newAttachedBackend(t)
	tasks, _ := b.Tasks()

	// Empty category starts at 0 and grows densely.
	a := mustAppend(t, tasks, types.CategoryTodo, "A")
	if a.Position != 0 {
		t.Errorf("first append: position %d, want 0", a.Position)
	}
	bTask := mustAppend(t, tasks, types.CategoryTodo, "B")
	if bTask.Position != 1 {
		t.Errorf("second append: position %d, want 1", bTask.Position)
	}

	// Other categories have independent position spaces.
	c := mustAppend(t, tasks, types.CategoryDone, "C")
	if c.Position != 0 {
		t.Errorf("append to other category: position %d, want 0", c.Position)
	}

	if a.TaskID == "" || a.CreatedAt.IsZero() || a.UpdatedAt.IsZero() {
		t.Error("append must assign ID and timestamps")
	}
}

func TestTasks_AppendValidation(t *testing.T) {
	b := newAttachedBackend(t)
	tasks, _ := b.Tasks()

	if _, err := tasks.Append(types.Category("archive"), "X", nil); !errors.Is(err, types.ErrInvalidCategory) {
		t.Errorf("expected ErrInvalidCategory, got %v", err)
	}
	if _, err := tasks.Append(types.CategoryTodo, "", nil); !errors.Is(err, types.ErrInvalidTitle) {
		t.Errorf("expected ErrInvalidTitle, got %v", err)
	}
}

func TestTasks_AppendDescription(t *testing.T) {
	b := newAttachedBackend(t)
	tasks, _ := b.Tasks()

	desc := "details"
	created, err := tasks.Append(types.CategoryTodo, "With description", &desc)
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got, err := tasks.Get(created.TaskID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Description == nil || *got.Description != desc {
		t.Errorf("description not persisted: %v", got.Description)
	}

	// Nil description stays nil.
	bare := mustAppend(t, tasks, types.CategoryTodo, "Bare")
	got, err = tasks.Get(bare.TaskID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Description != nil {
		t.Errorf("expected nil description, got %q", *got.Description)
	}
}

func TestTasks_GetNotFound(t *testing.T) {
	b := newAttachedBackend(t)
	tasks, _ := b.Tasks()

	if _, err := tasks.Get("no-such-id"); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := tasks.Get(""); !errors.Is(err, types.ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

func TestTasks_RepositionWithinCategory(t *testing.T) {
	tests := []struct {
		name   string
		move   string // title of the task to move
		target int
		want   []string
	}{
		{name: "first to last", move: "A", target: 2, want: []string{"B", "C", "A"}},
		{name: "last to first", move: "C", target: 0, want: []string{"C", "A", "B"}},
		{name: "middle down", move: "B", target: 2, want: []string{"A", "C", "B"}},
		{name: "middle up", move: "B", target: 0, want: []string{"B", "A", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newAttachedBackend(t)
			tasks, _ := b.Tasks()

			byTitle := map[string]*types.Task{}
			for _, title := range []string{"A", "B", "C"} {
				byTitle[title] = mustAppend(t, tasks, types.CategoryTodo, title)
			}

			moved, err := tasks.Reposition(byTitle[tt.move].TaskID, types.CategoryTodo, tt.target)
			if err != nil {
				t.Fatalf("Reposition failed: %v", err)
			}
			if moved.Position != tt.target {
				t.Errorf("moved task at position %d, want %d", moved.Position, tt.target)
			}

			got := titlesIn(t, tasks, types.CategoryTodo)
			if !sameStrings(got, tt.want) {
				t.Errorf("order %v, want %v", got, tt.want)
			}
			if err := b.CheckConsistency(); err != nil {
				t.Errorf("invariant broken: %v", err)
			}
		})
	}
}

func TestTasks_RepositionNoOp(t *testing.T) {
	b := newAttachedBackend(t)
	tasks, _ := b.Tasks()

	a := mustAppend(t, tasks, types.CategoryTodo, "A")
	bTask := mustAppend(t, tasks, types.CategoryTodo, "B")

	moved, err := tasks.Reposition(bTask.TaskID, types.CategoryTodo, 1)
	if err != nil {
		t.Fatalf("no-op Reposition failed: %v", err)
	}
	if moved.Position != 1 {
		t.Errorf("position %d, want 1", moved.Position)
	}
	if !moved.UpdatedAt.Equal(bTask.UpdatedAt) {
		t.Error("no-op must not bump updated_at of the target")
	}

	// Neighbor untouched.
	gotA, err := tasks.Get(a.TaskID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if gotA.Position != 0 || !gotA.UpdatedAt.Equal(a.UpdatedAt) {
		t.Error("no-op must leave other rows unchanged")
	}
}

func TestTasks_RepositionAcrossCategories(t *testing.T) {
	b := newAttachedBackend(t)
	tasks, _ := b.Tasks()

	// todo = [A@0, B@1]; in_progress = [C@0]
	a := mustAppend(t, tasks, types.CategoryTodo, "A")
	mustAppend(t, tasks, types.CategoryTodo, "B")
	mustAppend(t, tasks, types.CategoryInProgress, "C")

	moved, err := tasks.Reposition(a.TaskID, types.CategoryInProgress, 0)
	if err != nil {
		t.Fatalf("Reposition failed: %v", err)
	}
	if moved.Category != types.CategoryInProgress || moved.Position != 0 {
		t.Errorf("moved to %s@%d, want in_progress@0", moved.Category, moved.Position)
	}
	if !moved.UpdatedAt.After(a.UpdatedAt) {
		t.Error("cross-category move must bump updated_at of the moved task")
	}

	if got := titlesIn(t, tasks, types.CategoryTodo); !sameStrings(got, []string{"B"}) {
		t.Errorf("todo = %v, want [B]", got)
	}
	if got := titlesIn(t, tasks, types.CategoryInProgress); !sameStrings(got, []string{"A", "C"}) {
		t.Errorf("in_progress = %v, want [A C]", got)
	}
	if err := b.CheckConsistency(); err != nil {
		t.Errorf("invariant broken: %v", err)
	}
}

func TestTasks_RepositionToCategoryEnd(t *testing.T) {
	b := newAttachedBackend(t)
	tasks, _ := b.Tasks()

	a := mustAppend(t, tasks, types.CategoryTodo, "A")
	mustAppend(t, tasks, types.CategoryDone, "X")

	// Position equal to the current size of the target category is valid on
	// a cross-category move (the column grows by one).
	moved, err := tasks.Reposition(a.TaskID, types.CategoryDone, 1)
	if err != nil {
		t.Fatalf("Reposition to end failed: %v", err)
	}
	if moved.Position != 1 {
		t.Errorf("position %d, want 1", moved.Position)
	}
	if got := titlesIn(t, tasks, types.CategoryDone); !sameStrings(got, []string{"X", "A"}) {
		t.Errorf("done = %v, want [X A]", got)
	}
}

func TestTasks_RepositionOutOfRange(t *testing.T) {
	b := newAttachedBackend(t)
	tasks, _ := b.Tasks()

	a := mustAppend(t, tasks, types.CategoryTodo, "A")
	mustAppend(t, tasks, types.CategoryTodo, "B")

	tests := []struct {
		name     string
		category types.Category
		position int
	}{
		{name: "negative", category: types.CategoryTodo, position: -1},
		{name: "same category past end", category: types.CategoryTodo, position: 2},
		{name: "same category far past end", category: types.CategoryTodo, position: 10},
		{name: "cross category past end", category: types.CategoryDone, position: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tasks.Reposition(a.TaskID, tt.category, tt.position)
			if !errors.Is(err, types.ErrInvalidPosition) {
				t.Fatalf("expected ErrInvalidPosition, got %v", err)
			}
			// Rejected before any write: order intact.
			if got := titlesIn(t, tasks, types.CategoryTodo); !sameStrings(got, []string{"A", "B"}) {
				t.Errorf("todo mutated by rejected move: %v", got)
			}
		})
	}
}

func TestTasks_RepositionNotFound(t *testing.T) {
	b := newAttachedBackend(t)
	tasks, _ := b.Tasks()

	mustAppend(t, tasks, types.CategoryTodo, "A")

	_, err := tasks.Reposition("no-such-id", types.CategoryTodo, 0)
	if !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if got := titlesIn(t, tasks, types.CategoryTodo); !sameStrings(got, []string{"A"}) {
		t.Errorf("rows changed by failed move: %v", got)
	}
}

func TestTasks_RepositionNeighborsKeepTimestamps(t *testing.T) {
	b := newAttachedBackend(t)
	tasks, _ := b.Tasks()

	a := mustAppend(t, tasks, types.CategoryTodo, "A")
	bTask := mustAppend(t, tasks, types.CategoryTodo, "B")
	c := mustAppend(t, tasks, types.CategoryTodo, "C")

	if _, err := tasks.Reposition(a.TaskID, types.CategoryTodo, 2); err != nil {
		t.Fatalf("Reposition failed: %v", err)
	}

	// B and C shifted down but keep their updated_at.
	for _, orig := range []*types.Task{bTask, c} {
		got, err := tasks.Get(orig.TaskID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Position != orig.Position-1 {
			t.Errorf("%s at %d, want %d", got.Title, got.Position, orig.Position-1)
		}
		if !got.UpdatedAt.Equal(orig.UpdatedAt) {
			t.Errorf("%s: shifted neighbor must keep updated_at", got.Title)
		}
	}
}

func TestTasks_RemoveCompaction(t *testing.T) {
	b := newAttachedBackend(t)
	tasks, _ := b.Tasks()

	mustAppend(t, tasks, types.CategoryTodo, "A")
	bTask := mustAppend(t, tasks, types.CategoryTodo, "B")
	mustAppend(t, tasks, types.CategoryTodo, "C")
	mustAppend(t, tasks, types.CategoryTodo, "D")

	if err := tasks.Remove(bTask.TaskID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if got := titlesIn(t, tasks, types.CategoryTodo); !sameStrings(got, []string{"A", "C", "D"}) {
		t.Errorf("order after remove: %v, want [A C D]", got)
	}
	if _, err := tasks.Get(bTask.TaskID); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("removed task still readable: %v", err)
	}
	if err := b.CheckConsistency(); err != nil {
		t.Errorf("invariant broken: %v", err)
	}
}

func TestTasks_RemoveLastThenAppend(t *testing.T) {
	b := newAttachedBackend(t)
	tasks, _ := b.Tasks()

	x := mustAppend(t, tasks, types.CategoryDone, "X")
	if err := tasks.Remove(x.TaskID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if got := titlesIn(t, tasks, types.CategoryDone); len(got) != 0 {
		t.Errorf("done not empty after remove: %v", got)
	}

	// The emptied category restarts at position 0.
	y := mustAppend(t, tasks, types.CategoryDone, "Y")
	if y.Position != 0 {
		t.Errorf("append after emptying: position %d, want 0", y.Position)
	}
}

func TestTasks_RemoveNotFound(t *testing.T) {
	b := newAttachedBackend(t)
	tasks, _ := b.Tasks()

	if err := tasks.Remove("no-such-id"); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTasks_UpdateContent(t *testing.T) {
	b := newAttachedBackend(t)
	tasks, _ := b.Tasks()

	desc := "original"
	created, err := tasks.Append(types.CategoryInProgress, "Original", &desc)
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	newTitle := "Edited"
	newDesc := "edited details"
	updated, err := tasks.UpdateContent(created.TaskID, types.ContentUpdate{
		Title:       &newTitle,
		Description: &newDesc,
	})
	if err != nil {
		t.Fatalf("UpdateContent failed: %v", err)
	}
	if updated.Title != newTitle {
		t.Errorf("title %q, want %q", updated.Title, newTitle)
	}
	if updated.Description == nil || *updated.Description != newDesc {
		t.Errorf("description %v, want %q", updated.Description, newDesc)
	}
	if updated.Category != created.Category || updated.Position != created.Position {
		t.Error("content edit must not touch category or position")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Error("content edit must bump updated_at")
	}

	// Title-only edit leaves the description alone.
	titleOnly := "Edited again"
	updated, err = tasks.UpdateContent(created.TaskID, types.ContentUpdate{Title: &titleOnly})
	if err != nil {
		t.Fatalf("UpdateContent failed: %v", err)
	}
	if updated.Description == nil || *updated.Description != newDesc {
		t.Error("title-only edit must not change description")
	}

	// Clearing resets the description to unset.
	updated, err = tasks.UpdateContent(created.TaskID, types.ContentUpdate{ClearDescription: true})
	if err != nil {
		t.Fatalf("UpdateContent failed: %v", err)
	}
	if updated.Description != nil {
		t.Errorf("description not cleared: %q", *updated.Description)
	}
}

func TestTasks_UpdateContentValidation(t *testing.T) {
	b := newAttachedBackend(t)
	tasks, _ := b.Tasks()

	created := mustAppend(t, tasks, types.CategoryTodo, "A")
	empty := ""

	if _, err := tasks.UpdateContent(created.TaskID, types.ContentUpdate{}); !errors.Is(err, types.ErrEmptyUpdate) {
		t.Errorf("expected ErrEmptyUpdate, got %v", err)
	}
	if _, err := tasks.UpdateContent(created.TaskID, types.ContentUpdate{Title: &empty}); !errors.Is(err, types.ErrInvalidTitle) {
		t.Errorf("expected ErrInvalidTitle, got %v", err)
	}
	title := "X"
	if _, err := tasks.UpdateContent("no-such-id", types.ContentUpdate{Title: &title}); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTasks_ListOrdering(t *testing.T) {
	b := newAttachedBackend(t)
	tasks, _ := b.Tasks()

	// Interleaved appends across categories.
	mustAppend(t, tasks, types.CategoryDone, "D1")
	mustAppend(t, tasks, types.CategoryTodo, "T1")
	mustAppend(t, tasks, types.CategoryInProgress, "P1")
	mustAppend(t, tasks, types.CategoryTodo, "T2")
	mustAppend(t, tasks, types.CategoryDone, "D2")

	list, err := tasks.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	var titles []string
	for _, task := range list {
		titles = append(titles, task.Title)
	}
	want := []string{"T1", "T2", "P1", "D1", "D2"}
	if !sameStrings(titles, want) {
		t.Errorf("list order %v, want %v", titles, want)
	}

	// Grouped by category in board order, strictly increasing position.
	lastOrdinal, lastPosition := -1, -1
	for _, task := range list {
		ord := task.Category.Ordinal()
		if ord < lastOrdinal {
			t.Fatalf("category %s out of board order", task.Category)
		}
		if ord > lastOrdinal {
			lastPosition = -1
		}
		if task.Position != lastPosition+1 {
			t.Fatalf("category %s: position %d after %d", task.Category, task.Position, lastPosition)
		}
		lastOrdinal, lastPosition = ord, task.Position
	}
}

func TestTasks_ListFilter(t *testing.T) {
	b := newAttachedBackend(t)
	tasks, _ := b.Tasks()

	mustAppend(t, tasks, types.CategoryTodo, "T1")
	mustAppend(t, tasks, types.CategoryDone, "D1")

	list, err := tasks.List(types.CategoryDone)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 || list[0].Title != "D1" {
		t.Errorf("filtered list = %v", list)
	}

	if _, err := tasks.List(types.Category("archive")); !errors.Is(err, types.ErrInvalidCategory) {
		t.Errorf("expected ErrInvalidCategory, got %v", err)
	}

	// Empty board returns an empty, non-nil slice.
	empty, err := tasks.List(types.CategoryInProgress)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", empty)
	}
}

func TestTasks_CrossCategoryConservation(t *testing.T) {
	b := newAttachedBackend(t)
	tasks, _ := b.Tasks()

	for _, title := range []string{"A", "B", "C"} {
		mustAppend(t, tasks, types.CategoryTodo, title)
	}
	mustAppend(t, tasks, types.CategoryInProgress, "D")

	before, _ := tasks.List()
	a, _ := tasks.List(types.CategoryTodo)

	if _, err := tasks.Reposition(a[1].TaskID, types.CategoryInProgress, 1); err != nil {
		t.Fatalf("Reposition failed: %v", err)
	}

	after, _ := tasks.List()
	if len(after) != len(before) {
		t.Errorf("total count changed: %d -> %d", len(before), len(after))
	}
	if got := titlesIn(t, tasks, types.CategoryTodo); len(got) != 2 {
		t.Errorf("todo size %d, want 2", len(got))
	}
	if got := titlesIn(t, tasks, types.CategoryInProgress); len(got) != 2 {
		t.Errorf("in_progress size %d, want 2", len(got))
	}
}
