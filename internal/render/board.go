// Package render turns an ordered task list into the textual board shown by
// the CLI. Styling is cosmetic only; the layout is plain lines so output
// stays stable when no terminal is attached.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/pinboard/pkg/types"
)

// Styling helpers (Lip Gloss).
var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	titleStyle  = lipgloss.NewStyle()
	descStyle   = lipgloss.NewStyle().Faint(true)
	emptyStyle  = lipgloss.NewStyle().Faint(true)
)

// categoryLabels maps categories to their display names.
var categoryLabels = map[types.Category]string{
	types.CategoryTodo:       "To Do",
	types.CategoryInProgress: "In Progress",
	types.CategoryDone:       "Done",
}

// Label returns the display name of a category, falling back to the raw
// value for anything unrecognized.
func Label(c types.Category) string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return c.String()
}

// Board renders tasks as one column per category in fixed board order.
// The input must already be ordered by category and position, as returned
// by TaskTable.List.
func Board(tasks []*types.Task) string {
	grouped := make(map[types.Category][]*types.Task)
	for _, t := range tasks {
		grouped[t.Category] = append(grouped[t.Category], t)
	}

	sections := make([]string, 0, len(categoryLabels))
	for _, c := range types.Categories() {
		sections = append(sections, Column(c, grouped[c]))
	}
	return strings.Join(sections, "\n\n") + "\n"
}

// Column renders one category column with a task count header.
func Column(category types.Category, tasks []*types.Task) string {
	lines := []string{
		headerStyle.Render(fmt.Sprintf("%s (%d)", Label(category), len(tasks))),
	}
	if len(tasks) == 0 {
		lines = append(lines, emptyStyle.Render("  (empty)"))
	}
	for _, t := range tasks {
		lines = append(lines, titleStyle.Render(fmt.Sprintf("  %d. %s", t.Position, t.Title)))
		if t.Description != nil && *t.Description != "" {
			lines = append(lines, descStyle.Render("     "+*t.Description))
		}
	}
	return strings.Join(lines, "\n")
}
