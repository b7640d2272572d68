// List command prints tasks in board order.
package main

import (
	"github.com/spf13/cobra"
)

var listCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks in board order",
	Long: `List prints every task, grouped by column in board order (todo,
in_progress, done) and ordered by position within each column.

Example:
  pinboard list
  pinboard list --category todo
  pinboard list --json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "restrict to one column")
}

func runList(cmd *cobra.Command, args []string) error {
	category, err := parseCategoryFlag(listCategory)
	if err != nil {
		return err
	}

	svc, backend, err := attachService()
	if err != nil {
		fail("list", err)
	}
	defer backend.Detach()

	if category != "" {
		result, err := svc.ListTasks(category)
		if err != nil {
			fail("list tasks", err)
		}
		return printTasks(result)
	}

	result, err := svc.ListTasks()
	if err != nil {
		fail("list tasks", err)
	}
	return printTasks(result)
}
