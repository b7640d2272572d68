// Add command creates a new task at the end of a column.
package main

import (
	"github.com/spf13/cobra"
)

var (
	addCategory    string
	addTitle       string
	addDescription string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new task",
	Long: `Add creates a new task at the end of the given column.

The task lands in the todo column unless --category says otherwise.

Example:
  pinboard add --title "Write the report"
  pinboard add --title "Ship it" --category in_progress
  pinboard add --title "Fix bug" --description "crash on empty input" --json`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "task title (required)")
	addCmd.Flags().StringVar(&addCategory, "category", "", "target column (default: todo)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "optional task description")
	_ = addCmd.MarkFlagRequired("title")
}

func runAdd(cmd *cobra.Command, args []string) error {
	category, err := parseCategoryFlag(addCategory)
	if err != nil {
		return err
	}

	svc, backend, err := attachService()
	if err != nil {
		fail("add", err)
	}
	defer backend.Detach()

	var description *string
	if addDescription != "" {
		description = &addDescription
	}

	task, err := svc.CreateTask(category, addTitle, description)
	if err != nil {
		fail("create task", err)
	}

	return printTask(task)
}
