// Edit command updates a task's title and/or description.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pinboard/pkg/types"
)

var (
	editTitle       string
	editDescription string
	editClearDesc   bool
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task's title or description",
	Long: `Edit changes the content of a task without touching its column or
position. Flags that are not given leave the corresponding field unchanged;
--clear-description removes the description entirely.

Example:
  pinboard edit <id> --title "Better title"
  pinboard edit <id> --description "more detail"
  pinboard edit <id> --clear-description`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "new title")
	editCmd.Flags().StringVar(&editDescription, "description", "", "new description")
	editCmd.Flags().BoolVar(&editClearDesc, "clear-description", false, "remove the description")
}

func runEdit(cmd *cobra.Command, args []string) error {
	id := args[0]

	update := types.ContentUpdate{ClearDescription: editClearDesc}
	if cmd.Flags().Changed("title") {
		update.Title = &editTitle
	}
	if cmd.Flags().Changed("description") {
		if editClearDesc {
			return fmt.Errorf("--description and --clear-description are mutually exclusive")
		}
		update.Description = &editDescription
	}
	if update.Empty() {
		return fmt.Errorf("nothing to change: give --title, --description, or --clear-description")
	}

	svc, backend, err := attachService()
	if err != nil {
		fail("edit", err)
	}
	defer backend.Detach()

	task, err := svc.UpdateTask(id, update)
	if err != nil {
		fail("edit task", err)
	}

	return printTask(task)
}
