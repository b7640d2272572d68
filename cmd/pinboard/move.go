// Move command repositions a task within or across columns.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	moveCategory string
	movePosition int
)

var moveCmd = &cobra.Command{
	Use:   "move <id>",
	Short: "Move a task to a column and position",
	Long: `Move places the task at the given zero-based position in the given
column. Tasks between the old and new slot shift by one to keep every
column's positions dense.

Example:
  pinboard move <id> --category in_progress --position 0
  pinboard move <id> --category todo --position 2`,
	Args: cobra.ExactArgs(1),
	RunE: runMove,
}

func init() {
	moveCmd.Flags().StringVar(&moveCategory, "category", "", "target column (required)")
	moveCmd.Flags().IntVar(&movePosition, "position", 0, "target zero-based position (required)")
	_ = moveCmd.MarkFlagRequired("category")
	_ = moveCmd.MarkFlagRequired("position")
}

func runMove(cmd *cobra.Command, args []string) error {
	id := args[0]

	category, err := parseCategoryFlag(moveCategory)
	if err != nil {
		return err
	}
	if category == "" {
		return fmt.Errorf("--category must not be empty")
	}

	svc, backend, err := attachService()
	if err != nil {
		fail("move", err)
	}
	defer backend.Detach()

	task, err := svc.MoveTask(id, category, movePosition)
	if err != nil {
		fail("move task", err)
	}

	return printTask(task)
}
