// Board command renders the columns as a styled text board.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pinboard/internal/render"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the board with one column per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, backend, err := attachService()
		if err != nil {
			fail("board", err)
		}
		defer backend.Detach()

		tasks, err := svc.ListTasks()
		if err != nil {
			fail("list tasks", err)
		}

		fmt.Print(render.Board(tasks))
		return nil
	},
}
