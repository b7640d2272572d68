// Delete command removes a task and compacts its column.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		svc, backend, err := attachService()
		if err != nil {
			fail("delete", err)
		}
		defer backend.Detach()

		if err := svc.DeleteTask(id); err != nil {
			fail("delete task", err)
		}

		fmt.Printf("Deleted task %s\n", id)
		return nil
	},
}
