// Check command verifies the board's position invariant.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that every column's positions are dense",
	Long: `Check reads the whole board and verifies that the positions inside
each column are exactly 0..n-1: no gaps, no duplicates, no stray columns.
Exits non-zero when a violation is found.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fail("check", err)
		}
		defer backend.Detach()

		if err := backend.CheckConsistency(); err != nil {
			fail("consistency", err)
		}

		fmt.Println("Board is consistent")
		return nil
	},
}
