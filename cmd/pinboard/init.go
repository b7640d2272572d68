// Init command creates the configuration and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the board storage",
	Long: `Init creates the configuration directory with a default config.yaml,
creates the data directory, and initializes the board database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Config dir and default config.yaml are created by the root
		// command's PersistentPreRunE; attaching creates the database.
		backend, err := attachBackend()
		if err != nil {
			fail("init", err)
		}
		defer backend.Detach()

		dataDir, err := resolveDataDir()
		if err != nil {
			fail("init", err)
		}

		fmt.Printf("Initialized board in %s\n", dataDir)
		return nil
	},
}
