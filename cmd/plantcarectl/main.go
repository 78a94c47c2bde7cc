// Command plantcarectl runs operator tasks against a plantcare deployment.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "plantcarectl",
	Short:         "Operator tool for the plant care reminder service",
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(newMigrateCmd(), newScanCmd(), newTriggerCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
