package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "conduitctl",
	Short: "Conduit server command line interface",
	Long:  `conduitctl manages the Conduit article publishing server: running it, migrating its database and administering users.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
