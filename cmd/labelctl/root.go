package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "labelctl",
	Short: "LabelForge server and administration tool",
	Long:  `labelctl runs the LabelForge annotation server and manages its database, users, and configuration.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
