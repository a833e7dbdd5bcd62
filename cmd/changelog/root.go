package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Keep a Changelog parser and validator",
	Long: `A tool for parsing and validating Keep a Changelog formatted markdown files.

Used by the LabelForge release process to validate CHANGELOG.md and to
extract the release notes for a tagged version.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
