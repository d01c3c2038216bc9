package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "percentf",
	Short:         "Percent-placeholder string formatting",
	Long:          "percentf renders format strings containing percent-style placeholders against a table of conversion codes, honoring printf-style width, alignment and truncation modifiers.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}
