package main

import (
	"fmt"

	"github.com/spf13/cobra"

	percentf "github.com/itsatony/go-percentf"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the percentf version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), percentf.Version)
	},
}
