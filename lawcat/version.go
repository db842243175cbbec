package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of lawcat",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "lawcat %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
