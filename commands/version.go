package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "v1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of AI Diagnostics",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "AI Diagnostics "+version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
