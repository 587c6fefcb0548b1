package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/clite/pkg/core/version"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version",
	// No configuration is needed to print the version
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, version.Platform)
			return
		}

		fmt.Fprintln(out, version.Info())
		for _, name := range version.Components() {
			fmt.Fprintf(out, "  %-12s %s\n", name, version.ComponentVersion(name))
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print only the version number")
}
