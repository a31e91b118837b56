package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katahiromz/tristate"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tristate",
	Run: func(cmd *cobra.Command, args []string) {
		if app.renderer.Colored() {
			app.renderer.PrintBanner(cmd.OutOrStdout(), tristate.Version)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "tristate version %s\n", strings.TrimSpace(tristate.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
