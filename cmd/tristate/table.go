package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katahiromz/tristate/internal/presentation/tui"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the Kleene truth tables",
	RunE:  runTable,
}

func init() {
	tableCmd.Flags().StringSlice("op", []string{"and", "or", "not"}, "Operators to print")
	tableCmd.Flags().Bool("markdown", false, "Emit markdown (rendered when the output is colored)")
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	ops, _ := cmd.Flags().GetStringSlice("op")
	markdown, _ := cmd.Flags().GetBool("markdown")
	out := cmd.OutOrStdout()

	for i, op := range ops {
		if i > 0 {
			fmt.Fprintln(out)
		}

		if !markdown {
			s, err := app.renderer.TruthTable(op)
			if err != nil {
				return err
			}
			fmt.Fprint(out, s)
			continue
		}

		md, err := tui.TruthTableMarkdown(op)
		if err != nil {
			return err
		}
		rendered, err := app.renderer.Markdown(md)
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
		fmt.Fprint(out, rendered)
	}
	return nil
}
