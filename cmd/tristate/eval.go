package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katahiromz/tristate/internal/expr"
	"github.com/katahiromz/tristate/internal/presentation/graph"
)

var evalCmd = &cobra.Command{
	Use:   "eval EXPR...",
	Short: "Evaluate three-valued logic expressions",
	Long: `Evaluates each argument as an expression built from true, false, unknown,
not (!), and (&&), or (||) and parentheses, and prints its value.`,
	Example: `  tristate eval "not unknown or (true and false)"
  tristate eval --graph "false and unknown"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().Bool("graph", false, "Print a Mermaid flowchart of the evaluation")
	evalCmd.Flags().BoolP("verbose", "v", false, "Print the parenthesized expression next to its value")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	showGraph, _ := cmd.Flags().GetBool("graph")
	verbose, _ := cmd.Flags().GetBool("verbose")
	out := cmd.OutOrStdout()

	for _, src := range args {
		root, err := expr.Parse(src)
		if err != nil {
			return fmt.Errorf("%q: %w", src, err)
		}

		v, trace := expr.Trace(root)
		app.logger.Debug("evaluated", "expr", root.String(), "value", v, "nodes_evaluated", len(trace))

		if verbose {
			fmt.Fprintf(out, "%s = %s\n", root, app.renderer.Value(v))
		} else {
			fmt.Fprintln(out, app.renderer.Value(v))
		}
		if showGraph {
			fmt.Fprint(out, graph.GenerateMermaid(root, trace))
		}
	}
	return nil
}
