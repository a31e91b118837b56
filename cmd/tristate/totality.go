package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katahiromz/tristate"
)

var totalityCmd = &cobra.Command{
	Use:   "totality [VALUE...]",
	Short: "Aggregate a sequence of values",
	Long: `Prints the totality of a sequence (true when all are true, false when all
are false, unknown otherwise) together with its chained and/or.

Values come from the arguments or from a YAML/JSON list given with --file.`,
	Example: `  tristate totality true true unknown
  tristate totality --file values.yaml`,
	RunE: runTotality,
}

func init() {
	totalityCmd.Flags().StringP("file", "f", "", "YAML or JSON file holding a list of values")
	rootCmd.AddCommand(totalityCmd)
}

func runTotality(cmd *cobra.Command, args []string) error {
	values, err := valuesFromInput(cmd, args)
	if err != nil {
		return err
	}

	r := app.renderer
	out := cmd.OutOrStdout()

	all := "mixed"
	if b, ok := values.Totality(); ok {
		all = fmt.Sprint(b)
	}

	fmt.Fprintf(out, "values:   %s\n", r.Values(values))
	fmt.Fprintf(out, "totality: %s\n", r.Value(values.TriTotality()))
	fmt.Fprintf(out, "uniform:  %s\n", all)
	fmt.Fprintf(out, "and:      %s\n", r.Value(values.ConnectAnd()))
	fmt.Fprintf(out, "or:       %s\n", r.Value(values.ConnectOr()))
	return nil
}

// valuesFromInput reads values from --file when set, else from args.
func valuesFromInput(cmd *cobra.Command, args []string) (tristate.Values, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		return parseValues(args)
	}
	if len(args) > 0 {
		return nil, fmt.Errorf("cannot combine --file with value arguments")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read values: %w", err)
	}
	// JSON is valid YAML, so one decoder serves both.
	var values tristate.Values
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	app.logger.Debug("values loaded", "file", path, "count", len(values))
	return values, nil
}
