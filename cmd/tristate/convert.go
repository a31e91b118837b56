package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katahiromz/tristate"
)

var convertCmd = &cobra.Command{
	Use:   "convert VALUE...",
	Short: "Convert values to booleans",
	Long: `Converts each value to a boolean. Unknown becomes the --default when one is
given (or configured) and is reported as unspecified otherwise.`,
	Example: `  tristate convert true false unknown --default true`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runConvert,
}

func init() {
	convertCmd.Flags().String("default", "", "Boolean used for unknown values (true or false)")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	def := app.cfg.Default
	if s, _ := cmd.Flags().GetString("default"); s != "" {
		v, err := tristate.Parse(s)
		if err != nil {
			return fmt.Errorf("--default: %w", err)
		}
		def = v
	}

	values, err := parseValues(args)
	if err != nil {
		return err
	}

	bools := make([]bool, len(values))
	out := cmd.OutOrStdout()

	if d, ok := tristate.ToBool(def); ok {
		values.ToBoolsDefault(bools, d)
		for i, b := range bools {
			fmt.Fprintf(out, "%s\t%t\n", values[i], b)
		}
		return nil
	}

	values.ToBools(bools)
	for i, b := range bools {
		if values[i] == tristate.Unknown {
			fmt.Fprintf(out, "%s\tunspecified\n", values[i])
			continue
		}
		fmt.Fprintf(out, "%s\t%t\n", values[i], b)
	}
	return nil
}
