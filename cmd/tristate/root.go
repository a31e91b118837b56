package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katahiromz/tristate"
	"github.com/katahiromz/tristate/internal/config"
	"github.com/katahiromz/tristate/internal/logging"
	"github.com/katahiromz/tristate/internal/presentation/tui"
)

var rootCmd = &cobra.Command{
	Use:   "tristate",
	Short: "tristate evaluates three-valued (true/false/unknown) logic",
	Long: `tristate is a command-line companion to the tristate library.
It evaluates Kleene logic expressions, aggregates sequences of values and
prints truth tables.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// app holds what setup resolved for the running command.
var app = struct {
	cfg      config.Config
	logger   *slog.Logger
	renderer *tui.Renderer
}{
	cfg:    config.Default(),
	logger: logging.NewNop(),
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Configuration file (default ./"+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("strict", false, "Reject unrecognized literals instead of reading them as unknown")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

// setup layers configuration (file, environment, flags) and builds the logger
// and renderer for the command about to run.
func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, os.LookupEnv)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("strict") {
		cfg.Strict, _ = flags.GetBool("strict")
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		cfg.Color = tristate.False
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	app.cfg = cfg
	app.logger = logging.New(cmd.ErrOrStderr(), level)
	app.renderer = tui.NewRenderer(cmd.OutOrStdout(), cfg.Color)

	app.logger.Debug("configuration loaded",
		"strict", cfg.Strict,
		"color", cfg.Color,
		"default", cfg.Default,
		"tristate_strict_build", tristate.Strict)
	return nil
}

// parseValues converts command arguments to values. In strict mode an
// unrecognized literal is an error; otherwise it reads as unknown and a
// warning is logged.
func parseValues(args []string) (tristate.Values, error) {
	values := make(tristate.Values, len(args))
	for i, arg := range args {
		v, err := tristate.Parse(arg)
		if err != nil {
			if app.cfg.Strict {
				return nil, fmt.Errorf("argument %d: %w", i+1, err)
			}
			app.logger.Warn("unrecognized literal read as unknown", "index", i+1, "input", arg)
		}
		values[i] = v
	}
	return values, nil
}
