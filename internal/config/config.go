package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/katahiromz/tristate"
)

// DefaultFile is read from the working directory when no file is named.
const DefaultFile = ".tristate.yaml"

// EnvPrefix prefixes every environment variable Load consults.
const EnvPrefix = "TRISTATE_"

// Config holds the command-line settings.
type Config struct {
	// Strict rejects unrecognized literals in command arguments instead of reading them as unknown.
	Strict bool `mapstructure:"strict" yaml:"strict"`
	// Color forces colored output (true), disables it (false) or detects a terminal (unknown).
	Color tristate.Value `mapstructure:"color" yaml:"color"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// Default replaces Unknown when converting to bool. Unknown leaves the slot unspecified.
	Default tristate.Value `mapstructure:"default" yaml:"default"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		Color:    tristate.Unknown,
		LogLevel: "info",
		Default:  tristate.Unknown,
	}
}

// Load layers defaults, the configuration file and the environment.
//
// path may name a YAML or JSON file; an empty path means DefaultFile, whose
// absence is not an error. lookup reads the environment (os.LookupEnv in
// production) and may be nil.
func Load(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	raw, err := readFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			raw = nil
		} else {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
	}
	if err := decode(raw, &cfg, false); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if lookup != nil {
		if err := decode(fromEnv(lookup), &cfg, true); err != nil {
			return cfg, fmt.Errorf("invalid environment: %w", err)
		}
	}
	return cfg, nil
}

// readFile parses a YAML or JSON document into a generic map.
// JSON is valid YAML, so both go through the YAML decoder.
func readFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func fromEnv(lookup func(string) (string, bool)) map[string]any {
	raw := make(map[string]any)
	for _, key := range []string{"strict", "color", "log_level", "default"} {
		if v, ok := lookup(EnvPrefix + strings.ToUpper(key)); ok {
			raw[key] = strings.TrimSpace(v)
		}
	}
	return raw
}

func decode(raw map[string]any, cfg *Config, weak bool) error {
	if len(raw) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       tristate.DecodeHook(),
		ErrorUnused:      true,
		WeaklyTypedInput: weak,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}
