// Package cli parses binomial command configuration and runs the one-shot
// and interactive front ends over the engine.
package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/katalvlaran/binomial/internal/config"
	"github.com/katalvlaran/binomial/params"
	"github.com/katalvlaran/binomial/pmf"
)

// Output formats.
const (
	FormatCSV   = "csv"
	FormatTable = "table"
	FormatChart = "chart"
)

// ErrUnknownFormat indicates a format other than csv, table or chart was
// requested.
var ErrUnknownFormat = errors.New("cli: unknown output format")

// ErrInvalidMaxTrials indicates a negative trial bound.
var ErrInvalidMaxTrials = errors.New("cli: max trials must be non-negative")

// Config holds command configuration. Precedence, lowest first: struct
// defaults, environment, YAML file, flags.
type Config struct {
	N           string `env:"BINOMIAL_N" envDefault:"16"`
	P           string `env:"BINOMIAL_P" envDefault:"0.5"`
	Format      string `env:"BINOMIAL_FORMAT" envDefault:"csv"`
	Out         string `env:"BINOMIAL_OUT"`
	ConfigFile  string `env:"BINOMIAL_CONFIG"`
	MaxTrials   int    `env:"BINOMIAL_MAX_TRIALS" envDefault:"512"`
	Verbose     bool   `env:"BINOMIAL_VERBOSE"`
	Interactive bool
}

// fileConfig mirrors the YAML file. Pointers tell "absent" from "zero".
type fileConfig struct {
	N         *string `yaml:"n"`
	P         *string `yaml:"p"`
	Format    *string `yaml:"format"`
	Out       *string `yaml:"out"`
	MaxTrials *int    `yaml:"max_trials"`
	Verbose   *bool   `yaml:"verbose"`
}

// ParseConfig parses environment, an optional YAML file and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}

	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.N, "n", cfg.N, "number of independent trials, 0..max-trials")
	fs.StringVar(&cfg.P, "p", cfg.P, "probability of success of each trial, 0..1")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: csv, table or chart")
	fs.StringVar(&cfg.Out, "out", cfg.Out, "write output to this file instead of stdout; default export path in -interactive")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML configuration file")
	fs.IntVar(&cfg.MaxTrials, "max-trials", cfg.MaxTrials, "largest accepted number of trials")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")
	fs.BoolVar(&cfg.Interactive, "interactive", false, "read commands from stdin")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.ConfigFile != "" {
		var file fileConfig
		if err := config.LoadYAML(cfg.ConfigFile, &file); err != nil {
			return Config{}, err
		}
		applyFile(&cfg, file, setFlags(fs))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that do not depend on the engine.
func (c Config) Validate() error {
	switch c.Format {
	case FormatCSV, FormatTable, FormatChart:
	default:
		return fmt.Errorf("format %q: %w", c.Format, ErrUnknownFormat)
	}
	if c.MaxTrials < 0 {
		return fmt.Errorf("max trials %d: %w", c.MaxTrials, ErrInvalidMaxTrials)
	}
	return nil
}

// EngineOptions returns the pmf options implied by the configuration.
func (c Config) EngineOptions() []pmf.Option {
	return []pmf.Option{pmf.WithMaxTrials(c.MaxTrials)}
}

// Params parses the configured n and p.
func (c Config) Params() (params.Params, error) {
	return params.Parse(c.N, c.P, c.EngineOptions()...)
}

// setFlags returns the names of flags given explicitly on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFile copies file values into cfg unless the matching flag was set.
func applyFile(cfg *Config, file fileConfig, flags map[string]bool) {
	if file.N != nil && !flags["n"] {
		cfg.N = *file.N
	}
	if file.P != nil && !flags["p"] {
		cfg.P = *file.P
	}
	if file.Format != nil && !flags["format"] {
		cfg.Format = *file.Format
	}
	if file.Out != nil && !flags["out"] {
		cfg.Out = *file.Out
	}
	if file.MaxTrials != nil && !flags["max-trials"] {
		cfg.MaxTrials = *file.MaxTrials
	}
	if file.Verbose != nil && !flags["v"] {
		cfg.Verbose = *file.Verbose
	}
}
