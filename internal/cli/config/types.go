// Package config provides configuration management for the pystyle CLI.
//
// Values are layered with koanf, highest precedence first: command-line
// flags, PYSTYLE_ environment variables, the project config file and the
// built-in defaults. No setting selects which rules run; the rule catalogue
// is fixed.
package config

import (
	"slices"

	"github.com/leapstack-labs/pystyle/internal/loader"
)

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat    string   `koanf:"output" yaml:"output"`
	Color           string   `koanf:"color" yaml:"color"`
	Verbose         bool     `koanf:"verbose" yaml:"verbose"`
	Jobs            int      `koanf:"jobs" yaml:"jobs"`
	KeepGoing       bool     `koanf:"keep_going" yaml:"keep_going"`
	FailOnViolation bool     `koanf:"fail_on_violation" yaml:"fail_on_violation"`
	Extensions      []string `koanf:"extensions" yaml:"extensions"`
	Exclude         []string `koanf:"exclude" yaml:"exclude"`
}

// Default configuration values.
const (
	DefaultOutput = "auto" // text, styled when stdout is a terminal
	DefaultColor  = "auto"
	DefaultJobs   = 1
	EnvPrefix     = "PYSTYLE_"
)

// FileNames lists the config file names searched for, in priority order.
var FileNames = []string{".pystyle.yaml", ".pystyle.yml", "pystyle.yaml", "pystyle.yml"}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		Color:        DefaultColor,
		Jobs:         DefaultJobs,
		Extensions:   slices.Clone(loader.DefaultExtensions),
		Exclude:      slices.Clone(loader.DefaultExclude),
	}
}

// LoaderOptions converts the discovery settings to loader options.
func (c *Config) LoaderOptions() loader.Options {
	opts := loader.DefaultOptions()
	if len(c.Extensions) > 0 {
		opts.Extensions = c.Extensions
	}
	if c.Exclude != nil {
		opts.Exclude = c.Exclude
	}
	return opts
}
