package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/pystyle/internal/cli/output"
)

var validColors = []string{string(output.ColorAuto), string(output.ColorAlways), string(output.ColorNever)}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !slices.Contains(output.Modes, c.OutputFormat) && c.OutputFormat != "md" {
		return fmt.Errorf("invalid output format %q: must be one of %s", c.OutputFormat, strings.Join(output.Modes, ", "))
	}
	if !slices.Contains(validColors, c.Color) {
		return fmt.Errorf("invalid color mode %q: must be one of %s", c.Color, strings.Join(validColors, ", "))
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("extensions must list at least one file pattern")
	}
	return nil
}
