package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/pystyle/internal/cli/config"
	"github.com/leapstack-labs/pystyle/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration
// and the logger stored on the command context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.GetConfig(cmd.Context())
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: newRenderer(cmd, cfg, cfg.OutputFormat),
	}
}

func newRenderer(cmd *cobra.Command, cfg *config.Config, format string) *output.Renderer {
	return output.NewRendererWithColor(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(format), output.ColorMode(cfg.Color))
}
