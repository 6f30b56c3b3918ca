// Package cli provides the command-line interface for pystyle.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/pystyle/internal/cli/commands"
	"github.com/leapstack-labs/pystyle/internal/cli/config"
	"github.com/leapstack-labs/pystyle/internal/cli/output"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command. Running it with a path
// is the same as running check with that path.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "pystyle [path]",
		Short: "pystyle - Python style checker",
		Long: `pystyle checks Python source for layout, naming and design problems without
running it.

Give it a file or a directory. Every rule always runs; violations are
reported one per line, ordered by line and rule code within each file.`,
		Example: `  # Check the current project
  pystyle .

  # Same, spelled out
  pystyle check .

  # Machine-readable report
  pystyle check src -o json`,
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = context.WithValue(ctx, config.ConfigKey(), cfg)
			ctx = context.WithValue(ctx, config.LoggerKey(), logger)
			cmd.SetContext(ctx)

			if configFile := config.GetConfigFileUsed(); configFile != "" {
				logger.Debug("using config file", "path", configFile)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return commands.RunCheck(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set version template
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Python style checker
`)

	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: nearest .pystyle.yaml)")
	flags.BoolP("verbose", "v", false, "Log discovery and analysis to stderr")
	flags.StringP("output", "o", "", "Output format (auto|text|markdown|json)")
	flags.String("color", "", "Colour text output (auto|always|never)")
	flags.IntP("jobs", "j", config.DefaultJobs, "Number of files analyzed in parallel")
	flags.Bool("keep-going", false, "Report unreadable or unparsable files and continue")
	flags.Bool("fail-on-violation", false, "Exit non-zero when any violation is reported")
	flags.StringSlice("extension", nil, "File extensions or base name globs checked in directories (repeatable)")
	flags.StringSlice("exclude", nil, "Directory names skipped while walking (repeatable)")

	// Register completion for enumerated flags
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.Modes, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("color", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewRulesCommand())
	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// NewLogger returns a text logger on w at debug level when verbose is set,
// and a logger that discards everything otherwise.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for pystyle.

To load completions:

Bash:
  $ source <(pystyle completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ pystyle completion bash > /etc/bash_completion.d/pystyle
  # macOS:
  $ pystyle completion bash > $(brew --prefix)/etc/bash_completion.d/pystyle

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ pystyle completion zsh > "${fpath[1]}/_pystyle"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ pystyle completion fish | source

  # To load completions for each session, execute once:
  $ pystyle completion fish > ~/.config/fish/completions/pystyle.fish

PowerShell:
  PS> pystyle completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> pystyle completion powershell > pystyle.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
