package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/pystyle/internal/cli/output"
	"github.com/leapstack-labs/pystyle/internal/loader"
	"github.com/leapstack-labs/pystyle/pkg/lint"
	_ "github.com/leapstack-labs/pystyle/pkg/lint/rules" // register style rules
)

// ErrViolationsFound is returned when violations are reported and the run
// is configured to fail on them.
var ErrViolationsFound = errors.New("style violations found")

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>",
		Short: "Check Python files for style violations",
		Long: `Check a Python file, or every Python file under a directory, against the
style rule catalogue.

Each violation is reported as:
  <path>: Line <n>: <code> <message>

Violations are ordered by line, then by rule code, within each file. Files are
reported in the order they were discovered.

The exit status is 0 when the run completes, whatever the number of
violations, unless --fail-on-violation is set. A file that cannot be read or
parsed stops the run; with --keep-going it is reported and the run exits
non-zero at the end.`,
		Example: `  # Check one file
  pystyle check app/models.py

  # Check a project in parallel
  pystyle check . -j 8

  # Fail CI when any violation is found
  pystyle check src --fail-on-violation

  # Report parse failures without stopping
  pystyle check src --keep-going -o json`,
		Args: cobra.ExactArgs(1),
		RunE: RunCheck,
	}
}

// RunCheck checks the path in args[0]. The root command delegates to it.
func RunCheck(cmd *cobra.Command, args []string) error {
	return runCheck(cmd.Context(), NewCommandContext(cmd), args[0])
}

func runCheck(ctx context.Context, cc *CommandContext, root string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := cc.Cfg

	opts := cfg.LoaderOptions()
	opts.Logger = cc.Logger
	paths, err := loader.Discover(root, opts)
	if err != nil {
		return err
	}
	cc.Logger.Debug("discovered files", "root", root, "count", len(paths))

	analyzer := lint.NewAnalyzer(lint.Config{
		Reader:    loader.NewReader(cc.Logger),
		Logger:    cc.Logger,
		Jobs:      cfg.Jobs,
		KeepGoing: cfg.KeepGoing,
	})
	results, err := analyzer.AnalyzeFiles(ctx, paths)
	if err != nil {
		return err
	}

	if err := cc.Renderer.RenderReport(results); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	summary := output.Summarize(results)
	cc.Logger.Debug("check finished",
		"files", summary.Files,
		"violations", summary.Violations,
		"failures", summary.Failures)

	if summary.Failures > 0 {
		return fmt.Errorf("%d of %d files could not be analyzed", summary.Failures, summary.Files)
	}
	if cfg.FailOnViolation && summary.Violations > 0 {
		return fmt.Errorf("%w: %d in %d files", ErrViolationsFound, summary.Violations, summary.Files)
	}
	return nil
}
