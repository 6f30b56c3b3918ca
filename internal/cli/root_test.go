package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/pystyle/internal/cli/commands"
	"github.com/leapstack-labs/pystyle/internal/cli/config"
	"github.com/leapstack-labs/pystyle/internal/cli/output"
	clitestutil "github.com/leapstack-labs/pystyle/internal/cli/testutil"
)

// execute runs the root command with args from an isolated working directory.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	t.Chdir(t.TempDir())
	for _, name := range []string{"OUTPUT", "COLOR", "VERBOSE", "JOBS", "KEEP_GOING", "FAIL_ON_VIOLATION", "EXTENSIONS", "EXCLUDE"} {
		if _, ok := os.LookupEnv(config.EnvPrefix + name); ok {
			t.Setenv(config.EnvPrefix+name, "")
			require.NoError(t, os.Unsetenv(config.EnvPrefix+name))
		}
	}

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommandMetadata(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "pystyle [path]", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)

	flags := []string{"config", "verbose", "output", "color", "jobs", "keep-going", "fail-on-violation", "extension", "exclude"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"check", "rules", "init", "version", "completion"})
}

func TestRootWithPathRunsCheck(t *testing.T) {
	root := clitestutil.SetupTestProject(t)

	viaRoot, _, err := execute(t, root)
	require.NoError(t, err)

	viaCheck, _, err := execute(t, "check", root)
	require.NoError(t, err)

	assert.Equal(t, viaCheck, viaRoot)
	clitestutil.AssertNoANSI(t, viaRoot)
	messy := filepath.Join(root, "app", "messy.py")
	assert.True(t, strings.HasPrefix(viaRoot, messy+": Line 1: S008 Class name 'user_model' should be written in CamelCase\n"))
	assert.Equal(t, 5, strings.Count(viaRoot, "\n"))
}

func TestRootWithoutArgsShowsHelp(t *testing.T) {
	stdout, _, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Usage:")
}

func TestCheckFailOnViolationFlag(t *testing.T) {
	root := clitestutil.SetupTestProject(t)

	_, _, err := execute(t, "check", "--fail-on-violation", root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, commands.ErrViolationsFound))

	_, _, err = execute(t, "check", "--fail-on-violation", filepath.Join(root, "app", "clean.py"))
	assert.NoError(t, err)
}

func TestCheckFailOnViolationEnv(t *testing.T) {
	root := clitestutil.SetupTestProject(t)
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	t.Chdir(t.TempDir())

	t.Setenv("PYSTYLE_FAIL_ON_VIOLATION", "true")
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"check", root})

	err := cmd.Execute()
	assert.True(t, errors.Is(err, commands.ErrViolationsFound))
}

func TestCheckJSONOutput(t *testing.T) {
	root := clitestutil.SetupTestProject(t)

	stdout, _, err := execute(t, "-o", "json", "check", "-j", "2", root)
	require.NoError(t, err)

	var report output.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Len(t, report.Violations, 5)
}

func TestCheckExtensionFlag(t *testing.T) {
	root := clitestutil.SetupTestProject(t)

	stdout, _, err := execute(t, "check", "--extension", ".md", root)
	require.NoError(t, err)
	assert.Empty(t, stdout, "the markdown file has no python violations")

	stdout, _, err = execute(t, "check", "--exclude", "app", root)
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestVerboseLogsToStderr(t *testing.T) {
	root := clitestutil.SetupTestProject(t)

	_, stderr, err := execute(t, "-v", "check", root)
	require.NoError(t, err)
	assert.Contains(t, stderr, "discovered files")
	assert.Contains(t, stderr, "count=2")
}

func TestInvalidOutputFlag(t *testing.T) {
	_, _, err := execute(t, "-o", "yaml", "rules")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestRulesThroughRoot(t *testing.T) {
	stdout, _, err := execute(t, "-o", "markdown", "rules")
	require.NoError(t, err)
	clitestutil.AssertNoANSI(t, stdout)
	assert.Contains(t, stdout, "# Style Rules")
}

func TestConfigFileIsPickedUp(t *testing.T) {
	root := clitestutil.SetupTestProject(t)
	cfgPath := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output: json\n"), 0o600))

	stdout, _, err := execute(t, "--config", cfgPath, "check", root)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
}

func TestCompletionCommand(t *testing.T) {
	stdout, _, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pystyle")

	_, _, err = execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	NewLogger(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	NewLogger(&buf, true).Debug("shown", "key", "value")
	assert.Contains(t, buf.String(), "msg=shown key=value")
}
