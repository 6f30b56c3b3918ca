package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testFlags builds the flag set the root command registers.
func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "")
	flags.StringP("output", "o", "", "")
	flags.String("color", "", "")
	flags.BoolP("verbose", "v", false, "")
	flags.IntP("jobs", "j", 1, "")
	flags.Bool("keep-going", false, "")
	flags.Bool("fail-on-violation", false, "")
	flags.StringSlice("extension", nil, "")
	flags.StringSlice("exclude", nil, "")
	require.NoError(t, flags.Parse(args))
	return flags
}

// isolate runs the test from an empty directory with no PYSTYLE_ variables.
func isolate(t *testing.T) string {
	t.Helper()
	ResetConfig()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, name := range []string{"OUTPUT", "COLOR", "VERBOSE", "JOBS", "KEEP_GOING", "FAIL_ON_VIOLATION", "EXTENSIONS", "EXCLUDE"} {
		t.Setenv(EnvPrefix+name, "")
		require.NoError(t, os.Unsetenv(EnvPrefix+name))
	}
	return dir
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfigDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, ".pystyle.yaml"), `output: json
jobs: 4
keep_going: true
extensions: [".py", ".pyi", "BUILD"]
exclude: ["build"]
`)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 4, cfg.Jobs)
	assert.True(t, cfg.KeepGoing)
	assert.Equal(t, []string{".py", ".pyi", "BUILD"}, cfg.Extensions)
	assert.Equal(t, []string{"build"}, cfg.Exclude)
	assert.Equal(t, "auto", cfg.Color, "unset keys keep their defaults")
	assert.Equal(t, ".pystyle.yaml", filepath.Base(GetConfigFileUsed()))
}

func TestLoadConfigSearchesUpward(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "pystyle.yaml"), "output: markdown\n")
	nested := filepath.Join(dir, "src", "pkg")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	t.Chdir(nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.OutputFormat)
	assert.Equal(t, "pystyle.yaml", filepath.Base(GetConfigFileUsed()))
}

func TestLoadConfigExplicitFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, ".pystyle.yaml"), "jobs: 2\n")
	explicit := filepath.Join(dir, "ci", "style.yaml")
	writeConfig(t, explicit, "jobs: 8\n")

	cfg, err := LoadConfig(explicit, nil)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Jobs)
	assert.Equal(t, explicit, GetConfigFileUsed())
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := LoadConfig(filepath.Join(dir, "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, ".pystyle.yaml"), "jobs: 2\noutput: markdown\n")
	t.Setenv("PYSTYLE_JOBS", "6")
	t.Setenv("PYSTYLE_FAIL_ON_VIOLATION", "true")
	t.Setenv("PYSTYLE_EXCLUDE", "build, dist ,")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Jobs)
	assert.True(t, cfg.FailOnViolation)
	assert.Equal(t, []string{"build", "dist"}, cfg.Exclude)
	assert.Equal(t, "markdown", cfg.OutputFormat)
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("PYSTYLE_JOBS", "6")
	t.Setenv("PYSTYLE_OUTPUT", "markdown")

	flags := testFlags(t, "-j", "3", "--keep-going", "--extension", ".py,.pyi", "--config", "ignored.yaml")
	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Jobs)
	assert.True(t, cfg.KeepGoing)
	assert.Equal(t, []string{".py", ".pyi"}, cfg.Extensions)
	assert.Equal(t, "markdown", cfg.OutputFormat, "unchanged flags do not override env")
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		errPart string
	}{
		{name: "output", env: map[string]string{"PYSTYLE_OUTPUT": "yaml"}, errPart: "invalid output format"},
		{name: "color", env: map[string]string{"PYSTYLE_COLOR": "sometimes"}, errPart: "invalid color mode"},
		{name: "jobs", env: map[string]string{"PYSTYLE_JOBS": "0"}, errPart: "jobs must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig("", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.OutputFormat = "md"
	require.NoError(t, cfg.Validate())

	cfg = Default()
	cfg.Extensions = nil
	assert.Error(t, cfg.Validate())
}

func TestLoaderOptions(t *testing.T) {
	cfg := Default()
	cfg.Extensions = []string{".pyi"}
	cfg.Exclude = []string{}

	opts := cfg.LoaderOptions()
	assert.Equal(t, []string{".pyi"}, opts.Extensions)
	assert.Empty(t, opts.Exclude)
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))

	logger := GetLogger(context.Background())
	ctx := context.WithValue(context.Background(), LoggerKey(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}

func TestGetConfig(t *testing.T) {
	isolate(t)
	assert.Equal(t, Default(), GetConfig(context.Background()), "defaults before anything is loaded")

	loaded, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Same(t, loaded, GetConfig(context.Background()))

	stored := Default()
	stored.OutputFormat = "json"
	ctx := context.WithValue(context.Background(), ConfigKey(), stored)
	assert.Same(t, stored, GetConfig(ctx))
}
