package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/pystyle/internal/cli/output"
)

func TestMarkdownWriter(t *testing.T) {
	w := NewMarkdownWriter()
	w.Frontmatter("Rules", "Style rules")
	w.Header(2, "Catalogue")
	w.Table([]string{"Code", "Message"}, [][]string{{InlineCode("S003"), "a | b"}})
	w.BulletList([]string{Bold("one"), "two"})
	w.CodeBlock("python", "x = 1\n")

	want := "---\n" +
		"title: \"Rules\"\n" +
		"description: \"Style rules\"\n" +
		"---\n\n" +
		"## Catalogue\n\n" +
		"| Code | Message |\n" +
		"| --- | --- |\n" +
		"| `S003` | a \\| b |\n\n" +
		"- **one**\n" +
		"- two\n\n" +
		"```python\n" +
		"x = 1\n" +
		"```\n\n"
	assert.Equal(t, want, w.String())
}

func TestCleanDescription(t *testing.T) {
	assert.Equal(t, "one two three", cleanDescription("  one\n\ttwo   three\n"))
}

func TestCleanExample(t *testing.T) {
	example := "  # Check one file\n  pystyle check app.py\n\n    nested\n"
	assert.Equal(t, "# Check one file\npystyle check app.py\n\n  nested", cleanExample(example))
}

func TestReportFormatsCoverModes(t *testing.T) {
	for _, name := range output.Modes {
		assert.NotEmpty(t, reportFormats[output.OutputMode(name)], "format %s is undocumented", name)
	}
}

func TestConfigFields(t *testing.T) {
	fields := configFields()
	require.Len(t, fields, 8)

	byName := make(map[string]ConfigField, len(fields))
	for _, f := range fields {
		assert.NotEmpty(t, f.Description, "key %s is undocumented", f.Name)
		byName[f.Name] = f
	}

	jobs := byName["jobs"]
	assert.Equal(t, "int", jobs.Type)
	assert.Equal(t, "1", jobs.Default)
	assert.Equal(t, "PYSTYLE_JOBS", jobs.EnvVar())

	ext := byName["extensions"]
	assert.Equal(t, "list of string", ext.Type)
	assert.Equal(t, "[.py]", ext.Default)
	assert.Equal(t, "--extension", ext.Flag())

	assert.Equal(t, "--fail-on-violation", byName["fail_on_violation"].Flag())
}

func TestGenerateRuleDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateRuleDocs(dir))

	index, err := os.ReadFile(filepath.Join(dir, "index.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), generatedMarker)
	assert.Contains(t, string(index), "pystyle checks 12 rules.")
	assert.Contains(t, string(index), "| [`S012`](/rules/design#S012) | MUTABLE_DEFAULT_ARGUMENT | design | error |")

	naming, err := os.ReadFile(filepath.Join(dir, "naming.md"))
	require.NoError(t, err)
	assert.Contains(t, string(naming), "# Naming Rules")
	assert.Contains(t, string(naming), "## S008 - CLASS_NAME_CASING {#S008}")
	assert.NotContains(t, string(naming), "S001")

	for _, group := range ruleGroups {
		assert.FileExists(t, filepath.Join(dir, group+".md"))
	}
}

func TestGenerateCLIDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateCLIDocs(dir))

	index, err := os.ReadFile(filepath.Join(dir, "index.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "[`check`](/cli/check)")
	assert.Contains(t, string(index), "`PYSTYLE_FAIL_ON_VIOLATION`")
	assert.Contains(t, string(index), "`--keep-going`")
	assert.Contains(t, string(index), "## Report Formats")
	for _, name := range output.Modes {
		assert.Contains(t, string(index), "| `"+name+"` |")
	}
	assert.Contains(t, string(index), "| `-j` | `1` |")

	check, err := os.ReadFile(filepath.Join(dir, "check.md"))
	require.NoError(t, err)
	assert.Contains(t, string(check), "pystyle check <path>")
	assert.Contains(t, string(check), "## Global Options")

	for _, name := range []string{"rules", "init", "version", "completion"} {
		assert.FileExists(t, filepath.Join(dir, name+".md"))
	}
}

func TestGenerateConfigurationDoc(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateConfigurationDoc(dir))

	data, err := os.ReadFile(filepath.Join(dir, "configuration.md"))
	require.NoError(t, err)
	doc := string(data)
	assert.Contains(t, doc, "`.pystyle.yaml`")
	assert.Contains(t, doc, "| `jobs` | int | `1` | `--jobs` |")
	assert.Contains(t, doc, "extensions: [.py]")
}
