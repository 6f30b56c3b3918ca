package main

import (
	"cmp"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/pystyle/internal/cli"
	"github.com/leapstack-labs/pystyle/internal/cli/config"
	"github.com/leapstack-labs/pystyle/internal/cli/output"
)

// reportFormats describes each value accepted by --output.
var reportFormats = map[output.OutputMode]string{
	output.ModeAuto:     "Same as " + InlineCode("text") + "; the line format holds when piped",
	output.ModeText:     "One " + InlineCode("<path>: Line <n>: <code> <message>") + " line per violation",
	output.ModeMarkdown: "A table per file, for pull request comments",
	output.ModeJSON:     "A single document with every file's violations and any failures",
}

// colorModes describes each value accepted by --color.
var colorModes = [][]string{
	{InlineCode(string(output.ColorAuto)), "Style text output on a terminal unless " + InlineCode("NO_COLOR") + " is set"},
	{InlineCode(string(output.ColorAlways)), "Always style text output"},
	{InlineCode(string(output.ColorNever)), "Never style text output"},
}

// exitCodes describes how a check run ends.
var exitCodes = [][]string{
	{InlineCode("0"), "Every file was analyzed. Violations alone do not fail the run"},
	{InlineCode("1"), "A file could not be read or parsed, the arguments were invalid, or " + InlineCode("--fail-on-violation") + " was set and a violation was found"},
}

// generateCLIDocs writes index.md and one page per visible command.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	root := cli.NewRootCmd()
	pages := map[string][]byte{"index.md": cliIndex(root)}
	for _, cmd := range documentedCommands(root) {
		pages[cmd.Name()+".md"] = commandPage(cmd)
	}

	names := make([]string, 0, len(pages))
	for name := range pages {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if err := os.WriteFile(filepath.Join(outDir, name), pages[name], 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		log.Printf("  Generated %s", name)
	}
	return nil
}

// cliIndex renders the CLI overview page.
func cliIndex(root *cobra.Command) []byte {
	w := NewMarkdownWriter()

	w.Frontmatter("CLI Reference", "Command-line interface reference for pystyle")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(cleanDescription(root.Long))

	w.Header(2, "Installation")
	w.CodeBlock("bash", "go install github.com/leapstack-labs/pystyle/cmd/pystyle@latest")

	w.Header(2, "Usage")
	w.CodeBlock("bash", "pystyle <path> [options]\npystyle <command> [options]")
	w.Paragraph("A bare path is shorthand for " + InlineCode("pystyle check <path>") + ".")

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range documentedCommands(root) {
		rows = append(rows, []string{
			fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name()),
			cleanDescription(cmd.Short),
		})
	}
	w.Table([]string{"Command", "Description"}, rows)

	w.Header(2, "Global Options")
	w.Table(flagHeaders, flagRows(root.PersistentFlags()))

	w.Header(2, "Report Formats")
	w.Paragraph("Chosen with " + InlineCode("--output") + " or the " + InlineCode("output") + " config key:")
	rows = nil
	for _, name := range output.Modes {
		rows = append(rows, []string{InlineCode(name), reportFormats[output.OutputMode(name)]})
	}
	w.Table([]string{"Format", "Report"}, rows)

	w.Header(2, "Colour")
	w.Table([]string{"Mode", "Behaviour"}, colorModes)

	w.Header(2, "Environment Variables")
	w.Paragraph("Every configuration key can be set through a " + InlineCode(config.EnvPrefix) + " variable:")
	rows = nil
	for _, f := range configFields() {
		rows = append(rows, []string{InlineCode(f.EnvVar()), f.Description})
	}
	w.Table([]string{"Variable", "Description"}, rows)
	w.Paragraph("Flags override environment variables, which override the config file.")

	w.Header(2, "Exit Codes")
	w.Table([]string{"Code", "Meaning"}, exitCodes)

	return w.Bytes()
}

// commandPage renders the page for a single command.
func commandPage(cmd *cobra.Command) []byte {
	w := NewMarkdownWriter()

	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	w.Paragraph(strings.TrimSpace(cmp.Or(cmd.Long, cmd.Short)))

	w.Header(2, "Usage")
	w.CodeBlock("bash", usageLine(cmd))

	if rows := flagRows(cmd.LocalNonPersistentFlags()); len(rows) > 0 {
		w.Header(2, "Options")
		w.Table(flagHeaders, rows)
	}
	if rows := flagRows(cmd.InheritedFlags()); len(rows) > 0 {
		w.Header(2, "Global Options")
		w.Table(flagHeaders, rows)
	}

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", cleanExample(cmd.Example))
	}

	return w.Bytes()
}

// usageLine returns cmd's use line rooted at the binary name.
func usageLine(cmd *cobra.Command) string {
	line := cmd.UseLine()
	if strings.HasPrefix(line, "pystyle") {
		return line
	}
	return "pystyle " + line
}

// documentedCommands returns the visible subcommands of root.
func documentedCommands(root *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, cmd := range root.Commands() {
		if !cmd.IsAvailableCommand() || cmd.Name() == "help" {
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

var flagHeaders = []string{"Option", "Short", "Default", "Description"}

// flagRows returns one table row per visible flag.
func flagRows(flags *pflag.FlagSet) [][]string {
	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		short := ""
		if f.Shorthand != "" {
			short = InlineCode("-" + f.Shorthand)
		}
		rows = append(rows, []string{InlineCode("--" + f.Name), short, flagDefault(f), cleanDescription(f.Usage)})
	})
	return rows
}

// flagDefault formats a flag's default for the table. Empty values, empty
// lists and false booleans show nothing.
func flagDefault(f *pflag.Flag) string {
	switch {
	case f.DefValue == "", f.DefValue == "[]", f.DefValue == "false":
		return ""
	case f.Value.Type() == "bool":
		return f.DefValue
	default:
		return InlineCode(f.DefValue)
	}
}

// cleanExample strips the indentation shared by every non-blank line.
func cleanExample(example string) string {
	lines := strings.Split(example, "\n")

	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	for i, line := range lines {
		if len(line) >= indent && indent > 0 {
			lines[i] = line[indent:]
		} else {
			lines[i] = strings.TrimLeft(line, " \t")
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
