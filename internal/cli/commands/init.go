package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/pystyle/internal/cli/config"
	"github.com/leapstack-labs/pystyle/internal/cli/output"
)

// initFileName is the config file written by init.
const initFileName = ".pystyle.yaml"

// configComments documents each key in the generated file.
var configComments = map[string]string{
	"output":            "Report format: auto, text, markdown or json.",
	"color":             "Colour text output: auto, always or never.",
	"verbose":           "Log discovery and analysis events to stderr.",
	"jobs":              "Number of files analyzed in parallel.",
	"keep_going":        "Report unreadable or unparsable files and continue.",
	"fail_on_violation": "Exit non-zero when any violation is reported.",
	"extensions":        "Files checked when walking a directory: extensions or base name globs.",
	"exclude":           "Directory names that are never walked into.",
}

// ConfigComment returns the documentation line for a config key, or "" when
// the key is unknown.
func ConfigComment(key string) string {
	return configComments[key]
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default pystyle configuration",
		Long: `Write a .pystyle.yaml file holding the default settings, with each key
documented. pystyle finds the file from any directory below it.`,
		Example: `  # Initialize in current directory
  pystyle init

  # Initialize in another directory
  pystyle init services/api

  # Overwrite an existing config
  pystyle init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(NewCommandContext(cmd).Renderer, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(r *output.Renderer, dir string, force bool) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	configPath := filepath.Join(dir, initFileName)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", configPath)
	}

	data, err := MarshalDefaultConfig()
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	r.Success("Created " + configPath)
	r.Println("")
	r.Println("Next steps:")
	r.Println("  pystyle check .     Check every Python file below this directory")
	r.Println("  pystyle rules       See what each rule reports")

	return nil
}

// MarshalDefaultConfig renders the default configuration as commented YAML.
func MarshalDefaultConfig() ([]byte, error) {
	var doc yaml.Node
	if err := doc.Encode(config.Default()); err != nil {
		return nil, fmt.Errorf("failed to encode default config: %w", err)
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i]
		if comment, ok := configComments[key.Value]; ok {
			key.HeadComment = comment
		}
		if value := doc.Content[i+1]; value.Kind == yaml.SequenceNode {
			value.Style = yaml.FlowStyle
		}
	}

	root := &yaml.Node{
		Kind:        yaml.DocumentNode,
		HeadComment: "pystyle configuration. Flags and PYSTYLE_* environment variables override these values.",
		Content:     []*yaml.Node{&doc},
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to encode default config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode default config: %w", err)
	}
	return buf.Bytes(), nil
}
