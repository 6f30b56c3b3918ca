package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/leapstack-labs/pystyle/internal/cli/commands"
	"github.com/leapstack-labs/pystyle/internal/cli/config"
)

// ConfigField describes one key of the configuration file.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Description string
}

// EnvVar returns the environment variable that sets the field.
func (f ConfigField) EnvVar() string {
	return config.EnvPrefix + strings.ToUpper(f.Name)
}

// Flag returns the command-line flag that sets the field.
func (f ConfigField) Flag() string {
	if f.Name == "extensions" {
		return "--extension"
	}
	return "--" + strings.ReplaceAll(f.Name, "_", "-")
}

// configFields reads the configuration keys from the koanf tags of
// config.Config, with defaults taken from config.Default.
func configFields() []ConfigField {
	defaults := reflect.ValueOf(config.Default()).Elem()
	typ := defaults.Type()

	fields := make([]ConfigField, 0, typ.NumField())
	for i := range typ.NumField() {
		sf := typ.Field(i)
		name := sf.Tag.Get("koanf")
		if name == "" {
			continue
		}
		fields = append(fields, ConfigField{
			Name:        name,
			Type:        typeName(sf.Type),
			Default:     formatDefault(defaults.Field(i)),
			Description: commands.ConfigComment(name),
		})
	}
	return fields
}

func typeName(t reflect.Type) string {
	if t.Kind() == reflect.Slice {
		return "list of " + t.Elem().Kind().String()
	}
	return t.Kind().String()
}

func formatDefault(v reflect.Value) string {
	if v.Kind() == reflect.Slice {
		items := make([]string, v.Len())
		for i := range items {
			items[i] = fmt.Sprint(v.Index(i).Interface())
		}
		return "[" + strings.Join(items, ", ") + "]"
	}
	return fmt.Sprint(v.Interface())
}

// generateConfigurationDoc generates the configuration reference page.
func generateConfigurationDoc(outDir string) error {
	log.Printf("Generating configuration docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()

	w.Frontmatter("Configuration", "pystyle configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	names := make([]string, len(config.FileNames))
	for i, name := range config.FileNames {
		names[i] = InlineCode(name)
	}
	w.Paragraph("pystyle reads the first of " + strings.Join(names, ", ") +
		" found in the current directory or one of its parents. Run " + InlineCode("pystyle init") +
		" to write one holding the defaults.")

	w.Header(2, "Settings")
	var rows [][]string
	for _, f := range configFields() {
		rows = append(rows, []string{
			InlineCode(f.Name),
			f.Type,
			InlineCode(f.Default),
			InlineCode(f.Flag()),
			f.Description,
		})
	}
	w.Table([]string{"Key", "Type", "Default", "Flag", "Description"}, rows)

	w.Header(2, "Precedence")
	w.BulletList([]string{
		"Command-line flags",
		"Environment variables prefixed with " + InlineCode(config.EnvPrefix),
		"The configuration file",
		"Built-in defaults",
	})
	w.Paragraph("List values read from the environment are comma separated, for example " +
		InlineCode(config.EnvPrefix+"EXCLUDE=build,dist") + ".")

	w.Header(2, "Default Configuration")
	data, err := commands.MarshalDefaultConfig()
	if err != nil {
		return err
	}
	w.CodeBlock("yaml", string(data))

	filename := filepath.Join(outDir, "configuration.md")
	return os.WriteFile(filename, w.Bytes(), 0600)
}
