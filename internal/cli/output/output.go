// Package output renders command results for terminals, pipes and tools.
//
// Three modes are supported:
//   - text: one line per violation, styled with lipgloss when colour is on
//   - markdown: headed sections and tables, suited to CI summaries
//   - json: machine-readable arrays and objects
//
// Auto mode resolves to text. Colour is decided separately from the mode so
// piped text output stays byte-for-byte plain.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// OutputMode selects how results are written.
type OutputMode string

// Output modes.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
)

// Modes lists the accepted output mode names.
var Modes = []string{string(ModeAuto), string(ModeText), string(ModeMarkdown), string(ModeJSON)}

// Mode converts a user-supplied name to an OutputMode. Unknown and empty
// names become ModeAuto; "md" is accepted for markdown.
func Mode(name string) OutputMode {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text":
		return ModeText
	case "markdown", "md":
		return ModeMarkdown
	case "json":
		return ModeJSON
	default:
		return ModeAuto
	}
}

// ColorMode decides whether text output is styled.
type ColorMode string

// Colour modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   OutputMode
	styled bool
	styles *Styles
}

// NewRenderer creates a renderer that styles output only when out is a
// terminal and NO_COLOR is unset.
func NewRenderer(out, errOut io.Writer, mode OutputMode) *Renderer {
	return NewRendererWithColor(out, errOut, mode, ColorAuto)
}

// NewRendererWithColor creates a renderer with an explicit colour policy.
func NewRendererWithColor(out, errOut io.Writer, mode OutputMode, color ColorMode) *Renderer {
	var styled bool
	switch color {
	case ColorAlways:
		styled = true
	case ColorNever:
		styled = false
	default:
		styled = IsTerminal(out) && !termenv.EnvNoColor()
	}
	return NewRendererWithTTY(out, errOut, styled, mode)
}

// NewRendererWithTTY creates a renderer with styling forced on or off.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode OutputMode) *Renderer {
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		styled: isTTY,
		styles: NewStyles(out, isTTY),
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// EffectiveMode resolves ModeAuto to a concrete mode.
func (r *Renderer) EffectiveMode() OutputMode {
	if r.mode == ModeAuto || r.mode == "" {
		return ModeText
	}
	return r.mode
}

// IsStyled reports whether ANSI styling is applied.
func (r *Renderer) IsStyled() bool { return r.styled }

// Styles returns the style set for this renderer.
func (r *Renderer) Styles() *Styles { return r.styles }

// Writer returns the standard output writer.
func (r *Renderer) Writer() io.Writer { return r.out }

// Println writes a line to standard output.
func (r *Renderer) Println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

// Printf writes formatted text to standard output.
func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Success writes a success message to standard output.
func (r *Renderer) Success(msg string) {
	r.Println(r.styles.Success.Render(msg))
}

// Warning writes a warning to the error output.
func (r *Renderer) Warning(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Warning.Render("warning: ")+msg)
}

// Error writes an error to the error output.
func (r *Renderer) Error(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Error.Render("error: ")+msg)
}

// FormatHeader formats a markdown header of the given level.
func FormatHeader(level int, text string) string {
	return strings.Repeat("#", level) + " " + text
}

// FormatKeyValue formats a markdown list item with a bold key.
func FormatKeyValue(key, value string) string {
	return fmt.Sprintf("- **%s:** %s", key, value)
}

// Styles holds the lipgloss styles used for text output.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Path    lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
}

// NewStyles builds styles bound to w. When styled is false every style is
// empty and renders text unchanged.
func NewStyles(w io.Writer, styled bool) *Styles {
	if !styled {
		plain := lipgloss.NewStyle()
		return &Styles{
			Header1: plain, Header2: plain, Bold: plain, Muted: plain, Path: plain,
			Error: plain, Warning: plain, Info: plain, Success: plain,
		}
	}

	lr := lipgloss.NewRenderer(w)
	if lr.ColorProfile() == termenv.Ascii {
		lr.SetColorProfile(termenv.ANSI)
	}
	return &Styles{
		Header1: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Bold:    lr.NewStyle().Bold(true),
		Muted:   lr.NewStyle().Foreground(lipgloss.Color("8")),
		Path:    lr.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		Error:   lr.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Warning: lr.NewStyle().Foreground(lipgloss.Color("11")),
		Info:    lr.NewStyle().Foreground(lipgloss.Color("12")),
		Success: lr.NewStyle().Foreground(lipgloss.Color("10")),
	}
}
