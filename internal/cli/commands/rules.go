package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/pystyle/internal/cli/output"
	"github.com/leapstack-labs/pystyle/pkg/lint"
	_ "github.com/leapstack-labs/pystyle/pkg/lint/rules" // register style rules
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Verbose bool   // Show full documentation
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [code]",
		Short: "List the style rules",
		Long: `List the style rules with their documentation.

Rules are organized by group: layout rules check the text of each line, naming
and design rules check the syntax tree. Every rule always runs.

Pass a rule code (e.g. S008) or name (e.g. CLASS_NAME_CASING) to see its full
documentation including examples and fix guidance.`,
		Example: `  # List all rules
  pystyle rules

  # Show details for a specific rule
  pystyle rules S012

  # List naming rules only
  pystyle rules --group naming

  # Output as JSON
  pystyle rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer

			// Override renderer if format flag is set
			if opts.Format != "" {
				r = newRenderer(cmd, cmdCtx.Cfg, opts.Format)
			}

			if len(args) > 0 {
				return showRule(r, args[0])
			}
			return listRules(r, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group: layout, naming, design")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	_ = cmd.RegisterFlagCompletionFunc("group", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"layout", "naming", "design"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// findRule looks a rule up by code or catalogue name, ignoring case.
func findRule(key string) (lint.RuleDef, bool) {
	if rule, ok := lint.GetByID(lint.Code(strings.ToUpper(key))); ok {
		return rule, true
	}
	for _, rule := range lint.GetAll() {
		if strings.EqualFold(rule.Name, key) {
			return rule, true
		}
	}
	return lint.RuleDef{}, false
}

func listRules(r *output.Renderer, opts *RulesOptions) error {
	rules := lint.GetAll()
	if opts.Group != "" {
		rules = lint.GetByGroup(strings.ToLower(opts.Group))
		if len(rules) == 0 {
			return fmt.Errorf("unknown rule group %q", opts.Group)
		}
	}

	infos := make([]lint.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, rule.Info())
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listRulesJSON(r, infos)
	case output.ModeMarkdown:
		return listRulesMarkdown(r, infos, opts.Verbose)
	default:
		return listRulesText(r, infos, opts.Verbose)
	}
}

func showRule(r *output.Renderer, key string) error {
	rule, ok := findRule(key)
	if !ok {
		return fmt.Errorf("rule %q not found", key)
	}
	info := rule.Info()

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(info)
	case output.ModeMarkdown:
		return showRuleMarkdown(r, info)
	default:
		return showRuleText(r, info)
	}
}

// rulesTable builds the catalogue table shared by text and markdown output.
func rulesTable(rules []lint.RuleInfo, verbose bool) table.Writer {
	t := table.NewWriter()
	header := table.Row{"Code", "Name", "Group", "Kind", "Severity"}
	if verbose {
		header = append(header, "Description")
	}
	t.AppendHeader(header)
	for _, rule := range rules {
		row := table.Row{rule.ID, rule.Name, rule.Group, rule.Kind, rule.Severity.String()}
		if verbose {
			row = append(row, rule.Description)
		}
		t.AppendRow(row)
	}
	return t
}

// listRulesText outputs rules as a table.
func listRulesText(r *output.Renderer, rules []lint.RuleInfo, verbose bool) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Style Rules (%d)", len(rules))))
	r.Println("")

	t := rulesTable(rules, verbose)
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.Render()

	r.Println("")
	r.Println(styles.Muted.Render("Use 'pystyle rules <code>' for detailed documentation"))
	r.Println("")

	return nil
}

// listRulesMarkdown outputs rules as a markdown table.
func listRulesMarkdown(r *output.Renderer, rules []lint.RuleInfo, verbose bool) error {
	r.Println(output.FormatHeader(1, "Style Rules"))
	r.Println("")

	t := rulesTable(rules, verbose)
	t.SetOutputMirror(r.Writer())
	t.RenderMarkdown()

	r.Println("")
	return nil
}

// RulesJSONOutput is the JSON output structure for rules listing.
type RulesJSONOutput struct {
	Rules []lint.RuleInfo `json:"rules"`
	Count int             `json:"count"`
}

// listRulesJSON outputs rules in JSON format.
func listRulesJSON(r *output.Renderer, rules []lint.RuleInfo) error {
	return r.JSON(RulesJSONOutput{Rules: rules, Count: len(rules)})
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, rule lint.RuleInfo) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", rule.ID, rule.Name)))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), rule.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Kind"), rule.Kind)
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), r.SeverityStyle(rule.Severity).Render(rule.Severity.String()))
	r.Printf("  %s: %s\n", styles.Bold.Render("Message"), rule.Message)
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		for _, line := range strings.Split(rule.Rationale, "\n") {
			r.Println("  " + line)
		}
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println(styles.Bold.Render("Bad Example"))
		for _, line := range strings.Split(rule.BadExample, "\n") {
			r.Println(styles.Muted.Render("  " + line))
		}
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println(styles.Bold.Render("Good Example"))
		for _, line := range strings.Split(rule.GoodExample, "\n") {
			r.Println(styles.Success.Render("  " + line))
		}
		r.Println("")
	}

	if rule.Fix != "" {
		r.Println(styles.Bold.Render("How to Fix"))
		r.Println("  " + rule.Fix)
		r.Println("")
	}

	return nil
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(r *output.Renderer, rule lint.RuleInfo) error {
	r.Println(output.FormatHeader(1, fmt.Sprintf("%s - %s", rule.ID, rule.Name)))
	r.Println("")
	r.Printf("**Group:** %s | **Kind:** %s | **Severity:** `%s`\n\n", rule.Group, rule.Kind, rule.Severity.String())
	r.Println(rule.Description)
	r.Println("")
	r.Println(output.FormatKeyValue("Message", "`"+rule.Message+"`"))
	r.Println("")

	if rule.Rationale != "" {
		r.Println(output.FormatHeader(2, "Why This Matters"))
		r.Println("")
		r.Println(rule.Rationale)
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println(output.FormatHeader(2, "Bad Example"))
		r.Println("")
		r.Println("```python")
		r.Println(rule.BadExample)
		r.Println("```")
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println(output.FormatHeader(2, "Good Example"))
		r.Println("")
		r.Println("```python")
		r.Println(rule.GoodExample)
		r.Println("```")
		r.Println("")
	}

	if rule.Fix != "" {
		r.Println(output.FormatHeader(2, "How to Fix"))
		r.Println("")
		r.Println(rule.Fix)
		r.Println("")
	}

	return nil
}
