package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/pystyle/pkg/lint"
	_ "github.com/leapstack-labs/pystyle/pkg/lint/rules"
)

// ruleGroups lists the rule groups in catalogue order.
var ruleGroups = []string{"layout", "naming", "design"}

// groupDescriptions provides human-readable descriptions for rule groups.
var groupDescriptions = map[string]string{
	"layout": "Rules evaluated on each raw line of text, before any parsing.",
	"naming": "Rules about the casing of class, function, argument and variable names.",
	"design": "Rules about constructs that behave differently from how they read.",
}

// generateRuleDocs generates the rule documentation pages.
func generateRuleDocs(outDir string) error {
	log.Printf("Generating rule docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rules := lint.GetAll()

	if err := generateRulesIndex(outDir, rules); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, group := range ruleGroups {
		if err := generateGroupPage(outDir, group, lint.GetByGroup(group)); err != nil {
			return err
		}
		log.Printf("  Generated %s.md", group)
	}

	return nil
}

// generateRulesIndex generates the rule overview page.
func generateRulesIndex(outDir string, rules []lint.RuleDef) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Rules", "Style rules checked by pystyle")
	w.GeneratedMarker()

	w.Header(1, "Rules")
	w.Paragraph(fmt.Sprintf("pystyle checks %d rules. Every rule always runs; there is no switch to disable one.", len(rules)))

	w.Header(2, "Output Format")
	w.Paragraph("Each violation is printed on its own line, ordered by line number and then by code:")
	w.CodeBlock("text", "<path>: Line <n>: <code> <message>")

	w.Header(2, "Severity Levels")
	w.Table(
		[]string{"Severity", "Description"},
		[][]string{
			{InlineCode("error"), "The code behaves differently from how it reads"},
			{InlineCode("warning"), "The code departs from the house style"},
		},
	)

	w.Header(2, "Catalogue")
	var rows [][]string
	for _, rule := range rules {
		rows = append(rows, []string{
			fmt.Sprintf("[%s](/rules/%s#%s)", InlineCode(string(rule.ID)), rule.Group, rule.ID),
			rule.Name,
			rule.Group,
			rule.Severity.String(),
			cleanDescription(rule.Description),
		})
	}
	w.Table([]string{"Code", "Name", "Group", "Severity", "Description"}, rows)

	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600)
}

// generateGroupPage generates the page for one rule group.
func generateGroupPage(outDir, group string, rules []lint.RuleDef) error {
	w := NewMarkdownWriter()

	title := cases.Title(language.English).String(group) + " Rules"
	w.Frontmatter(title, groupDescriptions[group])
	w.GeneratedMarker()

	w.Header(1, title)
	if desc, ok := groupDescriptions[group]; ok {
		w.Paragraph(desc)
	}

	for _, rule := range rules {
		writeRuleDoc(w, rule)
	}

	return os.WriteFile(filepath.Join(outDir, group+".md"), w.Bytes(), 0600)
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(w *MarkdownWriter, rule lint.RuleDef) {
	// Rule header with anchor: ## S008 - CLASS_NAME_CASING {#S008}
	w.Line(fmt.Sprintf("## %s - %s {#%s}", rule.ID, rule.Name, rule.ID))
	w.Newline()

	w.Line(fmt.Sprintf("**Severity:** %s", InlineCode(rule.Severity.String())))
	w.Newline()
	w.Line(fmt.Sprintf("**Message:** %s", InlineCode(rule.Template)))
	w.Newline()

	w.Paragraph(cleanDescription(rule.Description))

	if rule.Rationale != "" {
		w.Header(3, "Why This Matters")
		w.Paragraph(strings.TrimSpace(rule.Rationale))
	}

	if rule.BadExample != "" {
		w.Header(3, "Bad")
		w.CodeBlock("python", rule.BadExample)
	}

	if rule.GoodExample != "" {
		w.Header(3, "Good")
		w.CodeBlock("python", rule.GoodExample)
	}

	if rule.Fix != "" {
		w.Header(3, "How to Fix")
		w.Paragraph(strings.TrimSpace(rule.Fix))
	}

	w.Line("---")
	w.Newline()
}
