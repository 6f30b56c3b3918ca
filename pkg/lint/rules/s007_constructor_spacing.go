package rules

import "github.com/leapstack-labs/pystyle/pkg/lint"

func init() {
	lint.Register(ConstructorSpacingRule)
}

// ConstructorSpacingRule flags extra whitespace after def and class keywords.
var ConstructorSpacingRule = lint.RuleDef{
	ID:          lint.CodeConstructorSpacing,
	Name:        "CONSTRUCTOR_SPACING",
	Group:       "layout",
	Description: "Exactly one space must follow the def and class keywords.",
	Template:    "Too many spaces after construction_name (def or class)",
	Severity:    lint.SeverityWarning,
	CheckLine:   func(line lint.Line) bool { return ConstructorSpacing(line.Text) },
	BadExample:  "def  handler(event):",
	GoodExample: "def handler(event):",
}
