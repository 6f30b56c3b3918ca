package rules

import "github.com/leapstack-labs/pystyle/pkg/lint"

func init() {
	lint.Register(BadIndentRule)
}

// BadIndentRule flags leading whitespace that is not a multiple of four.
var BadIndentRule = lint.RuleDef{
	ID:          lint.CodeBadIndent,
	Name:        "BAD_INDENT",
	Group:       "layout",
	Description: "Indentation must be a multiple of four characters.",
	Template:    "Indentation is not a multiple of four",
	Severity:    lint.SeverityWarning,
	CheckLine:   func(line lint.Line) bool { return BadIndentation(line.Text) },
	Rationale:   "Mixed indentation widths make block structure hard to follow. Continuation lines are checked too.",
	BadExample:  "if ready:\n   start()",
	GoodExample: "if ready:\n    start()",
}
