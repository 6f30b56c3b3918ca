package rules

import "github.com/leapstack-labs/pystyle/pkg/lint"

func init() {
	lint.Register(LineTooLongRule)
}

// LineTooLongRule flags lines longer than MaxLineLength characters.
var LineTooLongRule = lint.RuleDef{
	ID:          lint.CodeLineTooLong,
	Name:        "LINE_TOO_LONG",
	Group:       "layout",
	Description: "Lines must not exceed 79 characters.",
	Template:    "Too long",
	Severity:    lint.SeverityWarning,
	CheckLine:   func(line lint.Line) bool { return LineTooLong(line.Text) },
	Rationale: `Long lines force horizontal scrolling and break side-by-side diffs.
The limit counts characters, not bytes, so non-ASCII text is measured the way it is displayed.`,
	BadExample:  `result = compute_something(first_argument, second_argument, third_argument_name)`,
	GoodExample: "result = compute_something(\n    first_argument, second_argument, third_argument_name\n)",
	Fix:         "Wrap the expression inside brackets or split it into named intermediate values.",
}
