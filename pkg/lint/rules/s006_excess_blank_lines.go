package rules

import "github.com/leapstack-labs/pystyle/pkg/lint"

func init() {
	lint.Register(ExcessBlankLinesRule)
}

// ExcessBlankLinesRule flags lines preceded by three or more empty lines.
var ExcessBlankLinesRule = lint.RuleDef{
	ID:          lint.CodeExcessBlankLines,
	Name:        "EXCESS_BLANK_LINES",
	Group:       "layout",
	Description: "No more than two blank lines may precede a line.",
	Template:    "More than two blank lines preceding a code line",
	Severity:    lint.SeverityWarning,
	CheckLine:   func(line lint.Line) bool { return ExcessBlankLines(line.Preceding) },
	Rationale: `Two blank lines are enough to separate top-level definitions.
Only truly empty lines count; a line holding spaces breaks the run. An empty line can itself be reported.`,
	BadExample:  "import os\n\n\n\ndef main():\n    pass",
	GoodExample: "import os\n\n\ndef main():\n    pass",
}
