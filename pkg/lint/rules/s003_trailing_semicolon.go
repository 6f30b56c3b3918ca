package rules

import "github.com/leapstack-labs/pystyle/pkg/lint"

func init() {
	lint.Register(TrailingSemicolonRule)
}

// TrailingSemicolonRule flags statements terminated with a semicolon.
var TrailingSemicolonRule = lint.RuleDef{
	ID:          lint.CodeTrailingSemicolon,
	Name:        "TRAILING_SEMICOLON",
	Group:       "layout",
	Description: "Statements must not end with a semicolon.",
	Template:    "Unnecessary semicolon",
	Severity:    lint.SeverityWarning,
	CheckLine:   func(line lint.Line) bool { return TrailingSemicolon(line.Text) },
	Rationale:   "A trailing semicolon is legal but has no effect. Semicolons inside a trailing comment are ignored.",
	BadExample:  "total = 0;",
	GoodExample: "total = 0",
}
