package rules

import "github.com/leapstack-labs/pystyle/pkg/lint"

func init() {
	lint.Register(CommentSpacingRule)
}

// CommentSpacingRule flags inline comments with fewer than two spaces before them.
var CommentSpacingRule = lint.RuleDef{
	ID:          lint.CodeCommentSpacing,
	Name:        "COMMENT_SPACING",
	Group:       "layout",
	Description: "Inline comments must be separated from code by at least two spaces.",
	Template:    "At least two spaces required before inline comments",
	Severity:    lint.SeverityWarning,
	CheckLine:   func(line lint.Line) bool { return MissingCommentSpacing(line.Text) },
	Rationale: `Two spaces keep the comment visually apart from the code it annotates.
The first '#' on the line is taken as the comment start, even inside a string literal.`,
	BadExample:  "x = 1 # counter",
	GoodExample: "x = 1  # counter",
}
