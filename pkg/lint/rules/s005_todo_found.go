package rules

import "github.com/leapstack-labs/pystyle/pkg/lint"

func init() {
	lint.Register(TodoFoundRule)
}

// TodoFoundRule flags TODO markers in comments.
var TodoFoundRule = lint.RuleDef{
	ID:          lint.CodeTodoFound,
	Name:        "TODO_FOUND",
	Group:       "layout",
	Description: "Comments must not contain TODO markers.",
	Template:    "TODO found",
	Severity:    lint.SeverityWarning,
	CheckLine:   func(line lint.Line) bool { return HasTodo(line.Text) },
	Rationale:   "Outstanding work belongs in the issue tracker. Matching is case-insensitive and only counts text after the first '#'.",
	BadExample:  "retry(request)  # TODO add backoff",
	GoodExample: "retry(request)  # see issue 42",
}
