package rules

import (
	"github.com/leapstack-labs/pystyle/pkg/ast"
	"github.com/leapstack-labs/pystyle/pkg/lint"
)

func init() {
	lint.Register(ArgumentNameCasingRule)
}

// ArgumentNameCasingRule flags the first positional parameter of a function
// whose name is not snake_case.
var ArgumentNameCasingRule = lint.RuleDef{
	ID:          lint.CodeArgumentNameCasing,
	Name:        "ARGUMENT_NAME_CASING",
	Group:       "naming",
	Description: "Positional parameter names must be written in snake_case.",
	Template:    "Argument name '%s' should be written in snake_case",
	Severity:    lint.SeverityWarning,
	Kinds:       []ast.NodeKind{ast.KindFunctionDef},
	CheckTree:   checkArgumentNameCasing,
	Rationale: `At most one violation is reported per function: the first offending parameter.
Positional-only and regular parameters are checked; *args, keyword-only parameters and **kwargs are not.`,
	BadExample:  "def move(X, Y):\n    ...",
	GoodExample: "def move(x, y):\n    ...",
	Fix:         "Rename the parameter and its uses. Callers passing it by keyword must be updated too.",
}

func checkArgumentNameCasing(node ast.Node) []lint.Finding {
	fn, ok := node.(*ast.FunctionDef)
	if !ok {
		return nil
	}
	for _, arg := range fn.Args.Positional() {
		if !IsSnakeCase(arg.Name) {
			// One report per function.
			return []lint.Finding{{Line: fn.Pos().Line, Subject: arg.Name}}
		}
	}
	return nil
}
