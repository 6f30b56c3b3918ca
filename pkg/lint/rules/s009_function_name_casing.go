package rules

import (
	"github.com/leapstack-labs/pystyle/pkg/ast"
	"github.com/leapstack-labs/pystyle/pkg/lint"
)

func init() {
	lint.Register(FunctionNameCasingRule)
}

// FunctionNameCasingRule flags function names that are not snake_case.
var FunctionNameCasingRule = lint.RuleDef{
	ID:          lint.CodeFunctionNameCasing,
	Name:        "FUNCTION_NAME_CASING",
	Group:       "naming",
	Description: "Function and method names must be written in snake_case.",
	Template:    "Function name '%s' should be written in snake_case",
	Severity:    lint.SeverityWarning,
	Kinds:       []ast.NodeKind{ast.KindFunctionDef},
	CheckTree:   checkFunctionNameCasing,
	Rationale:   "Async functions and nested functions are checked the same way. Dunder methods such as __init__ pass.",
	BadExample:  "def loadConfig(path):\n    ...",
	GoodExample: "def load_config(path):\n    ...",
}

func checkFunctionNameCasing(node ast.Node) []lint.Finding {
	fn, ok := node.(*ast.FunctionDef)
	if !ok || IsSnakeCase(fn.Name) {
		return nil
	}
	return []lint.Finding{{Line: fn.Pos().Line, Subject: fn.Name}}
}
