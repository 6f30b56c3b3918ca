package rules

import (
	"github.com/leapstack-labs/pystyle/pkg/ast"
	"github.com/leapstack-labs/pystyle/pkg/lint"
)

func init() {
	lint.Register(MutableDefaultRule)
}

// MutableDefaultRule flags list, set and dict literals used as default values.
var MutableDefaultRule = lint.RuleDef{
	ID:          lint.CodeMutableDefault,
	Name:        "MUTABLE_DEFAULT_ARGUMENT",
	Group:       "design",
	Description: "Default argument values must not be mutable literals.",
	Template:    "The default argument value is mutable",
	Severity:    lint.SeverityError,
	Kinds:       []ast.NodeKind{ast.KindFunctionDef},
	CheckTree:   checkMutableDefault,
	Rationale: `Defaults are evaluated once, when the function is defined, so a mutated default leaks state between calls.
Each mutable default is reported, for positional and keyword-only parameters alike.`,
	BadExample:  "def append_to(item, target=[]):\n    target.append(item)\n    return target",
	GoodExample: "def append_to(item, target=None):\n    if target is None:\n        target = []\n    target.append(item)\n    return target",
	Fix:         "Default to None and build the container inside the function body.",
}

func checkMutableDefault(node ast.Node) []lint.Finding {
	fn, ok := node.(*ast.FunctionDef)
	if !ok || fn.Args == nil {
		return nil
	}
	var findings []lint.Finding
	for _, defaults := range [][]ast.Expr{fn.Args.Defaults, fn.Args.KwDefaults} {
		for _, value := range defaults {
			if IsMutableLiteral(value) {
				findings = append(findings, lint.Finding{Line: fn.Pos().Line})
			}
		}
	}
	return findings
}
