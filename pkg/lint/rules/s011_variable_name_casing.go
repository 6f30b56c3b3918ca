package rules

import (
	"github.com/leapstack-labs/pystyle/pkg/ast"
	"github.com/leapstack-labs/pystyle/pkg/lint"
)

func init() {
	lint.Register(VariableNameCasingRule)
}

// VariableNameCasingRule flags assignments to names that are not snake_case.
var VariableNameCasingRule = lint.RuleDef{
	ID:          lint.CodeVariableNameCasing,
	Name:        "VARIABLE_NAME_CASING",
	Group:       "naming",
	Description: "Assigned variable names must be written in snake_case.",
	Template:    "Variable '%s' should be written in snake_case",
	Severity:    lint.SeverityWarning,
	Kinds:       []ast.NodeKind{ast.KindAssign},
	CheckTree:   checkVariableNameCasing,
	Rationale: `Only the first target of a plain assignment is checked, and only when it is a bare name.
Attribute, subscript and unpacking targets are skipped, as are augmented and annotated assignments.
Module-level constants such as MAX_SIZE are reported.`,
	BadExample:  "userCount = 0",
	GoodExample: "user_count = 0",
}

func checkVariableNameCasing(node ast.Node) []lint.Finding {
	assign, ok := node.(*ast.Assign)
	if !ok || len(assign.Targets) == 0 {
		return nil
	}
	name, ok := assign.Targets[0].(*ast.Name)
	if !ok || IsSnakeCase(name.ID) {
		return nil
	}
	return []lint.Finding{{Line: assign.Pos().Line, Subject: name.ID}}
}
