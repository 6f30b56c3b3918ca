package rules

import (
	"github.com/leapstack-labs/pystyle/pkg/ast"
	"github.com/leapstack-labs/pystyle/pkg/lint"
)

func init() {
	lint.Register(ClassNameCasingRule)
}

// ClassNameCasingRule flags class names that are not CamelCase.
var ClassNameCasingRule = lint.RuleDef{
	ID:          lint.CodeClassNameCasing,
	Name:        "CLASS_NAME_CASING",
	Group:       "naming",
	Description: "Class names must be written in CamelCase.",
	Template:    "Class name '%s' should be written in CamelCase",
	Severity:    lint.SeverityWarning,
	Kinds:       []ast.NodeKind{ast.KindClassDef},
	CheckTree:   checkClassNameCasing,
	Rationale:   "CamelCase class names tell types apart from functions and variables at a glance.",
	BadExample:  "class user_account:\n    pass",
	GoodExample: "class UserAccount:\n    pass",
}

func checkClassNameCasing(node ast.Node) []lint.Finding {
	class, ok := node.(*ast.ClassDef)
	if !ok || IsCamelCase(class.Name) {
		return nil
	}
	return []lint.Finding{{Line: class.Pos().Line, Subject: class.Name}}
}
