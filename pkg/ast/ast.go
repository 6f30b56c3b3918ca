// Package ast defines the syntax tree produced by the parser frontends.
//
// The tree is a tagged variant: every node reports an explicit NodeKind so
// consumers dispatch on the kind rather than on dynamic type inspection.
// Statement and expression nodes are distinguished by marker methods.
package ast

import (
	"fmt"

	"github.com/leapstack-labs/pystyle/pkg/token"
)

// NodeKind enumerates the node variants of the syntax tree.
type NodeKind int

// Node kinds.
const (
	KindInvalid NodeKind = iota

	KindModule

	// Statements
	KindClassDef
	KindFunctionDef
	KindAssign
	KindAugAssign
	KindAnnAssign
	KindExprStmt
	KindReturn
	KindDelete
	KindPass
	KindBreak
	KindContinue
	KindRaise
	KindAssert
	KindGlobal
	KindNonlocal
	KindImport
	KindImportFrom
	KindIf
	KindFor
	KindWhile
	KindWith
	KindTry
	KindMatch

	// Auxiliary nodes
	KindArguments
	KindArg
	KindKeyword
	KindAlias
	KindWithItem
	KindExceptHandler
	KindComprehension
	KindMatchCase

	// Expressions
	KindName
	KindConstant
	KindList
	KindTuple
	KindSet
	KindDict
	KindListComp
	KindSetComp
	KindDictComp
	KindGeneratorExp
	KindCall
	KindAttribute
	KindSubscript
	KindSlice
	KindStarred
	KindBinOp
	KindUnaryOp
	KindBoolOp
	KindCompare
	KindIfExp
	KindLambda
	KindNamedExpr
	KindAwait
	KindYield
	KindYieldFrom
)

var kindNames = map[NodeKind]string{
	KindInvalid:       "Invalid",
	KindModule:        "Module",
	KindClassDef:      "ClassDef",
	KindFunctionDef:   "FunctionDef",
	KindAssign:        "Assign",
	KindAugAssign:     "AugAssign",
	KindAnnAssign:     "AnnAssign",
	KindExprStmt:      "Expr",
	KindReturn:        "Return",
	KindDelete:        "Delete",
	KindPass:          "Pass",
	KindBreak:         "Break",
	KindContinue:      "Continue",
	KindRaise:         "Raise",
	KindAssert:        "Assert",
	KindGlobal:        "Global",
	KindNonlocal:      "Nonlocal",
	KindImport:        "Import",
	KindImportFrom:    "ImportFrom",
	KindIf:            "If",
	KindFor:           "For",
	KindWhile:         "While",
	KindWith:          "With",
	KindTry:           "Try",
	KindMatch:         "Match",
	KindArguments:     "Arguments",
	KindArg:           "Arg",
	KindKeyword:       "Keyword",
	KindAlias:         "Alias",
	KindWithItem:      "WithItem",
	KindExceptHandler: "ExceptHandler",
	KindComprehension: "Comprehension",
	KindMatchCase:     "MatchCase",
	KindName:          "Name",
	KindConstant:      "Constant",
	KindList:          "List",
	KindTuple:         "Tuple",
	KindSet:           "Set",
	KindDict:          "Dict",
	KindListComp:      "ListComp",
	KindSetComp:       "SetComp",
	KindDictComp:      "DictComp",
	KindGeneratorExp:  "GeneratorExp",
	KindCall:          "Call",
	KindAttribute:     "Attribute",
	KindSubscript:     "Subscript",
	KindSlice:         "Slice",
	KindStarred:       "Starred",
	KindBinOp:         "BinOp",
	KindUnaryOp:       "UnaryOp",
	KindBoolOp:        "BoolOp",
	KindCompare:       "Compare",
	KindIfExp:         "IfExp",
	KindLambda:        "Lambda",
	KindNamedExpr:     "NamedExpr",
	KindAwait:         "Await",
	KindYield:         "Yield",
	KindYieldFrom:     "YieldFrom",
}

// String returns the node kind name.
func (k NodeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// Node is the base interface for all syntax tree nodes.
type Node interface {
	// Kind returns the node variant.
	Kind() NodeKind
	// Pos returns the position of the first token of the node. For class
	// and function definitions this is the position of the class/def
	// keyword, not of any decorator.
	Pos() token.Position
}

// Stmt is a marker interface for statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is a marker interface for expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Base carries the position shared by every node. Frontends embed it via At.
type Base struct {
	Position token.Position
}

// Pos returns the node's starting position.
func (b *Base) Pos() token.Position { return b.Position }

// At returns a Base positioned at pos.
func At(pos token.Position) Base { return Base{Position: pos} }

// Module is the root of a parsed file.
type Module struct {
	Base
	Filename string
	Body     []Stmt
}

// Kind implements Node.
func (*Module) Kind() NodeKind { return KindModule }
