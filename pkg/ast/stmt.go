package ast

import "github.com/leapstack-labs/pystyle/pkg/token"

// ClassDef is a class statement.
type ClassDef struct {
	Base
	Name       string
	Bases      []Expr
	Keywords   []*Keyword
	Decorators []Expr
	Body       []Stmt
}

// FunctionDef is a def or async def statement.
type FunctionDef struct {
	Base
	Name       string
	Async      bool
	Args       *Arguments
	Returns    Expr // optional return annotation
	Decorators []Expr
	Body       []Stmt
}

// Assign is a plain assignment. Chained assignments (a = b = 1) carry one
// target per '=' in source order.
type Assign struct {
	Base
	Targets []Expr
	Value   Expr
}

// AugAssign is an augmented assignment such as x += 1.
type AugAssign struct {
	Base
	Target Expr
	Op     token.TokenType // the binary operator, e.g. PLUS for +=
	Value  Expr
}

// AnnAssign is an annotated assignment such as x: int = 1. Value may be nil.
type AnnAssign struct {
	Base
	Target     Expr
	Annotation Expr
	Value      Expr
}

// ExprStmt is an expression evaluated for its side effects.
type ExprStmt struct {
	Base
	Value Expr
}

// Return is a return statement. Value may be nil.
type Return struct {
	Base
	Value Expr
}

// Delete is a del statement.
type Delete struct {
	Base
	Targets []Expr
}

// Pass is a pass statement.
type Pass struct{ Base }

// Break is a break statement.
type Break struct{ Base }

// Continue is a continue statement.
type Continue struct{ Base }

// Raise is a raise statement. Both fields may be nil.
type Raise struct {
	Base
	Exc   Expr
	Cause Expr
}

// Assert is an assert statement. Msg may be nil.
type Assert struct {
	Base
	Test Expr
	Msg  Expr
}

// Global is a global declaration.
type Global struct {
	Base
	Names []string
}

// Nonlocal is a nonlocal declaration.
type Nonlocal struct {
	Base
	Names []string
}

// Import is an import statement.
type Import struct {
	Base
	Names []*Alias
}

// ImportFrom is a from ... import statement.
type ImportFrom struct {
	Base
	Module string // dotted module name, may be empty for "from . import x"
	Level  int    // number of leading dots
	Names  []*Alias
}

// If is an if statement; elif chains nest in Orelse.
type If struct {
	Base
	Test   Expr
	Body   []Stmt
	Orelse []Stmt
}

// For is a for or async for loop.
type For struct {
	Base
	Async  bool
	Target Expr
	Iter   Expr
	Body   []Stmt
	Orelse []Stmt
}

// While is a while loop.
type While struct {
	Base
	Test   Expr
	Body   []Stmt
	Orelse []Stmt
}

// With is a with or async with statement.
type With struct {
	Base
	Async bool
	Items []*WithItem
	Body  []Stmt
}

// Try is a try statement.
type Try struct {
	Base
	Body      []Stmt
	Handlers  []*ExceptHandler
	Orelse    []Stmt
	Finalbody []Stmt
}

// Match is a match statement.
type Match struct {
	Base
	Subject Expr
	Cases   []*MatchCase
}

// MatchCase is one case block. Patterns are kept in expression form; capture
// names inside a pattern are Name nodes, not assignment targets.
type MatchCase struct {
	Base
	Pattern Expr
	Guard   Expr // optional
	Body    []Stmt
}

// Arguments is the parameter list of a function or lambda.
//
// Defaults aligns with the tail of PosOnly+Args. KwDefaults is parallel to
// KwOnly and holds nil where a keyword-only parameter has no default.
type Arguments struct {
	Base
	PosOnly    []*Arg
	Args       []*Arg
	Vararg     *Arg
	KwOnly     []*Arg
	KwDefaults []Expr
	Kwarg      *Arg
	Defaults   []Expr
}

// Positional returns positional-only and regular parameters in declaration order.
func (a *Arguments) Positional() []*Arg {
	if a == nil {
		return nil
	}
	out := make([]*Arg, 0, len(a.PosOnly)+len(a.Args))
	out = append(out, a.PosOnly...)
	return append(out, a.Args...)
}

// Arg is a single parameter.
type Arg struct {
	Base
	Name       string
	Annotation Expr
}

// Keyword is a keyword argument in a call or class bases list. Arg is empty
// for **kwargs unpacking.
type Keyword struct {
	Base
	Arg   string
	Value Expr
}

// Alias is an imported name with an optional as-name.
type Alias struct {
	Base
	Name   string
	AsName string
}

// WithItem is one context manager in a with statement.
type WithItem struct {
	Base
	Context Expr
	Vars    Expr // optional
}

// ExceptHandler is one except clause.
type ExceptHandler struct {
	Base
	Type Expr // optional
	Name string
	Body []Stmt
}

// Comprehension is one for/if clause group of a comprehension.
type Comprehension struct {
	Base
	Async  bool
	Target Expr
	Iter   Expr
	Ifs    []Expr
}

func (*ClassDef) Kind() NodeKind      { return KindClassDef }
func (*FunctionDef) Kind() NodeKind   { return KindFunctionDef }
func (*Assign) Kind() NodeKind        { return KindAssign }
func (*AugAssign) Kind() NodeKind     { return KindAugAssign }
func (*AnnAssign) Kind() NodeKind     { return KindAnnAssign }
func (*ExprStmt) Kind() NodeKind      { return KindExprStmt }
func (*Return) Kind() NodeKind        { return KindReturn }
func (*Delete) Kind() NodeKind        { return KindDelete }
func (*Pass) Kind() NodeKind          { return KindPass }
func (*Break) Kind() NodeKind         { return KindBreak }
func (*Continue) Kind() NodeKind      { return KindContinue }
func (*Raise) Kind() NodeKind         { return KindRaise }
func (*Assert) Kind() NodeKind        { return KindAssert }
func (*Global) Kind() NodeKind        { return KindGlobal }
func (*Nonlocal) Kind() NodeKind      { return KindNonlocal }
func (*Import) Kind() NodeKind        { return KindImport }
func (*ImportFrom) Kind() NodeKind    { return KindImportFrom }
func (*If) Kind() NodeKind            { return KindIf }
func (*For) Kind() NodeKind           { return KindFor }
func (*While) Kind() NodeKind         { return KindWhile }
func (*With) Kind() NodeKind          { return KindWith }
func (*Try) Kind() NodeKind           { return KindTry }
func (*Match) Kind() NodeKind         { return KindMatch }
func (*MatchCase) Kind() NodeKind     { return KindMatchCase }
func (*Arguments) Kind() NodeKind     { return KindArguments }
func (*Arg) Kind() NodeKind           { return KindArg }
func (*Keyword) Kind() NodeKind       { return KindKeyword }
func (*Alias) Kind() NodeKind         { return KindAlias }
func (*WithItem) Kind() NodeKind      { return KindWithItem }
func (*ExceptHandler) Kind() NodeKind { return KindExceptHandler }
func (*Comprehension) Kind() NodeKind { return KindComprehension }

func (*ClassDef) stmtNode()    {}
func (*FunctionDef) stmtNode() {}
func (*Assign) stmtNode()      {}
func (*AugAssign) stmtNode()   {}
func (*AnnAssign) stmtNode()   {}
func (*ExprStmt) stmtNode()    {}
func (*Return) stmtNode()      {}
func (*Delete) stmtNode()      {}
func (*Pass) stmtNode()        {}
func (*Break) stmtNode()       {}
func (*Continue) stmtNode()    {}
func (*Raise) stmtNode()       {}
func (*Assert) stmtNode()      {}
func (*Global) stmtNode()      {}
func (*Nonlocal) stmtNode()    {}
func (*Import) stmtNode()      {}
func (*ImportFrom) stmtNode()  {}
func (*If) stmtNode()          {}
func (*For) stmtNode()         {}
func (*While) stmtNode()       {}
func (*With) stmtNode()        {}
func (*Try) stmtNode()         {}
func (*Match) stmtNode()       {}
