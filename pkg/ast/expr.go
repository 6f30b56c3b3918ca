package ast

import "github.com/leapstack-labs/pystyle/pkg/token"

// Name is a bare identifier.
type Name struct {
	Base
	ID string
}

// Constant is a literal: number, string, bytes, None, True, False or Ellipsis.
// Token records the token that produced it (NUMBER, STRING, NONE, TRUE, FALSE, ELLIPSIS).
type Constant struct {
	Base
	Token token.TokenType
	Value string // raw source text
}

// List is a list display [a, b].
type List struct {
	Base
	Elts []Expr
}

// Tuple is a tuple display, parenthesized or not.
type Tuple struct {
	Base
	Elts []Expr
}

// Set is a set display {a, b}.
type Set struct {
	Base
	Elts []Expr
}

// Dict is a dict display. A nil key marks a **mapping unpack in Values.
type Dict struct {
	Base
	Keys   []Expr
	Values []Expr
}

// ListComp is a list comprehension.
type ListComp struct {
	Base
	Elt        Expr
	Generators []*Comprehension
}

// SetComp is a set comprehension.
type SetComp struct {
	Base
	Elt        Expr
	Generators []*Comprehension
}

// DictComp is a dict comprehension.
type DictComp struct {
	Base
	Key        Expr
	Value      Expr
	Generators []*Comprehension
}

// GeneratorExp is a generator expression.
type GeneratorExp struct {
	Base
	Elt        Expr
	Generators []*Comprehension
}

// Call is a call expression. Positional arguments (including *args) are in
// Args; keyword arguments and **kwargs in Keywords.
type Call struct {
	Base
	Func     Expr
	Args     []Expr
	Keywords []*Keyword
}

// Attribute is an attribute access value.attr.
type Attribute struct {
	Base
	Value Expr
	Attr  string
}

// Subscript is an index or slice access value[slice].
type Subscript struct {
	Base
	Value Expr
	Slice Expr
}

// Slice is lower:upper:step inside a subscript. All parts are optional.
type Slice struct {
	Base
	Lower Expr
	Upper Expr
	Step  Expr
}

// Starred is *value in a call, display or assignment target.
type Starred struct {
	Base
	Value Expr
}

// BinOp is a binary arithmetic or bitwise operation.
type BinOp struct {
	Base
	Left  Expr
	Op    token.TokenType
	Right Expr
}

// UnaryOp is a unary operation: not, -, + or ~.
type UnaryOp struct {
	Base
	Op      token.TokenType
	Operand Expr
}

// BoolOp is a chain of and/or operations with a single operator.
type BoolOp struct {
	Base
	Op     token.TokenType // AND or OR
	Values []Expr
}

// CmpOp is a comparison operator, e.g. "<", "not in", "is not".
type CmpOp string

// Compare is a comparison chain a < b <= c.
type Compare struct {
	Base
	Left        Expr
	Ops         []CmpOp
	Comparators []Expr
}

// IfExp is a conditional expression body if test else orelse.
type IfExp struct {
	Base
	Test   Expr
	Body   Expr
	Orelse Expr
}

// Lambda is a lambda expression.
type Lambda struct {
	Base
	Args *Arguments
	Body Expr
}

// NamedExpr is an assignment expression target := value.
type NamedExpr struct {
	Base
	Target Expr
	Value  Expr
}

// Await is an await expression.
type Await struct {
	Base
	Value Expr
}

// Yield is a yield expression. Value may be nil.
type Yield struct {
	Base
	Value Expr
}

// YieldFrom is a yield from expression.
type YieldFrom struct {
	Base
	Value Expr
}

func (*Name) Kind() NodeKind         { return KindName }
func (*Constant) Kind() NodeKind     { return KindConstant }
func (*List) Kind() NodeKind         { return KindList }
func (*Tuple) Kind() NodeKind        { return KindTuple }
func (*Set) Kind() NodeKind          { return KindSet }
func (*Dict) Kind() NodeKind         { return KindDict }
func (*ListComp) Kind() NodeKind     { return KindListComp }
func (*SetComp) Kind() NodeKind      { return KindSetComp }
func (*DictComp) Kind() NodeKind     { return KindDictComp }
func (*GeneratorExp) Kind() NodeKind { return KindGeneratorExp }
func (*Call) Kind() NodeKind         { return KindCall }
func (*Attribute) Kind() NodeKind    { return KindAttribute }
func (*Subscript) Kind() NodeKind    { return KindSubscript }
func (*Slice) Kind() NodeKind        { return KindSlice }
func (*Starred) Kind() NodeKind      { return KindStarred }
func (*BinOp) Kind() NodeKind        { return KindBinOp }
func (*UnaryOp) Kind() NodeKind      { return KindUnaryOp }
func (*BoolOp) Kind() NodeKind       { return KindBoolOp }
func (*Compare) Kind() NodeKind      { return KindCompare }
func (*IfExp) Kind() NodeKind        { return KindIfExp }
func (*Lambda) Kind() NodeKind       { return KindLambda }
func (*NamedExpr) Kind() NodeKind    { return KindNamedExpr }
func (*Await) Kind() NodeKind        { return KindAwait }
func (*Yield) Kind() NodeKind        { return KindYield }
func (*YieldFrom) Kind() NodeKind    { return KindYieldFrom }

func (*Name) exprNode()         {}
func (*Constant) exprNode()     {}
func (*List) exprNode()         {}
func (*Tuple) exprNode()        {}
func (*Set) exprNode()          {}
func (*Dict) exprNode()         {}
func (*ListComp) exprNode()     {}
func (*SetComp) exprNode()      {}
func (*DictComp) exprNode()     {}
func (*GeneratorExp) exprNode() {}
func (*Call) exprNode()         {}
func (*Attribute) exprNode()    {}
func (*Subscript) exprNode()    {}
func (*Slice) exprNode()        {}
func (*Starred) exprNode()      {}
func (*BinOp) exprNode()        {}
func (*UnaryOp) exprNode()      {}
func (*BoolOp) exprNode()       {}
func (*Compare) exprNode()      {}
func (*IfExp) exprNode()        {}
func (*Lambda) exprNode()       {}
func (*NamedExpr) exprNode()    {}
func (*Await) exprNode()        {}
func (*Yield) exprNode()        {}
func (*YieldFrom) exprNode()    {}
