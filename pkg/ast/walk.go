package ast

// Walk traverses the tree depth-first in source order and calls fn for each
// node. If fn returns false, the children of that node are skipped.
func Walk(node Node, fn func(node Node) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	walkChildren(node, fn)
}

// Inspect returns every node of the given kinds in traversal order.
func Inspect(root Node, kinds ...NodeKind) []Node {
	want := make(map[NodeKind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	var nodes []Node
	Walk(root, func(n Node) bool {
		if want[n.Kind()] {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}

func walkChildren(node Node, fn func(node Node) bool) {
	switch n := node.(type) {
	case *Module:
		walkStmts(n.Body, fn)

	case *ClassDef:
		walkExprs(n.Decorators, fn)
		walkExprs(n.Bases, fn)
		for _, kw := range n.Keywords {
			walkKeyword(kw, fn)
		}
		walkStmts(n.Body, fn)

	case *FunctionDef:
		walkExprs(n.Decorators, fn)
		if n.Args != nil {
			Walk(n.Args, fn)
		}
		walkExpr(n.Returns, fn)
		walkStmts(n.Body, fn)

	case *Assign:
		walkExprs(n.Targets, fn)
		walkExpr(n.Value, fn)

	case *AugAssign:
		walkExpr(n.Target, fn)
		walkExpr(n.Value, fn)

	case *AnnAssign:
		walkExpr(n.Target, fn)
		walkExpr(n.Annotation, fn)
		walkExpr(n.Value, fn)

	case *ExprStmt:
		walkExpr(n.Value, fn)

	case *Return:
		walkExpr(n.Value, fn)

	case *Delete:
		walkExprs(n.Targets, fn)

	case *Raise:
		walkExpr(n.Exc, fn)
		walkExpr(n.Cause, fn)

	case *Assert:
		walkExpr(n.Test, fn)
		walkExpr(n.Msg, fn)

	case *Import:
		for _, a := range n.Names {
			Walk(a, fn)
		}

	case *ImportFrom:
		for _, a := range n.Names {
			Walk(a, fn)
		}

	case *If:
		walkExpr(n.Test, fn)
		walkStmts(n.Body, fn)
		walkStmts(n.Orelse, fn)

	case *For:
		walkExpr(n.Target, fn)
		walkExpr(n.Iter, fn)
		walkStmts(n.Body, fn)
		walkStmts(n.Orelse, fn)

	case *While:
		walkExpr(n.Test, fn)
		walkStmts(n.Body, fn)
		walkStmts(n.Orelse, fn)

	case *With:
		for _, item := range n.Items {
			Walk(item, fn)
		}
		walkStmts(n.Body, fn)

	case *Try:
		walkStmts(n.Body, fn)
		for _, h := range n.Handlers {
			Walk(h, fn)
		}
		walkStmts(n.Orelse, fn)
		walkStmts(n.Finalbody, fn)

	case *Match:
		walkExpr(n.Subject, fn)
		for _, c := range n.Cases {
			if c != nil {
				Walk(c, fn)
			}
		}

	case *MatchCase:
		walkExpr(n.Pattern, fn)
		walkExpr(n.Guard, fn)
		walkStmts(n.Body, fn)

	case *Arguments:
		for _, a := range n.PosOnly {
			walkArg(a, fn)
		}
		for _, a := range n.Args {
			walkArg(a, fn)
		}
		walkArg(n.Vararg, fn)
		for _, a := range n.KwOnly {
			walkArg(a, fn)
		}
		walkExprs(n.KwDefaults, fn)
		walkArg(n.Kwarg, fn)
		walkExprs(n.Defaults, fn)

	case *Arg:
		walkExpr(n.Annotation, fn)

	case *Keyword:
		walkExpr(n.Value, fn)

	case *WithItem:
		walkExpr(n.Context, fn)
		walkExpr(n.Vars, fn)

	case *ExceptHandler:
		walkExpr(n.Type, fn)
		walkStmts(n.Body, fn)

	case *Comprehension:
		walkExpr(n.Target, fn)
		walkExpr(n.Iter, fn)
		walkExprs(n.Ifs, fn)

	case *List:
		walkExprs(n.Elts, fn)

	case *Tuple:
		walkExprs(n.Elts, fn)

	case *Set:
		walkExprs(n.Elts, fn)

	case *Dict:
		for i := range n.Values {
			if i < len(n.Keys) {
				walkExpr(n.Keys[i], fn)
			}
			walkExpr(n.Values[i], fn)
		}

	case *ListComp:
		walkExpr(n.Elt, fn)
		walkComprehensions(n.Generators, fn)

	case *SetComp:
		walkExpr(n.Elt, fn)
		walkComprehensions(n.Generators, fn)

	case *GeneratorExp:
		walkExpr(n.Elt, fn)
		walkComprehensions(n.Generators, fn)

	case *DictComp:
		walkExpr(n.Key, fn)
		walkExpr(n.Value, fn)
		walkComprehensions(n.Generators, fn)

	case *Call:
		walkExpr(n.Func, fn)
		walkExprs(n.Args, fn)
		for _, kw := range n.Keywords {
			walkKeyword(kw, fn)
		}

	case *Attribute:
		walkExpr(n.Value, fn)

	case *Subscript:
		walkExpr(n.Value, fn)
		walkExpr(n.Slice, fn)

	case *Slice:
		walkExpr(n.Lower, fn)
		walkExpr(n.Upper, fn)
		walkExpr(n.Step, fn)

	case *Starred:
		walkExpr(n.Value, fn)

	case *BinOp:
		walkExpr(n.Left, fn)
		walkExpr(n.Right, fn)

	case *UnaryOp:
		walkExpr(n.Operand, fn)

	case *BoolOp:
		walkExprs(n.Values, fn)

	case *Compare:
		walkExpr(n.Left, fn)
		walkExprs(n.Comparators, fn)

	case *IfExp:
		walkExpr(n.Test, fn)
		walkExpr(n.Body, fn)
		walkExpr(n.Orelse, fn)

	case *Lambda:
		if n.Args != nil {
			Walk(n.Args, fn)
		}
		walkExpr(n.Body, fn)

	case *NamedExpr:
		walkExpr(n.Target, fn)
		walkExpr(n.Value, fn)

	case *Await:
		walkExpr(n.Value, fn)

	case *Yield:
		walkExpr(n.Value, fn)

	case *YieldFrom:
		walkExpr(n.Value, fn)

	default:
		// Leaf nodes: Name, Constant, Pass, Break, Continue, Global, Nonlocal, Alias
	}
}

func walkStmts(stmts []Stmt, fn func(node Node) bool) {
	for _, s := range stmts {
		if s != nil {
			Walk(s, fn)
		}
	}
}

func walkExpr(e Expr, fn func(node Node) bool) {
	if e != nil {
		Walk(e, fn)
	}
}

func walkExprs(exprs []Expr, fn func(node Node) bool) {
	for _, e := range exprs {
		walkExpr(e, fn)
	}
}

func walkArg(a *Arg, fn func(node Node) bool) {
	if a != nil {
		Walk(a, fn)
	}
}

func walkKeyword(kw *Keyword, fn func(node Node) bool) {
	if kw != nil {
		Walk(kw, fn)
	}
}

func walkComprehensions(gens []*Comprehension, fn func(node Node) bool) {
	for _, g := range gens {
		if g != nil {
			Walk(g, fn)
		}
	}
}
