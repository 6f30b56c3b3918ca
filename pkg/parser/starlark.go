package parser

import (
	"errors"
	"path/filepath"
	"strings"

	"go.starlark.net/syntax"

	"github.com/leapstack-labs/pystyle/pkg/ast"
	"github.com/leapstack-labs/pystyle/pkg/token"
)

// starlarkNames are file base names that hold Starlark regardless of extension.
var starlarkNames = map[string]bool{
	"BUILD":           true,
	"BUILD.bazel":     true,
	"WORKSPACE":       true,
	"WORKSPACE.bazel": true,
	"MODULE.bazel":    true,
}

// IsStarlark reports whether filename names a Starlark file.
func IsStarlark(filename string) bool {
	base := filepath.Base(filename)
	if starlarkNames[base] {
		return true
	}
	switch strings.ToLower(filepath.Ext(base)) {
	case ".star", ".bzl", ".sky":
		return true
	}
	return false
}

// ParseFile parses src with the frontend matching filename.
func ParseFile(filename, src string) (*ast.Module, error) {
	if IsStarlark(filename) {
		return ParseStarlark(filename, src)
	}
	return Parse(filename, src)
}

// ParseStarlark parses Starlark source with go.starlark.net and maps the
// result onto the shared syntax tree. Starlark has no classes, so the tree
// only carries definitions, assignments and expressions.
func ParseStarlark(filename, src string) (*ast.Module, error) {
	f, err := syntax.Parse(filename, src, 0)
	if err != nil {
		var serr syntax.Error
		if errors.As(err, &serr) {
			return nil, &ParseError{Filename: filename, Pos: starlarkPos(serr.Pos), Message: serr.Msg}
		}
		return nil, &ParseError{Filename: filename, Message: err.Error()}
	}

	mod := &ast.Module{
		Base:     ast.At(token.Position{Line: 1, Column: 1}),
		Filename: filename,
	}
	mod.Body = convertStmts(f.Stmts)
	return mod, nil
}

func starlarkPos(p syntax.Position) token.Position {
	return token.Position{Line: int(p.Line), Column: int(p.Col)}
}

func startOf(n syntax.Node) token.Position {
	start, _ := n.Span()
	return starlarkPos(start)
}

func convertStmts(stmts []syntax.Stmt) []ast.Stmt {
	out := make([]ast.Stmt, 0, len(stmts))
	for _, s := range stmts {
		if c := convertStmt(s); c != nil {
			out = append(out, c)
		}
	}
	return out
}

func convertStmt(s syntax.Stmt) ast.Stmt {
	at := ast.At(startOf(s))
	switch s := s.(type) {
	case *syntax.AssignStmt:
		if s.Op == syntax.EQ {
			return &ast.Assign{Base: at, Targets: []ast.Expr{convertExpr(s.LHS)}, Value: convertExpr(s.RHS)}
		}
		return &ast.AugAssign{Base: at, Target: convertExpr(s.LHS), Op: starlarkAugOps[s.Op], Value: convertExpr(s.RHS)}

	case *syntax.DefStmt:
		return &ast.FunctionDef{
			Base: ast.At(starlarkPos(s.Def)),
			Name: s.Name.Name,
			Args: convertParams(starlarkPos(s.Def), s.Params),
			Body: convertStmts(s.Body),
		}

	case *syntax.ExprStmt:
		return &ast.ExprStmt{Base: at, Value: convertExpr(s.X)}

	case *syntax.IfStmt:
		return &ast.If{Base: at, Test: convertExpr(s.Cond), Body: convertStmts(s.True), Orelse: convertStmts(s.False)}

	case *syntax.ForStmt:
		return &ast.For{Base: at, Target: convertExpr(s.Vars), Iter: convertExpr(s.X), Body: convertStmts(s.Body)}

	case *syntax.WhileStmt:
		return &ast.While{Base: at, Test: convertExpr(s.Cond), Body: convertStmts(s.Body)}

	case *syntax.ReturnStmt:
		ret := &ast.Return{Base: at}
		if s.Result != nil {
			ret.Value = convertExpr(s.Result)
		}
		return ret

	case *syntax.BranchStmt:
		switch s.Token {
		case syntax.BREAK:
			return &ast.Break{Base: at}
		case syntax.CONTINUE:
			return &ast.Continue{Base: at}
		}
		return &ast.Pass{Base: at}

	case *syntax.LoadStmt:
		imp := &ast.ImportFrom{Base: at}
		if mod, ok := s.Module.Value.(string); ok {
			imp.Module = mod
		}
		for i, from := range s.From {
			alias := &ast.Alias{Base: ast.At(starlarkPos(from.NamePos)), Name: from.Name}
			if i < len(s.To) && s.To[i].Name != from.Name {
				alias.AsName = s.To[i].Name
			}
			imp.Names = append(imp.Names, alias)
		}
		return imp
	}
	return nil
}

// convertParams maps Starlark parameters: a plain identifier, name=default,
// a bare or named *args, or **kwargs.
func convertParams(pos token.Position, params []syntax.Expr) *ast.Arguments {
	args := &ast.Arguments{Base: ast.At(pos)}
	keywordOnly := false
	for _, param := range params {
		switch p := param.(type) {
		case *syntax.Ident:
			arg := &ast.Arg{Base: ast.At(starlarkPos(p.NamePos)), Name: p.Name}
			if keywordOnly {
				args.KwOnly = append(args.KwOnly, arg)
				args.KwDefaults = append(args.KwDefaults, nil)
			} else {
				args.Args = append(args.Args, arg)
			}
		case *syntax.BinaryExpr:
			ident, ok := p.X.(*syntax.Ident)
			if p.Op != syntax.EQ || !ok {
				continue
			}
			arg := &ast.Arg{Base: ast.At(starlarkPos(ident.NamePos)), Name: ident.Name}
			def := convertExpr(p.Y)
			if keywordOnly {
				args.KwOnly = append(args.KwOnly, arg)
				args.KwDefaults = append(args.KwDefaults, def)
			} else {
				args.Args = append(args.Args, arg)
				args.Defaults = append(args.Defaults, def)
			}
		case *syntax.UnaryExpr:
			ident, _ := p.X.(*syntax.Ident)
			switch p.Op {
			case syntax.STAR:
				keywordOnly = true
				if ident != nil {
					args.Vararg = &ast.Arg{Base: ast.At(starlarkPos(ident.NamePos)), Name: ident.Name}
				}
			case syntax.STARSTAR:
				if ident != nil {
					args.Kwarg = &ast.Arg{Base: ast.At(starlarkPos(ident.NamePos)), Name: ident.Name}
				}
			}
		}
	}
	return args
}

func convertExprs(exprs []syntax.Expr) []ast.Expr {
	out := make([]ast.Expr, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, convertExpr(e))
	}
	return out
}

func convertExpr(e syntax.Expr) ast.Expr {
	if e == nil {
		return nil
	}
	at := ast.At(startOf(e))
	switch e := e.(type) {
	case *syntax.Ident:
		return &ast.Name{Base: at, ID: e.Name}

	case *syntax.Literal:
		tok := token.NUMBER
		if e.Token == syntax.STRING || e.Token == syntax.BYTES {
			tok = token.STRING
		}
		return &ast.Constant{Base: at, Token: tok, Value: e.Raw}

	case *syntax.ParenExpr:
		return convertExpr(e.X)

	case *syntax.ListExpr:
		return &ast.List{Base: at, Elts: convertExprs(e.List)}

	case *syntax.TupleExpr:
		return &ast.Tuple{Base: at, Elts: convertExprs(e.List)}

	case *syntax.DictExpr:
		dict := &ast.Dict{Base: at}
		for _, item := range e.List {
			if entry, ok := item.(*syntax.DictEntry); ok {
				dict.Keys = append(dict.Keys, convertExpr(entry.Key))
				dict.Values = append(dict.Values, convertExpr(entry.Value))
			}
		}
		return dict

	case *syntax.Comprehension:
		return convertComprehension(at, e)

	case *syntax.CallExpr:
		call := &ast.Call{Base: at, Func: convertExpr(e.Fn)}
		for _, arg := range e.Args {
			switch a := arg.(type) {
			case *syntax.BinaryExpr:
				if ident, ok := a.X.(*syntax.Ident); ok && a.Op == syntax.EQ {
					call.Keywords = append(call.Keywords, &ast.Keyword{Base: ast.At(startOf(a)), Arg: ident.Name, Value: convertExpr(a.Y)})
					continue
				}
			case *syntax.UnaryExpr:
				switch a.Op {
				case syntax.STAR:
					call.Args = append(call.Args, &ast.Starred{Base: ast.At(startOf(a)), Value: convertExpr(a.X)})
					continue
				case syntax.STARSTAR:
					call.Keywords = append(call.Keywords, &ast.Keyword{Base: ast.At(startOf(a)), Value: convertExpr(a.X)})
					continue
				}
			}
			call.Args = append(call.Args, convertExpr(arg))
		}
		return call

	case *syntax.DotExpr:
		return &ast.Attribute{Base: at, Value: convertExpr(e.X), Attr: e.Name.Name}

	case *syntax.IndexExpr:
		return &ast.Subscript{Base: at, Value: convertExpr(e.X), Slice: convertExpr(e.Y)}

	case *syntax.SliceExpr:
		slice := &ast.Slice{Base: ast.At(starlarkPos(e.Lbrack)), Lower: convertExpr(e.Lo), Upper: convertExpr(e.Hi), Step: convertExpr(e.Step)}
		return &ast.Subscript{Base: at, Value: convertExpr(e.X), Slice: slice}

	case *syntax.UnaryExpr:
		op, ok := starlarkUnaryOps[e.Op]
		if !ok {
			return &ast.Starred{Base: at, Value: convertExpr(e.X)}
		}
		return &ast.UnaryOp{Base: at, Op: op, Operand: convertExpr(e.X)}

	case *syntax.BinaryExpr:
		return convertBinary(at, e)

	case *syntax.CondExpr:
		return &ast.IfExp{Base: at, Test: convertExpr(e.Cond), Body: convertExpr(e.True), Orelse: convertExpr(e.False)}

	case *syntax.LambdaExpr:
		return &ast.Lambda{Base: at, Args: convertParams(starlarkPos(e.Lambda), e.Params), Body: convertExpr(e.Body)}
	}
	return &ast.Name{Base: at}
}

func convertBinary(at ast.Base, e *syntax.BinaryExpr) ast.Expr {
	switch e.Op {
	case syntax.AND, syntax.OR:
		op := token.AND
		if e.Op == syntax.OR {
			op = token.OR
		}
		return &ast.BoolOp{Base: at, Op: op, Values: []ast.Expr{convertExpr(e.X), convertExpr(e.Y)}}
	}
	if cmp, ok := starlarkCompareOps[e.Op]; ok {
		return &ast.Compare{Base: at, Left: convertExpr(e.X), Ops: []ast.CmpOp{cmp}, Comparators: []ast.Expr{convertExpr(e.Y)}}
	}
	return &ast.BinOp{Base: at, Left: convertExpr(e.X), Op: starlarkBinaryOps[e.Op], Right: convertExpr(e.Y)}
}

func convertComprehension(at ast.Base, e *syntax.Comprehension) ast.Expr {
	var gens []*ast.Comprehension
	for _, clause := range e.Clauses {
		switch c := clause.(type) {
		case *syntax.ForClause:
			gens = append(gens, &ast.Comprehension{
				Base:   ast.At(starlarkPos(c.For)),
				Target: convertExpr(c.Vars),
				Iter:   convertExpr(c.X),
			})
		case *syntax.IfClause:
			if len(gens) > 0 {
				last := gens[len(gens)-1]
				last.Ifs = append(last.Ifs, convertExpr(c.Cond))
			}
		}
	}
	if entry, ok := e.Body.(*syntax.DictEntry); ok && e.Curly {
		return &ast.DictComp{Base: at, Key: convertExpr(entry.Key), Value: convertExpr(entry.Value), Generators: gens}
	}
	body, _ := e.Body.(syntax.Expr)
	return &ast.ListComp{Base: at, Elt: convertExpr(body), Generators: gens}
}

var starlarkUnaryOps = map[syntax.Token]token.TokenType{
	syntax.MINUS: token.MINUS,
	syntax.PLUS:  token.PLUS,
	syntax.TILDE: token.TILDE,
	syntax.NOT:   token.NOT,
}

var starlarkCompareOps = map[syntax.Token]ast.CmpOp{
	syntax.EQL:    "==",
	syntax.NEQ:    "!=",
	syntax.LT:     "<",
	syntax.GT:     ">",
	syntax.LE:     "<=",
	syntax.GE:     ">=",
	syntax.IN:     "in",
	syntax.NOT_IN: "not in",
}

var starlarkBinaryOps = map[syntax.Token]token.TokenType{
	syntax.PLUS:       token.PLUS,
	syntax.MINUS:      token.MINUS,
	syntax.STAR:       token.STAR,
	syntax.SLASH:      token.SLASH,
	syntax.SLASHSLASH: token.DSLASH,
	syntax.PERCENT:    token.PERCENT,
	syntax.AMP:        token.AMP,
	syntax.PIPE:       token.PIPE,
	syntax.CIRCUMFLEX: token.CARET,
	syntax.LTLT:       token.LSHIFT,
	syntax.GTGT:       token.RSHIFT,
}

var starlarkAugOps = map[syntax.Token]token.TokenType{
	syntax.PLUS_EQ:       token.PLUS,
	syntax.MINUS_EQ:      token.MINUS,
	syntax.STAR_EQ:       token.STAR,
	syntax.SLASH_EQ:      token.SLASH,
	syntax.SLASHSLASH_EQ: token.DSLASH,
	syntax.PERCENT_EQ:    token.PERCENT,
	syntax.AMP_EQ:        token.AMP,
	syntax.PIPE_EQ:       token.PIPE,
	syntax.CIRCUMFLEX_EQ: token.CARET,
	syntax.LTLT_EQ:       token.LSHIFT,
	syntax.GTGT_EQ:       token.RSHIFT,
}
