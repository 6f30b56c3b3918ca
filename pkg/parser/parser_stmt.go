package parser

import (
	"fmt"

	"github.com/leapstack-labs/pystyle/pkg/ast"
	"github.com/leapstack-labs/pystyle/pkg/token"
)

// Statement parsing: simple statements, assignments, imports and blocks.
//
// Grammar:
//
//	small_stmt   → pass | break | continue | return [star_exprs]
//	             | raise [expr [from expr]] | global names | nonlocal names
//	             | del targets | assert expr [',' expr] | import_stmt
//	             | expr_stmt
//	expr_stmt    → star_exprs ':' expr ['=' value]     (annotated)
//	             | star_exprs augop value                (augmented)
//	             | star_exprs ('=' value)+               (assignment)
//	             | star_exprs
//	value        → yield_expr | star_exprs
//	import_stmt  → import dotted [as name] (',' dotted [as name])*
//	             | from ('.' | '...')* [dotted] import ('*' | names | '(' names ')')

// parseFile parses a whole module.
func (p *Parser) parseFile() *ast.Module {
	mod := &ast.Module{
		Base:     ast.At(token.Position{Line: 1, Column: 1}),
		Filename: p.filename,
	}
	for !p.check(token.EOF) && !p.failed() {
		if p.match(token.NEWLINE) {
			continue
		}
		mod.Body = append(mod.Body, p.parseStatement()...)
	}
	return mod
}

// parseStatement parses one statement line. Simple statements separated by
// semicolons yield several nodes.
func (p *Parser) parseStatement() []ast.Stmt {
	var stmt ast.Stmt
	switch p.token.Type {
	case token.INDENT:
		p.addError(ErrUnexpectedIndent)
		return nil
	case token.IF:
		stmt = p.parseIf()
	case token.WHILE:
		stmt = p.parseWhile()
	case token.FOR:
		stmt = p.parseFor(false, p.token.Pos)
	case token.TRY:
		stmt = p.parseTry()
	case token.WITH:
		stmt = p.parseWith(false, p.token.Pos)
	case token.DEF:
		stmt = p.parseFunctionDef(nil, false, p.token.Pos)
	case token.CLASS:
		stmt = p.parseClassDef(nil)
	case token.AT:
		stmt = p.parseDecorated()
	case token.ASYNC:
		stmt = p.parseAsync(nil)
	case token.NAME:
		if p.checkSoft("match") && p.isMatchStatement() {
			stmt = p.parseMatch()
		}
	}
	if stmt != nil {
		return []ast.Stmt{stmt}
	}
	if p.failed() {
		return nil
	}
	return p.parseSimpleStatements()
}

// parseSimpleStatements parses small statements up to the end of the line.
func (p *Parser) parseSimpleStatements() []ast.Stmt {
	var stmts []ast.Stmt
	for {
		stmts = append(stmts, p.parseSmallStatement())
		if p.failed() {
			return stmts
		}
		if !p.match(token.SEMICOLON) {
			break
		}
		if p.check(token.NEWLINE) || p.check(token.EOF) {
			break
		}
	}
	if !p.match(token.NEWLINE) && !p.check(token.EOF) {
		p.addError(ErrInvalidSyntax)
	}
	return stmts
}

// parseSmallStatement parses a single simple statement.
func (p *Parser) parseSmallStatement() ast.Stmt {
	pos := p.token.Pos
	switch p.token.Type {
	case token.PASS:
		p.nextToken()
		return &ast.Pass{Base: ast.At(pos)}
	case token.BREAK:
		p.nextToken()
		return &ast.Break{Base: ast.At(pos)}
	case token.CONTINUE:
		p.nextToken()
		return &ast.Continue{Base: ast.At(pos)}
	case token.RETURN:
		p.nextToken()
		stmt := &ast.Return{Base: ast.At(pos)}
		if !p.atStatementEnd() {
			stmt.Value = p.parseStarExpressions()
		}
		return stmt
	case token.RAISE:
		p.nextToken()
		stmt := &ast.Raise{Base: ast.At(pos)}
		if !p.atStatementEnd() {
			stmt.Exc = p.parseExpression()
			if p.match(token.FROM) {
				stmt.Cause = p.parseExpression()
			}
		}
		return stmt
	case token.GLOBAL:
		p.nextToken()
		return &ast.Global{Base: ast.At(pos), Names: p.parseNameList()}
	case token.NONLOCAL:
		p.nextToken()
		return &ast.Nonlocal{Base: ast.At(pos), Names: p.parseNameList()}
	case token.DEL:
		p.nextToken()
		return p.parseDelete(pos)
	case token.ASSERT:
		p.nextToken()
		stmt := &ast.Assert{Base: ast.At(pos), Test: p.parseExpression()}
		if p.match(token.COMMA) {
			stmt.Msg = p.parseExpression()
		}
		return stmt
	case token.IMPORT:
		return p.parseImport()
	case token.FROM:
		return p.parseImportFrom()
	}
	return p.parseExpressionStatement()
}

// parseExpressionStatement parses assignments and bare expressions.
func (p *Parser) parseExpressionStatement() ast.Stmt {
	pos := p.token.Pos
	first := p.parseValue()
	if p.failed() {
		return &ast.ExprStmt{Base: ast.At(pos), Value: first}
	}

	switch {
	case p.check(token.COLON):
		p.nextToken()
		if !isAnnotationTarget(first) {
			p.addErrorAt(pos, "illegal target for annotation")
		}
		stmt := &ast.AnnAssign{Base: ast.At(pos), Target: first, Annotation: p.parseExpression()}
		if p.match(token.ASSIGN) {
			stmt.Value = p.parseValue()
		}
		return stmt

	case token.IsAugmented(p.token.Type):
		op, _ := token.BinaryOp(p.token.Type)
		p.nextToken()
		switch first.(type) {
		case *ast.Name, *ast.Attribute, *ast.Subscript:
		default:
			p.addErrorAt(pos, "illegal expression for augmented assignment")
		}
		return &ast.AugAssign{Base: ast.At(pos), Target: first, Op: op, Value: p.parseValue()}

	case p.check(token.ASSIGN):
		targets := []ast.Expr{first}
		var value ast.Expr
		for p.match(token.ASSIGN) {
			value = p.parseValue()
			if p.check(token.ASSIGN) {
				targets = append(targets, value)
			}
		}
		for _, t := range targets {
			p.checkAssignable(t)
		}
		return &ast.Assign{Base: ast.At(pos), Targets: targets, Value: value}
	}

	return &ast.ExprStmt{Base: ast.At(pos), Value: first}
}

// parseValue parses the right-hand side of an assignment.
func (p *Parser) parseValue() ast.Expr {
	if p.check(token.YIELD) {
		return p.parseYield()
	}
	return p.parseStarExpressions()
}

// checkAssignable reports an error if e cannot be an assignment target.
func (p *Parser) checkAssignable(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Name, *ast.Attribute, *ast.Subscript:
	case *ast.Starred:
		p.checkAssignable(n.Value)
	case *ast.Tuple:
		for _, elt := range n.Elts {
			p.checkAssignable(elt)
		}
	case *ast.List:
		for _, elt := range n.Elts {
			p.checkAssignable(elt)
		}
	default:
		p.addErrorAt(e.Pos(), fmt.Sprintf(ErrCannotAssign, describeExpr(e)))
	}
}

func isAnnotationTarget(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Name, *ast.Attribute, *ast.Subscript:
		return true
	}
	return false
}

// describeExpr names an expression kind the way Python's messages do.
func describeExpr(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.Call:
		return "function call"
	case *ast.Constant:
		switch n.Token {
		case token.NONE, token.TRUE, token.FALSE:
			return n.Value
		case token.ELLIPSIS:
			return "ellipsis"
		}
		return "literal"
	case *ast.Lambda:
		return "lambda"
	case *ast.Compare:
		return "comparison"
	case *ast.IfExp:
		return "conditional expression"
	case *ast.ListComp, *ast.SetComp, *ast.DictComp:
		return "comprehension"
	case *ast.GeneratorExp:
		return "generator expression"
	case *ast.Dict:
		return "dict literal"
	case *ast.Set:
		return "set display"
	case *ast.Yield, *ast.YieldFrom:
		return "yield expression"
	case *ast.Await:
		return "await expression"
	case *ast.NamedExpr:
		return "named expression"
	}
	return "expression"
}

// parseNameList parses NAME (',' NAME)*.
func (p *Parser) parseNameList() []string {
	names := []string{p.expectName()}
	for p.match(token.COMMA) {
		names = append(names, p.expectName())
	}
	return names
}

// parseDelete parses the targets of a del statement.
func (p *Parser) parseDelete(pos token.Position) *ast.Delete {
	stmt := &ast.Delete{Base: ast.At(pos)}
	for {
		target := p.parseBitwiseOr()
		p.checkAssignable(target)
		stmt.Targets = append(stmt.Targets, target)
		if !p.match(token.COMMA) || p.atStatementEnd() {
			break
		}
	}
	return stmt
}

// parseImport parses: import dotted [as name] (',' dotted [as name])*
func (p *Parser) parseImport() *ast.Import {
	stmt := &ast.Import{Base: ast.At(p.token.Pos)}
	p.nextToken()
	for {
		pos := p.token.Pos
		alias := &ast.Alias{Base: ast.At(pos), Name: p.parseDottedName()}
		if p.match(token.AS) {
			alias.AsName = p.expectName()
		}
		stmt.Names = append(stmt.Names, alias)
		if !p.match(token.COMMA) {
			break
		}
	}
	return stmt
}

// parseImportFrom parses a from ... import statement.
func (p *Parser) parseImportFrom() *ast.ImportFrom {
	stmt := &ast.ImportFrom{Base: ast.At(p.token.Pos)}
	p.nextToken()

	for {
		if p.match(token.DOT) {
			stmt.Level++
		} else if p.match(token.ELLIPSIS) {
			stmt.Level += 3
		} else {
			break
		}
	}
	if !p.check(token.IMPORT) {
		stmt.Module = p.parseDottedName()
	}
	if !p.expect(token.IMPORT) {
		return stmt
	}

	if p.check(token.STAR) {
		stmt.Names = []*ast.Alias{{Base: ast.At(p.token.Pos), Name: "*"}}
		p.nextToken()
		return stmt
	}

	parens := p.match(token.LPAREN)
	for !p.failed() {
		alias := &ast.Alias{Base: ast.At(p.token.Pos), Name: p.expectName()}
		if p.match(token.AS) {
			alias.AsName = p.expectName()
		}
		stmt.Names = append(stmt.Names, alias)
		if !p.match(token.COMMA) {
			break
		}
		if parens && p.check(token.RPAREN) {
			break
		}
	}
	if parens {
		p.expect(token.RPAREN)
	}
	return stmt
}

// parseDottedName parses NAME ('.' NAME)*.
func (p *Parser) parseDottedName() string {
	name := p.expectName()
	for p.match(token.DOT) {
		name += "." + p.expectName()
	}
	return name
}

// parseBlock parses ':' followed by an indented suite or a same-line
// sequence of simple statements.
func (p *Parser) parseBlock() []ast.Stmt {
	if !p.expect(token.COLON) {
		return nil
	}
	if !p.match(token.NEWLINE) {
		return p.parseSimpleStatements()
	}
	if !p.match(token.INDENT) {
		p.addError(ErrExpectedIndent)
		return nil
	}
	var body []ast.Stmt
	for !p.check(token.DEDENT) && !p.check(token.EOF) && !p.failed() {
		body = append(body, p.parseStatement()...)
	}
	p.match(token.DEDENT)
	return body
}
