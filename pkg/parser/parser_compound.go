package parser

import (
	"github.com/leapstack-labs/pystyle/pkg/ast"
	"github.com/leapstack-labs/pystyle/pkg/token"
)

// Compound statement parsing.
//
// Grammar:
//
//	if_stmt     → if named_expr block (elif named_expr block)* [else block]
//	while_stmt  → while named_expr block [else block]
//	for_stmt    → [async] for targets in star_exprs block [else block]
//	try_stmt    → try block (except [['*'] expr [as NAME]] block)* [else block] [finally block]
//	with_stmt   → [async] with (with_item (',' with_item)* | '(' with_items ')') block
//	funcdef     → decorators? [async] def NAME [type_params] '(' params ')' ['->' expr] block
//	classdef    → decorators? class NAME [type_params] ['(' arguments ')'] block
//	match_stmt  → "match" star_exprs ':' NEWLINE INDENT case_block+ DEDENT
//	case_block  → "case" pattern [if named_expr] block
//
// Definitions are positioned at their def/class keyword (or async for
// coroutines), never at a decorator.

// parseIf parses an if statement; elif clauses nest in Orelse.
func (p *Parser) parseIf() *ast.If {
	stmt := &ast.If{Base: ast.At(p.token.Pos)}
	p.nextToken() // if / elif
	stmt.Test = p.parseNamedExpression()
	stmt.Body = p.parseBlock()
	switch {
	case p.check(token.ELIF):
		stmt.Orelse = []ast.Stmt{p.parseIf()}
	case p.match(token.ELSE):
		stmt.Orelse = p.parseBlock()
	}
	return stmt
}

// parseWhile parses a while loop.
func (p *Parser) parseWhile() *ast.While {
	stmt := &ast.While{Base: ast.At(p.token.Pos)}
	p.nextToken()
	stmt.Test = p.parseNamedExpression()
	stmt.Body = p.parseBlock()
	if p.match(token.ELSE) {
		stmt.Orelse = p.parseBlock()
	}
	return stmt
}

// parseFor parses a for loop. The current token is FOR.
func (p *Parser) parseFor(async bool, pos token.Position) *ast.For {
	stmt := &ast.For{Base: ast.At(pos), Async: async}
	p.expect(token.FOR)
	stmt.Target = p.parseTargetList()
	p.checkAssignable(stmt.Target)
	p.expect(token.IN)
	stmt.Iter = p.parseStarExpressions()
	stmt.Body = p.parseBlock()
	if p.match(token.ELSE) {
		stmt.Orelse = p.parseBlock()
	}
	return stmt
}

// parseTry parses a try statement.
func (p *Parser) parseTry() *ast.Try {
	stmt := &ast.Try{Base: ast.At(p.token.Pos)}
	p.nextToken()
	stmt.Body = p.parseBlock()

	for p.check(token.EXCEPT) && !p.failed() {
		handler := &ast.ExceptHandler{Base: ast.At(p.token.Pos)}
		p.nextToken()
		p.match(token.STAR) // except*
		if !p.check(token.COLON) {
			handler.Type = p.parseExpression()
			if p.match(token.AS) {
				handler.Name = p.expectName()
			}
		}
		handler.Body = p.parseBlock()
		stmt.Handlers = append(stmt.Handlers, handler)
	}
	if p.match(token.ELSE) {
		stmt.Orelse = p.parseBlock()
	}
	if p.match(token.FINALLY) {
		stmt.Finalbody = p.parseBlock()
	}
	if len(stmt.Handlers) == 0 && stmt.Finalbody == nil && !p.failed() {
		p.addError("expected 'except' or 'finally' block")
	}
	return stmt
}

// parseWith parses a with statement. The current token is WITH.
func (p *Parser) parseWith(async bool, pos token.Position) *ast.With {
	stmt := &ast.With{Base: ast.At(pos), Async: async}
	p.expect(token.WITH)

	parens := p.check(token.LPAREN) && p.isParenthesizedWithItems()
	if parens {
		p.nextToken()
	}
	for !p.failed() {
		item := &ast.WithItem{Base: ast.At(p.token.Pos), Context: p.parseExpression()}
		if p.match(token.AS) {
			item.Vars = p.parseTarget()
			p.checkAssignable(item.Vars)
		}
		stmt.Items = append(stmt.Items, item)
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
	stmt.Body = p.parseBlock()
	return stmt
}

// isParenthesizedWithItems reports whether the parenthesis at the current
// token encloses the whole with-item list, as in:
//
//	with (open(a) as f, open(b) as g):
func (p *Parser) isParenthesizedWithItems() bool {
	depth := 0
	for i := p.pos; i < len(p.tokens); i++ {
		switch p.tokens[i].Type {
		case token.LPAREN, token.LBRACKET, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACKET, token.RBRACE:
			depth--
			if depth == 0 {
				return i+1 < len(p.tokens) && p.tokens[i+1].Type == token.COLON
			}
		case token.NEWLINE, token.EOF:
			return false
		}
	}
	return false
}

// parseAsync parses async def, async for and async with.
func (p *Parser) parseAsync(decorators []ast.Expr) ast.Stmt {
	pos := p.token.Pos
	p.nextToken()
	switch p.token.Type {
	case token.DEF:
		return p.parseFunctionDef(decorators, true, pos)
	case token.FOR:
		if decorators == nil {
			return p.parseFor(true, pos)
		}
	case token.WITH:
		if decorators == nil {
			return p.parseWith(true, pos)
		}
	}
	p.addError(ErrInvalidSyntax)
	return nil
}

// parseDecorated parses one or more decorators and the definition they apply to.
func (p *Parser) parseDecorated() ast.Stmt {
	var decorators []ast.Expr
	for p.match(token.AT) && !p.failed() {
		decorators = append(decorators, p.parseNamedExpression())
		p.expect(token.NEWLINE)
	}
	if p.failed() {
		return nil
	}
	switch p.token.Type {
	case token.DEF:
		return p.parseFunctionDef(decorators, false, p.token.Pos)
	case token.CLASS:
		return p.parseClassDef(decorators)
	case token.ASYNC:
		return p.parseAsync(decorators)
	}
	p.addError(ErrInvalidSyntax)
	return nil
}

// parseFunctionDef parses a function definition. The current token is DEF;
// pos is the position of the def or async keyword.
func (p *Parser) parseFunctionDef(decorators []ast.Expr, async bool, pos token.Position) *ast.FunctionDef {
	stmt := &ast.FunctionDef{Base: ast.At(pos), Async: async, Decorators: decorators}
	p.expect(token.DEF)
	stmt.Name = p.expectName()
	p.skipTypeParams()
	if !p.expect(token.LPAREN) {
		return stmt
	}
	stmt.Args = p.parseParameters(token.RPAREN, true)
	p.expect(token.RPAREN)
	if p.match(token.ARROW) {
		stmt.Returns = p.parseExpression()
	}
	stmt.Body = p.parseBlock()
	return stmt
}

// parseClassDef parses a class definition. The current token is CLASS.
func (p *Parser) parseClassDef(decorators []ast.Expr) *ast.ClassDef {
	stmt := &ast.ClassDef{Base: ast.At(p.token.Pos), Decorators: decorators}
	p.nextToken()
	stmt.Name = p.expectName()
	p.skipTypeParams()
	if p.match(token.LPAREN) {
		stmt.Bases, stmt.Keywords = p.parseCallArguments()
		p.expect(token.RPAREN)
	}
	stmt.Body = p.parseBlock()
	return stmt
}

// parseParameters parses a parameter list up to closer, which is not
// consumed. Annotations are only accepted for def parameters.
//
//	params → param (',' param)* [',']
//	param  → NAME [':' expr] ['=' expr] | '/' | '*' [NAME [':' expr]] | '**' NAME [':' expr]
func (p *Parser) parseParameters(closer token.TokenType, annotations bool) *ast.Arguments {
	args := &ast.Arguments{Base: ast.At(p.token.Pos)}
	keywordOnly := false
	seenDefault := false

	for !p.check(closer) && !p.failed() {
		switch {
		case p.check(token.SLASH):
			if keywordOnly || len(args.PosOnly) > 0 || len(args.Args) == 0 {
				p.addError("'/' must be ahead of '*' and follow at least one parameter")
				return args
			}
			p.nextToken()
			args.PosOnly, args.Args = args.Args, nil
		case p.check(token.STAR):
			if keywordOnly {
				p.addError("'*' argument may appear only once")
				return args
			}
			p.nextToken()
			keywordOnly = true
			if p.check(token.NAME) {
				args.Vararg = p.parseParam(annotations, true)
			}
		case p.check(token.DSTAR):
			p.nextToken()
			args.Kwarg = p.parseParam(annotations, false)
		default:
			arg := p.parseParam(annotations, false)
			var def ast.Expr
			if p.match(token.ASSIGN) {
				def = p.parseExpression()
			}
			switch {
			case keywordOnly:
				args.KwOnly = append(args.KwOnly, arg)
				args.KwDefaults = append(args.KwDefaults, def)
			case def != nil:
				args.Args = append(args.Args, arg)
				args.Defaults = append(args.Defaults, def)
				seenDefault = true
			default:
				if seenDefault {
					p.addErrorAt(arg.Pos(), ErrDefaultOrder)
					return args
				}
				args.Args = append(args.Args, arg)
			}
		}
		if args.Kwarg != nil && !p.check(closer) && !(p.check(token.COMMA) && p.peekToken(1).Type == closer) {
			p.addError("arguments cannot follow var-keyword argument")
			return args
		}
		if !p.match(token.COMMA) {
			break
		}
	}
	return args
}

// parseParam parses a single parameter name with its optional annotation.
// A *args annotation may itself be starred.
func (p *Parser) parseParam(annotations, variadic bool) *ast.Arg {
	arg := &ast.Arg{Base: ast.At(p.token.Pos), Name: p.expectName()}
	if annotations && p.match(token.COLON) {
		if variadic && p.check(token.STAR) {
			pos := p.token.Pos
			p.nextToken()
			arg.Annotation = &ast.Starred{Base: ast.At(pos), Value: p.parseExpression()}
		} else {
			arg.Annotation = p.parseExpression()
		}
	}
	return arg
}

// skipTypeParams skips a type parameter list such as [T, *Ts, **P].
func (p *Parser) skipTypeParams() {
	if !p.check(token.LBRACKET) {
		return
	}
	depth := 0
	for !p.check(token.EOF) {
		switch p.token.Type {
		case token.LBRACKET:
			depth++
		case token.RBRACKET:
			depth--
		}
		p.nextToken()
		if depth == 0 {
			return
		}
	}
}

// isMatchStatement reports whether the soft keyword "match" at the current
// token starts a match statement: the logical line must end with ':' and
// be followed by an indented "case" block.
func (p *Parser) isMatchStatement() bool {
	switch p.peekToken(1).Type {
	case token.NEWLINE, token.EOF, token.ASSIGN, token.DOT, token.COLON, token.COMMA:
		return false
	}
	for i := p.pos + 1; i+2 < len(p.tokens); i++ {
		if p.tokens[i].Type != token.NEWLINE {
			continue
		}
		next := p.tokens[i+2]
		return p.tokens[i-1].Type == token.COLON &&
			p.tokens[i+1].Type == token.INDENT &&
			next.Type == token.NAME && next.Literal == "case"
	}
	return false
}

// parseMatch parses a match statement.
func (p *Parser) parseMatch() *ast.Match {
	stmt := &ast.Match{Base: ast.At(p.token.Pos)}
	p.nextToken()
	stmt.Subject = p.parseStarNamedExpressions()
	p.expect(token.COLON)
	p.expect(token.NEWLINE)
	p.expect(token.INDENT)

	for p.checkSoft("case") && !p.failed() {
		c := &ast.MatchCase{Base: ast.At(p.token.Pos)}
		p.nextToken()
		c.Pattern = p.parsePattern()
		if p.match(token.IF) {
			c.Guard = p.parseNamedExpression()
		}
		c.Body = p.parseBlock()
		stmt.Cases = append(stmt.Cases, c)
	}
	if !p.check(token.EOF) {
		p.expect(token.DEDENT)
	}
	return stmt
}

// parsePattern parses a case pattern. Patterns share the expression
// grammar; "p as name" captures become NamedExpr nodes.
func (p *Parser) parsePattern() ast.Expr {
	p.inPattern = true
	defer func() { p.inPattern = false }()

	pos := p.token.Pos
	first := p.parsePatternElement()
	if !p.check(token.COMMA) {
		return first
	}
	elts := []ast.Expr{first}
	for p.match(token.COMMA) {
		if p.check(token.COLON) || p.check(token.IF) {
			break
		}
		elts = append(elts, p.parsePatternElement())
	}
	return &ast.Tuple{Base: ast.At(pos), Elts: elts}
}

func (p *Parser) parsePatternElement() ast.Expr {
	if p.check(token.STAR) {
		pos := p.token.Pos
		p.nextToken()
		return &ast.Starred{Base: ast.At(pos), Value: p.parseBitwiseOr()}
	}
	return p.capture(p.parseBitwiseOr())
}

// capture wraps e in a NamedExpr when a pattern capture "as NAME" follows.
func (p *Parser) capture(e ast.Expr) ast.Expr {
	if !p.inPattern || !p.check(token.AS) {
		return e
	}
	p.nextToken()
	pos := p.token.Pos
	name := p.expectName()
	return &ast.NamedExpr{Base: ast.At(e.Pos()), Target: &ast.Name{Base: ast.At(pos), ID: name}, Value: e}
}
