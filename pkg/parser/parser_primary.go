package parser

import (
	"strings"

	"github.com/leapstack-labs/pystyle/pkg/ast"
	"github.com/leapstack-labs/pystyle/pkg/token"
)

// Primary expression parsing: atoms, displays and trailers.
//
// Grammar:
//
//	primary     → atom (call | subscript | '.' NAME)*
//	call        → '(' [arguments] ')'
//	subscript   → '[' slice (',' slice)* [','] ']'
//	atom        → NAME | NUMBER | STRING+ | None | True | False | '...'
//	            | '(' [yield_expr | star_named (',' star_named)* | genexp] ')'
//	            | '[' [star_named (',' star_named)* | listcomp] ']'
//	            | '{' [dict_items | dictcomp | set_items | setcomp] '}'
//	comp_for    → ([async] for targets in disjunction (if disjunction)*)+

// parsePrimary parses an atom followed by any trailers.
func (p *Parser) parsePrimary() ast.Expr {
	expr := p.parseAtom()
	for !p.failed() {
		switch p.token.Type {
		case token.LPAREN:
			p.nextToken()
			call := &ast.Call{Base: ast.At(expr.Pos()), Func: expr}
			call.Args, call.Keywords = p.parseCallArguments()
			p.expect(token.RPAREN)
			expr = call
		case token.LBRACKET:
			p.nextToken()
			sub := &ast.Subscript{Base: ast.At(expr.Pos()), Value: expr, Slice: p.parseSlices()}
			p.expect(token.RBRACKET)
			expr = sub
		case token.DOT:
			p.nextToken()
			expr = &ast.Attribute{Base: ast.At(expr.Pos()), Value: expr, Attr: p.expectName()}
		default:
			return expr
		}
	}
	return expr
}

// parseAtom parses a name, literal or display.
func (p *Parser) parseAtom() ast.Expr {
	pos := p.token.Pos
	switch p.token.Type {
	case token.NAME:
		name := p.token.Literal
		p.nextToken()
		return &ast.Name{Base: ast.At(pos), ID: name}
	case token.NUMBER, token.NONE, token.TRUE, token.FALSE, token.ELLIPSIS:
		lit := &ast.Constant{Base: ast.At(pos), Token: p.token.Type, Value: p.token.Literal}
		p.nextToken()
		return lit
	case token.STRING:
		// Adjacent string literals concatenate into one constant.
		parts := []string{p.token.Literal}
		p.nextToken()
		for p.check(token.STRING) {
			parts = append(parts, p.token.Literal)
			p.nextToken()
		}
		return &ast.Constant{Base: ast.At(pos), Token: token.STRING, Value: strings.Join(parts, " ")}
	case token.LPAREN:
		return p.parseParenthesized()
	case token.LBRACKET:
		return p.parseListDisplay()
	case token.LBRACE:
		return p.parseBraceDisplay()
	}
	p.addError(ErrInvalidSyntax)
	return &ast.Name{Base: ast.At(pos)}
}

// parseParenthesized parses a group, tuple, generator expression or
// parenthesized yield.
func (p *Parser) parseParenthesized() ast.Expr {
	pos := p.token.Pos
	p.nextToken()
	if p.match(token.RPAREN) {
		return &ast.Tuple{Base: ast.At(pos)}
	}
	if p.check(token.YIELD) {
		expr := p.parseYield()
		p.expect(token.RPAREN)
		return expr
	}

	first := p.capture(p.parseStarNamedExpression())
	if p.startsComprehension() {
		expr := &ast.GeneratorExp{Base: ast.At(pos), Elt: first, Generators: p.parseComprehensions()}
		p.expect(token.RPAREN)
		return expr
	}
	if !p.check(token.COMMA) {
		p.expect(token.RPAREN)
		return first
	}

	tuple := &ast.Tuple{Base: ast.At(pos), Elts: []ast.Expr{first}}
	for p.match(token.COMMA) && !p.check(token.RPAREN) {
		tuple.Elts = append(tuple.Elts, p.capture(p.parseStarNamedExpression()))
	}
	p.expect(token.RPAREN)
	return tuple
}

// parseListDisplay parses a list display or list comprehension.
func (p *Parser) parseListDisplay() ast.Expr {
	pos := p.token.Pos
	p.nextToken()
	list := &ast.List{Base: ast.At(pos)}
	if p.match(token.RBRACKET) {
		return list
	}

	first := p.capture(p.parseStarNamedExpression())
	if p.startsComprehension() {
		comp := &ast.ListComp{Base: ast.At(pos), Elt: first, Generators: p.parseComprehensions()}
		p.expect(token.RBRACKET)
		return comp
	}

	list.Elts = append(list.Elts, first)
	for p.match(token.COMMA) && !p.check(token.RBRACKET) {
		list.Elts = append(list.Elts, p.capture(p.parseStarNamedExpression()))
	}
	p.expect(token.RBRACKET)
	return list
}

// parseBraceDisplay parses a dict or set display or comprehension.
func (p *Parser) parseBraceDisplay() ast.Expr {
	pos := p.token.Pos
	p.nextToken()
	if p.match(token.RBRACE) {
		return &ast.Dict{Base: ast.At(pos)}
	}

	if p.check(token.DSTAR) {
		dict := &ast.Dict{Base: ast.At(pos)}
		p.parseDictEntries(dict)
		p.expect(token.RBRACE)
		return dict
	}

	first := p.parseStarNamedExpression()
	if p.match(token.COLON) {
		value := p.capture(p.parseExpression())
		if p.startsComprehension() {
			comp := &ast.DictComp{Base: ast.At(pos), Key: first, Value: value, Generators: p.parseComprehensions()}
			p.expect(token.RBRACE)
			return comp
		}
		dict := &ast.Dict{Base: ast.At(pos), Keys: []ast.Expr{first}, Values: []ast.Expr{value}}
		if p.match(token.COMMA) {
			p.parseDictEntries(dict)
		}
		p.expect(token.RBRACE)
		return dict
	}

	first = p.capture(first)
	if p.startsComprehension() {
		comp := &ast.SetComp{Base: ast.At(pos), Elt: first, Generators: p.parseComprehensions()}
		p.expect(token.RBRACE)
		return comp
	}
	set := &ast.Set{Base: ast.At(pos), Elts: []ast.Expr{first}}
	for p.match(token.COMMA) && !p.check(token.RBRACE) {
		set.Elts = append(set.Elts, p.capture(p.parseStarNamedExpression()))
	}
	p.expect(token.RBRACE)
	return set
}

// parseDictEntries parses key: value and **mapping entries up to '}'.
func (p *Parser) parseDictEntries(dict *ast.Dict) {
	for !p.check(token.RBRACE) && !p.failed() {
		if p.match(token.DSTAR) {
			dict.Keys = append(dict.Keys, nil)
			dict.Values = append(dict.Values, p.capture(p.parseBitwiseOr()))
		} else {
			key := p.parseExpression()
			p.expect(token.COLON)
			dict.Keys = append(dict.Keys, key)
			dict.Values = append(dict.Values, p.capture(p.parseExpression()))
		}
		if !p.match(token.COMMA) {
			break
		}
	}
}

// startsComprehension returns true at 'for' or 'async for'.
func (p *Parser) startsComprehension() bool {
	return p.check(token.FOR) || (p.check(token.ASYNC) && p.checkPeek(token.FOR))
}

// parseComprehensions parses one or more for/if clause groups.
func (p *Parser) parseComprehensions() []*ast.Comprehension {
	var gens []*ast.Comprehension
	for p.startsComprehension() && !p.failed() {
		gen := &ast.Comprehension{Base: ast.At(p.token.Pos)}
		gen.Async = p.match(token.ASYNC)
		p.expect(token.FOR)
		gen.Target = p.parseTargetList()
		p.checkAssignable(gen.Target)
		p.expect(token.IN)
		gen.Iter = p.parseDisjunction()
		for p.match(token.IF) {
			gen.Ifs = append(gen.Ifs, p.parseDisjunction())
		}
		gens = append(gens, gen)
	}
	return gens
}

// parseCallArguments parses call arguments up to ')', which is not consumed.
//
//	arguments → arg (',' arg)* [',']
//	arg       → '*' expr | '**' expr | NAME '=' expr | named_expr [comp_for]
func (p *Parser) parseCallArguments() ([]ast.Expr, []*ast.Keyword) {
	var args []ast.Expr
	var keywords []*ast.Keyword
	for !p.check(token.RPAREN) && !p.failed() {
		pos := p.token.Pos
		switch {
		case p.check(token.STAR):
			p.nextToken()
			args = append(args, &ast.Starred{Base: ast.At(pos), Value: p.parseExpression()})
		case p.check(token.DSTAR):
			p.nextToken()
			keywords = append(keywords, &ast.Keyword{Base: ast.At(pos), Value: p.parseExpression()})
		case p.check(token.NAME) && p.checkPeek(token.ASSIGN):
			name := p.token.Literal
			p.nextToken()
			p.nextToken()
			keywords = append(keywords, &ast.Keyword{Base: ast.At(pos), Arg: name, Value: p.capture(p.parseExpression())})
		default:
			arg := p.parseNamedExpression()
			if p.startsComprehension() {
				arg = &ast.GeneratorExp{Base: ast.At(pos), Elt: arg, Generators: p.parseComprehensions()}
			}
			args = append(args, p.capture(arg))
		}
		if !p.match(token.COMMA) {
			break
		}
	}
	return args, keywords
}

// parseSlices parses the contents of a subscript. Several comma-separated
// slices become a Tuple.
func (p *Parser) parseSlices() ast.Expr {
	pos := p.token.Pos
	first := p.parseSlice()
	if !p.check(token.COMMA) {
		return first
	}
	elts := []ast.Expr{first}
	for p.match(token.COMMA) && !p.check(token.RBRACKET) {
		elts = append(elts, p.parseSlice())
	}
	return &ast.Tuple{Base: ast.At(pos), Elts: elts}
}

// parseSlice parses [lower] ':' [upper] [':' [step]] | star_named_expression.
func (p *Parser) parseSlice() ast.Expr {
	pos := p.token.Pos
	var lower ast.Expr
	if !p.check(token.COLON) {
		lower = p.parseStarNamedExpression()
		if !p.check(token.COLON) {
			return lower
		}
	}
	p.nextToken()
	slice := &ast.Slice{Base: ast.At(pos), Lower: lower}
	if !p.endsSlicePart() {
		slice.Upper = p.parseExpression()
	}
	if p.match(token.COLON) && !p.endsSlicePart() {
		slice.Step = p.parseExpression()
	}
	return slice
}

func (p *Parser) endsSlicePart() bool {
	return p.check(token.COLON) || p.check(token.COMMA) || p.check(token.RBRACKET)
}
