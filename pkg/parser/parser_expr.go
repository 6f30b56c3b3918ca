package parser

import (
	"github.com/leapstack-labs/pystyle/pkg/ast"
	"github.com/leapstack-labs/pystyle/pkg/token"
)

// Expression parsing. Boolean and comparison levels are recursive descent;
// arithmetic and bitwise operators use precedence climbing.
//
// Precedence levels, lowest first:
//
//	lambda
//	if-else
//	or
//	and
//	not
//	in, not in, is, is not, <, <=, >, >=, !=, ==
//	|                 (1)
//	^                 (2)
//	&                 (3)
//	<<, >>            (4)
//	+, -              (5)
//	*, /, //, %, @    (6)
//	+x, -x, ~x
//	**
//	await
//	x[i], x(...), x.attr

// binaryPrecedence maps binary operators to their precedence level.
var binaryPrecedence = map[token.TokenType]int{
	token.PIPE:    1,
	token.CARET:   2,
	token.AMP:     3,
	token.LSHIFT:  4,
	token.RSHIFT:  4,
	token.PLUS:    5,
	token.MINUS:   5,
	token.STAR:    6,
	token.SLASH:   6,
	token.DSLASH:  6,
	token.PERCENT: 6,
	token.AT:      6,
}

// parseStarExpressions parses a comma-separated expression list that may
// contain starred items. A list with a comma becomes a Tuple.
func (p *Parser) parseStarExpressions() ast.Expr {
	pos := p.token.Pos
	first := p.parseStarExpression()
	if !p.check(token.COMMA) {
		return first
	}
	elts := []ast.Expr{first}
	for p.match(token.COMMA) {
		if !p.startsExpression() {
			break
		}
		elts = append(elts, p.parseStarExpression())
	}
	return &ast.Tuple{Base: ast.At(pos), Elts: elts}
}

// parseStarNamedExpressions is parseStarExpressions over named expressions,
// as in a match subject.
func (p *Parser) parseStarNamedExpressions() ast.Expr {
	pos := p.token.Pos
	first := p.parseStarNamedExpression()
	if !p.check(token.COMMA) {
		return first
	}
	elts := []ast.Expr{first}
	for p.match(token.COMMA) {
		if !p.startsExpression() {
			break
		}
		elts = append(elts, p.parseStarNamedExpression())
	}
	return &ast.Tuple{Base: ast.At(pos), Elts: elts}
}

// parseStarExpression parses '*' bitwise_or | expression.
func (p *Parser) parseStarExpression() ast.Expr {
	if p.check(token.STAR) {
		pos := p.token.Pos
		p.nextToken()
		return &ast.Starred{Base: ast.At(pos), Value: p.parseBitwiseOr()}
	}
	return p.parseExpression()
}

// parseStarNamedExpression parses '*' bitwise_or | named_expression.
func (p *Parser) parseStarNamedExpression() ast.Expr {
	if p.check(token.STAR) {
		pos := p.token.Pos
		p.nextToken()
		return &ast.Starred{Base: ast.At(pos), Value: p.parseBitwiseOr()}
	}
	return p.parseNamedExpression()
}

// parseNamedExpression parses NAME ':=' expression | expression.
func (p *Parser) parseNamedExpression() ast.Expr {
	if p.check(token.NAME) && p.checkPeek(token.WALRUS) {
		pos := p.token.Pos
		target := &ast.Name{Base: ast.At(pos), ID: p.token.Literal}
		p.nextToken()
		p.nextToken()
		return &ast.NamedExpr{Base: ast.At(pos), Target: target, Value: p.parseExpression()}
	}
	return p.parseExpression()
}

// parseExpression parses a lambda or a possibly conditional expression.
func (p *Parser) parseExpression() ast.Expr {
	if p.check(token.LAMBDA) {
		return p.parseLambda()
	}
	body := p.parseDisjunction()
	if !p.check(token.IF) {
		return body
	}
	p.nextToken()
	test := p.parseDisjunction()
	p.expect(token.ELSE)
	orelse := p.parseExpression()
	return &ast.IfExp{Base: ast.At(body.Pos()), Test: test, Body: body, Orelse: orelse}
}

// parseLambda parses lambda [params] ':' expression.
func (p *Parser) parseLambda() *ast.Lambda {
	expr := &ast.Lambda{Base: ast.At(p.token.Pos)}
	p.nextToken()
	expr.Args = p.parseParameters(token.COLON, false)
	p.expect(token.COLON)
	expr.Body = p.parseExpression()
	return expr
}

// parseDisjunction parses conjunction ('or' conjunction)*.
func (p *Parser) parseDisjunction() ast.Expr {
	first := p.parseConjunction()
	if !p.check(token.OR) {
		return first
	}
	values := []ast.Expr{first}
	for p.match(token.OR) {
		values = append(values, p.parseConjunction())
	}
	return &ast.BoolOp{Base: ast.At(first.Pos()), Op: token.OR, Values: values}
}

// parseConjunction parses inversion ('and' inversion)*.
func (p *Parser) parseConjunction() ast.Expr {
	first := p.parseInversion()
	if !p.check(token.AND) {
		return first
	}
	values := []ast.Expr{first}
	for p.match(token.AND) {
		values = append(values, p.parseInversion())
	}
	return &ast.BoolOp{Base: ast.At(first.Pos()), Op: token.AND, Values: values}
}

// parseInversion parses 'not' inversion | comparison.
func (p *Parser) parseInversion() ast.Expr {
	if p.check(token.NOT) {
		pos := p.token.Pos
		p.nextToken()
		return &ast.UnaryOp{Base: ast.At(pos), Op: token.NOT, Operand: p.parseInversion()}
	}
	return p.parseComparison()
}

// parseComparison parses bitwise_or (compare_op bitwise_or)*.
func (p *Parser) parseComparison() ast.Expr {
	left := p.parseBitwiseOr()
	var cmp *ast.Compare
	for !p.failed() {
		op, ok := p.comparisonOperator()
		if !ok {
			break
		}
		if cmp == nil {
			cmp = &ast.Compare{Base: ast.At(left.Pos()), Left: left}
		}
		cmp.Ops = append(cmp.Ops, op)
		cmp.Comparators = append(cmp.Comparators, p.parseBitwiseOr())
	}
	if cmp == nil {
		return left
	}
	return cmp
}

// comparisonOperator consumes a comparison operator if one is present.
func (p *Parser) comparisonOperator() (ast.CmpOp, bool) {
	switch p.token.Type {
	case token.EQEQ, token.NE, token.LT, token.GT, token.LE, token.GE:
		op := ast.CmpOp(p.token.Literal)
		p.nextToken()
		return op, true
	case token.IN:
		p.nextToken()
		return "in", true
	case token.NOT:
		if p.checkPeek(token.IN) {
			p.nextToken()
			p.nextToken()
			return "not in", true
		}
	case token.IS:
		p.nextToken()
		if p.match(token.NOT) {
			return "is not", true
		}
		return "is", true
	}
	return "", false
}

// parseBitwiseOr parses a binary arithmetic or bitwise expression.
func (p *Parser) parseBitwiseOr() ast.Expr {
	return p.parseBinary(1)
}

// parseBinary implements precedence climbing over binaryPrecedence.
func (p *Parser) parseBinary(minPrecedence int) ast.Expr {
	left := p.parseFactor()
	for !p.failed() {
		prec, ok := binaryPrecedence[p.token.Type]
		if !ok || prec < minPrecedence {
			break
		}
		op := p.token.Type
		p.nextToken()
		right := p.parseBinary(prec + 1)
		left = &ast.BinOp{Base: ast.At(left.Pos()), Left: left, Op: op, Right: right}
	}
	return left
}

// parseFactor parses ('+' | '-' | '~') factor | power.
func (p *Parser) parseFactor() ast.Expr {
	switch p.token.Type {
	case token.PLUS, token.MINUS, token.TILDE:
		pos := p.token.Pos
		op := p.token.Type
		p.nextToken()
		return &ast.UnaryOp{Base: ast.At(pos), Op: op, Operand: p.parseFactor()}
	}
	return p.parsePower()
}

// parsePower parses await_primary ['**' factor]. Power binds tighter than a
// unary operator on its left but looser than one on its right.
func (p *Parser) parsePower() ast.Expr {
	base := p.parseAwaitPrimary()
	if !p.match(token.DSTAR) {
		return base
	}
	return &ast.BinOp{Base: ast.At(base.Pos()), Left: base, Op: token.DSTAR, Right: p.parseFactor()}
}

// parseAwaitPrimary parses ['await'] primary.
func (p *Parser) parseAwaitPrimary() ast.Expr {
	if p.check(token.AWAIT) {
		pos := p.token.Pos
		p.nextToken()
		return &ast.Await{Base: ast.At(pos), Value: p.parsePrimary()}
	}
	return p.parsePrimary()
}

// parseYield parses 'yield' 'from' expression | 'yield' [star_expressions].
func (p *Parser) parseYield() ast.Expr {
	pos := p.token.Pos
	p.nextToken()
	if p.match(token.FROM) {
		return &ast.YieldFrom{Base: ast.At(pos), Value: p.parseExpression()}
	}
	expr := &ast.Yield{Base: ast.At(pos)}
	if p.startsExpression() {
		expr.Value = p.parseStarExpressions()
	}
	return expr
}

// parseTargetList parses assignment targets for for-loops and
// comprehensions, stopping before 'in'.
func (p *Parser) parseTargetList() ast.Expr {
	pos := p.token.Pos
	first := p.parseTarget()
	if !p.check(token.COMMA) {
		return first
	}
	elts := []ast.Expr{first}
	for p.match(token.COMMA) {
		if p.check(token.IN) || !p.startsExpression() {
			break
		}
		elts = append(elts, p.parseTarget())
	}
	return &ast.Tuple{Base: ast.At(pos), Elts: elts}
}

// parseTarget parses a single, possibly starred, target.
func (p *Parser) parseTarget() ast.Expr {
	if p.check(token.STAR) {
		pos := p.token.Pos
		p.nextToken()
		return &ast.Starred{Base: ast.At(pos), Value: p.parseBitwiseOr()}
	}
	return p.parseBitwiseOr()
}
