// Package parser turns Python and Starlark source into the syntax tree
// defined in package ast.
//
// # Usage
//
//	mod, err := parser.ParseFile("app.py", src)
//	if err != nil {
//	    // *ParseError or *LexError
//	}
//
// ParseFile picks the frontend from the file name: Starlark files (.star,
// .bzl, BUILD, WORKSPACE) go through go.starlark.net, everything else through
// the Python parser in this package.
//
// # Grammar Overview
//
// The Python frontend is a recursive descent parser over the token stream
// produced by Lexer:
//
//	file          → (NEWLINE | statement)* EOF
//	statement     → compound_stmt | simple_stmts
//	simple_stmts  → small_stmt (';' small_stmt)* [';'] NEWLINE
//	compound_stmt → if | while | for | try | with | match
//	              | [decorators] (def | class)
//	block         → ':' (simple_stmts | NEWLINE INDENT statement+ DEDENT)
//
// See each file for detailed grammar rules for that section.
package parser

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/pystyle/pkg/ast"
	"github.com/leapstack-labs/pystyle/pkg/token"
)

// Parser parses Python source into an AST.
type Parser struct {
	filename string
	tokens   []token.Token
	pos      int
	token    token.Token // current token
	errors   []error

	// inPattern is set while parsing the pattern of a match case, where
	// "as" captures may follow any sub-pattern.
	inPattern bool
}

// NewParser creates a parser for src. Tokenization happens up front; a
// tokenization error becomes the parser's first error.
func NewParser(filename, src string) *Parser {
	tokens, err := Tokenize(src)
	p := &Parser{filename: filename, tokens: tokens}
	if err != nil {
		var lexErr *LexError
		if errors.As(err, &lexErr) {
			lexErr.Filename = filename
		}
		p.errors = append(p.errors, err)
	}
	p.token = p.tokens[0]
	return p
}

// Parse parses Python source and returns the module, or the first syntax
// error encountered.
func Parse(filename, src string) (*ast.Module, error) {
	p := NewParser(filename, src)
	mod := p.parseFile()
	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	return mod, nil
}

// ---------- Token Helpers ----------

// nextToken advances to the next token. The parser never moves past EOF.
func (p *Parser) nextToken() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.token = p.tokens[p.pos]
}

// peekToken returns the token n positions ahead of the current one.
func (p *Parser) peekToken(n int) token.Token {
	i := p.pos + n
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.TokenType) bool {
	return p.token.Type == t
}

// checkPeek returns true if the next token is of the given type.
func (p *Parser) checkPeek(t token.TokenType) bool {
	return p.peekToken(1).Type == t
}

// checkSoft returns true if the current token is the soft keyword word.
func (p *Parser) checkSoft(word string) bool {
	return p.token.Type == token.NAME && p.token.Literal == word
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	return false
}

// expect consumes the current token if it matches, otherwise adds an error.
func (p *Parser) expect(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	p.addError(fmt.Sprintf(ErrUnexpectedToken, describe(p.token), describeType(t)))
	return false
}

// expectName consumes a NAME token and returns its text.
func (p *Parser) expectName() string {
	if p.check(token.NAME) {
		name := p.token.Literal
		p.nextToken()
		return name
	}
	p.addError(fmt.Sprintf(ErrUnexpectedToken, describe(p.token), "name"))
	return ""
}

// atStatementEnd returns true if the current token ends a simple statement.
func (p *Parser) atStatementEnd() bool {
	switch p.token.Type {
	case token.NEWLINE, token.SEMICOLON, token.EOF:
		return true
	}
	return false
}

// startsExpression returns true if the current token can begin an expression.
func (p *Parser) startsExpression() bool {
	switch p.token.Type {
	case token.NAME, token.NUMBER, token.STRING, token.NONE, token.TRUE, token.FALSE,
		token.ELLIPSIS, token.LPAREN, token.LBRACKET, token.LBRACE,
		token.MINUS, token.PLUS, token.TILDE, token.NOT, token.LAMBDA, token.AWAIT, token.STAR:
		return true
	}
	return false
}

// addError adds a parse error at the current token.
func (p *Parser) addError(msg string) {
	p.addErrorAt(p.token.Pos, msg)
}

// addErrorAt adds a parse error at pos.
func (p *Parser) addErrorAt(pos token.Position, msg string) {
	p.errors = append(p.errors, &ParseError{
		Filename: p.filename,
		Pos:      pos,
		Message:  msg,
	})
}

// failed returns true once any error has been recorded. Parsing stops at
// the first error, so loops check it to guarantee progress.
func (p *Parser) failed() bool {
	return len(p.errors) > 0
}

// describe renders a token for error messages.
func describe(tok token.Token) string {
	switch tok.Type {
	case token.NAME:
		return fmt.Sprintf("name %q", tok.Literal)
	case token.NUMBER, token.STRING:
		return tok.Literal
	}
	return describeType(tok.Type)
}

func describeType(t token.TokenType) string {
	switch t {
	case token.EOF:
		return "end of file"
	case token.NEWLINE:
		return "newline"
	case token.INDENT:
		return "indent"
	case token.DEDENT:
		return "dedent"
	case token.NAME:
		return "name"
	}
	return fmt.Sprintf("'%s'", t)
}
