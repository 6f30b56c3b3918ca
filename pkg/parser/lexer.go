package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/pystyle/pkg/token"
)

// Lexer tokenizes Python source. It tracks the indentation stack and emits
// NEWLINE, INDENT and DEDENT tokens the way the Python tokenizer does:
// newlines inside brackets and after a backslash continuation are joined,
// and blank or comment-only lines produce no tokens.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based, bytes)

	indents []int         // indentation stack, bottom is always 0
	pending []token.Token // queued tokens (INDENT/DEDENT/EOF)
	depth   int           // bracket nesting level
	atBOL   bool          // at the beginning of a logical line
	last    token.TokenType
	done    bool
	err     *LexError
}

// NewLexer creates a new Lexer for the given input. CRLF and lone CR line
// endings are normalized to LF, so offsets refer to the normalized text.
func NewLexer(input string) *Lexer {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")
	l := &Lexer{
		input:   input,
		line:    1,
		col:     0,
		indents: []int{0},
		atBOL:   true,
		last:    token.NEWLINE,
	}
	l.readChar()
	return l
}

// Err returns the first tokenization error, if any.
func (l *Lexer) Err() *LexError {
	return l.err
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.col++
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	return l.peekAt(1)
}

// peekAt returns the character n bytes ahead of the current one.
func (l *Lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token.
func (l *Lexer) NextToken() token.Token {
	for {
		if len(l.pending) > 0 {
			tok := l.pending[0]
			l.pending = l.pending[1:]
			l.last = tok.Type
			return tok
		}
		if l.done {
			return token.Token{Type: token.EOF, Pos: l.currentPos()}
		}
		if l.atBOL && l.depth == 0 {
			l.atBOL = false
			l.indentation()
			continue
		}
		if tok, ok := l.scan(); ok {
			l.last = tok.Type
			return tok
		}
	}
}

// indentation measures the indentation of the next non-blank line and queues
// INDENT or DEDENT tokens for it.
func (l *Lexer) indentation() {
	for {
		width := l.measureIndent()
		if l.ch == '#' {
			l.skipComment()
		}
		if l.ch == '\n' {
			l.readChar()
			continue
		}
		if l.atEOF() {
			return
		}

		pos := l.currentPos()
		top := l.indents[len(l.indents)-1]
		switch {
		case width > top:
			l.indents = append(l.indents, width)
			l.pending = append(l.pending, token.Token{Type: token.INDENT, Pos: pos})
		case width < top:
			for width < l.indents[len(l.indents)-1] {
				l.indents = l.indents[:len(l.indents)-1]
				l.pending = append(l.pending, token.Token{Type: token.DEDENT, Pos: pos})
			}
			if width != l.indents[len(l.indents)-1] {
				l.pending = []token.Token{l.fail(pos, ErrInconsistentDedent)}
			}
		}
		return
	}
}

// measureIndent consumes leading whitespace and returns its width. Tabs
// advance to the next multiple of eight; a form feed resets the count.
func (l *Lexer) measureIndent() int {
	width := 0
	for {
		switch l.ch {
		case ' ':
			width++
		case '\t':
			width = (width/8 + 1) * 8
		case '\f':
			width = 0
		default:
			return width
		}
		l.readChar()
	}
}

// scan reads one token from the current line. It reports false when the
// input it consumed produced no token, such as a newline inside brackets.
func (l *Lexer) scan() (token.Token, bool) {
	if tok, ok := l.skipWhitespace(); !ok {
		return tok, true
	}

	pos := l.currentPos()

	if l.atEOF() {
		l.finish(pos)
		return token.Token{}, false
	}

	switch {
	case l.ch == '\n':
		l.readChar()
		if l.depth > 0 {
			return token.Token{}, false
		}
		l.atBOL = true
		return token.Token{Type: token.NEWLINE, Literal: "\n", Pos: pos}, true

	case l.ch == '\'' || l.ch == '"':
		return l.readString(l.pos, pos, ""), true

	case l.ch == '.' && isDigit(l.peekChar()), isDigit(l.ch):
		return token.Token{Type: token.NUMBER, Literal: l.readNumber(), Pos: pos}, true

	case isIdentStart(l.ch) || l.ch >= utf8.RuneSelf:
		start := l.pos
		lit := l.readIdentifier()
		if lit == "" {
			r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
			return l.fail(pos, ErrInvalidCharacter, r), true
		}
		if isStringPrefix(lit) && (l.ch == '\'' || l.ch == '"') {
			return l.readString(start, pos, strings.ToLower(lit)), true
		}
		return token.Token{Type: token.LookupIdent(lit), Literal: lit, Pos: pos}, true

	case l.ch == 0:
		return l.fail(pos, ErrNullByte), true
	}

	if tok, ok := l.matchOperator(pos); ok {
		return tok, true
	}
	return l.fail(pos, ErrInvalidCharacter, rune(l.ch)), true
}

// finish queues the tokens that close the input: a final NEWLINE if the
// last logical line was not terminated, one DEDENT per open block and EOF.
func (l *Lexer) finish(pos token.Position) {
	if l.last != token.NEWLINE && l.last != token.DEDENT && l.depth == 0 {
		l.pending = append(l.pending, token.Token{Type: token.NEWLINE, Pos: pos})
	}
	for len(l.indents) > 1 {
		l.indents = l.indents[:len(l.indents)-1]
		l.pending = append(l.pending, token.Token{Type: token.DEDENT, Pos: pos})
	}
	l.pending = append(l.pending, token.Token{Type: token.EOF, Pos: pos})
	l.done = true
}

// skipWhitespace skips blanks, comments and backslash continuations. It
// reports false with an ILLEGAL token when a continuation is malformed.
func (l *Lexer) skipWhitespace() (token.Token, bool) {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\f':
			l.readChar()
		case l.ch == '#':
			l.skipComment()
		case l.ch == '\\':
			pos := l.currentPos()
			if l.peekChar() != '\n' {
				return l.fail(pos, "unexpected character after line continuation character"), false
			}
			l.readChar()
			l.readChar()
		default:
			return token.Token{}, true
		}
	}
}

// skipComment consumes a comment up to, not including, the end of line.
func (l *Lexer) skipComment() {
	for l.ch != '\n' && !l.atEOF() {
		l.readChar()
	}
}

// operators maps operator and delimiter spellings to token types.
var operators = map[string]token.TokenType{
	"+": token.PLUS, "-": token.MINUS, "*": token.STAR, "**": token.DSTAR,
	"/": token.SLASH, "//": token.DSLASH, "%": token.PERCENT, "@": token.AT,
	"|": token.PIPE, "&": token.AMP, "^": token.CARET, "~": token.TILDE,
	"<<": token.LSHIFT, ">>": token.RSHIFT,
	"<": token.LT, ">": token.GT, "<=": token.LE, ">=": token.GE,
	"==": token.EQEQ, "!=": token.NE,
	"(": token.LPAREN, ")": token.RPAREN, "[": token.LBRACKET, "]": token.RBRACKET,
	"{": token.LBRACE, "}": token.RBRACE,
	",": token.COMMA, ":": token.COLON, ";": token.SEMICOLON, ".": token.DOT,
	"...": token.ELLIPSIS, "=": token.ASSIGN, "->": token.ARROW, ":=": token.WALRUS,
	"+=": token.PLUSEQ, "-=": token.MINUSEQ, "*=": token.STAREQ, "**=": token.DSTAREQ,
	"/=": token.SLASHEQ, "//=": token.DSLASHEQ, "%=": token.PERCENTEQ, "@=": token.ATEQ,
	"|=": token.PIPEEQ, "&=": token.AMPEQ, "^=": token.CARETEQ,
	"<<=": token.LSHIFTEQ, ">>=": token.RSHIFTEQ,
}

// matchOperator consumes the longest operator at the current position.
func (l *Lexer) matchOperator(pos token.Position) (token.Token, bool) {
	for n := 3; n >= 1; n-- {
		if l.pos+n > len(l.input) {
			continue
		}
		lit := l.input[l.pos : l.pos+n]
		typ, ok := operators[lit]
		if !ok {
			continue
		}
		for range n {
			l.readChar()
		}
		switch typ {
		case token.LPAREN, token.LBRACKET, token.LBRACE:
			l.depth++
		case token.RPAREN, token.RBRACKET, token.RBRACE:
			if l.depth > 0 {
				l.depth--
			}
		}
		return token.Token{Type: typ, Literal: lit, Pos: pos}, true
	}
	return token.Token{}, false
}

// readString reads a string literal whose prefix (if any) starts at start.
// The current char is the opening quote.
func (l *Lexer) readString(start int, pos token.Position, prefix string) token.Token {
	quote := l.ch
	triple := l.peekAt(1) == quote && l.peekAt(2) == quote
	if triple {
		l.readChar()
		l.readChar()
	}
	l.readChar()

	formatted := strings.ContainsRune(prefix, 'f')
	braces := 0
	for {
		if l.atEOF() {
			if triple {
				return l.fail(pos, ErrUnterminatedTriple)
			}
			return l.fail(pos, ErrUnterminatedString)
		}
		switch {
		case l.ch == '\\':
			l.readChar()
			// A brace after a backslash still takes part in {{ and }} escapes.
			if formatted && braces == 0 && (l.ch == '{' || l.ch == '}') {
				continue
			}
			if !l.atEOF() {
				l.readChar()
			}
			continue
		case formatted && braces > 0 && (l.ch == '\'' || l.ch == '"'):
			if !l.skipNestedString() {
				return l.fail(pos, ErrUnterminatedString)
			}
			continue
		case l.ch == '\n' && !triple && braces == 0:
			return l.fail(pos, ErrUnterminatedString)
		case l.ch == quote:
			if !triple {
				l.readChar()
				return token.Token{Type: token.STRING, Literal: l.input[start:l.pos], Pos: pos}
			}
			if l.peekAt(1) == quote && l.peekAt(2) == quote {
				l.readChar()
				l.readChar()
				l.readChar()
				return token.Token{Type: token.STRING, Literal: l.input[start:l.pos], Pos: pos}
			}
		case formatted && l.ch == '{':
			if braces == 0 && l.peekChar() == '{' {
				l.readChar()
			} else {
				braces++
			}
		case formatted && l.ch == '}' && braces > 0:
			braces--
		}
		l.readChar()
	}
}

// skipNestedString skips a string literal inside an f-string replacement
// field. It reports false if a single-quoted literal is not closed on the
// same line or a triple-quoted one is not closed at all.
func (l *Lexer) skipNestedString() bool {
	quote := l.ch
	if l.peekAt(1) == quote && l.peekAt(2) == quote {
		return l.skipNestedTriple(quote)
	}
	l.readChar()
	for !l.atEOF() && l.ch != '\n' {
		switch l.ch {
		case '\\':
			l.readChar()
		case quote:
			l.readChar()
			return true
		}
		l.readChar()
	}
	return false
}

func (l *Lexer) skipNestedTriple(quote byte) bool {
	l.readChar()
	l.readChar()
	l.readChar()
	for !l.atEOF() {
		switch {
		case l.ch == '\\':
			l.readChar()
		case l.ch == quote && l.peekAt(1) == quote && l.peekAt(2) == quote:
			l.readChar()
			l.readChar()
			l.readChar()
			return true
		}
		l.readChar()
	}
	return false
}

// readIdentifier reads an identifier, accepting Unicode letters and digits.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for {
		if isIdentStart(l.ch) || isDigit(l.ch) {
			l.readChar()
			continue
		}
		if l.ch >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(l.input[l.pos:])
			if isIdentRune(r, l.pos == start) {
				for range size {
					l.readChar()
				}
				continue
			}
		}
		return l.input[start:l.pos]
	}
}

// readNumber reads an integer, float or imaginary literal. Digit groups may
// contain underscores.
func (l *Lexer) readNumber() string {
	start := l.pos

	if l.ch == '0' && strings.IndexByte("xXoObB", l.peekChar()) >= 0 {
		l.readChar()
		l.readChar()
		for isHexDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
		return l.input[start:l.pos]
	}

	l.readDigits()
	if l.ch == '.' {
		l.readChar()
		l.readDigits()
	}
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(l.peekAt(2))) {
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			l.readDigits()
		}
	}
	if l.ch == 'j' || l.ch == 'J' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func (l *Lexer) readDigits() {
	for isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
}

// fail records a tokenization error and stops the lexer.
func (l *Lexer) fail(pos token.Position, format string, args ...any) token.Token {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if l.err == nil {
		l.err = &LexError{Pos: pos, Message: msg}
	}
	l.done = true
	return token.Token{Type: token.ILLEGAL, Literal: msg, Pos: pos}
}

func isStringPrefix(s string) bool {
	switch strings.ToLower(s) {
	case "r", "u", "b", "f", "br", "rb", "fr", "rf":
		return true
	}
	return false
}

func isIdentStart(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isIdentRune(r rune, first bool) bool {
	if r == utf8.RuneError {
		return false
	}
	if unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) {
		return true
	}
	return !first && (unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Pc, r))
}

// isDigit returns true if ch is a digit.
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || ch >= 'a' && ch <= 'f' || ch >= 'A' && ch <= 'F'
}

// Tokenize returns all tokens from the input, ending with EOF. Tokenization
// stops at the first error.
func Tokenize(input string) ([]token.Token, error) {
	l := NewLexer(input)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
			break
		}
	}
	if l.err != nil {
		return tokens, l.err
	}
	return tokens, nil
}
