// Package token defines the lexical tokens of the Python source the checker parses.
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL
	NEWLINE // end of a logical line
	INDENT  // increase of indentation level
	DEDENT  // decrease of indentation level

	// Literals
	NAME   // identifier
	NUMBER // 123, 0x1f, 1.5e3, 2j
	STRING // 'a', "b", '''c''', f"d", rb'e'

	// Operators and delimiters
	PLUS      // +
	MINUS     // -
	STAR      // *
	DSTAR     // **
	SLASH     // /
	DSLASH    // //
	PERCENT   // %
	AT        // @
	PIPE      // |
	AMP       // &
	CARET     // ^
	TILDE     // ~
	LSHIFT    // <<
	RSHIFT    // >>
	LT        // <
	GT        // >
	LE        // <=
	GE        // >=
	EQEQ      // ==
	NE        // !=
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // [
	RBRACKET  // ]
	LBRACE    // {
	RBRACE    // }
	COMMA     // ,
	COLON     // :
	SEMICOLON // ;
	DOT       // .
	ELLIPSIS  // ...
	ASSIGN    // =
	ARROW     // ->
	WALRUS    // :=

	// Augmented assignment operators
	PLUSEQ    // +=
	MINUSEQ   // -=
	STAREQ    // *=
	DSTAREQ   // **=
	SLASHEQ   // /=
	DSLASHEQ  // //=
	PERCENTEQ // %=
	ATEQ      // @=
	PIPEEQ    // |=
	AMPEQ     // &=
	CARETEQ   // ^=
	LSHIFTEQ  // <<=
	RSHIFTEQ  // >>=

	// Keywords (alphabetical)
	AND
	AS
	ASSERT
	ASYNC
	AWAIT
	BREAK
	CLASS
	CONTINUE
	DEF
	DEL
	ELIF
	ELSE
	EXCEPT
	FALSE
	FINALLY
	FOR
	FROM
	GLOBAL
	IF
	IMPORT
	IN
	IS
	LAMBDA
	NONE
	NONLOCAL
	NOT
	OR
	PASS
	RAISE
	RETURN
	TRUE
	TRY
	WHILE
	WITH
	YIELD
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// tokenNames maps token types to their string representations.
var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",
	NEWLINE: "NEWLINE",
	INDENT:  "INDENT",
	DEDENT:  "DEDENT",

	NAME:   "NAME",
	NUMBER: "NUMBER",
	STRING: "STRING",

	PLUS:      "+",
	MINUS:     "-",
	STAR:      "*",
	DSTAR:     "**",
	SLASH:     "/",
	DSLASH:    "//",
	PERCENT:   "%",
	AT:        "@",
	PIPE:      "|",
	AMP:       "&",
	CARET:     "^",
	TILDE:     "~",
	LSHIFT:    "<<",
	RSHIFT:    ">>",
	LT:        "<",
	GT:        ">",
	LE:        "<=",
	GE:        ">=",
	EQEQ:      "==",
	NE:        "!=",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACKET:  "[",
	RBRACKET:  "]",
	LBRACE:    "{",
	RBRACE:    "}",
	COMMA:     ",",
	COLON:     ":",
	SEMICOLON: ";",
	DOT:       ".",
	ELLIPSIS:  "...",
	ASSIGN:    "=",
	ARROW:     "->",
	WALRUS:    ":=",

	PLUSEQ:    "+=",
	MINUSEQ:   "-=",
	STAREQ:    "*=",
	DSTAREQ:   "**=",
	SLASHEQ:   "/=",
	DSLASHEQ:  "//=",
	PERCENTEQ: "%=",
	ATEQ:      "@=",
	PIPEEQ:    "|=",
	AMPEQ:     "&=",
	CARETEQ:   "^=",
	LSHIFTEQ:  "<<=",
	RSHIFTEQ:  ">>=",

	AND:      "and",
	AS:       "as",
	ASSERT:   "assert",
	ASYNC:    "async",
	AWAIT:    "await",
	BREAK:    "break",
	CLASS:    "class",
	CONTINUE: "continue",
	DEF:      "def",
	DEL:      "del",
	ELIF:     "elif",
	ELSE:     "else",
	EXCEPT:   "except",
	FALSE:    "False",
	FINALLY:  "finally",
	FOR:      "for",
	FROM:     "from",
	GLOBAL:   "global",
	IF:       "if",
	IMPORT:   "import",
	IN:       "in",
	IS:       "is",
	LAMBDA:   "lambda",
	NONE:     "None",
	NONLOCAL: "nonlocal",
	NOT:      "not",
	OR:       "or",
	PASS:     "pass",
	RAISE:    "raise",
	RETURN:   "return",
	TRUE:     "True",
	TRY:      "try",
	WHILE:    "while",
	WITH:     "with",
	YIELD:    "yield",
}

// keywords maps keyword spellings to their token types. Python keywords are case-sensitive.
var keywords = map[string]TokenType{
	"and":      AND,
	"as":       AS,
	"assert":   ASSERT,
	"async":    ASYNC,
	"await":    AWAIT,
	"break":    BREAK,
	"class":    CLASS,
	"continue": CONTINUE,
	"def":      DEF,
	"del":      DEL,
	"elif":     ELIF,
	"else":     ELSE,
	"except":   EXCEPT,
	"False":    FALSE,
	"finally":  FINALLY,
	"for":      FOR,
	"from":     FROM,
	"global":   GLOBAL,
	"if":       IF,
	"import":   IMPORT,
	"in":       IN,
	"is":       IS,
	"lambda":   LAMBDA,
	"None":     NONE,
	"nonlocal": NONLOCAL,
	"not":      NOT,
	"or":       OR,
	"pass":     PASS,
	"raise":    RAISE,
	"return":   RETURN,
	"True":     TRUE,
	"try":      TRY,
	"while":    WHILE,
	"with":     WITH,
	"yield":    YIELD,
}

// augmented maps augmented assignment tokens to the binary operator they apply.
var augmented = map[TokenType]TokenType{
	PLUSEQ:    PLUS,
	MINUSEQ:   MINUS,
	STAREQ:    STAR,
	DSTAREQ:   DSTAR,
	SLASHEQ:   SLASH,
	DSLASHEQ:  DSLASH,
	PERCENTEQ: PERCENT,
	ATEQ:      AT,
	PIPEEQ:    PIPE,
	AMPEQ:     AMP,
	CARETEQ:   CARET,
	LSHIFTEQ:  LSHIFT,
	RSHIFTEQ:  RSHIFT,
}

// LookupIdent returns the keyword token type for ident, or NAME if ident is
// not a keyword.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return NAME
}

// IsKeyword returns true if the token type is a keyword.
func IsKeyword(t TokenType) bool {
	return t >= AND && t <= YIELD
}

// IsOperator returns true if the token type is an operator or delimiter.
func IsOperator(t TokenType) bool {
	return t >= PLUS && t <= RSHIFTEQ
}

// IsAugmented returns true if the token is an augmented assignment operator.
func IsAugmented(t TokenType) bool {
	_, ok := augmented[t]
	return ok
}

// BinaryOp returns the binary operator applied by an augmented assignment token.
func BinaryOp(t TokenType) (TokenType, bool) {
	op, ok := augmented[t]
	return op, ok
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}
