package parser

import (
	"fmt"

	"github.com/leapstack-labs/pystyle/pkg/token"
)

// ParseError represents a syntax error with position information.
type ParseError struct {
	Filename string
	Pos      token.Position
	Message  string
}

func (e *ParseError) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return fmt.Sprintf("%s:%d:%d: syntax error: %s", e.Filename, e.Pos.Line, e.Pos.Column, e.Message)
}

// LexError represents a tokenization error.
type LexError struct {
	Filename string
	Pos      token.Position
	Message  string
}

func (e *LexError) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("lexer error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return fmt.Sprintf("%s:%d:%d: lexer error: %s", e.Filename, e.Pos.Line, e.Pos.Column, e.Message)
}

// Common error messages
const (
	ErrInvalidSyntax      = "invalid syntax"
	ErrUnexpectedToken    = "unexpected %s, expected %s"
	ErrUnterminatedString = "unterminated string literal"
	ErrUnterminatedTriple = "unterminated triple-quoted string literal"
	ErrInvalidNumber      = "invalid number literal"
	ErrInvalidCharacter   = "invalid character %q"
	ErrUnexpectedIndent   = "unexpected indent"
	ErrExpectedIndent     = "expected an indented block"
	ErrInconsistentDedent = "unindent does not match any outer indentation level"
	ErrCannotAssign       = "cannot assign to %s"
	ErrDefaultOrder       = "parameter without a default follows parameter with a default"
	ErrNullByte           = "source code cannot contain null bytes"
)
