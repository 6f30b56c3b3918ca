package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/pystyle/pkg/ast"
	"github.com/leapstack-labs/pystyle/pkg/lint/rules"
)

func TestLineTooLong(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{name: "empty", line: "", want: false},
		{name: "exactly 79", line: strings.Repeat("x", 79), want: false},
		{name: "exactly 80", line: strings.Repeat("x", 80), want: true},
		{name: "79 multibyte characters", line: strings.Repeat("é", 79), want: false},
		{name: "80 multibyte characters", line: strings.Repeat("é", 80), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.LineTooLong(tt.line))
		})
	}
}

func TestBadIndentation(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{name: "no indent", line: "x = 1", want: false},
		{name: "four spaces", line: "    x = 1", want: false},
		{name: "eight spaces", line: "        x = 1", want: false},
		{name: "three spaces", line: "   x = 1", want: true},
		{name: "five spaces", line: "     x = 1", want: true},
		{name: "one tab", line: "\tx = 1", want: true},
		{name: "empty line", line: "", want: false},
		{name: "whitespace only", line: "  ", want: true},
		{name: "unicode space counts", line: "　   x", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.BadIndentation(tt.line))
		})
	}
}

func TestTrailingSemicolon(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{name: "plain statement", line: "x = 1", want: false},
		{name: "trailing semicolon", line: "x = 1;", want: true},
		{name: "semicolon before trailing spaces", line: "total = 0;   ", want: false},
		{name: "semicolon before comment", line: "x = 1;  # note", want: true},
		{name: "semicolon only in comment", line: "x = 1  # a; b;", want: false},
		{name: "semicolon between statements", line: "x = 1; y = 2", want: false},
		{name: "semicolon between statements before comment", line: "x = 1; y = 2  # c", want: true},
		{name: "comment only", line: "# ;", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.TrailingSemicolon(tt.line))
		})
	}
}

func TestMissingCommentSpacing(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{name: "no comment", line: "x = 1", want: false},
		{name: "two spaces", line: "x = 1  # ok", want: false},
		{name: "three spaces", line: "x = 1   # ok", want: false},
		{name: "one space", line: "x = 1 # bad", want: true},
		{name: "no space", line: "x = 1# bad", want: true},
		{name: "comment at line start", line: "# heading", want: false},
		{name: "indented comment", line: "    # block comment", want: false},
		{name: "hash at index two", line: "ab# c", want: false},
		{name: "hash at index three", line: "abc# d", want: true},
		{name: "only first hash counts", line: "x = 1  # a # b", want: false},
		{name: "multibyte code before hash", line: "é = 1  # ok", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.MissingCommentSpacing(tt.line))
		})
	}
}

func TestHasTodo(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{name: "todo in comment", line: "x = 1  # todo fix this", want: true},
		{name: "uppercase todo", line: "# TODO: later", want: true},
		{name: "mixed case todo", line: "x = 1  # ToDo", want: true},
		{name: "no comment", line: "todo = 1", want: false},
		{name: "todo in code before comment", line: "todo = 1  # note", want: false},
		{name: "first todo before comment wins", line: "todo = 1  # todo", want: false},
		{name: "comment without todo", line: "x = 1  # done", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.HasTodo(tt.line))
		})
	}
}

func TestExcessBlankLines(t *testing.T) {
	tests := []struct {
		name      string
		preceding []string
		want      bool
	}{
		{name: "three empty lines", preceding: []string{"", "", ""}, want: true},
		{name: "two empty lines", preceding: []string{"x", "", ""}, want: false},
		{name: "whitespace line breaks the run", preceding: []string{"", " ", ""}, want: false},
		{name: "fewer than three lines", preceding: []string{"", ""}, want: false},
		{name: "nil", preceding: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.ExcessBlankLines(tt.preceding))
		})
	}
}

func TestConstructorSpacing(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{name: "single space def", line: "def f():", want: false},
		{name: "single space class", line: "class A:", want: false},
		{name: "double space def", line: "def  f():", want: true},
		{name: "double space class", line: "class  A:", want: true},
		{name: "indented method", line: "    def  method(self):", want: true},
		{name: "tab after space", line: "def \tf():", want: true},
		{name: "keyword then end of line", line: "class ", want: true},
		{name: "keyword prefix of a name", line: "classify = 1", want: false},
		{name: "define is not def", line: "define(x)", want: false},
		{name: "tab instead of space", line: "def\tf():", want: false},
		{name: "async def", line: "async def  f():", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.ConstructorSpacing(tt.line))
		})
	}
}

func TestIsCamelCase(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "MyClass", want: true},
		{name: "HTTPServer", want: true},
		{name: "My_class", want: true},
		{name: "Ünicode", want: false},
		{name: "Aé", want: true},
		{name: "A", want: false},
		{name: "my_class", want: false},
		{name: "_Private", want: false},
		{name: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.IsCamelCase(tt.name))
		})
	}
}

func TestIsSnakeCase(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "snake_case", want: true},
		{name: "_private", want: true},
		{name: "__init__", want: true},
		{name: "x1", want: true},
		{name: "_", want: true},
		{name: "camelCase", want: false},
		{name: "CONSTANT", want: false},
		{name: "café", want: false},
		{name: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.IsSnakeCase(tt.name))
		})
	}
}

func TestIsMutableLiteral(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
		want bool
	}{
		{name: "list", expr: &ast.List{}, want: true},
		{name: "set", expr: &ast.Set{}, want: true},
		{name: "dict", expr: &ast.Dict{}, want: true},
		{name: "tuple", expr: &ast.Tuple{}, want: false},
		{name: "call", expr: &ast.Call{}, want: false},
		{name: "list comprehension", expr: &ast.ListComp{}, want: false},
		{name: "name", expr: &ast.Name{ID: "x"}, want: false},
		{name: "nil", expr: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.IsMutableLiteral(tt.expr))
		})
	}
}
