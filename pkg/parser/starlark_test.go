package parser_test

import (
	"errors"
	"testing"

	"github.com/leapstack-labs/pystyle/pkg/ast"
	"github.com/leapstack-labs/pystyle/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsStarlark(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"rules/defs.bzl", true},
		{"config.star", true},
		{"pkg/BUILD", true},
		{"pkg/BUILD.bazel", true},
		{"WORKSPACE", true},
		{"MODULE.bazel", true},
		{"app.py", false},
		{"build.py", false},
		{"BUILDING", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.IsStarlark(tt.filename))
		})
	}
}

const starlarkSource = `load("//rules:defs.bzl", "my_rule", renamed = "orig")

def BuildThing(name, deps = [], *, opts = {}, **kwargs):
    badName = name + "x"
    for d in deps:
        badName += d
    return [d for d in deps if d]

my_rule(name = "a", srcs = glob(["*.py"]))
`

func TestParseStarlark(t *testing.T) {
	mod, err := parser.ParseStarlark("defs.bzl", starlarkSource)
	require.NoError(t, err)
	require.Len(t, mod.Body, 3)

	load, ok := mod.Body[0].(*ast.ImportFrom)
	require.True(t, ok)
	assert.Equal(t, "//rules:defs.bzl", load.Module)
	require.Len(t, load.Names, 2)
	assert.Equal(t, "my_rule", load.Names[0].Name)
	assert.Empty(t, load.Names[0].AsName)
	assert.Equal(t, "orig", load.Names[1].Name)
	assert.Equal(t, "renamed", load.Names[1].AsName)

	fn, ok := mod.Body[1].(*ast.FunctionDef)
	require.True(t, ok)
	assert.Equal(t, "BuildThing", fn.Name)
	assert.Equal(t, 3, fn.Pos().Line)
	require.Len(t, fn.Args.Args, 2)
	assert.Equal(t, "deps", fn.Args.Args[1].Name)
	require.Len(t, fn.Args.Defaults, 1)
	assert.Equal(t, ast.KindList, fn.Args.Defaults[0].Kind())
	require.Len(t, fn.Args.KwOnly, 1)
	assert.Equal(t, "opts", fn.Args.KwOnly[0].Name)
	assert.Equal(t, ast.KindDict, fn.Args.KwDefaults[0].Kind())
	require.NotNil(t, fn.Args.Kwarg)
	assert.Equal(t, "kwargs", fn.Args.Kwarg.Name)

	assigns := ast.Inspect(mod, ast.KindAssign)
	require.Len(t, assigns, 1)
	assert.Equal(t, 4, assigns[0].Pos().Line)
	assert.Len(t, ast.Inspect(mod, ast.KindAugAssign), 1)
	assert.Len(t, ast.Inspect(mod, ast.KindListComp), 1)

	call, ok := mod.Body[2].(*ast.ExprStmt).Value.(*ast.Call)
	require.True(t, ok)
	require.Len(t, call.Keywords, 2)
	assert.Equal(t, "srcs", call.Keywords[1].Arg)
}

func TestParseFileDispatchesByName(t *testing.T) {
	src := "load(\"//x.bzl\", \"y\")\n"

	starlark, err := parser.ParseFile("pkg/BUILD", src)
	require.NoError(t, err)
	assert.Equal(t, ast.KindImportFrom, starlark.Body[0].Kind())

	python, err := parser.ParseFile("pkg/build.py", src)
	require.NoError(t, err)
	assert.Equal(t, ast.KindExprStmt, python.Body[0].Kind())
}

func TestParseStarlarkError(t *testing.T) {
	_, err := parser.ParseStarlark("BUILD", "x = 1\ndef f(:\n    pass\n")
	require.Error(t, err)

	var parseErr *parser.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "BUILD", parseErr.Filename)
	assert.Equal(t, 2, parseErr.Pos.Line)
}
