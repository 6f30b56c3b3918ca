package rules_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/pystyle/pkg/lint"
	_ "github.com/leapstack-labs/pystyle/pkg/lint/rules" // register rules
)

// analyze runs the full pipeline on src and returns its violations.
func analyze(t *testing.T, src string) []lint.Violation {
	t.Helper()
	violations, err := lint.NewAnalyzer(lint.Config{}).AnalyzeSource("test.py", src)
	require.NoError(t, err)
	return violations
}

// hit is the comparable part of a violation.
type hit struct {
	Line    int
	Code    lint.Code
	Subject string
}

func hits(violations []lint.Violation) []hit {
	out := make([]hit, 0, len(violations))
	for _, v := range violations {
		out = append(out, hit{Line: v.Line, Code: v.Code, Subject: v.Subject})
	}
	return out
}

func filter(violations []lint.Violation, codes ...lint.Code) []lint.Violation {
	var out []lint.Violation
	for _, v := range violations {
		if slices.Contains(codes, v.Code) {
			out = append(out, v)
		}
	}
	return out
}

func TestCatalogue(t *testing.T) {
	all := lint.GetAll()
	require.Len(t, all, 12)
	assert.Equal(t, len(all), lint.Count())

	want := []struct {
		code     lint.Code
		name     string
		group    string
		severity lint.Severity
	}{
		{lint.CodeLineTooLong, "LINE_TOO_LONG", "layout", lint.SeverityWarning},
		{lint.CodeBadIndent, "BAD_INDENT", "layout", lint.SeverityWarning},
		{lint.CodeTrailingSemicolon, "TRAILING_SEMICOLON", "layout", lint.SeverityWarning},
		{lint.CodeCommentSpacing, "COMMENT_SPACING", "layout", lint.SeverityWarning},
		{lint.CodeTodoFound, "TODO_FOUND", "layout", lint.SeverityWarning},
		{lint.CodeExcessBlankLines, "EXCESS_BLANK_LINES", "layout", lint.SeverityWarning},
		{lint.CodeConstructorSpacing, "CONSTRUCTOR_SPACING", "layout", lint.SeverityWarning},
		{lint.CodeClassNameCasing, "CLASS_NAME_CASING", "naming", lint.SeverityWarning},
		{lint.CodeFunctionNameCasing, "FUNCTION_NAME_CASING", "naming", lint.SeverityWarning},
		{lint.CodeArgumentNameCasing, "ARGUMENT_NAME_CASING", "naming", lint.SeverityWarning},
		{lint.CodeVariableNameCasing, "VARIABLE_NAME_CASING", "naming", lint.SeverityWarning},
		{lint.CodeMutableDefault, "MUTABLE_DEFAULT_ARGUMENT", "design", lint.SeverityError},
	}
	for i, w := range want {
		rule := all[i]
		assert.Equal(t, w.code, rule.ID)
		assert.Equal(t, w.name, rule.Name)
		assert.Equal(t, w.group, rule.Group)
		assert.Equal(t, w.severity, rule.Severity)
		assert.NotEmpty(t, rule.Template, "rule %s has no message", rule.ID)
		assert.NotEmpty(t, rule.Description, "rule %s has no description", rule.ID)
		assert.True(t, (rule.CheckLine == nil) != (rule.CheckTree == nil), "rule %s must be a line or a tree rule", rule.ID)
		if rule.CheckTree != nil {
			assert.NotEmpty(t, rule.Kinds, "tree rule %s inspects no node kinds", rule.ID)
		}
	}

	assert.Len(t, lint.LineRules(), 7)
	assert.Len(t, lint.GetByGroup("naming"), 4)
}

func TestMessages(t *testing.T) {
	tests := []struct {
		violation lint.Violation
		want      string
	}{
		{lint.Violation{Code: lint.CodeLineTooLong}, "Too long"},
		{lint.Violation{Code: lint.CodeConstructorSpacing}, "Too many spaces after construction_name (def or class)"},
		{lint.Violation{Code: lint.CodeClassNameCasing, Subject: "my_class"}, "Class name 'my_class' should be written in CamelCase"},
		{lint.Violation{Code: lint.CodeFunctionNameCasing, Subject: "Run"}, "Function name 'Run' should be written in snake_case"},
		{lint.Violation{Code: lint.CodeArgumentNameCasing, Subject: "X"}, "Argument name 'X' should be written in snake_case"},
		{lint.Violation{Code: lint.CodeVariableNameCasing, Subject: "Total"}, "Variable 'Total' should be written in snake_case"},
		{lint.Violation{Code: lint.CodeMutableDefault}, "The default argument value is mutable"},
	}

	for _, tt := range tests {
		t.Run(string(tt.violation.Code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.violation.Message())
		})
	}
}

func TestViolationString(t *testing.T) {
	v := lint.Violation{Path: "app/models.py", Line: 3, Code: lint.CodeClassNameCasing, Subject: "my_class"}
	assert.Equal(t, "app/models.py: Line 3: S008 Class name 'my_class' should be written in CamelCase", v.String())
}

func TestClassNameCasing(t *testing.T) {
	violations := filter(analyze(t, "class my_class:\n    pass\n"), lint.CodeClassNameCasing)
	require.Len(t, violations, 1)
	assert.Equal(t, "my_class", violations[0].Subject)
	assert.Equal(t, 1, violations[0].Line)
}

func TestMutableDefaultArgument(t *testing.T) {
	violations := analyze(t, "def f(lst=[]):\n    return lst\n")
	assert.Empty(t, filter(violations, lint.CodeFunctionNameCasing))

	mutable := filter(violations, lint.CodeMutableDefault)
	require.Len(t, mutable, 1)
	assert.Equal(t, 1, mutable[0].Line)
	assert.Empty(t, mutable[0].Subject)
	assert.Equal(t, lint.SeverityError, mutable[0].Severity)
}

func TestMutableDefaultPerValue(t *testing.T) {
	src := `def configure(a, b={}, c=set(), d={1}, *, e=[], f=None, g=()):
    pass
`
	mutable := filter(analyze(t, src), lint.CodeMutableDefault)
	// b, d and e; set() is a call and () a tuple.
	assert.Len(t, mutable, 3)
}

func TestArgumentNameCasingReportsFirstOnly(t *testing.T) {
	src := `def move(self, X, Y, /, Z=1, *Args, KwOnly, **Options):
    pass


def fine(a, b, *Rest, Key=None, **Extra):
    pass
`
	violations := filter(analyze(t, src), lint.CodeArgumentNameCasing)
	require.Len(t, violations, 1)
	assert.Equal(t, "X", violations[0].Subject)
	assert.Equal(t, 1, violations[0].Line)
}

func TestVariableNameCasingTargets(t *testing.T) {
	src := `userCount = 0
self.Value = 1
items[Key] = 2
First, Second = 3, 4
Total += 1
Annotated: int = 5
ok = Also = 6
`
	got := hits(filter(analyze(t, src), lint.CodeVariableNameCasing))
	assert.Equal(t, []hit{{Line: 1, Code: lint.CodeVariableNameCasing, Subject: "userCount"}}, got)
}

func TestNestedDefinitionsAreChecked(t *testing.T) {
	src := `def outer():
    class inner_class:
        def MethodName(self):
            localVar = 1
            return localVar
    return inner_class


async def FetchAll(Session):
    pass
`
	got := hits(filter(analyze(t, src), lint.CodeClassNameCasing, lint.CodeFunctionNameCasing,
		lint.CodeArgumentNameCasing, lint.CodeVariableNameCasing))
	assert.Equal(t, []hit{
		{Line: 2, Code: lint.CodeClassNameCasing, Subject: "inner_class"},
		{Line: 3, Code: lint.CodeFunctionNameCasing, Subject: "MethodName"},
		{Line: 4, Code: lint.CodeVariableNameCasing, Subject: "localVar"},
		{Line: 9, Code: lint.CodeFunctionNameCasing, Subject: "FetchAll"},
		{Line: 9, Code: lint.CodeArgumentNameCasing, Subject: "Session"},
	}, got)
}

func TestDecoratedDefinitionUsesKeywordLine(t *testing.T) {
	src := `@decorator
@other(arg=1)
class bad_name:
    pass
`
	violations := filter(analyze(t, src), lint.CodeClassNameCasing)
	require.Len(t, violations, 1)
	assert.Equal(t, 3, violations[0].Line)
}

func TestTodoAndCommentSpacing(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []hit
	}{
		{
			name: "todo after two spaces",
			src:  "x = 1  # todo fix this\n",
			want: []hit{{Line: 1, Code: lint.CodeTodoFound}},
		},
		{
			name: "todo after one space",
			src:  "x = 1 #todo\n",
			want: []hit{{Line: 1, Code: lint.CodeCommentSpacing}, {Line: 1, Code: lint.CodeTodoFound}},
		},
		{
			name: "todo in code only",
			src:  "todo_list = []\n",
			want: []hit{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hits(analyze(t, tt.src)))
		})
	}
}

func TestExcessBlankLinesAttribution(t *testing.T) {
	violations := filter(analyze(t, "import os\n\n\n\nx = 1\n"), lint.CodeExcessBlankLines)
	require.Len(t, violations, 1)
	assert.Equal(t, 5, violations[0].Line)
}

func TestExcessBlankLinesCountsBlankCurrentLine(t *testing.T) {
	got := hits(filter(analyze(t, "x = 1\n\n\n\n\ny = 2\n"), lint.CodeExcessBlankLines))
	assert.Equal(t, []hit{
		{Line: 5, Code: lint.CodeExcessBlankLines},
		{Line: 6, Code: lint.CodeExcessBlankLines},
	}, got)
}

func TestLayoutRules(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []hit
	}{
		{
			name: "indent of three",
			src:  "if x:\n   y = 1\n",
			want: []hit{{Line: 2, Code: lint.CodeBadIndent}},
		},
		{
			name: "indent of four",
			src:  "if x:\n    y = 1\n",
			want: []hit{},
		},
		{
			name: "trailing semicolon",
			src:  "x = 1;\n",
			want: []hit{{Line: 1, Code: lint.CodeTrailingSemicolon}},
		},
		{
			name: "constructor spacing",
			src:  "def  run():\n    pass\n",
			want: []hit{{Line: 1, Code: lint.CodeConstructorSpacing}},
		},
		{
			name: "line of 80 characters",
			src:  "x = '" + strings.Repeat("a", 74) + "'\n",
			want: []hit{{Line: 1, Code: lint.CodeLineTooLong}},
		},
		{
			name: "line of 79 characters",
			src:  "x = '" + strings.Repeat("a", 73) + "'\n",
			want: []hit{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hits(analyze(t, tt.src)))
		})
	}
}
