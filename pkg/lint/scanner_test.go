package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/pystyle/pkg/lint"
	_ "github.com/leapstack-labs/pystyle/pkg/lint/rules" // register rules
	"github.com/leapstack-labs/pystyle/pkg/parser"
)

func TestScanLinesReportsEveryCodePerLine(t *testing.T) {
	lines := []string{
		"   x = 1; # todo",
		"y = 2",
	}

	got := lint.ScanLines("a.py", lines)
	require.Len(t, got, 4)
	for _, v := range got {
		assert.Equal(t, "a.py", v.Path)
		assert.Equal(t, 1, v.Line)
		assert.Empty(t, v.Subject)
		assert.Equal(t, lint.SeverityWarning, v.Severity)
	}
	assert.Equal(t, lint.CodeBadIndent, got[0].Code)
	assert.Equal(t, lint.CodeTrailingSemicolon, got[1].Code)
	assert.Equal(t, lint.CodeCommentSpacing, got[2].Code)
	assert.Equal(t, lint.CodeTodoFound, got[3].Code)
}

func TestScanLinesBlankWindow(t *testing.T) {
	// The first three lines have no full window, so they never trigger.
	got := lint.ScanLines("a.py", []string{"", "", "", "x = 1"})
	require.Len(t, got, 1)
	assert.Equal(t, lint.CodeExcessBlankLines, got[0].Code)
	assert.Equal(t, 4, got[0].Line)

	assert.Empty(t, lint.ScanLines("a.py", []string{"", "", ""}))
}

func TestScanTree(t *testing.T) {
	mod, err := parser.Parse("b.py", "class bad:\n    def Bad(self, X=[]):\n        Y = 1\n")
	require.NoError(t, err)

	got := lint.ScanTree("b.py", mod)
	require.Len(t, got, 5)

	byCode := make(map[lint.Code]lint.Violation)
	for _, v := range got {
		assert.Equal(t, "b.py", v.Path)
		byCode[v.Code] = v
	}
	assert.Equal(t, "bad", byCode[lint.CodeClassNameCasing].Subject)
	assert.Equal(t, 1, byCode[lint.CodeClassNameCasing].Line)
	assert.Equal(t, "Bad", byCode[lint.CodeFunctionNameCasing].Subject)
	assert.Equal(t, "X", byCode[lint.CodeArgumentNameCasing].Subject)
	assert.Equal(t, 2, byCode[lint.CodeMutableDefault].Line)
	assert.Equal(t, lint.SeverityError, byCode[lint.CodeMutableDefault].Severity)
	assert.Equal(t, "Y", byCode[lint.CodeVariableNameCasing].Subject)
	assert.Equal(t, 3, byCode[lint.CodeVariableNameCasing].Line)
}

func TestScanTreeNilModule(t *testing.T) {
	assert.Empty(t, lint.ScanTree("c.py", nil))
}
