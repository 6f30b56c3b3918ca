package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/pystyle/pkg/lint"
)

func TestMerge(t *testing.T) {
	lines := []lint.Violation{
		{Line: 3, Code: lint.CodeLineTooLong},
		{Line: 7, Code: lint.CodeCommentSpacing},
		{Line: 7, Code: lint.CodeTodoFound},
	}
	tree := []lint.Violation{
		{Line: 7, Code: lint.CodeClassNameCasing, Subject: "a"},
		{Line: 1, Code: lint.CodeVariableNameCasing, Subject: "b"},
		{Line: 3, Code: lint.CodeBadIndent},
	}

	got := lint.Merge(lines, tree)
	assert.Equal(t, []lint.Violation{
		{Line: 1, Code: lint.CodeVariableNameCasing, Subject: "b"},
		{Line: 3, Code: lint.CodeLineTooLong},
		{Line: 3, Code: lint.CodeBadIndent},
		{Line: 7, Code: lint.CodeCommentSpacing},
		{Line: 7, Code: lint.CodeTodoFound},
		{Line: 7, Code: lint.CodeClassNameCasing, Subject: "a"},
	}, got)
}

func TestMergeKeepsDuplicatesInInputOrder(t *testing.T) {
	tree := []lint.Violation{
		{Line: 2, Code: lint.CodeMutableDefault, Subject: ""},
		{Line: 1, Code: lint.CodeMutableDefault, Path: "first"},
		{Line: 1, Code: lint.CodeMutableDefault, Path: "second"},
	}

	got := lint.Merge(nil, tree)
	assert.Equal(t, []lint.Violation{
		{Line: 1, Code: lint.CodeMutableDefault, Path: "first"},
		{Line: 1, Code: lint.CodeMutableDefault, Path: "second"},
		{Line: 2, Code: lint.CodeMutableDefault},
	}, got)
}

func TestMergeDoesNotAliasInputs(t *testing.T) {
	lines := []lint.Violation{{Line: 2, Code: lint.CodeBadIndent}, {Line: 1, Code: lint.CodeBadIndent}}
	_ = lint.Merge(lines, nil)
	assert.Equal(t, 2, lines[0].Line)
}

func TestMergeEmpty(t *testing.T) {
	assert.Empty(t, lint.Merge(nil, nil))
}
