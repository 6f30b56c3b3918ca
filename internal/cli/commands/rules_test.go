package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/pystyle/internal/cli/output"
	clitestutil "github.com/leapstack-labs/pystyle/internal/cli/testutil"
	"github.com/leapstack-labs/pystyle/pkg/lint"
)

func TestFindRule(t *testing.T) {
	tests := []struct {
		key  string
		want lint.Code
		ok   bool
	}{
		{key: "S008", want: lint.CodeClassNameCasing, ok: true},
		{key: "s012", want: lint.CodeMutableDefault, ok: true},
		{key: "LINE_TOO_LONG", want: lint.CodeLineTooLong, ok: true},
		{key: "todo_found", want: lint.CodeTodoFound, ok: true},
		{key: "S099", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			rule, ok := findRule(tt.key)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, rule.ID)
			}
		})
	}
}

func TestListRulesText(t *testing.T) {
	tr := clitestutil.NewTestRenderer(output.ModeText, false)
	require.NoError(t, listRules(tr.Renderer, &RulesOptions{}))

	out := tr.Output()
	clitestutil.AssertNoANSI(t, out)
	clitestutil.AssertContains(t, out, "Style Rules (12)")
	clitestutil.AssertContains(t, out, "S001")
	clitestutil.AssertContains(t, out, "LINE_TOO_LONG")
	clitestutil.AssertContains(t, out, "MUTABLE_DEFAULT_ARGUMENT")
	clitestutil.AssertNotContains(t, out, "Default argument values must not be mutable literals.")
}

func TestListRulesVerboseGroup(t *testing.T) {
	tr := clitestutil.NewTestRenderer(output.ModeText, false)
	require.NoError(t, listRules(tr.Renderer, &RulesOptions{Group: "design", Verbose: true}))

	out := tr.Output()
	clitestutil.AssertContains(t, out, "Style Rules (1)")
	clitestutil.AssertContains(t, out, "Default argument values must not be mutable literals.")
	clitestutil.AssertNotContains(t, out, "LINE_TOO_LONG")
}

func TestListRulesUnknownGroup(t *testing.T) {
	tr := clitestutil.NewTestRenderer(output.ModeText, false)
	assert.Error(t, listRules(tr.Renderer, &RulesOptions{Group: "security"}))
}

func TestListRulesMarkdown(t *testing.T) {
	tr := clitestutil.NewTestRendererMarkdown()
	require.NoError(t, listRules(tr.Renderer, &RulesOptions{Group: "naming"}))

	out := tr.Output()
	clitestutil.AssertOutputMode(t, tr, output.ModeMarkdown)
	clitestutil.AssertValidMarkdown(t, out)
	clitestutil.AssertContains(t, out, "# Style Rules")
	clitestutil.AssertContains(t, out, "| S008 |")
	clitestutil.AssertNotContains(t, out, "S001")
}

func TestListRulesJSON(t *testing.T) {
	tr := clitestutil.NewTestRendererJSON()
	require.NoError(t, listRules(tr.Renderer, &RulesOptions{}))

	var got RulesJSONOutput
	require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &got))
	assert.Equal(t, 12, got.Count)
	require.Len(t, got.Rules, 12)
	assert.Equal(t, "S001", got.Rules[0].ID)
	assert.Equal(t, "line", got.Rules[0].Kind)
	assert.Equal(t, "tree", got.Rules[11].Kind)
}

func TestShowRule(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		tr := clitestutil.NewTestRenderer(output.ModeText, false)
		require.NoError(t, showRule(tr.Renderer, "S012"))

		out := tr.Output()
		clitestutil.AssertContains(t, out, "S012 - MUTABLE_DEFAULT_ARGUMENT")
		clitestutil.AssertContains(t, out, "Severity: error")
		clitestutil.AssertContains(t, out, "Bad Example")
		clitestutil.AssertContains(t, out, "def append_to(item, target=[]):")
		clitestutil.AssertContains(t, out, "How to Fix")
	})

	t.Run("markdown", func(t *testing.T) {
		tr := clitestutil.NewTestRendererMarkdown()
		require.NoError(t, showRule(tr.Renderer, "class_name_casing"))

		out := tr.Output()
		clitestutil.AssertValidMarkdown(t, out)
		clitestutil.AssertContains(t, out, "# S008 - CLASS_NAME_CASING")
		clitestutil.AssertContains(t, out, "```python")
	})

	t.Run("json", func(t *testing.T) {
		tr := clitestutil.NewTestRendererJSON()
		require.NoError(t, showRule(tr.Renderer, "S001"))

		var info lint.RuleInfo
		require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &info))
		assert.Equal(t, "LINE_TOO_LONG", info.Name)
		assert.Equal(t, lint.SeverityWarning, info.Severity)
	})

	t.Run("unknown", func(t *testing.T) {
		tr := clitestutil.NewTestRenderer(output.ModeText, false)
		err := showRule(tr.Renderer, "S100")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `rule "S100" not found`)
	})
}
