package lint

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/pystyle/pkg/ast"
)

// =============================================================================
// Codes
// =============================================================================

// Code identifies a style rule. Codes sort lexically in catalogue order.
type Code string

// Rule codes.
const (
	CodeLineTooLong        Code = "S001"
	CodeBadIndent          Code = "S002"
	CodeTrailingSemicolon  Code = "S003"
	CodeCommentSpacing     Code = "S004"
	CodeTodoFound          Code = "S005"
	CodeExcessBlankLines   Code = "S006"
	CodeConstructorSpacing Code = "S007"
	CodeClassNameCasing    Code = "S008"
	CodeFunctionNameCasing Code = "S009"
	CodeArgumentNameCasing Code = "S010"
	CodeVariableNameCasing Code = "S011"
	CodeMutableDefault     Code = "S012"
)

// IsNaming reports whether violations of the code carry the offending name.
func (c Code) IsNaming() bool {
	switch c {
	case CodeClassNameCasing, CodeFunctionNameCasing, CodeArgumentNameCasing, CodeVariableNameCasing:
		return true
	}
	return false
}

// =============================================================================
// Rule Definitions
// =============================================================================

// RuleDef is a data-driven rule definition.
// Rules are stateless; all context comes via the check function parameters.
// Exactly one of CheckLine and CheckTree is set.
type RuleDef struct {
	ID          Code           // Rule code, e.g., "S001"
	Name        string         // Catalogue name, e.g., "LINE_TOO_LONG"
	Group       string         // Category: "layout", "naming" or "design"
	Description string         // Human-readable description
	Template    string         // Message template; naming rules take the subject via %s
	Severity    Severity       // Default severity
	CheckLine   LineCheckFunc  // Line rule check
	CheckTree   TreeCheckFunc  // Tree rule check
	Kinds       []ast.NodeKind // Node kinds dispatched to CheckTree

	// Documentation fields for the rules command
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// IsLineRule reports whether the rule runs on raw lines.
func (r RuleDef) IsLineRule() bool {
	return r.CheckLine != nil
}

// Line is the input of a line rule.
type Line struct {
	Text   string
	Number int // 1-based

	// Preceding holds the three lines before this one, oldest first.
	// It is nil for the first three lines of a file.
	Preceding []string
}

// LineCheckFunc reports whether a line violates the rule.
type LineCheckFunc func(line Line) bool

// Finding is a tree rule hit before it is attributed to a file and code.
type Finding struct {
	Line    int
	Subject string
}

// TreeCheckFunc inspects one node of a registered kind.
type TreeCheckFunc func(node ast.Node) []Finding

// =============================================================================
// Violations
// =============================================================================

// Violation is one rule hit in one file.
type Violation struct {
	Path     string
	Line     int // 1-based
	Code     Code
	Subject  string // offending identifier; empty unless Code.IsNaming()
	Severity Severity
}

// Message renders the rule message for the violation.
func (v Violation) Message() string {
	rule, ok := GetByID(v.Code)
	if !ok {
		return string(v.Code)
	}
	if !strings.Contains(rule.Template, "%s") {
		return rule.Template
	}
	return fmt.Sprintf(rule.Template, v.Subject)
}

// String formats the violation as "<path>: Line <n>: <code> <message>".
func (v Violation) String() string {
	return fmt.Sprintf("%s: Line %d: %s %s", v.Path, v.Line, v.Code, v.Message())
}

// =============================================================================
// Rule Info
// =============================================================================

// RuleInfo is the serializable view of a rule used by documentation tooling.
type RuleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Group       string   `json:"group"`
	Kind        string   `json:"kind"`
	Description string   `json:"description"`
	Message     string   `json:"message"`
	Severity    Severity `json:"severity"`
	Rationale   string   `json:"rationale,omitempty"`
	BadExample  string   `json:"bad_example,omitempty"`
	GoodExample string   `json:"good_example,omitempty"`
	Fix         string   `json:"fix,omitempty"`
}

// Info extracts the documentation view of a rule.
func (r RuleDef) Info() RuleInfo {
	kind := "tree"
	if r.IsLineRule() {
		kind = "line"
	}
	return RuleInfo{
		ID:          string(r.ID),
		Name:        r.Name,
		Group:       r.Group,
		Kind:        kind,
		Description: r.Description,
		Message:     r.Template,
		Severity:    r.Severity,
		Rationale:   r.Rationale,
		BadExample:  r.BadExample,
		GoodExample: r.GoodExample,
		Fix:         r.Fix,
	}
}
