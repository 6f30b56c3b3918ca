package rules

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/pystyle/pkg/ast"
)

const (
	// MaxLineLength is the longest line, in characters, that passes S001.
	MaxLineLength = 79
	// IndentWidth is the unit leading whitespace must be a multiple of.
	IndentWidth = 4
	// MaxBlankLines is the longest run of empty lines allowed before a line.
	MaxBlankLines = 2

	commentMarker = "#"
	todoMarker    = "todo"
)

var (
	camelCasePattern = regexp.MustCompile(`^[A-Z][\p{L}\p{N}_]`)
	snakeCasePattern = regexp.MustCompile(`^_*[a-z0-9_]+$`)
)

// LineTooLong reports whether line is longer than MaxLineLength characters.
func LineTooLong(line string) bool {
	return utf8.RuneCountInString(line) > MaxLineLength
}

// BadIndentation reports whether the count of leading whitespace characters
// is not a multiple of IndentWidth. Whitespace-only lines are counted whole.
func BadIndentation(line string) bool {
	indent := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}
		indent++
	}
	return indent%IndentWidth != 0
}

// TrailingSemicolon reports whether line ends with a semicolon, or, when the
// line has a comment, whether its first ';' comes before the first '#'.
func TrailingSemicolon(line string) bool {
	hash := strings.Index(line, commentMarker)
	if hash < 0 {
		return strings.HasSuffix(line, ";")
	}
	semi := strings.IndexByte(line, ';')
	return semi >= 0 && semi < hash
}

// MissingCommentSpacing reports whether the first '#' sits past the third
// character without two spaces directly before it.
func MissingCommentSpacing(line string) bool {
	runes := []rune(line)
	i := slices.Index(runes, '#')
	if i <= 2 {
		return false
	}
	return runes[i-1] != ' ' || runes[i-2] != ' '
}

// HasTodo reports whether "todo", in any case, first occurs after the first
// '#' on the line.
func HasTodo(line string) bool {
	lower := strings.ToLower(line)
	hash := strings.Index(lower, commentMarker)
	todo := strings.Index(lower, todoMarker)
	return hash >= 0 && todo > hash
}

// ExcessBlankLines reports whether the lines directly before the current one
// are all empty. preceding must hold exactly MaxBlankLines+1 lines; anything
// shorter never triggers. The current line may itself be empty.
func ExcessBlankLines(preceding []string) bool {
	if len(preceding) != MaxBlankLines+1 {
		return false
	}
	for _, line := range preceding {
		if line != "" {
			return false
		}
	}
	return true
}

// ConstructorSpacing reports whether a class or def keyword at the start of
// the line is followed by more than one whitespace character.
func ConstructorSpacing(line string) bool {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	for _, keyword := range []string{"class ", "def "} {
		rest, ok := strings.CutPrefix(line, keyword)
		if !ok {
			continue
		}
		r, _ := utf8.DecodeRuneInString(rest)
		return rest == "" || unicode.IsSpace(r)
	}
	return false
}

// IsCamelCase reports whether name starts with an uppercase ASCII letter
// followed by at least one word character.
func IsCamelCase(name string) bool {
	return camelCasePattern.MatchString(name)
}

// IsSnakeCase reports whether name is optional leading underscores followed
// by lowercase letters, digits and underscores.
func IsSnakeCase(name string) bool {
	return snakeCasePattern.MatchString(name)
}

// IsMutableLiteral reports whether expr is a list, set or dict display.
func IsMutableLiteral(expr ast.Expr) bool {
	if expr == nil {
		return false
	}
	switch expr.Kind() {
	case ast.KindList, ast.KindSet, ast.KindDict:
		return true
	}
	return false
}
