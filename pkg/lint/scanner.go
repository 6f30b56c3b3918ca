package lint

import (
	"github.com/leapstack-labs/pystyle/pkg/ast"
)

// blankLineWindow is the number of preceding lines handed to line rules.
const blankLineWindow = 3

// ScanLines evaluates every registered line rule on every line. A line may
// produce several violations. Violations come out in line order, and within
// a line in code order.
func ScanLines(path string, lines []string) []Violation {
	rules := LineRules()
	var violations []Violation
	for i, text := range lines {
		line := Line{Text: text, Number: i + 1}
		if i >= blankLineWindow {
			line.Preceding = lines[i-blankLineWindow : i]
		}
		for _, rule := range rules {
			if rule.CheckLine(line) {
				violations = append(violations, Violation{
					Path:     path,
					Line:     line.Number,
					Code:     rule.ID,
					Severity: rule.Severity,
				})
			}
		}
	}
	return violations
}

// ScanTree walks the whole tree once, depth-first, and hands each node to the
// tree rules registered for its kind. Nested definitions are visited too.
func ScanTree(path string, mod *ast.Module) []Violation {
	if mod == nil {
		return nil
	}
	byKind := TreeRules()
	var violations []Violation
	ast.Walk(mod, func(node ast.Node) bool {
		for _, rule := range byKind[node.Kind()] {
			for _, f := range rule.CheckTree(node) {
				violations = append(violations, Violation{
					Path:     path,
					Line:     f.Line,
					Code:     rule.ID,
					Subject:  f.Subject,
					Severity: rule.Severity,
				})
			}
		}
		return true
	})
	return violations
}
