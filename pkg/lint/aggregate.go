package lint

import (
	"cmp"
	"slices"
)

// Merge concatenates line and tree violations and sorts them by line, then
// code. The sort is stable so equal keys keep their scan order. Nothing is
// deduplicated.
func Merge(lineViolations, treeViolations []Violation) []Violation {
	merged := make([]Violation, 0, len(lineViolations)+len(treeViolations))
	merged = append(merged, lineViolations...)
	merged = append(merged, treeViolations...)
	slices.SortStableFunc(merged, compareViolations)
	return merged
}

func compareViolations(a, b Violation) int {
	if c := cmp.Compare(a.Line, b.Line); c != 0 {
		return c
	}
	return cmp.Compare(a.Code, b.Code)
}
