// Package rules provides the style rule implementations for pystyle.
//
// Rules are organized by group:
//   - layout: line-shape rules evaluated on raw text (S001-S007)
//   - naming: identifier casing rules evaluated on the syntax tree (S008-S011)
//   - design: structural rules evaluated on the syntax tree (S012)
//
// The predicates behind the rules are exported so they can be used and
// tested on their own.
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/pystyle/pkg/lint/rules"
package rules
